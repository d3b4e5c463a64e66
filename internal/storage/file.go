package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// File stores each key as one JSON document under BaseDir. Writes go to a
// uuid-named temp file first and are renamed into place, so a crash mid-write
// leaves the previous document intact.
type File struct {
	BaseDir string
}

func NewFile(baseDir string) *File {
	return &File{BaseDir: baseDir}
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (f *File) Set(ctx context.Context, key string, data []byte) error {
	_ = ctx

	if err := os.MkdirAll(f.BaseDir, 0o755); err != nil {
		return err
	}

	tmp := f.path(key) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (f *File) Delete(ctx context.Context, key string) error {
	_ = ctx

	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *File) path(key string) string {
	return filepath.Join(f.BaseDir, safeKey(key)+".json")
}

// safeKey keeps keys usable as filenames.
func safeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)
}

func (f *File) String() string { return fmt.Sprintf("file(%s)", f.BaseDir) }
