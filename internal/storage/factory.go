package storage

import (
	"fmt"
	"os"
)

type FactoryResult struct {
	Driver string
	Store  Store
}

func FromEnv() (FactoryResult, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "file"
	}

	switch driver {
	case "file":
		baseDir := envOr("STORAGE_FILE_DIR", "./storage/data")
		return FactoryResult{Driver: "file", Store: NewFile(baseDir)}, nil

	case "sqlite":
		path := envOr("STORAGE_SQLITE_PATH", "./storage/store.db")
		s, err := NewSQLite(path)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "sqlite", Store: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
