package customizer

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tissovison.com/app/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*Service, storage.Store) {
	t.Helper()
	st := storage.NewFile(t.TempDir())
	return NewService(st, testLogger()), st
}

func TestFreshServiceUsesDefaults(t *testing.T) {
	s, _ := newTestService(t)

	cfg := s.Config()
	assert.Equal(t, "TISSO VISON", cfg.BrandName)
	assert.Equal(t, "The Gift Guide", cfg.HeroTitle)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, cfg.SelectedProducts)
}

func TestSetPersistsAcrossInstances(t *testing.T) {
	st := storage.NewFile(t.TempDir())

	s1 := NewService(st, testLogger())
	cfg := s1.Config()
	cfg.BrandName = "ACME"
	cfg.SelectedProducts = []int{1, 4}
	s1.Set(cfg)

	s2 := NewService(st, testLogger())
	got := s2.Config()
	assert.Equal(t, "ACME", got.BrandName)
	assert.Equal(t, []int{1, 4}, got.SelectedProducts)
	// untouched fields keep their values
	assert.Equal(t, "The Gift Guide", got.HeroTitle)
}

func TestCorruptConfigFallsBackToDefaults(t *testing.T) {
	st := storage.NewFile(t.TempDir())
	require.NoError(t, st.Set(context.Background(), StorageKey, []byte("not-json{{")))

	s := NewService(st, testLogger())
	assert.Equal(t, Defaults(), s.Config())
}

func TestResetRestoresDefaults(t *testing.T) {
	s, _ := newTestService(t)

	cfg := s.Config()
	cfg.SectionTitle = "Changed"
	s.Set(cfg)
	s.Reset()

	assert.Equal(t, Defaults(), s.Config())
}

func TestExportImportRoundTrip(t *testing.T) {
	s1, _ := newTestService(t)
	cfg := s1.Config()
	cfg.HeroTitle = "Summer Drop"
	cfg.SelectedProducts = []int{2, 3}
	s1.Set(cfg)

	raw, err := s1.Export()
	require.NoError(t, err)

	s2, _ := newTestService(t)
	require.NoError(t, s2.Import(raw))

	got := s2.Config()
	assert.Equal(t, "Summer Drop", got.HeroTitle)
	assert.Equal(t, []int{2, 3}, got.SelectedProducts)
}

func TestImportMergesOverDefaults(t *testing.T) {
	s, _ := newTestService(t)

	require.NoError(t, s.Import([]byte(`{"brandName":"ACME"}`)))

	cfg := s.Config()
	assert.Equal(t, "ACME", cfg.BrandName)
	assert.Equal(t, "The Gift Guide", cfg.HeroTitle, "missing fields come from defaults")
}

func TestImportRejectsInvalidJSON(t *testing.T) {
	s, _ := newTestService(t)
	before := s.Config()

	err := s.Import([]byte("{broken"))
	assert.Error(t, err)
	assert.Equal(t, before, s.Config(), "failed import must not touch the config")
}

func TestObserverFiresOnSet(t *testing.T) {
	s, _ := newTestService(t)

	var got Config
	fired := 0
	s.Subscribe(func(cfg Config) {
		got = cfg
		fired++
	})

	cfg := s.Config()
	cfg.SelectedProducts = []int{5}
	s.Set(cfg)

	assert.Equal(t, 1, fired)
	assert.Equal(t, []int{5}, got.SelectedProducts)
}

func TestConfigReturnsDetachedCopy(t *testing.T) {
	s, _ := newTestService(t)

	cfg := s.Config()
	cfg.SelectedProducts[0] = 99

	assert.Equal(t, 1, s.Config().SelectedProducts[0])
}
