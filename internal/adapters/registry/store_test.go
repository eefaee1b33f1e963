package registry_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/registry"
	"go.trai.ch/forge/internal/core/domain"
)

func TestStore_RecordAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "installs.json")

	s, err := registry.NewStore(path)
	require.NoError(t, err)

	got, err := s.Get("deadbeef")
	require.NoError(t, err)
	require.Nil(t, got)

	rec := domain.InstallRecord{
		Package:     "fftw",
		Version:     "3.3.6",
		SpecHash:    "deadbeef",
		Prefix:      "/opt/fftw",
		InstalledAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Record(rec))

	got, err = s.Get("deadbeef")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, rec, *got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "installs.json")

	s, err := registry.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(domain.InstallRecord{Package: "vasp", SpecHash: "cafe"}))

	// A fresh store reads the same file back.
	s2, err := registry.NewStore(path)
	require.NoError(t, err)

	got, err := s2.Get("cafe")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "vasp", got.Package)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "installs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := registry.NewStore(path)
	require.Error(t, err)
}
