package specfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/specfile"
	"go.trai.ch/forge/internal/core/domain"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeSpec(t, `
spec:
  name: cp2k
  version: "5.1"
  arch: linux-x86_64
  compiler:
    name: gcc
    version: 7.2.0
    cc: /usr/bin/gcc
    cxx: /usr/bin/g++
    fc: /usr/bin/gfortran
    f77: /usr/bin/gfortran
  variants:
    mpi: true
    smm: libxsmm
  prefix: /opt/cp2k
  dependencies:
    - name: fftw
      version: 3.3.6
      prefix: /opt/fftw
      libs: [fftw3]
      static: true
    - name: mpi
      version: "3.1"
      prefix: /opt/mpich
      mpifc: /opt/mpich/bin/mpif90
build:
  stage: /tmp/stage/cp2k
  prefix: /opt/cp2k
  resources:
    LIBSMM_PATH: /opt/libsmm/libsmm.a
`)

	spec, bc, err := specfile.NewLoader().Load(path)
	require.NoError(t, err)

	require.Equal(t, "cp2k", spec.Name.String())
	require.Equal(t, "5.1", spec.Version.String())
	require.Equal(t, domain.FamilyGCC, spec.Compiler.Family)
	require.Equal(t, "/usr/bin/gfortran", spec.Compiler.FC)

	require.True(t, spec.Enabled("mpi"))
	require.Equal(t, "libxsmm", spec.VariantEnum("smm"))

	fftw, ok := spec.Dep("fftw")
	require.True(t, ok)
	require.Equal(t, "/opt/fftw", fftw.Prefix)
	require.True(t, fftw.Static)
	require.Equal(t, []string{"fftw3"}, fftw.LibNames)

	mpi, ok := spec.Dep("mpi")
	require.True(t, ok)
	require.Equal(t, "/opt/mpich/bin/mpif90", mpi.MPIFC)

	require.Equal(t, "/tmp/stage/cp2k", bc.Stage)
	require.Equal(t, "/opt/cp2k", bc.Prefix)
	require.Equal(t, "/opt/libsmm/libsmm.a", bc.Resources["LIBSMM_PATH"])
}

func TestLoader_PrefixFallsBackToSpec(t *testing.T) {
	path := writeSpec(t, `
spec:
  name: vasp
  version: 5.4.4
  prefix: /opt/vasp
  compiler:
    name: intel
    version: 17.0.4
build:
  stage: /tmp/stage/vasp
`)

	_, bc, err := specfile.NewLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/vasp", bc.Prefix)
}

func TestLoader_MissingFile(t *testing.T) {
	_, _, err := specfile.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), domain.ErrSpecReadFailed.Error())
}

func TestLoader_MalformedYAML(t *testing.T) {
	path := writeSpec(t, "spec: [not a mapping")

	_, _, err := specfile.NewLoader().Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), domain.ErrSpecParseFailed.Error())
}

func TestLoader_IncompleteSpec(t *testing.T) {
	path := writeSpec(t, `
spec:
  name: cp2k
`)

	_, _, err := specfile.NewLoader().Load(path)
	require.ErrorIs(t, err, domain.ErrSpecIncomplete)
}

func TestLoader_MissingCompiler(t *testing.T) {
	path := writeSpec(t, `
spec:
  name: cp2k
  version: "5.1"
`)

	_, _, err := specfile.NewLoader().Load(path)
	require.ErrorIs(t, err, domain.ErrSpecIncomplete)
}

func TestLoader_UnknownCompiler(t *testing.T) {
	path := writeSpec(t, `
spec:
  name: cp2k
  version: "5.1"
  compiler:
    name: pgi
    version: "18.1"
`)

	_, _, err := specfile.NewLoader().Load(path)
	require.ErrorIs(t, err, domain.ErrUnsupportedConfiguration)
}

func TestLoader_BadVariantValue(t *testing.T) {
	path := writeSpec(t, `
spec:
  name: cp2k
  version: "5.1"
  compiler:
    name: gcc
    version: 7.2.0
  variants:
    mpi: 42
`)

	_, _, err := specfile.NewLoader().Load(path)
	require.ErrorIs(t, err, domain.ErrSpecParseFailed)
}
