package specfile

// File represents the structure of a resolved specfile.
type File struct {
	Spec  SpecDTO  `yaml:"spec"`
	Build BuildDTO `yaml:"build"`
}

// SpecDTO represents one resolved spec in the file: the root package or any
// dependency, recursively.
type SpecDTO struct {
	Name         string         `yaml:"name"`
	Version      string         `yaml:"version"`
	Arch         string         `yaml:"arch"`
	Compiler     CompilerDTO    `yaml:"compiler"`
	Variants     map[string]any `yaml:"variants"`
	Prefix       string         `yaml:"prefix"`
	Libs         []string       `yaml:"libs"`
	Static       bool           `yaml:"static"`
	MPIFC        string         `yaml:"mpifc"`
	Dependencies []SpecDTO      `yaml:"dependencies"`
}

// CompilerDTO represents the resolved toolchain.
type CompilerDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	CC      string `yaml:"cc"`
	CXX     string `yaml:"cxx"`
	FC      string `yaml:"fc"`
	F77     string `yaml:"f77"`
}

// BuildDTO carries the per-invocation build context.
type BuildDTO struct {
	Stage     string            `yaml:"stage"`
	Prefix    string            `yaml:"prefix"`
	Resources map[string]string `yaml:"resources"`
}
