package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// StepKind discriminates the operations an invocation plan can contain.
type StepKind string

const (
	// StepRun executes an external command in a working directory.
	StepRun StepKind = "run"
	// StepWriteFile materializes a generated build-configuration fragment.
	StepWriteFile StepKind = "write-file"
	// StepMkdir creates a working directory (and parents).
	StepMkdir StepKind = "mkdir"
	// StepCopyTree recursively copies a directory into the install prefix.
	StepCopyTree StepKind = "copy-tree"
)

// Step is one entry of an invocation plan. Which fields are meaningful
// depends on Kind.
type Step struct {
	Kind StepKind

	// Run fields.
	Dir     string
	Command string
	Args    []string
	// Env holds extra KEY=VALUE pairs layered over the process environment.
	Env map[string]string

	// WriteFile and Mkdir fields.
	Path    string
	Content []byte

	// CopyTree fields.
	Src string
	Dst string
}

// Run builds a command step.
func Run(dir, command string, args ...string) Step {
	return Step{Kind: StepRun, Dir: dir, Command: command, Args: args}
}

// RunEnv builds a command step with extra environment variables.
func RunEnv(dir string, env map[string]string, command string, args ...string) Step {
	return Step{Kind: StepRun, Dir: dir, Command: command, Args: args, Env: env}
}

// WriteFile builds a file-materialization step.
func WriteFile(path string, content []byte) Step {
	return Step{Kind: StepWriteFile, Path: path, Content: content}
}

// Mkdir builds a directory-creation step.
func Mkdir(path string) Step {
	return Step{Kind: StepMkdir, Path: path}
}

// CopyTree builds a recursive directory-copy step.
func CopyTree(src, dst string) Step {
	return Step{Kind: StepCopyTree, Src: src, Dst: dst}
}

// Describe renders a one-line human-readable summary of the step, used for
// progress vertices and dry-run output.
func (s Step) Describe() string {
	switch s.Kind {
	case StepRun:
		cmd := s.Command
		if len(s.Args) > 0 {
			cmd += " " + strings.Join(s.Args, " ")
		}
		return fmt.Sprintf("run [%s] %s", s.Dir, cmd)
	case StepWriteFile:
		return "write " + s.Path
	case StepMkdir:
		return "mkdir " + s.Path
	case StepCopyTree:
		return fmt.Sprintf("copy %s -> %s", s.Src, s.Dst)
	}
	return string(s.Kind)
}

// Plan is the ordered invocation sequence the translator produced for one
// package build. Steps execute strictly in order; the first failure aborts
// the whole build and nothing is installed.
type Plan struct {
	Package string
	Version Version
	Steps   []Step
}

// Add appends steps to the plan.
func (p *Plan) Add(steps ...Step) {
	p.Steps = append(p.Steps, steps...)
}

// BuildContext carries the per-invocation inputs that are not part of the
// spec itself: where to stage, where to install, and explicitly passed
// external resources. Resources replace ambient environment lookups so the
// translation stays a pure function of its arguments.
type BuildContext struct {
	// Stage is the build working directory, assumed to hold the unpacked
	// source tree. Re-runs expect a clean stage; partial failures do not
	// resume.
	Stage string

	// Prefix is the installation prefix to populate.
	Prefix string

	// Resources maps resource names to externally supplied file paths, e.g.
	// a manually provided libsmm.a archive.
	Resources map[string]string
}

// StagePath joins path elements onto the stage directory.
func (c BuildContext) StagePath(elem ...string) string {
	return filepath.Join(append([]string{c.Stage}, elem...)...)
}

// PrefixPath joins path elements onto the install prefix.
func (c BuildContext) PrefixPath(elem ...string) string {
	return filepath.Join(append([]string{c.Prefix}, elem...)...)
}
