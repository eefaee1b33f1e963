// Package shell executes invocation plans through os/exec.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

const outputTailLimit = 4096

// Runner implements ports.PlanRunner. Steps run strictly in order, each
// external command blocking until completion. There are no retries and no
// partial-failure recovery: the first failing step aborts the plan.
type Runner struct {
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, telemetry ports.Telemetry) *Runner {
	return &Runner{logger: logger, telemetry: telemetry}
}

// Run executes the plan.
func (r *Runner) Run(ctx context.Context, plan *domain.Plan) error {
	for i, step := range plan.Steps {
		stepCtx, vertex := r.telemetry.Record(ctx, step.Describe())
		err := r.runStep(stepCtx, plan, i, step, vertex)
		vertex.Complete(err)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, plan *domain.Plan, index int, step domain.Step, vertex ports.Vertex) error {
	switch step.Kind {
	case domain.StepRun:
		return r.runCommand(ctx, plan, index, step, vertex)
	case domain.StepWriteFile:
		if err := os.MkdirAll(filepath.Dir(step.Path), 0o750); err != nil {
			return r.stepErr(zerr.Wrap(err, "failed to create fragment directory"), plan, index, step)
		}
		if err := os.WriteFile(step.Path, step.Content, 0o644); err != nil { //nolint:gosec // build fragments are world-readable
			return r.stepErr(zerr.Wrap(err, "failed to write build fragment"), plan, index, step)
		}
		return nil
	case domain.StepMkdir:
		if err := os.MkdirAll(step.Path, 0o750); err != nil {
			return r.stepErr(zerr.Wrap(err, "failed to create directory"), plan, index, step)
		}
		return nil
	case domain.StepCopyTree:
		if err := os.MkdirAll(step.Dst, 0o750); err != nil {
			return r.stepErr(zerr.Wrap(err, "failed to create install directory"), plan, index, step)
		}
		if err := os.CopyFS(step.Dst, os.DirFS(step.Src)); err != nil {
			return r.stepErr(zerr.Wrap(err, "failed to copy tree"), plan, index, step)
		}
		return nil
	}
	return r.stepErr(zerr.With(domain.ErrInvalidStep, "kind", string(step.Kind)), plan, index, step)
}

func (r *Runner) runCommand(ctx context.Context, plan *domain.Plan, index int, step domain.Step, vertex ports.Vertex) error {
	cmd := exec.CommandContext(ctx, step.Command, step.Args...) //nolint:gosec // recipe-provided command
	cmd.Dir = step.Dir
	cmd.Env = mergeEnvironment(os.Environ(), step.Env)

	tail := &tailBuffer{limit: outputTailLimit}
	cmd.Stdout = io.MultiWriter(vertex.Stdout(), newLineWriter(r.logger.Info), tail)
	cmd.Stderr = io.MultiWriter(vertex.Stderr(), newLineWriter(func(line string) {
		r.logger.Error(zerr.New(line))
	}), tail)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		toolErr := zerr.With(domain.ErrExternalToolFailure, "command", step.Command)
		toolErr = zerr.With(toolErr, "exit_code", exitCode)
		toolErr = zerr.With(toolErr, "output_tail", tail.String())
		return r.stepErr(toolErr, plan, index, step)
	}
	return nil
}

// stepErr attaches the failing package, version and step to the error so the
// invoking pipeline can report it to an end user.
func (r *Runner) stepErr(err error, plan *domain.Plan, index int, step domain.Step) error {
	err = zerr.With(err, "package", plan.Package)
	err = zerr.With(err, "version", plan.Version.String())
	err = zerr.With(err, "step", index)
	return zerr.With(err, "step_detail", step.Describe())
}

// mergeEnvironment layers the step's extra variables over the process
// environment, later entries winning.
func mergeEnvironment(sysEnv []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return sysEnv
	}
	out := make([]string, 0, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if ok {
			if _, shadowed := extra[k]; shadowed {
				continue
			}
		}
		out = append(out, entry)
	}
	for k, v := range extra {
		out = append(out, k+"="+v)
	}
	return out
}

// lineWriter buffers writes and emits complete lines to the sink.
type lineWriter struct {
	sink func(string)
	buf  strings.Builder
}

func newLineWriter(sink func(string)) *lineWriter {
	return &lineWriter{sink: sink}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			w.sink(w.buf.String())
			w.buf.Reset()
			continue
		}
		w.buf.WriteByte(b)
	}
	return len(p), nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	data  []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data = append(t.data, p...)
	if len(t.data) > t.limit {
		t.data = t.data[len(t.data)-t.limit:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.data)
}
