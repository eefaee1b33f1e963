package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// PlanRunner executes an invocation plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type PlanRunner interface {
	// Run executes the plan's steps strictly in order, each external command
	// running to completion before the next begins. The first failing step
	// aborts the plan; the returned error wraps
	// domain.ErrExternalToolFailure for non-zero tool exits and carries the
	// package, step and captured output context.
	Run(ctx context.Context, plan *domain.Plan) error
}
