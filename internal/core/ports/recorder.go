package ports

import "go.trai.ch/forge/internal/core/domain"

// InstallRegistry records completed installs for the surrounding pipeline.
// Only fully successful builds are recorded; there is no partial state.
//
//go:generate go run go.uber.org/mock/mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks
type InstallRegistry interface {
	// Record persists the install record.
	Record(rec domain.InstallRecord) error

	// Get returns the record for a spec hash, or nil when absent.
	Get(specHash string) (*domain.InstallRecord, error)
}
