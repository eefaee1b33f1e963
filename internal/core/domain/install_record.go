package domain

import "time"

// InstallRecord describes one completed install, written to the registry
// after the full plan succeeded. Failed builds never leave a record.
type InstallRecord struct {
	Package     string    `json:"package"`
	Version     string    `json:"version"`
	SpecHash    string    `json:"spec_hash"`
	Prefix      string    `json:"prefix"`
	InstalledAt time.Time `json:"installed_at"`
}
