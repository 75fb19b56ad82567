package domain

import "time"

// InstallReceipt is the persisted record of an installation.
type InstallReceipt struct {
	RunID       string            `json:"run_id,omitzero"`
	Name        string            `json:"name,omitzero"`
	Version     string            `json:"version,omitzero"`
	SourceURL   string            `json:"source_url,omitzero"`
	SourceHash  string            `json:"source_sha256,omitzero"`
	Strategy    string            `json:"strategy,omitzero"`
	Prefix      string            `json:"prefix,omitzero"`
	Files       map[string]string `json:"files,omitzero"`
	InstalledAt time.Time         `json:"installed_at,omitzero"`
}

// NewInstallReceipt builds the receipt for a finished layout and provisioning run.
// digests maps every installed file to its content digest.
func NewInstallReceipt(report *InstallReport, digests map[string]string, installedAt time.Time) InstallReceipt {
	return InstallReceipt{
		RunID:       report.RunID,
		Name:        report.Release.Name,
		Version:     report.Release.Version,
		SourceURL:   report.Release.Source.URL,
		SourceHash:  report.Release.Source.SHA256,
		Strategy:    string(report.Strategy),
		Prefix:      report.Layout.Prefix,
		Files:       digests,
		InstalledAt: installedAt,
	}
}
