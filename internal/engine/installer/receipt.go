package installer

import (
	"context"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/zerr"
)

// writeReceipt records the installed files and their digests.
func (i *Installer) writeReceipt(ctx context.Context, report *domain.InstallReport) error {
	_, v := i.telemetry.Record(ctx, "receipt", ports.WithInternal())

	files := report.InstalledFiles()
	digests, err := i.hasher.HashFiles(files)
	if err != nil {
		// A file that cannot be hashed is still listed so uninstall removes it.
		i.logger.Warn("recording receipt without digests: " + err.Error())
		digests = make(map[string]string, len(files))
		for _, f := range files {
			digests[f] = ""
		}
	}

	receipt := domain.NewInstallReceipt(report, digests, i.now())
	if err := i.receipts.Put(receipt); err != nil {
		v.Complete(err)
		return zerr.With(err, "prefix", report.Layout.Prefix)
	}
	v.Complete(nil)
	return nil
}
