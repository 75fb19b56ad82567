package installer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Uninstall removes the files listed in the receipt for name under prefix.
// Files below the config and state directories are kept, as are directories
// shared with other packages. It returns the removed paths.
func (i *Installer) Uninstall(_ context.Context, prefix, name string) ([]string, error) {
	layout := domain.NewInstallLayout(prefix)

	receipt, err := i.receipts.Get(layout.Prefix, name)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, zerr.With(zerr.With(domain.ErrNotInstalled, "package", name), "prefix", layout.Prefix)
	}

	files := make([]string, 0, len(receipt.Files))
	for f := range receipt.Files {
		files = append(files, f)
	}
	slices.Sort(files)

	var removed []string
	var errs error
	for _, f := range files {
		if within(f, layout.PreservedDirs()...) {
			continue
		}
		if err := os.Remove(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove file"), "path", f))
			continue
		}
		removed = append(removed, f)
	}

	pruneEmptyDirs(removed, ownedDirs(layout))

	if errs != nil {
		return removed, errs
	}
	if err := i.receipts.Delete(layout.Prefix, name); err != nil {
		return removed, err
	}

	i.logger.Info("uninstalled " + receipt.Name + " " + receipt.Version + " from " + layout.Prefix)
	return removed, nil
}

// ownedDirs are the directories that belong to the package alone.
func ownedDirs(layout domain.InstallLayout) []string {
	return []string{
		layout.LibDir,
		filepath.Dir(layout.ExamplesDir),
		layout.DocDir,
	}
}

// pruneEmptyDirs removes directories left empty by the removal of files,
// walking up from each file but never above an owned root.
func pruneEmptyDirs(files, roots []string) {
	dirs := make(map[string]struct{})
	for _, f := range files {
		for dir := filepath.Dir(f); within(dir, roots...); dir = filepath.Dir(dir) {
			dirs[dir] = struct{}{}
		}
	}

	ordered := make([]string, 0, len(dirs))
	for d := range dirs {
		ordered = append(ordered, d)
	}
	// Deepest first so children go before their parents.
	slices.SortFunc(ordered, func(a, b string) int {
		return strings.Count(b, string(filepath.Separator)) - strings.Count(a, string(filepath.Separator))
	})

	for _, d := range ordered {
		_ = os.Remove(d) // fails while non-empty
	}
}

// within reports whether path is one of roots or below one of them.
func within(path string, roots ...string) bool {
	for _, root := range roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
