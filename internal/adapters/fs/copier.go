package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Copier = (*Copier)(nil)

// Copier copies files and directory trees without transforming their content.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// CopyFile copies src to dst, creating parent directories.
// The file is written beside dst and renamed into place, so a running binary
// at dst is replaced rather than truncated. A zero perm means domain.FilePerm.
func (c *Copier) CopyFile(src, dst string, perm uint32) error {
	if perm == 0 {
		perm = domain.FilePerm
	}

	in, err := os.Open(src) //nolint:gosec // src is inside the source tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // read-only

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", src)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}
	if err := os.Chmod(tmpName, iofs.FileMode(perm)); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", dst)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to move file into place"), "path", dst)
	}
	return nil
}

// CopyTree copies every file below src into dst, preserving relative paths and
// permission bits. Symbolic links are recreated as links. It returns the
// destination paths written.
func (c *Copier) CopyTree(src, dst string) ([]string, error) {
	var written []string

	for path, err := range c.walker.WalkFiles(src) {
		if err != nil {
			return written, zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", src)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return written, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		target := filepath.Join(dst, rel)

		info, err := os.Lstat(path)
		if err != nil {
			return written, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
		}

		if info.Mode()&iofs.ModeSymlink != 0 {
			if err := copySymlink(path, target); err != nil {
				return written, err
			}
		} else if err := c.CopyFile(path, target, uint32(info.Mode().Perm())); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	return written, nil
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read link"), "path", src)
	}
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to replace link"), "path", dst)
	}
	if err := os.Symlink(link, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create link"), "path", dst)
	}
	return nil
}
