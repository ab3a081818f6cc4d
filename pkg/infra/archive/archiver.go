package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/interfaces"
	"github.com/h2oman/phoenix/pkg/domain/types"
	"github.com/h2oman/phoenix/pkg/infra/execx"
)

type archiver struct {
	run execx.Runner
}

// NewArchiver creates the archiver used for both the notarization zip and
// the final distributable.
func NewArchiver(run execx.Runner) interfaces.Archiver {
	return &archiver{run: run}
}

// CompressBundle zips the bundle for notarization submission. ditto is
// required here: the zip must preserve resource forks and the top-level
// bundle directory for the notarization service to accept it.
func (a *archiver) CompressBundle(ctx context.Context, bundlePath, zipPath string) error {
	_, err := a.run.Run(ctx, "ditto", "-c", "-k", "--rsrc", "--keepParent", bundlePath, zipPath)
	if err != nil {
		return goerr.Wrap(err, "failed to create notarization archive")
	}
	return nil
}

// CreateTarGz writes the distributable tar.gz containing the bundle under
// its own top-level directory. The destination is created with O_EXCL so an
// existing archive from a prior release is never overwritten.
func (a *archiver) CreateTarGz(ctx context.Context, bundlePath, destPath string) error {
	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return goerr.New("distributable archive already exists",
				goerr.T(types.TagPrecondition), goerr.V("path", destPath))
		}
		return goerr.Wrap(err, "failed to create distributable archive", goerr.V("path", destPath))
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	if err := addTree(tw, bundlePath); err != nil {
		return goerr.Wrap(err, "failed to write distributable archive", goerr.V("path", destPath))
	}

	if err := tw.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize tar stream")
	}
	if err := gz.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize gzip stream")
	}
	return f.Close()
}

// addTree writes the directory tree rooted at bundlePath into the tar
// stream, with entry names relative to the bundle's parent so the archive
// unpacks to "<App>.app/...". App bundles contain symlinks (framework
// version links), so those are carried as link entries.
func addTree(tw *tar.Writer, bundlePath string) error {
	parent := filepath.Dir(bundlePath)

	return filepath.WalkDir(bundlePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		var link string
		if info.Mode()&fs.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}

		hdr, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if d.IsDir() {
			hdr.Name += "/"
		}

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(tw, src)
		return err
	})
}
