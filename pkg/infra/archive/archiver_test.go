package archive_test

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/h2oman/phoenix/pkg/infra/archive"
)

// makeBundle builds a minimal app bundle tree with a nested file and a
// symlink, the two shapes a real bundle contains.
func makeBundle(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	bundle := filepath.Join(root, "Phoenix.app")

	gt.NoError(t, os.MkdirAll(filepath.Join(bundle, "Contents", "MacOS"), 0o755))
	gt.NoError(t, os.WriteFile(filepath.Join(bundle, "Contents", "MacOS", "Phoenix"), []byte("binary"), 0o755))
	gt.NoError(t, os.WriteFile(filepath.Join(bundle, "Contents", "Info.plist"), []byte("<plist/>"), 0o644))
	gt.NoError(t, os.Symlink("MacOS/Phoenix", filepath.Join(bundle, "Contents", "Current")))

	return bundle
}

func TestCreateTarGz(t *testing.T) {
	bundle := makeBundle(t)
	dest := filepath.Join(t.TempDir(), "phoenix-1.2.3.tar.gz")

	a := archive.NewArchiver(nil)
	gt.NoError(t, a.CreateTarGz(context.Background(), bundle, dest))

	f, err := os.Open(dest)
	gt.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	gt.NoError(t, err)
	tr := tar.NewReader(gz)

	entries := map[string]*tar.Header{}
	var binary []byte
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		gt.NoError(t, err)
		entries[hdr.Name] = hdr
		if hdr.Name == "Phoenix.app/Contents/MacOS/Phoenix" {
			binary, err = io.ReadAll(tr)
			gt.NoError(t, err)
		}
	}

	// The bundle unpacks under its own top-level directory
	gt.V(t, entries["Phoenix.app/"]).NotNil()
	gt.V(t, entries["Phoenix.app/Contents/Info.plist"]).NotNil()
	gt.Equal(t, string(binary), "binary")

	link := entries["Phoenix.app/Contents/Current"]
	gt.V(t, link).NotNil()
	gt.Equal(t, link.Typeflag, byte(tar.TypeSymlink))
	gt.Equal(t, link.Linkname, "MacOS/Phoenix")
}

func TestCreateTarGz_RefusesExistingArchive(t *testing.T) {
	bundle := makeBundle(t)
	dest := filepath.Join(t.TempDir(), "phoenix-1.2.3.tar.gz")
	gt.NoError(t, os.WriteFile(dest, []byte("prior release"), 0o644))

	a := archive.NewArchiver(nil)
	err := a.CreateTarGz(context.Background(), bundle, dest)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("already exists")

	// The prior release is untouched
	data, readErr := os.ReadFile(dest)
	gt.NoError(t, readErr)
	gt.Equal(t, string(data), "prior release")
}
