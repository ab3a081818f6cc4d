package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/types"
)

// ReleaseRequest holds the two operator-supplied inputs of a release run.
// It is immutable after Validate succeeds.
type ReleaseRequest struct {
	SigningIdentity string // Code-sign identity passed to the build toolchain
	OutputDir       string // Existing directory receiving the distributable
}

// Validate checks the request preconditions. It performs no side effects.
func (r *ReleaseRequest) Validate() error {
	if r.SigningIdentity == "" {
		return goerr.New("signing identity must not be empty", goerr.T(types.TagPrecondition))
	}
	info, err := os.Stat(r.OutputDir)
	if err != nil {
		return goerr.Wrap(err, "output directory does not exist",
			goerr.T(types.TagPrecondition), goerr.V("path", r.OutputDir))
	}
	if !info.IsDir() {
		return goerr.New("output path is not a directory",
			goerr.T(types.TagPrecondition), goerr.V("path", r.OutputDir))
	}
	return nil
}

// VersionInfo is read once from the build configuration before any stage
// runs and never changes afterward.
type VersionInfo struct {
	MarketingVersion string // Human-facing version string, e.g. "1.2.3"
	BuildNumber      string // Monotonic internal build counter, e.g. "45"
}

// String renders the update-feed version line, e.g. "1.2.3 (45)".
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (%s)", v.MarketingVersion, v.BuildNumber)
}

// ArchivePaths are the filesystem locations one release run works with. All
// names derive deterministically from the app name and marketing version, so
// archives of differing versions never collide.
type ArchivePaths struct {
	WorkDir         string // Scratch build directory, recreated fresh per run
	XcodeArchive    string // <work>/<App>.xcarchive
	ExportDir       string // <work>/export
	AppBundle       string // <export>/<App>.app
	NotarizationZip string // <work>/<app>-<version>.zip
	ArchiveName     string // <app>-<version>.tar.gz
	FinalArchive    string // <output>/<app>-<version>.tar.gz
}

// NewArchivePaths derives all paths for one run. The archive file names use
// the lowercased app name.
func NewArchivePaths(appName string, version VersionInfo, outputDir, workDir string) ArchivePaths {
	stem := strings.ToLower(appName) + "-" + version.MarketingVersion
	exportDir := filepath.Join(workDir, "export")
	return ArchivePaths{
		WorkDir:         workDir,
		XcodeArchive:    filepath.Join(workDir, appName+".xcarchive"),
		ExportDir:       exportDir,
		AppBundle:       filepath.Join(exportDir, appName+".app"),
		NotarizationZip: filepath.Join(workDir, stem+".zip"),
		ArchiveName:     stem + ".tar.gz",
		FinalArchive:    filepath.Join(outputDir, stem+".tar.gz"),
	}
}

// ReleaseMetadata is the update-feed entry data printed by the Report stage.
type ReleaseMetadata struct {
	Date        time.Time
	Version     VersionInfo
	ArchiveName string
	ByteSize    int64
	SHA256      string // hex digest of the distributable archive
	EdSignature string // base64 EdDSA signature over the archive bytes
}
