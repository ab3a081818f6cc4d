package interfaces

import (
	"context"
	"io"

	"github.com/h2oman/phoenix/pkg/domain/model"
)

// Xcode drives the build toolchain.
type Xcode interface {
	// BuildSettings reads the marketing version and build number from the
	// project's build configuration.
	BuildSettings(ctx context.Context, project *model.Project) (*model.VersionInfo, error)
	// Archive runs a clean archive build signed with the given identity.
	Archive(ctx context.Context, project *model.Project, signingIdentity, archivePath string) error
	// ExportApp exports the deployable app bundle from an archive using the
	// project's export-options file.
	ExportApp(ctx context.Context, project *model.Project, archivePath, exportDir string) error
}

// Codesign runs the local signature and policy checks against an app bundle.
type Codesign interface {
	VerifySignature(ctx context.Context, appPath string) error
	AssessPolicy(ctx context.Context, appPath string) error
}

// Notary submits archives for notarization and staples the resulting ticket.
type Notary interface {
	// Submit blocks until the notarization service returns a verdict and
	// fails unless the verdict is Accepted.
	Submit(ctx context.Context, zipPath, profile string) error
	Staple(ctx context.Context, appPath string) error
}

// Archiver produces the two archives of a release run.
type Archiver interface {
	// CompressBundle packages a bundle directory into a zip preserving the
	// top-level directory, suitable for notarization submission.
	CompressBundle(ctx context.Context, bundlePath, zipPath string) error
	// CreateTarGz writes the distributable tar.gz. It fails if destPath
	// already exists.
	CreateTarGz(ctx context.Context, bundlePath, destPath string) error
}

// Sparkle produces the detached update-feed signature.
type Sparkle interface {
	// SignArchive returns the base64 EdDSA signature over the archive bytes.
	SignArchive(ctx context.Context, archivePath string) (string, error)
}

// Publisher uploads release artifacts to the update-feed host.
type Publisher interface {
	Upload(ctx context.Context, objectName string, body io.Reader) error
}

// Announcer posts a release notice to a chat channel.
type Announcer interface {
	Announce(ctx context.Context, text string) error
}
