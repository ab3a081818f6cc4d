package xcode

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/interfaces"
	"github.com/h2oman/phoenix/pkg/domain/model"
	"github.com/h2oman/phoenix/pkg/infra/execx"
)

type client struct {
	run execx.Runner
}

// NewClient creates an Xcode toolchain client
func NewClient(run execx.Runner) interfaces.Xcode {
	return &client{run: run}
}

// BuildSettings reads MARKETING_VERSION and CURRENT_PROJECT_VERSION from the
// project's resolved build settings.
func (c *client) BuildSettings(ctx context.Context, project *model.Project) (*model.VersionInfo, error) {
	out, err := c.run.Run(ctx, "xcodebuild",
		"-showBuildSettings",
		"-workspace", project.Workspace,
		"-scheme", project.Scheme,
		"-configuration", project.Configuration,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read build settings")
	}
	return parseBuildSettings(out)
}

// Archive runs a clean archive build with the signing identity overriding
// whatever the project file configures.
func (c *client) Archive(ctx context.Context, project *model.Project, signingIdentity, archivePath string) error {
	_, err := c.run.Run(ctx, "xcodebuild",
		"clean", "archive",
		"-workspace", project.Workspace,
		"-scheme", project.Scheme,
		"-configuration", project.Configuration,
		"-archivePath", archivePath,
		"CODE_SIGN_IDENTITY="+signingIdentity,
	)
	if err != nil {
		return goerr.Wrap(err, "archive build failed")
	}
	return nil
}

// ExportApp exports the deployable app bundle from the archive.
func (c *client) ExportApp(ctx context.Context, project *model.Project, archivePath, exportDir string) error {
	_, err := c.run.Run(ctx, "xcodebuild",
		"-exportArchive",
		"-archivePath", archivePath,
		"-exportOptionsPlist", project.ExportOptions,
		"-exportPath", exportDir,
	)
	if err != nil {
		return goerr.Wrap(err, "archive export failed")
	}
	return nil
}
