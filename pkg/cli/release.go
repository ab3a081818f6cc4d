package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/h2oman/phoenix/pkg/cli/config"
	"github.com/h2oman/phoenix/pkg/infra/archive"
	"github.com/h2oman/phoenix/pkg/infra/codesign"
	"github.com/h2oman/phoenix/pkg/infra/execx"
	"github.com/h2oman/phoenix/pkg/infra/gcs"
	"github.com/h2oman/phoenix/pkg/infra/notary"
	"github.com/h2oman/phoenix/pkg/infra/slacknotify"
	"github.com/h2oman/phoenix/pkg/infra/sparkle"
	"github.com/h2oman/phoenix/pkg/infra/xcode"
	"github.com/h2oman/phoenix/pkg/usecase"
	"github.com/h2oman/phoenix/pkg/utils/runid"
)

func cmdRelease() *cli.Command {
	var (
		releaseCfg config.Release
		projectCfg config.Project
		notaryCfg  config.Notary
		publishCfg config.Publish
	)

	flags := releaseCfg.Flags()
	flags = append(flags, projectCfg.Flags()...)
	flags = append(flags, notaryCfg.Flags()...)
	flags = append(flags, publishCfg.Flags()...)

	return &cli.Command{
		Name:    "release",
		Aliases: []string{"r"},
		Usage:   "Build, notarize, package and sign a release",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, id := runid.With(ctx)
			logger := ctxlog.From(ctx)

			project, err := projectCfg.Load()
			if err != nil {
				return err
			}

			logger.Info("Starting release pipeline",
				slog.String("run_id", id),
				slog.String("app", project.AppName),
				slog.String("output_dir", releaseCfg.OutputDir),
			)

			run := execx.New()

			sparkleOpts := []sparkle.Option{}
			if project.FeedPublicKey != "" {
				opt, err := sparkle.WithPublicKey(project.FeedPublicKey)
				if err != nil {
					return err
				}
				sparkleOpts = append(sparkleOpts, opt)
			}

			ucOpts := []usecase.Option{
				usecase.WithNotaryProfile(notaryCfg.Profile),
				usecase.WithNotaryTimeout(notaryCfg.Timeout),
			}
			if publishCfg.Bucket != "" {
				publisher, err := gcs.NewPublisher(ctx, publishCfg.Bucket)
				if err != nil {
					return goerr.Wrap(err, "failed to create publisher")
				}
				ucOpts = append(ucOpts, usecase.WithPublisher(publisher))
			}
			if publishCfg.SlackWebhook != "" {
				ucOpts = append(ucOpts, usecase.WithAnnouncer(slacknotify.NewAnnouncer(publishCfg.SlackWebhook)))
			}

			uc := usecase.NewRelease(
				project,
				xcode.NewClient(run),
				codesign.NewClient(run),
				notary.NewClient(run),
				archive.NewArchiver(run),
				sparkle.NewClient(run, sparkleOpts...),
				ucOpts...,
			)

			meta, err := uc.Run(ctx, releaseCfg.Request())
			if err != nil {
				return goerr.Wrap(err, "release run failed")
			}

			logger.Info("Release pipeline completed",
				slog.String("archive", meta.ArchiveName),
				slog.Int64("size_bytes", meta.ByteSize),
			)
			return nil
		},
	}
}
