package usecase

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/interfaces"
	"github.com/h2oman/phoenix/pkg/domain/model"
	"github.com/h2oman/phoenix/pkg/domain/types"
)

type releaseUseCase struct {
	project  *model.Project
	xcode    interfaces.Xcode
	codesign interfaces.Codesign
	notary   interfaces.Notary
	archiver interfaces.Archiver
	sparkle  interfaces.Sparkle

	publisher interfaces.Publisher
	announcer interfaces.Announcer

	notaryProfile string
	notaryTimeout time.Duration
	workDir       string
	now           func() time.Time
	out           io.Writer
}

// Option is a functional option for the release use case
type Option func(*releaseUseCase)

// WithPublisher enables the publish step after a successful report.
func WithPublisher(p interfaces.Publisher) Option {
	return func(uc *releaseUseCase) {
		uc.publisher = p
	}
}

// WithAnnouncer enables the announce step after a successful report.
func WithAnnouncer(a interfaces.Announcer) Option {
	return func(uc *releaseUseCase) {
		uc.announcer = a
	}
}

// WithNotaryProfile overrides the keychain credential profile name.
func WithNotaryProfile(profile string) Option {
	return func(uc *releaseUseCase) {
		uc.notaryProfile = profile
	}
}

// WithNotaryTimeout bounds the notarization wait. Zero keeps the wait
// unbounded, which is the historical behavior of the pipeline.
func WithNotaryTimeout(d time.Duration) Option {
	return func(uc *releaseUseCase) {
		uc.notaryTimeout = d
	}
}

// WithWorkDir overrides the scratch build directory.
func WithWorkDir(dir string) Option {
	return func(uc *releaseUseCase) {
		uc.workDir = dir
	}
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(uc *releaseUseCase) {
		uc.now = now
	}
}

// WithOutput redirects the report block away from stdout.
func WithOutput(w io.Writer) Option {
	return func(uc *releaseUseCase) {
		uc.out = w
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(
	project *model.Project,
	xcode interfaces.Xcode,
	codesign interfaces.Codesign,
	notary interfaces.Notary,
	archiver interfaces.Archiver,
	sparkle interfaces.Sparkle,
	opts ...Option,
) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		project:       project,
		xcode:         xcode,
		codesign:      codesign,
		notary:        notary,
		archiver:      archiver,
		sparkle:       sparkle,
		notaryProfile: types.DefaultNotaryProfile,
		workDir:       "build",
		now:           time.Now,
		out:           os.Stdout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type stage struct {
	id   types.Stage
	fn   func(ctx context.Context) error
	skip bool
}

// Run drives the release pipeline. Stages execute in strict order and the
// first failure aborts the run; there is no partial-success state and no
// cleanup of intermediate artifacts.
func (uc *releaseUseCase) Run(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseMetadata, error) {
	logger := ctxlog.From(ctx)

	version, paths, err := uc.validate(ctx, req)
	if err != nil {
		return nil, types.WrapStage(types.StageValidate, err)
	}

	logger.Info("starting release run",
		"app", uc.project.AppName,
		"version", version.String(),
		"archive", paths.ArchiveName,
	)

	var sig string
	var meta *model.ReleaseMetadata

	stages := []stage{
		{id: types.StageBuild, fn: func(ctx context.Context) error {
			return uc.build(ctx, req, paths)
		}},
		{id: types.StageVerify, fn: func(ctx context.Context) error {
			return uc.verify(ctx, paths)
		}},
		{id: types.StageNotarize, fn: func(ctx context.Context) error {
			return uc.notarize(ctx, paths)
		}},
		{id: types.StageStaple, fn: func(ctx context.Context) error {
			return uc.notary.Staple(ctx, paths.AppBundle)
		}},
		{id: types.StageArchive, fn: func(ctx context.Context) error {
			return uc.archiver.CreateTarGz(ctx, paths.AppBundle, paths.FinalArchive)
		}},
		{id: types.StageSign, fn: func(ctx context.Context) error {
			s, err := uc.sparkle.SignArchive(ctx, paths.FinalArchive)
			if err != nil {
				return err
			}
			sig = s
			return nil
		}},
		{id: types.StageReport, fn: func(ctx context.Context) error {
			m, err := uc.buildMetadata(paths, *version, sig)
			if err != nil {
				return err
			}
			meta = m
			return uc.printReport(meta)
		}},
		{id: types.StagePublish, skip: uc.publisher == nil, fn: func(ctx context.Context) error {
			return uc.publish(ctx, paths, meta)
		}},
		{id: types.StageAnnounce, skip: uc.announcer == nil, fn: func(ctx context.Context) error {
			return uc.announce(ctx, meta)
		}},
	}

	for _, st := range stages {
		if st.skip {
			continue
		}
		logger.Info("stage started", "stage", st.id)
		if err := st.fn(ctx); err != nil {
			logger.Error("stage failed", "stage", st.id, "error", err)
			return nil, types.WrapStage(st.id, err)
		}
		logger.Info("stage completed", "stage", st.id)
	}

	return meta, nil
}

// validate checks the request preconditions and derives the immutable
// per-run data. Nothing here mutates the filesystem or invokes the build.
func (uc *releaseUseCase) validate(ctx context.Context, req *model.ReleaseRequest) (*model.VersionInfo, model.ArchivePaths, error) {
	if err := req.Validate(); err != nil {
		return nil, model.ArchivePaths{}, err
	}
	if err := uc.project.Validate(); err != nil {
		return nil, model.ArchivePaths{}, err
	}

	version, err := uc.xcode.BuildSettings(ctx, uc.project)
	if err != nil {
		return nil, model.ArchivePaths{}, goerr.Wrap(err, "failed to derive version info")
	}

	paths := model.NewArchivePaths(uc.project.AppName, *version, req.OutputDir, uc.workDir)
	if _, err := os.Stat(paths.FinalArchive); err == nil {
		return nil, model.ArchivePaths{}, goerr.New("distributable archive already exists; refusing to overwrite a prior release",
			goerr.T(types.TagPrecondition), goerr.V("path", paths.FinalArchive))
	}

	return version, paths, nil
}

// build recreates the scratch directory, then archives and exports the app.
// A stale directory from a prior failed run is removed; on failure the
// directory is left behind as a debugging artifact.
func (uc *releaseUseCase) build(ctx context.Context, req *model.ReleaseRequest, paths model.ArchivePaths) error {
	if err := os.RemoveAll(paths.WorkDir); err != nil {
		return goerr.Wrap(err, "failed to remove stale work directory", goerr.V("path", paths.WorkDir))
	}
	if err := os.MkdirAll(paths.WorkDir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create work directory", goerr.V("path", paths.WorkDir))
	}

	if err := uc.xcode.Archive(ctx, uc.project, req.SigningIdentity, paths.XcodeArchive); err != nil {
		return err
	}
	return uc.xcode.ExportApp(ctx, uc.project, paths.XcodeArchive, paths.ExportDir)
}

func (uc *releaseUseCase) verify(ctx context.Context, paths model.ArchivePaths) error {
	if err := uc.codesign.VerifySignature(ctx, paths.AppBundle); err != nil {
		return err
	}
	return uc.codesign.AssessPolicy(ctx, paths.AppBundle)
}

// notarize packages the bundle and blocks on the service verdict. The wait
// is unbounded unless a timeout was configured.
func (uc *releaseUseCase) notarize(ctx context.Context, paths model.ArchivePaths) error {
	if err := uc.archiver.CompressBundle(ctx, paths.AppBundle, paths.NotarizationZip); err != nil {
		return err
	}

	if uc.notaryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.notaryTimeout)
		defer cancel()
	}
	return uc.notary.Submit(ctx, paths.NotarizationZip, uc.notaryProfile)
}

func (uc *releaseUseCase) publish(ctx context.Context, paths model.ArchivePaths, meta *model.ReleaseMetadata) error {
	f, err := os.Open(paths.FinalArchive)
	if err != nil {
		return goerr.Wrap(err, "failed to open distributable archive", goerr.V("path", paths.FinalArchive))
	}
	defer f.Close()

	if err := uc.publisher.Upload(ctx, meta.ArchiveName, f); err != nil {
		return err
	}

	entryName := paths.ArchiveName[:len(paths.ArchiveName)-len(".tar.gz")] + ".xml"
	return uc.publisher.Upload(ctx, entryName, appcastItemReader(uc.project, meta))
}

func (uc *releaseUseCase) announce(ctx context.Context, meta *model.ReleaseMetadata) error {
	text := uc.project.AppName + " " + meta.Version.String() + " released: " + meta.ArchiveName
	return uc.announcer.Announce(ctx, text)
}
