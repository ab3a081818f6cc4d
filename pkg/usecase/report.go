package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/model"
)

// pubDateFormat is the fixed update-feed timestamp pattern, e.g.
// "Mon, 02 Jan 2006 15:04:05 -0700". It is locale-independent.
const pubDateFormat = "Mon, 02 Jan 2006 15:04:05 -0700"

// buildMetadata assembles the update-feed entry data from the produced
// archive: timestamp, size, SHA-256 digest and the EdDSA signature.
func (uc *releaseUseCase) buildMetadata(paths model.ArchivePaths, version model.VersionInfo, sig string) (*model.ReleaseMetadata, error) {
	f, err := os.Open(paths.FinalArchive)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open distributable archive", goerr.V("path", paths.FinalArchive))
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to digest distributable archive", goerr.V("path", paths.FinalArchive))
	}

	return &model.ReleaseMetadata{
		Date:        uc.now(),
		Version:     version,
		ArchiveName: paths.ArchiveName,
		ByteSize:    size,
		SHA256:      hex.EncodeToString(h.Sum(nil)),
		EdSignature: sig,
	}, nil
}

// printReport writes the release metadata block for manual transcription
// into the update feed. Labels are colored, values stay plain for
// copy/paste.
func (uc *releaseUseCase) printReport(meta *model.ReleaseMetadata) error {
	label := color.New(color.FgCyan, color.Bold)

	rows := []struct {
		name  string
		value string
	}{
		{"Date", meta.Date.Format(pubDateFormat)},
		{"Version", meta.Version.String()},
		{"Archive", meta.ArchiveName},
		{"Size", fmt.Sprintf("%d", meta.ByteSize)},
		{"SHA-256", meta.SHA256},
		{"EdDSA signature", meta.EdSignature},
	}

	for _, row := range rows {
		if _, err := label.Fprintf(uc.out, "%s: ", row.name); err != nil {
			return goerr.Wrap(err, "failed to write release report")
		}
		if _, err := fmt.Fprintln(uc.out, row.value); err != nil {
			return goerr.Wrap(err, "failed to write release report")
		}
	}
	return nil
}

// appcastItem renders an update-feed <item> fragment for the release.
func appcastItem(project *model.Project, meta *model.ReleaseMetadata) string {
	url := meta.ArchiveName
	if project.FeedURL != "" {
		url = strings.TrimSuffix(project.FeedURL, "/") + "/" + meta.ArchiveName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<item>\n")
	fmt.Fprintf(&b, "  <title>Version %s</title>\n", meta.Version.MarketingVersion)
	fmt.Fprintf(&b, "  <pubDate>%s</pubDate>\n", meta.Date.Format(pubDateFormat))
	fmt.Fprintf(&b, "  <enclosure url=%q\n", url)
	fmt.Fprintf(&b, "    sparkle:version=%q\n", meta.Version.BuildNumber)
	fmt.Fprintf(&b, "    sparkle:shortVersionString=%q\n", meta.Version.MarketingVersion)
	fmt.Fprintf(&b, "    sparkle:edSignature=%q\n", meta.EdSignature)
	fmt.Fprintf(&b, "    length=\"%d\"\n", meta.ByteSize)
	fmt.Fprintf(&b, "    type=\"application/octet-stream\"/>\n")
	fmt.Fprintf(&b, "</item>\n")
	return b.String()
}

// appcastItemReader wraps the fragment for upload.
func appcastItemReader(project *model.Project, meta *model.ReleaseMetadata) io.Reader {
	return strings.NewReader(appcastItem(project, meta))
}
