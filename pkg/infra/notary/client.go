package notary

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/interfaces"
	"github.com/h2oman/phoenix/pkg/infra/execx"
)

type client struct {
	run execx.Runner
}

// NewClient creates a notarization service client backed by notarytool
func NewClient(run execx.Runner) interfaces.Notary {
	return &client{run: run}
}

// Submit uploads the archive with the stored keychain credential profile and
// blocks until the service returns a verdict. notarytool exits zero even for
// a rejected submission, so the verdict is read from its output.
func (c *client) Submit(ctx context.Context, zipPath, profile string) error {
	out, err := c.run.Run(ctx, "xcrun", "notarytool",
		"submit", zipPath,
		"--keychain-profile", profile,
		"--wait",
	)
	if err != nil {
		return goerr.Wrap(err, "notarization submission failed")
	}

	verdict := parseVerdict(out)
	ctxlog.From(ctx).Info("notarization verdict received", "status", verdict)

	if verdict != verdictAccepted {
		return goerr.New("notarization was not accepted",
			goerr.V("status", verdict),
			goerr.V("output", string(out)),
		)
	}
	return nil
}

// Staple attaches the notarization ticket to the app bundle.
func (c *client) Staple(ctx context.Context, appPath string) error {
	if _, err := c.run.Run(ctx, "xcrun", "stapler", "staple", appPath); err != nil {
		return goerr.Wrap(err, "failed to staple notarization ticket")
	}
	return nil
}

const verdictAccepted = "Accepted"

// parseVerdict returns the final "status:" value of the notarytool --wait
// output. The submission log repeats status lines while polling; the last
// one is the verdict. Returns an empty string when no status line exists.
func parseVerdict(out []byte) string {
	var verdict string
	for _, line := range strings.Split(string(out), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == "status" {
			verdict = strings.TrimSpace(value)
		}
	}
	return verdict
}
