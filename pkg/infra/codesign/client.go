package codesign

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/interfaces"
	"github.com/h2oman/phoenix/pkg/infra/execx"
)

type client struct {
	run execx.Runner
}

// NewClient creates a client for the local signature and policy checks
func NewClient(run execx.Runner) interfaces.Codesign {
	return &client{run: run}
}

// VerifySignature checks the code signature of the app bundle.
func (c *client) VerifySignature(ctx context.Context, appPath string) error {
	if _, err := c.run.Run(ctx, "codesign", "--verify", "--deep", "--strict", appPath); err != nil {
		return goerr.Wrap(err, "code signature verification failed")
	}
	return nil
}

// AssessPolicy runs the gatekeeper execute assessment against the bundle.
func (c *client) AssessPolicy(ctx context.Context, appPath string) error {
	if _, err := c.run.Run(ctx, "spctl", "--assess", "--type", "execute", appPath); err != nil {
		return goerr.Wrap(err, "policy assessment rejected the app")
	}
	return nil
}
