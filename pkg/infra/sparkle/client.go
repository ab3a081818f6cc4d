package sparkle

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/interfaces"
	"github.com/h2oman/phoenix/pkg/infra/execx"
)

type client struct {
	run       execx.Runner
	toolPath  string
	publicKey ed25519.PublicKey
}

// Option is a functional option for the Sparkle client
type Option func(*client)

// WithToolPath overrides the sign_update binary location.
func WithToolPath(path string) Option {
	return func(c *client) {
		c.toolPath = path
	}
}

// WithPublicKey enables verification of the emitted signature against the
// update feed's base64-encoded ed25519 public key.
func WithPublicKey(encoded string) (Option, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid feed public key encoding")
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, goerr.New("feed public key has wrong length", goerr.V("bytes", len(raw)))
	}
	return func(c *client) {
		c.publicKey = ed25519.PublicKey(raw)
	}, nil
}

// NewClient creates the update-feed signing client
func NewClient(run execx.Runner, opts ...Option) interfaces.Sparkle {
	c := &client{
		run:      run,
		toolPath: "sign_update",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignArchive runs sign_update over the archive and extracts the EdDSA
// signature from its output. When a feed public key is configured the
// signature is additionally verified over the archive bytes, catching a key
// mismatch before the feed entry ships.
func (c *client) SignArchive(ctx context.Context, archivePath string) (string, error) {
	out, err := c.run.Run(ctx, c.toolPath, archivePath)
	if err != nil {
		return "", goerr.Wrap(err, "update signing tool failed")
	}

	sig, err := ExtractAttribute(out, "sparkle:edSignature")
	if err != nil {
		return "", err
	}

	if c.publicKey != nil {
		if err := c.verify(archivePath, sig); err != nil {
			return "", err
		}
	}
	return sig, nil
}

func (c *client) verify(archivePath, sig string) error {
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return goerr.Wrap(err, "signature is not valid base64", goerr.V("signature", sig))
	}
	data, err := os.ReadFile(archivePath)
	if err != nil {
		return goerr.Wrap(err, "failed to read archive for signature verification")
	}
	if !ed25519.Verify(c.publicKey, data, raw) {
		return goerr.New("update signature does not verify against the feed public key",
			goerr.V("archive", archivePath))
	}
	return nil
}
