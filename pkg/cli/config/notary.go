package config

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/h2oman/phoenix/pkg/domain/types"
)

// Notary holds notarization client configuration
type Notary struct {
	Profile string
	Timeout time.Duration
}

// Flags returns CLI flags for notarization configuration
func (c *Notary) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notary-profile",
			Usage:       "Keychain credential profile for the notarization service",
			Value:       types.DefaultNotaryProfile,
			Destination: &c.Profile,
			Sources:     cli.EnvVars("PHOENIX_NOTARY_PROFILE"),
		},
		&cli.DurationFlag{
			Name:        "notary-timeout",
			Usage:       "Upper bound on the notarization wait (0 = wait indefinitely)",
			Value:       0,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("PHOENIX_NOTARY_TIMEOUT"),
		},
	}
}
