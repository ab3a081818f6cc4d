package config

import (
	"github.com/urfave/cli/v3"

	"github.com/h2oman/phoenix/pkg/domain/model"
)

// Release holds the two required release inputs
type Release struct {
	SignIdentity string
	OutputDir    string
}

// Flags returns CLI flags for the release inputs
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sign-identity",
			Aliases:     []string{"s"},
			Usage:       "Code-sign identity for the release build",
			Required:    true,
			Destination: &c.SignIdentity,
			Sources:     cli.EnvVars("PHOENIX_SIGN_IDENTITY"),
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Existing directory receiving the distributable archive",
			Required:    true,
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("PHOENIX_OUTPUT_DIR"),
		},
	}
}

// Request builds the release request from the parsed flags.
func (c *Release) Request() *model.ReleaseRequest {
	return &model.ReleaseRequest{
		SigningIdentity: c.SignIdentity,
		OutputDir:       c.OutputDir,
	}
}
