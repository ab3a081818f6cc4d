package config

import "github.com/urfave/cli/v3"

// Publish holds configuration for the optional publish and announce steps
type Publish struct {
	Bucket       string
	SlackWebhook string
}

// Flags returns CLI flags for publishing configuration
func (c *Publish) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "publish-bucket",
			Usage:       "GCS bucket hosting the update feed; enables artifact upload",
			Destination: &c.Bucket,
			Sources:     cli.EnvVars("PHOENIX_PUBLISH_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "slack-webhook",
			Usage:       "Slack incoming webhook URL; enables the release announcement",
			Destination: &c.SlackWebhook,
			Sources:     cli.EnvVars("PHOENIX_SLACK_WEBHOOK"),
		},
	}
}
