package slacknotify

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/h2oman/phoenix/pkg/domain/interfaces"
)

type announcer struct {
	webhookURL string
}

// NewAnnouncer creates an announcer posting to a Slack incoming webhook
func NewAnnouncer(webhookURL string) interfaces.Announcer {
	return &announcer{webhookURL: webhookURL}
}

// Announce posts the release notice text.
func (a *announcer) Announce(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookContext(ctx, a.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post release announcement")
	}
	return nil
}
