// Package notifier delivers rendered reminder text over Slack.
package notifier

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// SlackNotifier posts reminders to the channel where they were created,
// mentioning the owner. The delivery timeout arrives via the context.
type SlackNotifier struct {
	client contract.SlackClient
}

func New(client contract.SlackClient) *SlackNotifier {
	return &SlackNotifier{client: client}
}

func (n *SlackNotifier) Deliver(ctx context.Context, d contract.Delivery) error {
	message := fmt.Sprintf("⏰ <@%s> %s", d.Owner, d.Text)

	done := make(chan error, 1)
	go func() {
		_, _, err := n.client.PostMessage(
			d.ChannelID,
			slack.MsgOptionText(message, false),
			slack.MsgOptionAsUser(false),
		)
		done <- err
	}()

	// slack-go's PostMessage has no context variant on our narrow client
	// interface, so enforce the bound here and let the goroutine finish in
	// the background if the transport is stuck
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send Slack message: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("delivery timed out: %w", ctx.Err())
	}
}
