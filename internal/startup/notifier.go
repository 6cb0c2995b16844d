// Package startup posts the one-shot "bot online" announcement. It has no
// persistence and no retries; it is independent of the reminder scheduler.
package startup

import (
	"fmt"
	"log"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

type Notifier struct {
	client    contract.SlackClient
	channelID string
	version   string
}

func New(client contract.SlackClient, channelID, version string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
		version:   version,
	}
}

// Announce posts the boot message. A failure is logged and swallowed: the
// bot is useful without the announcement.
func (n *Notifier) Announce() {
	if n.channelID == "" {
		return
	}

	message := fmt.Sprintf("🤖 Reminder bot v%s is online and watching the clock.", n.version)

	_, _, err := n.client.PostMessage(
		n.channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		log.Printf("Failed to send startup notification: %v", err)
		return
	}

	log.Printf("Startup notification sent to channel %s", n.channelID)
}
