package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-reminder-bot/internal/slack"
	"github.com/diegoclair/slack-reminder-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandlerTestMock(t *testing.T) (*SlackHandler, *mocks.MockReminderService, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockReminderService(ctrl)
	return New(svc, "test-signing-secret"), svc, ctrl
}

func testSlashCommand() *slack.SlashCommand {
	return &slack.SlashCommand{
		UserID:    "U123456",
		ChannelID: "C123456",
		Command:   "/remind",
	}
}

func mustParse(t *testing.T, text string) *slackcmd.Command {
	t.Helper()

	cmd, err := slackcmd.ParseCommand(text)
	require.NoError(t, err)
	return cmd
}

func TestSlackHandler_handleSchedule(t *testing.T) {
	t.Run("Should schedule a reminder and echo the id", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().
			Schedule("U123456", "C123456", "stretch your legs", "", gomock.Any()).
			DoAndReturn(func(_, _, _, _ string, dueAt time.Time) (int64, error) {
				assert.WithinDuration(t, time.Now().UTC().Add(30*time.Minute), dueAt, 5*time.Second)
				return 42, nil
			})

		msg := h.handleCommand(mustParse(t, "in 30m stretch your legs"), testSlashCommand())

		assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
		assert.Contains(t, msg.Text, "#42")
		assert.Contains(t, msg.Text, "stretch your legs")
	})

	t.Run("Should pass the persona through", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().
			Schedule("U123456", "C123456", "drink water", "zen", gomock.Any()).
			Return(int64(7), nil)

		msg := h.handleCommand(mustParse(t, "in 1h drink water as zen"), testSlashCommand())
		assert.Contains(t, msg.Text, "#7")
	})

	t.Run("Should schedule an absolute time reminder", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		wantDue := time.Date(2026, 12, 24, 18, 0, 0, 0, time.UTC)
		svc.EXPECT().
			Schedule("U123456", "C123456", "standup notes", "", wantDue).
			Return(int64(9), nil)

		msg := h.handleCommand(mustParse(t, "at 2026-12-24T18:00:00Z standup notes"), testSlashCommand())
		assert.Contains(t, msg.Text, "2026-12-24 18:00 UTC")
	})

	t.Run("Should explain a past due time", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().
			Schedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), domain.ErrInvalidTime)

		msg := h.handleCommand(mustParse(t, "at 2020-01-01T00:00:00Z too late"), testSlashCommand())
		assert.Contains(t, msg.Text, "❌")
		assert.Contains(t, msg.Text, "past")
	})

	t.Run("Should explain an unknown persona", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().
			Schedule(gomock.Any(), gomock.Any(), gomock.Any(), "pirate", gomock.Any()).
			Return(int64(0), domain.ErrUnknownPersona)

		msg := h.handleCommand(mustParse(t, "in 1h ahoy as pirate"), testSlashCommand())
		assert.Contains(t, msg.Text, "pirate")
	})

	t.Run("Should not call the service on a parse error", func(t *testing.T) {
		h, _, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		msg := h.handleCommand(mustParse(t, "in nonsense stretch"), testSlashCommand())
		assert.Contains(t, msg.Text, "❌")
	})
}

func TestSlackHandler_handleList(t *testing.T) {
	t.Run("Should list pending reminders", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().ListPending("U123456").Return([]*entity.Reminder{
			{ID: 1, Payload: "first", DueAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)},
			{ID: 2, Payload: "second", PersonaID: "noir", DueAt: time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)},
		}, nil)

		msg := h.handleCommand(mustParse(t, "list"), testSlashCommand())

		assert.Contains(t, msg.Text, "#1")
		assert.Contains(t, msg.Text, "first")
		assert.Contains(t, msg.Text, "#2")
		assert.Contains(t, msg.Text, "(as noir)")
	})

	t.Run("Should say so when there is nothing pending", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().ListPending("U123456").Return(nil, nil)

		msg := h.handleCommand(mustParse(t, "list"), testSlashCommand())
		assert.Contains(t, msg.Text, "no pending reminders")
	})
}

func TestSlackHandler_handleCancel(t *testing.T) {
	t.Run("Should cancel by id with or without the hash prefix", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().Cancel(int64(42)).Return(true, nil)

		msg := h.handleCommand(mustParse(t, "cancel #42"), testSlashCommand())
		assert.Contains(t, msg.Text, "#42 cancelled")
	})

	t.Run("Should report an already finished reminder", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().Cancel(int64(42)).Return(false, nil)

		msg := h.handleCommand(mustParse(t, "cancel 42"), testSlashCommand())
		assert.Contains(t, msg.Text, "No live reminder")
	})

	t.Run("Should reject a malformed id", func(t *testing.T) {
		h, _, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		msg := h.handleCommand(mustParse(t, "cancel forty-two"), testSlashCommand())
		assert.Contains(t, msg.Text, "invalid reminder id")
	})

	t.Run("Should not leak internal errors", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().Cancel(int64(42)).Return(false, errors.New("database is locked"))

		msg := h.handleCommand(mustParse(t, "cancel 42"), testSlashCommand())
		assert.NotContains(t, msg.Text, "database is locked")
		assert.Contains(t, msg.Text, "try again")
	})
}

func TestSlackHandler_handleMove(t *testing.T) {
	t.Run("Should reschedule relative to now", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().
			Reschedule(int64(42), gomock.Any()).
			DoAndReturn(func(_ int64, newDueAt time.Time) (bool, error) {
				assert.WithinDuration(t, time.Now().UTC().Add(2*time.Hour), newDueAt, 5*time.Second)
				return true, nil
			})

		msg := h.handleCommand(mustParse(t, "move 42 2h"), testSlashCommand())
		assert.Contains(t, msg.Text, "#42 moved")
	})

	t.Run("Should report a non-pending reminder", func(t *testing.T) {
		h, svc, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		svc.EXPECT().Reschedule(int64(42), gomock.Any()).Return(false, nil)

		msg := h.handleCommand(mustParse(t, "move 42 2h"), testSlashCommand())
		assert.Contains(t, msg.Text, "not pending")
	})

	t.Run("Should require both id and duration", func(t *testing.T) {
		h, _, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		msg := h.handleCommand(mustParse(t, "move 42"), testSlashCommand())
		assert.Contains(t, msg.Text, "Usage")
	})
}

func TestSlackHandler_handleHelp(t *testing.T) {
	h, _, ctrl := newHandlerTestMock(t)
	defer ctrl.Finish()

	msg := h.handleCommand(mustParse(t, "help"), testSlashCommand())

	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	assert.Contains(t, msg.Text, "/remind in")
	assert.Contains(t, msg.Text, "/remind at")
	assert.Contains(t, msg.Text, "cancel")
}
