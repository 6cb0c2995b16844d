package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/slack-reminder-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	reminderService contract.ReminderService
	signingSecret   string
}

func New(reminderService contract.ReminderService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		reminderService: reminderService,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdIn, slackcmd.CmdAt:
		return h.handleSchedule(cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(slashCmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(cmd)
	case slackcmd.CmdMove:
		return h.handleMove(cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command, try `/remind help`")
	}
}

func (h *SlackHandler) handleSchedule(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	req, err := slackcmd.ParseRemindArgs(cmd.Type, cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	dueAt := req.DueAt
	if cmd.Type == slackcmd.CmdIn {
		dueAt = time.Now().UTC().Add(req.DueIn)
	}

	id, err := h.reminderService.Schedule(slashCmd.UserID, slashCmd.ChannelID, req.Message, req.PersonaID, dueAt)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTime):
			return h.createErrorResponse("That time is already in the past.")
		case errors.Is(err, domain.ErrUnknownPersona):
			return h.createErrorResponse(fmt.Sprintf("Unknown persona `%s`, see `/remind help` for the list.", req.PersonaID))
		default:
			return h.createErrorResponse("Could not save the reminder, please try again.")
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("⏰ Got it! I'll remind you at %s about:\n> %s\n\n*Reminder ID: #%d*",
			dueAt.Format("2006-01-02 15:04 UTC"), req.Message, id),
	}
}

func (h *SlackHandler) handleList(slashCmd *slack.SlashCommand) *slack.Msg {
	reminders, err := h.reminderService.ListPending(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse("Could not load your reminders.")
	}

	if len(reminders) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "You have no pending reminders. Create one with `/remind in 30m ...`",
		}
	}

	var sb strings.Builder
	sb.WriteString("*Your pending reminders:*\n")
	for _, r := range reminders {
		persona := ""
		if r.PersonaID != "" {
			persona = fmt.Sprintf(" _(as %s)_", r.PersonaID)
		}
		sb.WriteString(fmt.Sprintf("• `#%d` %s — %s%s\n", r.ID, r.DueAt.Format("2006-01-02 15:04 UTC"), r.Payload, persona))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleCancel(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please give a reminder id: `/remind cancel 42`")
	}

	id, err := parseReminderID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	cancelled, err := h.reminderService.Cancel(id)
	if err != nil {
		return h.createErrorResponse("Could not cancel the reminder, please try again.")
	}
	if !cancelled {
		return h.createErrorResponse(fmt.Sprintf("No live reminder with id #%d.", id))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🗑️ Reminder #%d cancelled.", id),
	}
}

func (h *SlackHandler) handleMove(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/remind move 42 2h`")
	}

	id, err := parseReminderID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	dur, err := slackcmd.ParseDuration(cmd.Args[1])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	newDueAt := time.Now().UTC().Add(dur)
	moved, err := h.reminderService.Reschedule(id, newDueAt)
	if err != nil {
		return h.createErrorResponse("Could not move the reminder, please try again.")
	}
	if !moved {
		return h.createErrorResponse(fmt.Sprintf("Reminder #%d is not pending, only pending reminders can move.", id))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("📅 Reminder #%d moved to %s.", id, newDueAt.Format("2006-01-02 15:04 UTC")),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

func parseReminderID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid reminder id %q", arg)
	}
	return id, nil
}
