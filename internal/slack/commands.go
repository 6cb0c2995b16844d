package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type CommandType string

const (
	CmdIn     CommandType = "in"
	CmdAt     CommandType = "at"
	CmdList   CommandType = "list"
	CmdCancel CommandType = "cancel"
	CmdMove   CommandType = "move"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "in":
		cmd.Type = CmdIn
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "at":
		cmd.Type = CmdAt
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "cancel", "forget":
		cmd.Type = CmdCancel
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "move":
		cmd.Type = CmdMove
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// RemindRequest is the parsed form of `in <dur> <message> [as <persona>]`
// and `at <RFC3339> <message> [as <persona>]`.
type RemindRequest struct {
	DueIn     time.Duration // set for "in"
	DueAt     time.Time     // set for "at"
	Message   string
	PersonaID string
}

// ParseRemindArgs extracts the reminder request from the command arguments.
// The first arg is the time expression, the rest is the message; a trailing
// `as <persona>` selects the delivery voice.
func ParseRemindArgs(cmdType CommandType, args []string) (*RemindRequest, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("expected a time and a message, e.g. `in 30m stretch your legs`")
	}

	req := &RemindRequest{}

	switch cmdType {
	case CmdIn:
		dur, err := ParseDuration(args[0])
		if err != nil {
			return nil, err
		}
		req.DueIn = dur
	case CmdAt:
		t, err := time.Parse(time.RFC3339, args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q, expected RFC3339 like 2026-01-02T15:04:05Z", args[0])
		}
		req.DueAt = t.UTC()
	default:
		return nil, fmt.Errorf("not a remind command: %s", cmdType)
	}

	message := args[1:]

	// trailing "as <persona>" selects the voice
	if len(message) >= 2 && message[len(message)-2] == "as" {
		req.PersonaID = message[len(message)-1]
		message = message[:len(message)-2]
	}

	if len(message) == 0 {
		return nil, fmt.Errorf("reminder message is empty")
	}

	req.Message = strings.Join(message, " ")
	return req, nil
}

// ParseDuration parses compound shorthand durations like 30m, 2h, 1d, 1w or
// 1h30m. Units: s, m, h, d, w.
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	var total time.Duration
	num := ""
	for _, r := range s {
		if r >= '0' && r <= '9' {
			num += string(r)
			continue
		}

		if num == "" {
			return 0, fmt.Errorf("invalid duration %q, use formats like 30m, 2h, 1d or 1h30m", s)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		num = ""

		switch r {
		case 's':
			total += time.Duration(n) * time.Second
		case 'm':
			total += time.Duration(n) * time.Minute
		case 'h':
			total += time.Duration(n) * time.Hour
		case 'd':
			total += time.Duration(n) * 24 * time.Hour
		case 'w':
			total += time.Duration(n) * 7 * 24 * time.Hour
		default:
			return 0, fmt.Errorf("invalid duration unit %q in %q", string(r), s)
		}
	}

	if num != "" {
		return 0, fmt.Errorf("duration %q is missing a unit (s, m, h, d, w)", s)
	}
	if total <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}

	return total, nil
}

func GetHelpText() string {
	return `*Reminder commands:*

*Create:*
• ` + "`/remind in 30m stretch your legs`" + ` - Remind after a delay (30m, 2h, 1d, 1h30m)
• ` + "`/remind at 2026-01-02T15:04:05Z standup notes`" + ` - Remind at an absolute time (RFC3339, UTC)
• ` + "`/remind in 1h drink water as zen`" + ` - Deliver in a persona's voice

*Manage:*
• ` + "`/remind list`" + ` - List your pending reminders
• ` + "`/remind cancel 42`" + ` - Cancel a reminder by id
• ` + "`/remind move 42 2h`" + ` - Push a pending reminder out by a new delay

*Personas:* obi, muppet, chef, teacher, analyst, visionary, noir, zen, bard, coach, scientist, gamer, architect, debugger, reviewer, devops, designer`
}
