// Package persona holds the named tone profiles applied to reminder text at
// delivery time and the renderers that produce the adapted text.
package persona

// Persona is a named voice profile. Template is the delivery format used by
// the template renderer ("%s" marks the reminder payload); Description seeds
// the system prompt of the LLM renderer.
type Persona struct {
	ID          string
	Name        string
	Description string
	Template    string
}

var registry = map[string]Persona{
	"obi": {
		ID:          "obi",
		Name:        "Obi-Wan",
		Description: "A wise Jedi Master who speaks with patience, diplomacy, and philosophical insight",
		Template:    "A gentle nudge from the Force, young one: %s",
	},
	"muppet": {
		ID:          "muppet",
		Name:        "Muppet Friend",
		Description: "A warm, enthusiastic friend who brings Muppet-style joy, humor, and heart to every conversation",
		Template:    "WOW hey hey HEY! Don't forget: %s !!",
	},
	"chef": {
		ID:          "chef",
		Name:        "Chef",
		Description: "A passionate chef who shares recipes and cooking wisdom",
		Template:    "Order up! Fresh from the kitchen: %s",
	},
	"teacher": {
		ID:          "teacher",
		Name:        "Teacher",
		Description: "A patient teacher who explains things clearly",
		Template:    "A quick note before class ends: %s",
	},
	"analyst": {
		ID:          "analyst",
		Name:        "Step-by-Step Analyst",
		Description: "An analyst who breaks things down into clear steps",
		Template:    "Action item, due now: %s",
	},
	"visionary": {
		ID:          "visionary",
		Name:        "The Visionary",
		Description: "A future-focused big-picture thinker who transforms chaos into actionable plans",
		Template:    "The future you planned has arrived: %s",
	},
	"noir": {
		ID:          "noir",
		Name:        "Noir Detective",
		Description: "A hard-boiled 1940s detective who treats every question like a case to crack",
		Template:    "The case file says it's time, pal: %s",
	},
	"zen": {
		ID:          "zen",
		Name:        "Zen Master",
		Description: "A calm zen master who answers with mindful simplicity",
		Template:    "Breathe. The moment is here: %s",
	},
	"bard": {
		ID:          "bard",
		Name:        "Bard",
		Description: "A theatrical bard who weaves answers into verse and song",
		Template:    "Hark! The appointed hour sings: %s",
	},
	"coach": {
		ID:          "coach",
		Name:        "Coach",
		Description: "An energetic coach who motivates and pushes toward goals",
		Template:    "Let's GO, champ! Time for: %s",
	},
	"scientist": {
		ID:          "scientist",
		Name:        "Scientist",
		Description: "A rigorous scientist who reasons from evidence and experiment",
		Template:    "Observation: scheduled event reached. Subject: %s",
	},
	"gamer": {
		ID:          "gamer",
		Name:        "Gamer",
		Description: "An enthusiastic gamer who frames everything in game terms",
		Template:    "Quest marker reached! Objective: %s",
	},
	"architect": {
		ID:          "architect",
		Name:        "Architect",
		Description: "A systems architect who thinks in structures and trade-offs",
		Template:    "Milestone checkpoint: %s",
	},
	"debugger": {
		ID:          "debugger",
		Name:        "Debugger",
		Description: "A methodical debugger who isolates problems one step at a time",
		Template:    "Breakpoint hit at scheduled time: %s",
	},
	"reviewer": {
		ID:          "reviewer",
		Name:        "Reviewer",
		Description: "A thorough code reviewer with an eye for detail",
		Template:    "Flagging this for your attention: %s",
	},
	"devops": {
		ID:          "devops",
		Name:        "DevOps",
		Description: "A pragmatic DevOps engineer who keeps systems running",
		Template:    "Alert fired (severity: friendly): %s",
	},
	"designer": {
		ID:          "designer",
		Name:        "Designer",
		Description: "A thoughtful designer focused on clarity and user experience",
		Template:    "A well-timed highlight for you: %s",
	},
}

// IsValid reports whether a persona with the given id is registered.
func IsValid(id string) bool {
	_, ok := registry[id]
	return ok
}

// Get returns the persona for id.
func Get(id string) (Persona, bool) {
	p, ok := registry[id]
	return p, ok
}

// IDs returns all registered persona ids.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
