package persona

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
)

// TemplateRenderer adapts reminder text with the persona's static delivery
// template. It never does I/O, so rendering cannot stall a delivery.
type TemplateRenderer struct{}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{}
}

func (r *TemplateRenderer) Render(_ context.Context, personaID, payload string) (string, error) {
	p, ok := Get(personaID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownPersona, personaID)
	}

	return fmt.Sprintf(p.Template, payload), nil
}
