package session

import "github.com/idreesmuhammadqazi-create/MUN/internal/model"

const DefaultHistoryCap = 100

// UpdateInput carries a partial session update. Nil fields are left untouched;
// PhaseData is merged key by key.
type UpdateInput struct {
	Phase     *model.Phase
	PhaseData map[string]any
	Country   *string
	Council   *string
	Committee *string
	Topic     *string
}
