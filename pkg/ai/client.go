// pkg/ai/client.go

package ai

import (
	"context"

	"farmbot/entities"
)

const (
	FocusSeasonal  = "seasonal"
	FocusDaily     = "daily"
	FocusEmergency = "emergency"
)

type SuggestionRequest struct {
	Count  int
	Month  int
	Season string
	Focus  string // seasonal|daily|emergency, empty for a mix
}

type Client interface {
	// Answer replies to a farmer's question. farmer may be nil when the profile is unknown.
	Answer(ctx context.Context, question string, farmer *entities.Farmer) (string, error)

	ProposeSuggestions(ctx context.Context, farmer *entities.Farmer, req SuggestionRequest) ([]entities.SuggestionDraft, error)

	Name() string
}
