package service

import (
	"context"

	"farmbot/entities"
	"farmbot/pkg/climate"
)

type FarmerService interface {
	// Onboard validates and stores a profile, then seeds its first suggestions.
	Onboard(ctx context.Context, in *entities.Farmer) (*entities.Farmer, error)
	Get(ctx context.Context, id string) (*entities.Farmer, error)
	Update(ctx context.Context, id string, patch entities.FarmerPatch) (*entities.Farmer, error)
	// Tasks lists rule-based season tasks; month 0 means the current month.
	Tasks(ctx context.Context, id string, month int) ([]climate.Task, error)
}

// InitialSuggester seeds suggestions for a freshly onboarded farmer.
type InitialSuggester interface {
	GenerateInitial(ctx context.Context, f *entities.Farmer) ([]entities.Suggestion, error)
}
