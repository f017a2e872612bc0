package repository

import (
	"context"

	"farmbot/entities"
)

type SuggestionRepository interface {
	Create(ctx context.Context, s *entities.Suggestion) error
	FindByID(ctx context.Context, id string) (*entities.Suggestion, error)
	Update(ctx context.Context, s *entities.Suggestion) error
	// ListByFarmer returns suggestions newest first.
	ListByFarmer(ctx context.Context, farmerID string) ([]entities.Suggestion, error)
}
