package repository

import (
	"context"

	"farmbot/entities"
)

type ChatRepository interface {
	Create(ctx context.Context, m *entities.ChatMessage) error
	// UpdateResponse returns entities.ErrNotFound for an unknown id.
	UpdateResponse(ctx context.Context, id, response string) (*entities.ChatMessage, error)
	// ListByFarmer returns messages oldest first.
	ListByFarmer(ctx context.Context, farmerID string) ([]entities.ChatMessage, error)
}
