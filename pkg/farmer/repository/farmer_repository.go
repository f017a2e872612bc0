package repository

import (
	"context"

	"farmbot/entities"
)

// FarmerRepository returns entities.ErrNotFound for unknown ids.
type FarmerRepository interface {
	Create(ctx context.Context, f *entities.Farmer) error
	FindByID(ctx context.Context, id string) (*entities.Farmer, error)
	Update(ctx context.Context, f *entities.Farmer) error
}
