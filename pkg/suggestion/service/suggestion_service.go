package service

import (
	"context"
	"io"

	"farmbot/entities"
)

type SuggestionService interface {
	List(ctx context.Context, farmerID string) ([]entities.Suggestion, error)
	Update(ctx context.Context, id string, patch entities.SuggestionPatch) (*entities.Suggestion, error)
	// GenerateInitial stores three starter suggestions due in a week.
	GenerateInitial(ctx context.Context, f *entities.Farmer) ([]entities.Suggestion, error)
	// Generate adds suggestions for focus (seasonal, daily or emergency; empty
	// means seasonal) and returns the farmer's full list.
	Generate(ctx context.Context, farmerID, focus string) ([]entities.Suggestion, error)
	// Export writes the farmer's suggestions as an xlsx workbook.
	Export(ctx context.Context, farmerID string, w io.Writer) error
}

type FarmerFinder interface {
	FindByID(ctx context.Context, id string) (*entities.Farmer, error)
}
