package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmbot/entities"
	"farmbot/pkg/suggestion/repository"
)

type postgresRepo struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) repository.SuggestionRepository { return &postgresRepo{pool: pool} }

const suggestionColumns = `id, farmer_id, title, description, priority, category, is_completed, due_date, created_at`

func scanSuggestion(row pgx.Row) (entities.Suggestion, error) {
	var s entities.Suggestion
	var farmerID *string
	err := row.Scan(&s.ID, &farmerID, &s.Title, &s.Description, &s.Priority, &s.Category, &s.IsCompleted, &s.DueDate, &s.CreatedAt)
	if farmerID != nil {
		s.FarmerID = *farmerID
	}
	return s, err
}

func (r *postgresRepo) Create(ctx context.Context, s *entities.Suggestion) error {
	stamp(s)
	_, err := r.pool.Exec(ctx, `INSERT INTO suggestions (`+suggestionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.FarmerID, s.Title, s.Description, s.Priority, s.Category, s.IsCompleted, s.DueDate, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert suggestion: %w", err)
	}
	return nil
}

func (r *postgresRepo) FindByID(ctx context.Context, id string) (*entities.Suggestion, error) {
	s, err := scanSuggestion(r.pool.QueryRow(ctx, `SELECT `+suggestionColumns+` FROM suggestions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNotFound
		}
		return nil, fmt.Errorf("select suggestion: %w", err)
	}
	return &s, nil
}

func (r *postgresRepo) Update(ctx context.Context, s *entities.Suggestion) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE suggestions SET title = $2, description = $3, priority = $4, category = $5,
			is_completed = $6, due_date = $7
		WHERE id = $1`,
		s.ID, s.Title, s.Description, s.Priority, s.Category, s.IsCompleted, s.DueDate)
	if err != nil {
		return fmt.Errorf("update suggestion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListByFarmer(ctx context.Context, farmerID string) ([]entities.Suggestion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE farmer_id = $1 ORDER BY created_at DESC`, farmerID)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	out := []entities.Suggestion{}
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
