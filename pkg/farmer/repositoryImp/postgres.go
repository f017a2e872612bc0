package repositoryImp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmbot/entities"
	"farmbot/pkg/farmer/repository"
)

type postgresRepo struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) repository.FarmerRepository { return &postgresRepo{pool: pool} }

func (r *postgresRepo) Create(ctx context.Context, f *entities.Farmer) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO farmers (id, name, district, land_size, land_type, crops, experience, language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		f.ID, f.Name, f.District, f.LandSize, f.LandType, cropsOrEmpty(f.Crops), f.Experience, f.Language, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert farmer: %w", err)
	}
	return nil
}

func (r *postgresRepo) FindByID(ctx context.Context, id string) (*entities.Farmer, error) {
	var f entities.Farmer
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, district, land_size, land_type, crops, experience, language, created_at
		FROM farmers WHERE id = $1`, id).
		Scan(&f.ID, &f.Name, &f.District, &f.LandSize, &f.LandType, &f.Crops, &f.Experience, &f.Language, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNotFound
		}
		return nil, fmt.Errorf("select farmer: %w", err)
	}
	return &f, nil
}

func (r *postgresRepo) Update(ctx context.Context, f *entities.Farmer) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE farmers SET name = $2, district = $3, land_size = $4, land_type = $5,
			crops = $6, experience = $7, language = $8
		WHERE id = $1`,
		f.ID, f.Name, f.District, f.LandSize, f.LandType, cropsOrEmpty(f.Crops), f.Experience, f.Language)
	if err != nil {
		return fmt.Errorf("update farmer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// crops is NOT NULL; a nil slice would encode as NULL.
func cropsOrEmpty(c []string) []string {
	if c == nil {
		return []string{}
	}
	return c
}
