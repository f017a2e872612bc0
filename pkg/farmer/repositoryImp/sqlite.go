package repositoryImp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmbot/entities"
	"farmbot/pkg/farmer/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.FarmerRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(ctx context.Context, f *entities.Farmer) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *sqliteRepo) FindByID(ctx context.Context, id string) (*entities.Farmer, error) {
	var out entities.Farmer
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) Update(ctx context.Context, f *entities.Farmer) error {
	res := r.db.WithContext(ctx).Model(&entities.Farmer{}).Where("id = ?", f.ID).Select("*").Omit("id", "created_at").Updates(f)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}
