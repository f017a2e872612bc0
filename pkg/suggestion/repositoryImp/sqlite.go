package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmbot/entities"
	"farmbot/pkg/suggestion/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.SuggestionRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(ctx context.Context, s *entities.Suggestion) error {
	stamp(s)
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sqliteRepo) FindByID(ctx context.Context, id string) (*entities.Suggestion, error) {
	var out entities.Suggestion
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) Update(ctx context.Context, s *entities.Suggestion) error {
	res := r.db.WithContext(ctx).Model(&entities.Suggestion{}).Where("id = ?", s.ID).Select("*").Omit("id", "created_at").Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

func (r *sqliteRepo) ListByFarmer(ctx context.Context, farmerID string) ([]entities.Suggestion, error) {
	list := []entities.Suggestion{}
	return list, r.db.WithContext(ctx).Where("farmer_id = ?", farmerID).Order("created_at desc").Find(&list).Error
}
