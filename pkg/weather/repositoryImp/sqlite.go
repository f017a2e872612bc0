package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmbot/entities"
	"farmbot/pkg/weather/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.WeatherRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(ctx context.Context, w *entities.WeatherData) error {
	stamp(w)
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *sqliteRepo) LatestByDistrict(ctx context.Context, district string) (*entities.WeatherData, error) {
	var out entities.WeatherData
	err := r.db.WithContext(ctx).
		Where("lower(district) = lower(?)", district).
		Order("timestamp desc").
		First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
