package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmbot/entities"
	"farmbot/pkg/market/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.MarketRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(ctx context.Context, p *entities.MarketPrice) error {
	stamp(p)
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *sqliteRepo) List(ctx context.Context, district string) ([]entities.MarketPrice, error) {
	q := r.db.WithContext(ctx)
	if district != "" {
		q = q.Where("lower(district) = lower(?)", district).Order("date asc").Order("rowid asc")
	} else {
		q = q.Order("date desc").Order("rowid desc")
	}
	var out []entities.MarketPrice
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
