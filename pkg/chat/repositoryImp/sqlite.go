package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmbot/entities"
	"farmbot/pkg/chat/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.ChatRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(ctx context.Context, m *entities.ChatMessage) error {
	stamp(m)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *sqliteRepo) UpdateResponse(ctx context.Context, id, response string) (*entities.ChatMessage, error) {
	var out entities.ChatMessage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}
		out.Response = &response
		return tx.Model(&out).Update("response", response).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) ListByFarmer(ctx context.Context, farmerID string) ([]entities.ChatMessage, error) {
	list := []entities.ChatMessage{}
	return list, r.db.WithContext(ctx).Where("farmer_id = ?", farmerID).Order("timestamp asc").Find(&list).Error
}
