package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmbot/entities"
	"farmbot/pkg/chat/repository"
)

type postgresRepo struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) repository.ChatRepository { return &postgresRepo{pool: pool} }

const chatColumns = `id, farmer_id, message, response, is_voice, timestamp`

func scanMessage(row pgx.Row) (entities.ChatMessage, error) {
	var m entities.ChatMessage
	var farmerID *string
	err := row.Scan(&m.ID, &farmerID, &m.Message, &m.Response, &m.IsVoice, &m.Timestamp)
	if farmerID != nil {
		m.FarmerID = *farmerID
	}
	return m, err
}

func (r *postgresRepo) Create(ctx context.Context, m *entities.ChatMessage) error {
	stamp(m)
	_, err := r.pool.Exec(ctx, `INSERT INTO chat_messages (`+chatColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.FarmerID, m.Message, m.Response, m.IsVoice, m.Timestamp)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateResponse(ctx context.Context, id, response string) (*entities.ChatMessage, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx,
		`UPDATE chat_messages SET response = $2 WHERE id = $1 RETURNING `+chatColumns, id, response))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNotFound
		}
		return nil, fmt.Errorf("update chat response: %w", err)
	}
	return &m, nil
}

func (r *postgresRepo) ListByFarmer(ctx context.Context, farmerID string) ([]entities.ChatMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+chatColumns+` FROM chat_messages WHERE farmer_id = $1 ORDER BY timestamp ASC`, farmerID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	out := []entities.ChatMessage{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
