package repositoryImp

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmbot/entities"
	"farmbot/pkg/chat/repository"
)

type memoryRepo struct {
	mu       sync.RWMutex
	messages map[string]entities.ChatMessage
}

func NewMemory() repository.ChatRepository {
	return &memoryRepo{messages: map[string]entities.ChatMessage{}}
}

func stamp(m *entities.ChatMessage) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
}

func (r *memoryRepo) Create(_ context.Context, m *entities.ChatMessage) error {
	stamp(m)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[m.ID] = *m
	return nil
}

func (r *memoryRepo) UpdateResponse(_ context.Context, id, response string) (*entities.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, entities.ErrNotFound
	}
	m.Response = &response
	r.messages[id] = m
	return &m, nil
}

func (r *memoryRepo) ListByFarmer(_ context.Context, farmerID string) ([]entities.ChatMessage, error) {
	r.mu.RLock()
	out := []entities.ChatMessage{}
	for _, m := range r.messages {
		if m.FarmerID == farmerID {
			out = append(out, m)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}
