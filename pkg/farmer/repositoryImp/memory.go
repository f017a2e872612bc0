package repositoryImp

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmbot/entities"
	"farmbot/pkg/farmer/repository"
)

type memoryRepo struct {
	mu      sync.RWMutex
	farmers map[string]entities.Farmer
}

func NewMemory() repository.FarmerRepository {
	return &memoryRepo{farmers: map[string]entities.Farmer{}}
}

func (r *memoryRepo) Create(_ context.Context, f *entities.Farmer) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.farmers[f.ID] = clone(*f)
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id string) (*entities.Farmer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.farmers[id]
	if !ok {
		return nil, entities.ErrNotFound
	}
	out := clone(f)
	return &out, nil
}

func (r *memoryRepo) Update(_ context.Context, f *entities.Farmer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.farmers[f.ID]; !ok {
		return entities.ErrNotFound
	}
	r.farmers[f.ID] = clone(*f)
	return nil
}

// clone keeps callers from mutating the stored crops slice.
func clone(f entities.Farmer) entities.Farmer {
	f.Crops = append([]string(nil), f.Crops...)
	return f
}
