package repositoryImp

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmbot/entities"
	"farmbot/pkg/suggestion/repository"
)

type memoryRepo struct {
	mu          sync.RWMutex
	suggestions map[string]entities.Suggestion
}

func NewMemory() repository.SuggestionRepository {
	return &memoryRepo{suggestions: map[string]entities.Suggestion{}}
}

func stamp(s *entities.Suggestion) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
}

func (r *memoryRepo) Create(_ context.Context, s *entities.Suggestion) error {
	stamp(s)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suggestions[s.ID] = *s
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id string) (*entities.Suggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suggestions[id]
	if !ok {
		return nil, entities.ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) Update(_ context.Context, s *entities.Suggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suggestions[s.ID]; !ok {
		return entities.ErrNotFound
	}
	r.suggestions[s.ID] = *s
	return nil
}

func (r *memoryRepo) ListByFarmer(_ context.Context, farmerID string) ([]entities.Suggestion, error) {
	r.mu.RLock()
	out := []entities.Suggestion{}
	for _, s := range r.suggestions {
		if s.FarmerID == farmerID {
			out = append(out, s)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
