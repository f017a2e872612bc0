package repositoryImp

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmbot/entities"
	"farmbot/pkg/market/repository"
)

type memoryRepo struct {
	mu   sync.RWMutex
	rows []entities.MarketPrice
}

func NewMemory() repository.MarketRepository { return &memoryRepo{} }

func stamp(p *entities.MarketPrice) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
}

func (r *memoryRepo) Create(_ context.Context, p *entities.MarketPrice) error {
	stamp(p)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *p)
	return nil
}

func (r *memoryRepo) List(_ context.Context, district string) ([]entities.MarketPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.MarketPrice, 0, len(r.rows))
	for _, p := range r.rows {
		if district == "" || strings.EqualFold(p.District, district) {
			out = append(out, p)
		}
	}
	if district == "" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	return out, nil
}
