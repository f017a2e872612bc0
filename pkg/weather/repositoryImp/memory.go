package repositoryImp

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmbot/entities"
	"farmbot/pkg/weather/repository"
)

type memoryRepo struct {
	mu   sync.RWMutex
	rows []entities.WeatherData
}

func NewMemory() repository.WeatherRepository { return &memoryRepo{} }

func stamp(w *entities.WeatherData) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Timestamp.IsZero() {
		w.Timestamp = time.Now()
	}
}

func (r *memoryRepo) Create(_ context.Context, w *entities.WeatherData) error {
	stamp(w)
	cp := *w
	cp.Forecast = append([]entities.ForecastDay(nil), w.Forecast...)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, cp)
	return nil
}

func (r *memoryRepo) LatestByDistrict(_ context.Context, district string) (*entities.WeatherData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *entities.WeatherData
	for i := range r.rows {
		w := &r.rows[i]
		if !strings.EqualFold(w.District, district) {
			continue
		}
		if latest == nil || w.Timestamp.After(latest.Timestamp) {
			latest = w
		}
	}
	if latest == nil {
		return nil, entities.ErrNotFound
	}
	out := *latest
	out.Forecast = append([]entities.ForecastDay(nil), latest.Forecast...)
	return &out, nil
}
