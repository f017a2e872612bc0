package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"farmbot/entities"
	"farmbot/pkg/climate"
	"farmbot/pkg/weather"
	repo "farmbot/pkg/weather/repository"
	"farmbot/pkg/weather/service"
)

type weatherSvc struct {
	r     repo.WeatherRepository
	p     service.Provider
	ttl   time.Duration
	log   *zap.Logger
	now   func() time.Time
	group singleflight.Group

	fetchTimeout time.Duration
}

func NewWeatherService(r repo.WeatherRepository, p service.Provider, ttl time.Duration, log *zap.Logger, now func() time.Time) service.WeatherService {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &weatherSvc{r: r, p: p, ttl: ttl, log: log.Named("weather"), now: now, fetchTimeout: 20 * time.Second}
}

func (s *weatherSvc) Get(ctx context.Context, district string) (*entities.WeatherData, error) {
	district = strings.TrimSpace(district)
	if district == "" {
		return nil, &entities.ValidationError{Errors: []string{"District is required"}}
	}

	cached, err := s.r.LatestByDistrict(ctx, district)
	switch {
	case err == nil && !cached.Stale(s.now(), s.ttl):
		return cached, nil
	case err != nil && !errors.Is(err, entities.ErrNotFound):
		return nil, err
	}

	// the flight outlives any single caller, so one disconnect cannot fail the others
	ch := s.group.DoChan(strings.ToLower(district), func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return s.refresh(fctx, district)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.log.Debug("weather fetch shared", zap.String("district", district))
		}
		return res.Val.(*entities.WeatherData), nil
	}
}

func (s *weatherSvc) refresh(ctx context.Context, district string) (*entities.WeatherData, error) {
	w, err := s.fetch(ctx, district)
	if err != nil {
		s.log.Warn("weather provider failed, serving sample", zap.String("district", district), zap.Error(err))
		w = weather.Sample(district)
		if ctx.Err() != nil {
			// the fetch ran out of time; answer with the sample but keep it out of the cache
			w.Timestamp = s.now()
			return w, nil
		}
	}
	w.Timestamp = s.now()
	if err := s.r.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *weatherSvc) fetch(ctx context.Context, district string) (*entities.WeatherData, error) {
	if s.p == nil {
		return nil, errors.New("no weather provider configured")
	}
	var lat, lon float64
	if d, ok := climate.FindDistrict(district); ok {
		lat, lon = d.Latitude, d.Longitude
	} else {
		loc, err := s.p.Geocode(ctx, district)
		if err != nil {
			return nil, err
		}
		lat, lon = loc.Latitude, loc.Longitude
	}

	f, err := s.p.Forecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return weather.Build(district, f), nil
}
