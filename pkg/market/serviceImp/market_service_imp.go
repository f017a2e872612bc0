package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"farmbot/entities"
	"farmbot/pkg/market/scraper"
	repo "farmbot/pkg/market/repository"
	"farmbot/pkg/market/service"
)

const DefaultDistrict = "Kerala"

// SamplePrices is served when nothing is stored and no board is reachable.
var SamplePrices = []entities.MarketPrice{
	{Crop: "Tomatoes", PricePerKg: "₹45", Change: "+15%", Trend: scraper.TrendUp},
	{Crop: "Chilli", PricePerKg: "₹120", Change: "-8%", Trend: scraper.TrendDown},
	{Crop: "Onions", PricePerKg: "₹35", Change: "0%", Trend: scraper.TrendStable},
	{Crop: "Rice", PricePerKg: "₹2,800", Change: "+5%", Trend: scraper.TrendUp},
	{Crop: "Coconut", PricePerKg: "₹25", Change: "+3%", Trend: scraper.TrendUp},
}

type marketSvc struct {
	r   repo.MarketRepository
	src service.Source
	log *zap.Logger
	now func() time.Time
}

// NewMarketService accepts a nil src when no price board is configured.
func NewMarketService(r repo.MarketRepository, src service.Source, log *zap.Logger, now func() time.Time) service.MarketService {
	if now == nil {
		now = time.Now
	}
	return &marketSvc{r: r, src: src, log: log.Named("market"), now: now}
}

func (s *marketSvc) Prices(ctx context.Context, district string) ([]entities.MarketPrice, error) {
	district = strings.TrimSpace(district)
	stored, err := s.r.List(ctx, district)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		return stored, nil
	}

	rows := s.scrape(ctx)
	if len(rows) == 0 {
		rows = SamplePrices
	}
	if district == "" {
		district = DefaultDistrict
	}

	base := s.now()
	out := make([]entities.MarketPrice, 0, len(rows))
	for i, row := range rows {
		p := row
		p.ID = ""
		p.District = district
		p.Date = base.Add(time.Duration(i) * time.Millisecond)
		if err := s.r.Create(ctx, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *marketSvc) scrape(ctx context.Context) []entities.MarketPrice {
	if s.src == nil {
		return nil
	}
	rows, err := s.src.Fetch(ctx)
	if err != nil {
		lvl := zap.WarnLevel
		if errors.Is(err, scraper.ErrNoTable) {
			lvl = zap.InfoLevel
		}
		s.log.Log(lvl, "price board unavailable, serving sample", zap.Error(err))
		return nil
	}
	return rows
}
