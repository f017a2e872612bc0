package serviceImp

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"farmbot/entities"
	"farmbot/pkg/climate"
	repo "farmbot/pkg/farmer/repository"
	"farmbot/pkg/farmer/service"
)

type farmerSvc struct {
	r         repo.FarmerRepository
	suggester service.InitialSuggester
	rules     climate.RulesEngine
	log       *zap.Logger
	now       func() time.Time
}

func NewFarmerService(r repo.FarmerRepository, suggester service.InitialSuggester, rules climate.RulesEngine, log *zap.Logger, now func() time.Time) service.FarmerService {
	if now == nil {
		now = time.Now
	}
	return &farmerSvc{r: r, suggester: suggester, rules: rules, log: log.Named("farmer"), now: now}
}

func validate(f *entities.Farmer) error {
	verr := &entities.ValidationError{}
	if len(strings.TrimSpace(f.Name)) < 2 {
		verr.Add("Name must be at least 2 characters long")
	}
	if strings.TrimSpace(f.District) == "" {
		verr.Add("District is required")
	}
	if strings.TrimSpace(f.LandSize) == "" {
		verr.Add("Land size is required")
	}
	if strings.TrimSpace(f.LandType) == "" {
		verr.Add("Land type is required")
	}
	if strings.TrimSpace(f.Experience) == "" {
		verr.Add("Experience level is required")
	}
	if len(f.Crops) == 0 {
		verr.Add("At least one crop must be selected")
	}
	if f.Language != "en" && f.Language != "ml" {
		verr.Add("Language must be en or ml")
	}
	return verr.OrNil()
}

func (s *farmerSvc) Onboard(ctx context.Context, in *entities.Farmer) (*entities.Farmer, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Language == "" {
		in.Language = "en"
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	in.ID = ""
	in.CreatedAt = s.now()
	if err := s.r.Create(ctx, in); err != nil {
		return nil, err
	}

	if s.suggester != nil {
		if _, err := s.suggester.GenerateInitial(ctx, in); err != nil {
			s.log.Warn("initial suggestions failed", zap.String("farmer_id", in.ID), zap.Error(err))
		}
	}
	return in, nil
}

func (s *farmerSvc) Get(ctx context.Context, id string) (*entities.Farmer, error) {
	return s.r.FindByID(ctx, id)
}

func (s *farmerSvc) Update(ctx context.Context, id string, patch entities.FarmerPatch) (*entities.Farmer, error) {
	cur, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(cur)
	cur.Name = strings.TrimSpace(cur.Name)
	if err := validate(cur); err != nil {
		return nil, err
	}
	if err := s.r.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *farmerSvc) Tasks(ctx context.Context, id string, month int) ([]climate.Task, error) {
	if month < 0 || month > 12 {
		return nil, &entities.ValidationError{Errors: []string{"month must be between 1 and 12"}}
	}
	f, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if month != 0 && time.Month(month) != now.Month() {
		now = time.Date(now.Year(), time.Month(month), 1, now.Hour(), now.Minute(), 0, 0, now.Location())
	}
	tasks := s.rules.SeasonTasks(f.Crops, f.LandType, f.District, now)
	if tasks == nil {
		tasks = []climate.Task{}
	}
	return tasks, nil
}
