package serviceImp

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"farmbot/entities"
	"farmbot/pkg/ai"
	"farmbot/pkg/climate"
	repo "farmbot/pkg/suggestion/repository"
	"farmbot/pkg/suggestion/service"
)

const (
	initialCount  = 3
	seasonalCount = 3
	initialDue    = 7 * 24 * time.Hour
	seasonalDue   = 14 * 24 * time.Hour
	dailyDue      = 3 * 24 * time.Hour
	emergencyDue  = 24 * time.Hour
)

type suggestionSvc struct {
	r       repo.SuggestionRepository
	farmers service.FarmerFinder
	llm     ai.Client
	rules   climate.RulesEngine
	log     *zap.Logger
	now     func() time.Time
}

func NewSuggestionService(r repo.SuggestionRepository, farmers service.FarmerFinder, llm ai.Client, rules climate.RulesEngine, log *zap.Logger, now func() time.Time) service.SuggestionService {
	if now == nil {
		now = time.Now
	}
	return &suggestionSvc{r: r, farmers: farmers, llm: llm, rules: rules, log: log.Named("suggestion"), now: now}
}

func (s *suggestionSvc) List(ctx context.Context, farmerID string) ([]entities.Suggestion, error) {
	return s.r.ListByFarmer(ctx, farmerID)
}

func (s *suggestionSvc) Update(ctx context.Context, id string, p entities.SuggestionPatch) (*entities.Suggestion, error) {
	verr := &entities.ValidationError{}
	if p.Priority != nil && !entities.ValidPriority(*p.Priority) {
		verr.Add("priority must be one of " + strings.Join(entities.Priorities, ", "))
	}
	if p.Category != nil && !entities.ValidCategory(*p.Category) {
		verr.Add("category must be one of " + strings.Join(entities.Categories, ", "))
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		verr.Add("title must not be empty")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	cur, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(cur)
	if err := s.r.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *suggestionSvc) GenerateInitial(ctx context.Context, f *entities.Farmer) ([]entities.Suggestion, error) {
	now := s.now()
	month := int(now.Month())

	drafts, err := s.llm.ProposeSuggestions(ctx, f, ai.SuggestionRequest{
		Count:  initialCount,
		Month:  month,
		Season: climate.KeralaSeason(month),
	})
	if err != nil || len(drafts) == 0 {
		s.log.Warn("llm suggestions unavailable, using crop calendar", zap.String("farmer_id", f.ID), zap.Error(err))
		tasks := s.rules.SeasonTasks(f.Crops, f.LandType, f.District, now)
		tasks = append(tasks, climate.SeasonActivityTasks(now, 0)...)
		drafts = toDrafts(tasks, initialCount)
	}
	return s.store(ctx, f.ID, drafts, now.Add(initialDue), "")
}

// focusPlans sets the due offset per focus. Seasonal suggestions are filed
// under the seasonal category; the others keep the category they were drafted with.
var focusPlans = map[string]struct {
	due      time.Duration
	category string
}{
	ai.FocusSeasonal:  {seasonalDue, entities.CategorySeasonal},
	ai.FocusDaily:     {dailyDue, ""},
	ai.FocusEmergency: {emergencyDue, ""},
}

func (s *suggestionSvc) Generate(ctx context.Context, farmerID, focus string) ([]entities.Suggestion, error) {
	if focus == "" {
		focus = ai.FocusSeasonal
	}
	plan, ok := focusPlans[focus]
	if !ok {
		return nil, &entities.ValidationError{Errors: []string{
			"focus must be one of " + strings.Join([]string{ai.FocusSeasonal, ai.FocusDaily, ai.FocusEmergency}, ", "),
		}}
	}

	f, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	month := int(now.Month())

	drafts, err := s.llm.ProposeSuggestions(ctx, f, ai.SuggestionRequest{
		Count:  seasonalCount,
		Month:  month,
		Season: climate.KeralaSeason(month),
		Focus:  focus,
	})
	if err != nil || len(drafts) == 0 {
		s.log.Warn("llm suggestions unavailable, using calendar", zap.String("farmer_id", f.ID), zap.String("focus", focus), zap.Error(err))
		drafts = toDrafts(s.fallbackTasks(f, focus, now), seasonalCount)
	}
	if _, err := s.store(ctx, f.ID, drafts, now.Add(plan.due), plan.category); err != nil {
		return nil, err
	}
	return s.r.ListByFarmer(ctx, f.ID)
}

func (s *suggestionSvc) fallbackTasks(f *entities.Farmer, focus string, now time.Time) []climate.Task {
	switch focus {
	case ai.FocusDaily:
		return s.rules.SeasonTasks(f.Crops, f.LandType, f.District, now)
	case ai.FocusEmergency:
		tasks := s.rules.SeasonTasks(f.Crops, f.LandType, f.District, now)
		var urgent []climate.Task
		for _, t := range tasks {
			if t.Priority == entities.PriorityHigh {
				urgent = append(urgent, t)
			}
		}
		if len(urgent) > 0 {
			return urgent
		}
		return tasks
	default:
		tasks := s.rules.MaintenanceTasks(int(now.Month()), f.LandType, f.District, now)
		return append(tasks, climate.SeasonActivityTasks(now, 0)...)
	}
}

func toDrafts(tasks []climate.Task, limit int) []entities.SuggestionDraft {
	out := make([]entities.SuggestionDraft, 0, limit)
	for _, t := range tasks {
		if len(out) == limit {
			break
		}
		out = append(out, t.Draft())
	}
	return out
}

// store persists drafts for farmerID; a non-empty category overrides the draft's.
func (s *suggestionSvc) store(ctx context.Context, farmerID string, drafts []entities.SuggestionDraft, due time.Time, category string) ([]entities.Suggestion, error) {
	created := s.now()
	out := make([]entities.Suggestion, 0, len(drafts))
	for i, d := range drafts {
		cat := d.Category
		if category != "" {
			cat = category
		}
		dueDate := due
		sug := entities.Suggestion{
			FarmerID:    farmerID,
			Title:       d.Title,
			Description: d.Description,
			Priority:    d.Priority,
			Category:    cat,
			DueDate:     &dueDate,
			// keep generation order stable under newest-first listing
			CreatedAt: created.Add(time.Duration(len(drafts)-i) * time.Millisecond),
		}
		if err := s.r.Create(ctx, &sug); err != nil {
			return out, err
		}
		out = append(out, sug)
	}
	return out, nil
}
