// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farmbot/entities"
	"farmbot/pkg/climate"
)

type mockClient struct {
	rules climate.RulesEngine
	now   func() time.Time
}

// NewMock answers from the offline tip table and the crop calendar; no network.
func NewMock(rules climate.RulesEngine) Client {
	if rules == nil {
		rules = climate.New(nil)
	}
	return &mockClient{rules: rules, now: time.Now}
}

func (m *mockClient) Name() string { return "mock" }

var tipKeywords = []struct {
	tipID    string
	keywords []string
}{
	{"tip-1", []string{"water", "irrigat", "drip"}},
	{"tip-2", []string{"pest", "insect", "neem", "bug", "worm"}},
	{"tip-3", []string{"monsoon", "rain", "flood", "drain"}},
	{"tip-4", []string{"soil", "acid", "lime"}},
	{"tip-5", []string{"coconut", "palm"}},
}

func (m *mockClient) Answer(_ context.Context, question string, f *entities.Farmer) (string, error) {
	q := strings.ToLower(question)
	for _, tk := range tipKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(q, kw) {
				return formatTip(tk.tipID), nil
			}
		}
	}

	season := climate.CurrentSeason(int(m.now().Month()))
	district := "Kerala"
	if f != nil && f.District != "" {
		district = f.District
	}
	return fmt.Sprintf("It is %s in %s. %s. Key activities now: %s.",
		season.Name, district, season.Description, strings.Join(season.MainActivities, ", ")), nil
}

func formatTip(id string) string {
	for _, t := range climate.Tips {
		if t.ID == id {
			return fmt.Sprintf("💡 %s\n\n%s", t.Title, t.Content)
		}
	}
	return ""
}

func (m *mockClient) ProposeSuggestions(_ context.Context, f *entities.Farmer, req SuggestionRequest) ([]entities.SuggestionDraft, error) {
	now := m.now()
	var tasks []climate.Task
	if f != nil && req.Focus != FocusSeasonal {
		tasks = m.rules.SeasonTasks(f.Crops, f.LandType, f.District, now)
	}
	tasks = append(tasks, climate.SeasonActivityTasks(now, 0)...)
	if req.Focus == FocusEmergency {
		var urgent []climate.Task
		for _, t := range tasks {
			if t.Priority == entities.PriorityHigh {
				urgent = append(urgent, t)
			}
		}
		if len(urgent) > 0 {
			tasks = urgent
		}
	}

	count := req.Count
	if count <= 0 {
		count = 3
	}
	out := make([]entities.SuggestionDraft, 0, count)
	for _, t := range tasks {
		if len(out) == count {
			break
		}
		out = append(out, t.Draft())
	}
	return out, nil
}
