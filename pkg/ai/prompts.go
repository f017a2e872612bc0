package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"farmbot/entities"
)

const systemPrompt = "You are FarmBot Kerala, an AI assistant specialized in Kerala farming practices."

func renderProfile(f *entities.Farmer) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf(`
Farmer Profile:
- Name: %s
- Location: %s, Kerala
- Land Size: %s
- Land Type: %s
- Crops: %s
- Experience: %s
- Language: %s
`, f.Name, f.District, f.LandSize, f.LandType, strings.Join(f.Crops, ", "), f.Experience, f.Language)
}

func renderAnswerPrompt(question string, f *entities.Farmer) string {
	lang := ""
	if f != nil && f.Language == "ml" {
		lang = "\nReply in Malayalam."
	}
	return fmt.Sprintf(`%s
Farmer's question: %q

Provide helpful, practical farming advice specific to Kerala's climate, soil, and agricultural practices.
Consider the monsoon seasons (June-September), post-monsoon (October-February), and summer (March-May).
Keep responses concise but informative. Use simple language appropriate for farmers.

If the question is about:
- Crop selection: Consider Kerala's tropical climate and seasonal patterns
- Pest control: Focus on organic and sustainable methods popular in Kerala
- Fertilizers: Emphasize organic options and local resources
- Weather: Reference Kerala's monsoon patterns and seasonal farming calendar
- Market: Consider local Kerala markets and traditional crops

Response should be natural and conversational, not structured JSON.%s`, renderProfile(f), question, lang)
}

func renderSuggestionPrompt(f *entities.Farmer, req SuggestionRequest) string {
	var focus string
	switch req.Focus {
	case FocusSeasonal:
		focus = fmt.Sprintf("Focus on seasonal activities for %s season in Kerala.", req.Season)
	case FocusDaily:
		focus = "Focus on daily/weekly tasks that need immediate attention."
	case FocusEmergency:
		focus = "Focus on urgent issues that require immediate action."
	default:
		focus = "Generate a mix of seasonal, maintenance, and planning suggestions."
	}

	return fmt.Sprintf(`Generate %d farming suggestions for a Kerala farmer with this profile:
%s
Current season: %s (Month: %d)
%s

Reply ONLY valid JSON:
{"suggestions":[{"title":"Brief action title (max 50 chars)","description":"Detailed description with specific steps","priority":"high|medium|low","category":"%s"}]}`,
		req.Count, renderProfile(f), req.Season, req.Month, focus, strings.Join(entities.Categories, "|"))
}

type llmSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// parseSuggestions accepts {"suggestions":[...]} or a bare array, optionally
// wrapped in a markdown code fence.
func parseSuggestions(raw string, limit int) ([]entities.SuggestionDraft, error) {
	content := stripFence(raw)

	var payload struct {
		Suggestions []llmSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		var arr []llmSuggestion
		if err2 := json.Unmarshal([]byte(content), &arr); err2 != nil {
			return nil, fmt.Errorf("parse suggestions: %v / raw: %s", err, raw)
		}
		payload.Suggestions = arr
	}

	out := make([]entities.SuggestionDraft, 0, len(payload.Suggestions))
	for _, s := range payload.Suggestions {
		d, ok := normalizeDraft(s)
		if !ok {
			continue
		}
		out = append(out, d)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func normalizeDraft(s llmSuggestion) (entities.SuggestionDraft, bool) {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		return entities.SuggestionDraft{}, false
	}
	prio := strings.ToLower(strings.TrimSpace(s.Priority))
	if !entities.ValidPriority(prio) {
		prio = entities.PriorityMedium
	}
	cat := strings.ToLower(strings.TrimSpace(s.Category))
	if !entities.ValidCategory(cat) {
		cat = entities.CategoryCare
	}
	return entities.SuggestionDraft{
		Title:       title,
		Description: strings.TrimSpace(s.Description),
		Priority:    prio,
		Category:    cat,
	}, true
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
