package climate

import (
	"fmt"
	"strings"
	"time"

	"farmbot/entities"
)

// MaxSeasonTasks caps the task list shown to a farmer.
const MaxSeasonTasks = 5

type RulesEngine interface {
	Calendar() []CropCalendar
	SeasonTasks(crops []string, landType, district string, now time.Time) []Task
	MaintenanceTasks(month int, landType, district string, now time.Time) []Task
}

type CareInstructions struct {
	Watering    string `json:"watering"`
	Fertilizer  string `json:"fertilizer"`
	PestControl string `json:"pestControl"`
}

type CropCalendar struct {
	Crop             string           `json:"crop"`
	PlantingMonths   []int            `json:"plantingMonths"`
	HarvestMonths    []int            `json:"harvestMonths"`
	CareInstructions CareInstructions `json:"careInstructions"`
}

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
	Crops       []string  `json:"crops,omitempty"`
	LandTypes   []string  `json:"landTypes,omitempty"`
}

func (t Task) Draft() entities.SuggestionDraft {
	return entities.SuggestionDraft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Category:    t.Category,
	}
}

// DefaultCalendar follows traditional Kerala practice.
var DefaultCalendar = []CropCalendar{
	{
		Crop:           "Rice",
		PlantingMonths: []int{6, 7, 11, 12}, // Kharif and Rabi
		HarvestMonths:  []int{10, 11, 3, 4},
		CareInstructions: CareInstructions{
			Watering:    "Maintain 2-3 cm water level during growing season",
			Fertilizer:  "Organic compost before planting, urea during tillering",
			PestControl: "Neem oil spray, encourage beneficial insects",
		},
	},
	{
		Crop:           "Coconut",
		PlantingMonths: []int{4, 5, 9, 10},
		HarvestMonths:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		CareInstructions: CareInstructions{
			Watering:    "Deep watering during dry months, mulching around base",
			Fertilizer:  "Organic manure twice yearly, potash for better yield",
			PestControl: "Regular inspection for rhinoceros beetle, red palm weevil",
		},
	},
	{
		Crop:           "Pepper",
		PlantingMonths: []int{5, 6},
		HarvestMonths:  []int{12, 1, 2},
		CareInstructions: CareInstructions{
			Watering:    "Regular watering, avoid waterlogging",
			Fertilizer:  "Organic compost, bone meal for flowering",
			PestControl: "Bordeaux mixture for fungal diseases",
		},
	},
	{
		Crop:           "Vegetables",
		PlantingMonths: []int{10, 11, 12, 1},
		HarvestMonths:  []int{12, 1, 2, 3},
		CareInstructions: CareInstructions{
			Watering:    "Morning watering, drip irrigation preferred",
			Fertilizer:  "Compost before planting, liquid fertilizer bi-weekly",
			PestControl: "Companion planting, organic sprays",
		},
	},
	{
		Crop:           "Banana",
		PlantingMonths: []int{4, 5, 9, 10},
		HarvestMonths:  []int{1, 2, 3, 7, 8, 9, 10, 11, 12}, // varies by variety
		CareInstructions: CareInstructions{
			Watering:    "Consistent moisture, mulching recommended",
			Fertilizer:  "High potash fertilizer, organic matter",
			PestControl: "Remove diseased leaves, proper spacing",
		},
	},
}

type rules struct {
	calendar []CropCalendar
}

// New builds an engine over calendar; an empty calendar means DefaultCalendar.
func New(calendar []CropCalendar) RulesEngine {
	if len(calendar) == 0 {
		calendar = DefaultCalendar
	}
	return &rules{calendar: calendar}
}

func (r *rules) Calendar() []CropCalendar { return r.calendar }

func (r *rules) lookup(crop string) (CropCalendar, bool) {
	for _, c := range r.calendar {
		if strings.EqualFold(c.Crop, strings.TrimSpace(crop)) {
			return c, true
		}
	}
	return CropCalendar{}, false
}

func (r *rules) SeasonTasks(crops []string, landType, district string, now time.Time) []Task {
	month := int(now.Month())
	due := now.AddDate(0, 0, 7)
	var tasks []Task

	for _, crop := range crops {
		info, ok := r.lookup(crop)
		if !ok {
			continue
		}
		taskID := fmt.Sprintf("%s-%d-%d", crop, month, now.UnixMilli())

		if containsInt(info.PlantingMonths, month) {
			tasks = append(tasks, Task{
				ID:          "plant-" + taskID,
				Title:       "Plant " + crop,
				Description: fmt.Sprintf("Optimal time to plant %s. %s", crop, info.CareInstructions.Watering),
				Priority:    entities.PriorityHigh,
				Category:    entities.CategoryPlanting,
				DueDate:     due,
				Crops:       []string{crop},
				LandTypes:   []string{landType},
			})
		}
		if containsInt(info.HarvestMonths, month) {
			tasks = append(tasks, Task{
				ID:          "harvest-" + taskID,
				Title:       "Harvest " + crop,
				Description: fmt.Sprintf("Time to harvest %s. Check for ripeness and weather conditions.", crop),
				Priority:    entities.PriorityHigh,
				Category:    entities.CategoryHarvest,
				DueDate:     due,
				Crops:       []string{crop},
				LandTypes:   []string{landType},
			})
		}
	}

	tasks = append(tasks, r.MaintenanceTasks(month, landType, district, now)...)
	if len(tasks) > MaxSeasonTasks {
		tasks = tasks[:MaxSeasonTasks]
	}
	return tasks
}

func (r *rules) MaintenanceTasks(month int, landType, district string, now time.Time) []Task {
	due := now.AddDate(0, 0, 14)
	stamp := now.UnixMilli()
	var tasks []Task

	if month >= 5 && month <= 6 {
		tasks = append(tasks, Task{
			ID:          fmt.Sprintf("monsoon-prep-%d", stamp),
			Title:       "Prepare for Monsoon",
			Description: "Clean drainage channels, secure plant supports, check irrigation systems",
			Priority:    entities.PriorityHigh,
			Category:    entities.CategorySeasonal,
			DueDate:     due,
			LandTypes:   []string{landType},
		})
	}
	if month >= 10 && month <= 11 {
		tasks = append(tasks, Task{
			ID:          fmt.Sprintf("post-monsoon-%d", stamp),
			Title:       "Post-Monsoon Field Care",
			Description: "Check for waterlogging, fungal diseases, and damaged plants",
			Priority:    entities.PriorityMedium,
			Category:    entities.CategoryCare,
			DueDate:     due,
			LandTypes:   []string{landType},
		})
	}
	if month >= 2 && month <= 3 {
		tasks = append(tasks, Task{
			ID:          fmt.Sprintf("summer-prep-%d", stamp),
			Title:       "Summer Water Management",
			Description: "Set up shade nets, check irrigation, mulch around plants",
			Priority:    entities.PriorityHigh,
			Category:    entities.CategoryIrrigation,
			DueDate:     due,
			LandTypes:   []string{landType},
		})
	}
	return tasks
}

type Recommendation struct {
	Crop       string `json:"crop"`
	Reason     string `json:"reason"`
	Difficulty string `json:"difficulty"` // easy|medium|hard
}

// CropRecommendations suggests up to three crops for a land type, scaling the
// vegetable difficulty with the farmer's experience.
func CropRecommendations(landType, experience string) []Recommendation {
	difficultyFor := func(exp string) string {
		switch strings.ToLower(exp) {
		case "new", "new farmer":
			return "easy"
		case "experienced":
			return "medium"
		}
		return "hard"
	}

	var recs []Recommendation
	switch landType {
	case "paddy":
		recs = []Recommendation{
			{"Rice", "Traditional crop, well-suited for wetland cultivation", "medium"},
			{"Coconut", "Long-term investment with steady income", "easy"},
			{"Banana", "Quick returns, grows well in Kerala climate", "easy"},
		}
	case "upland":
		recs = []Recommendation{
			{"Vegetables", "High demand, good returns with proper care", difficultyFor(experience)},
			{"Pepper", "High-value spice crop, traditional in Kerala", "medium"},
			{"Fruits", "Diversified income, local market demand", "medium"},
		}
	case "plantation":
		recs = []Recommendation{
			{"Coconut", "Main plantation crop in Kerala", "easy"},
			{"Rubber", "Good long-term income in suitable areas", "hard"},
			{"Coffee", "Premium crop for hill regions", "medium"},
		}
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}
