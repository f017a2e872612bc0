package climate

import (
	"fmt"
	"time"

	"farmbot/entities"
)

const (
	SeasonMonsoon     = "monsoon"
	SeasonPostMonsoon = "post-monsoon"
	SeasonSummer      = "summer"
)

// KeralaSeason buckets a calendar month (1-12) into the three advisory seasons.
// June-September is the southwest monsoon, October-February post-monsoon,
// March-May summer.
func KeralaSeason(month int) string {
	switch {
	case month >= 6 && month <= 9:
		return SeasonMonsoon
	case month >= 10 || month <= 2:
		return SeasonPostMonsoon
	default:
		return SeasonSummer
	}
}

type Season struct {
	Name           string   `json:"name"`
	Months         []int    `json:"months"`
	Description    string   `json:"description"`
	MainActivities []string `json:"mainActivities"`
}

var Seasons = []Season{
	{
		Name:        "Pre-Monsoon/Summer",
		Months:      []int{3, 4, 5},
		Description: "Hot and dry period, water management critical",
		MainActivities: []string{
			"Harvest summer crops",
			"Prepare fields for monsoon",
			"Water management",
			"Shade protection for plants",
		},
	},
	{
		Name:        "Southwest Monsoon",
		Months:      []int{6, 7, 8, 9},
		Description: "Heavy rainfall period, main planting season",
		MainActivities: []string{
			"Plant rice and other monsoon crops",
			"Manage drainage",
			"Pest and disease control",
			"Weed management",
		},
	},
	{
		Name:        "Post-Monsoon",
		Months:      []int{10, 11},
		Description: "Retreating monsoon, ideal for many crops",
		MainActivities: []string{
			"Plant winter vegetables",
			"Harvest monsoon crops",
			"Field preparation",
			"Irrigation setup",
		},
	},
	{
		Name:        "Winter/Northeast Monsoon",
		Months:      []int{12, 1, 2},
		Description: "Cool and pleasant, good for vegetables and fruits",
		MainActivities: []string{
			"Vegetable cultivation",
			"Fruit harvesting",
			"Land preparation",
			"Organic matter addition",
		},
	},
}

// CurrentSeason returns the detailed season containing month, or the first one
// for an out-of-range month.
func CurrentSeason(month int) Season {
	for _, s := range Seasons {
		if containsInt(s.Months, month) {
			return s
		}
	}
	return Seasons[0]
}

var seasonalCrops = map[string]map[string][]string{
	SeasonMonsoon: {
		"paddy":      {"Rice", "Coconut", "Banana", "Ginger", "Turmeric"},
		"upland":     {"Pepper", "Cardamom", "Coffee", "Rubber", "Vegetables"},
		"plantation": {"Coconut", "Rubber", "Pepper", "Cardamom", "Coffee"},
	},
	SeasonPostMonsoon: {
		"paddy":      {"Vegetables", "Coconut", "Banana", "Rice (second crop)"},
		"upland":     {"Vegetables", "Fruits", "Spices", "Pepper", "Cardamom"},
		"plantation": {"Coconut", "Fruits", "Spices", "Coffee"},
	},
	SeasonSummer: {
		"paddy":      {"Summer Rice", "Coconut", "Banana", "Vegetables (with irrigation)"},
		"upland":     {"Fruits", "Vegetables (shade)", "Spices", "Coconut"},
		"plantation": {"Coconut", "Mango", "Jackfruit", "Cashew"},
	},
}

func SeasonalCrops(season, landType string) []string {
	if crops, ok := seasonalCrops[season][landType]; ok {
		return append([]string(nil), crops...)
	}
	return []string{"Coconut", "Banana", "Vegetables"}
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// SeasonActivityTasks turns the main activities of the season containing
// now into planning tasks due in two weeks.
func SeasonActivityTasks(now time.Time, limit int) []Task {
	s := CurrentSeason(int(now.Month()))
	due := now.AddDate(0, 0, 14)
	var tasks []Task
	for i, act := range s.MainActivities {
		if limit > 0 && i == limit {
			break
		}
		tasks = append(tasks, Task{
			ID:          fmt.Sprintf("season-%d-%d", i, now.UnixMilli()),
			Title:       act,
			Description: fmt.Sprintf("%s: %s.", s.Name, s.Description),
			Priority:    entities.PriorityMedium,
			Category:    entities.CategorySeasonal,
			DueDate:     due,
		})
	}
	return tasks
}
