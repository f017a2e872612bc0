package entities

import "time"

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	CategoryPlanting   = "planting"
	CategoryCare       = "care"
	CategoryHarvest    = "harvest"
	CategoryPest       = "pest"
	CategoryFertilizer = "fertilizer"
	CategoryIrrigation = "irrigation"
	CategorySeasonal   = "seasonal"
	CategoryPlanning   = "planning"
)

var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

var Categories = []string{
	CategoryPlanting, CategoryCare, CategoryHarvest, CategoryPest,
	CategoryFertilizer, CategoryIrrigation, CategorySeasonal, CategoryPlanning,
}

type Suggestion struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	FarmerID    string     `gorm:"index;size:36" json:"farmerId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"` // high|medium|low
	Category    string     `json:"category"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
}

// SuggestionDraft is a generated to-do before it is assigned to a farmer and stored.
type SuggestionDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

type SuggestionPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"`
	IsCompleted *bool      `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
}

func (p SuggestionPatch) Apply(s *Suggestion) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.IsCompleted != nil {
		s.IsCompleted = *p.IsCompleted
	}
	if p.DueDate != nil {
		d := *p.DueDate
		s.DueDate = &d
	}
}

func ValidPriority(p string) bool { return contains(Priorities, p) }

func ValidCategory(c string) bool { return contains(Categories, c) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
