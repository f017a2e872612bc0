package entities

import "time"

type MarketPrice struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Crop       string    `json:"crop"`
	PricePerKg string    `json:"pricePerKg"`
	District   string    `gorm:"index" json:"district"`
	Change     string    `json:"change"`
	Trend      string    `json:"trend"` // up|down|stable
	Date       time.Time `gorm:"index" json:"date"`
}
