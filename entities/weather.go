package entities

import "time"

type ForecastDay struct {
	Day       string `json:"day"`
	Temp      string `json:"temp"` // "32°/24°"
	Condition string `json:"condition"`
	Rain      string `json:"rain"` // "60%"
}

type WeatherData struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	District      string        `gorm:"index" json:"district"`
	Temperature   string        `json:"temperature"`
	Humidity      string        `json:"humidity"`
	Rainfall      string        `json:"rainfall"`
	Forecast      []ForecastDay `gorm:"serializer:json" json:"forecast"`
	FarmingAdvice string        `json:"farmingAdvice"`
	Source        string        `json:"source"` // open-meteo|sample
	Timestamp     time.Time     `gorm:"index" json:"timestamp"`
}

func (WeatherData) TableName() string { return "weather_data" }

// Stale reports whether the snapshot is older than ttl at now.
func (w *WeatherData) Stale(now time.Time, ttl time.Duration) bool {
	return w.Timestamp.Before(now.Add(-ttl))
}
