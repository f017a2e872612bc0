package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCondition(t *testing.T) {
	cases := map[int]string{
		0: "Sunny", 1: "Mainly Clear", 2: "Partly Cloudy", 3: "Cloudy",
		45: "Fog", 48: "Fog", 53: "Drizzle", 57: "Freezing Drizzle",
		61: "Light Rain", 63: "Rain", 65: "Heavy Rain", 66: "Freezing Rain",
		73: "Snow", 80: "Light Showers", 81: "Showers", 82: "Heavy Showers",
		95: "Thunderstorm", 99: "Thunderstorm with Hail", 42: "Cloudy", -1: "Cloudy",
	}
	for code, want := range cases {
		assert.Equal(t, want, Condition(code), "code %d", code)
	}
}

func TestRainfall(t *testing.T) {
	assert.Equal(t, RainHeavy, Rainfall(25, 10))
	assert.Equal(t, RainHeavy, Rainfall(0, 80))
	assert.Equal(t, RainLight, Rainfall(0.2, 0))
	assert.Equal(t, RainLight, Rainfall(0, 40))
	assert.Equal(t, RainNone, Rainfall(0, 39))
}

func TestDayLabel(t *testing.T) {
	wed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", DayLabel(0, wed))
	assert.Equal(t, "Tomorrow", DayLabel(1, wed))
	assert.Equal(t, "Wednesday", DayLabel(2, wed))
}

func TestAdvice(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		humidity float64
		rain     string
		contains []string
	}{
		{"mild and dry", 28, 60, RainNone, []string{DefaultAdvice}},
		{"heavy rain", 27, 90, RainHeavy, []string{"postpone fertilizer", "Bordeaux mixture"}},
		{"light rain", 29, 70, RainLight, []string{"Delay irrigation"}},
		{"heat", 37, 40, RainNone, []string{"shade nets"}},
		{"cold", 16, 50, RainNone, []string{"protect young seedlings"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advice(tt.temp, tt.humidity, tt.rain)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
	assert.NotContains(t, Advice(37, 40, RainHeavy), DefaultAdvice)
}

func TestSample(t *testing.T) {
	s := Sample("Kollam")
	assert.Equal(t, "Kollam", s.District)
	assert.Equal(t, SourceSample, s.Source)
	assert.Len(t, s.Forecast, 3)
}
