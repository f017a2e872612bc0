// Package weather turns raw forecast numbers into the text farmers see:
// condition names, rainfall summaries and field advice.
package weather

import (
	"strings"
	"time"
)

const (
	RainHeavy = "Heavy rain expected"
	RainLight = "Light rain expected"
	RainNone  = "No rain expected"
)

// Condition maps a WMO weather interpretation code to a short label.
func Condition(code int) string {
	switch code {
	case 0:
		return "Sunny"
	case 1:
		return "Mainly Clear"
	case 2:
		return "Partly Cloudy"
	case 3:
		return "Cloudy"
	case 45, 48:
		return "Fog"
	case 51, 53, 55:
		return "Drizzle"
	case 56, 57:
		return "Freezing Drizzle"
	case 61:
		return "Light Rain"
	case 63:
		return "Rain"
	case 65:
		return "Heavy Rain"
	case 66, 67:
		return "Freezing Rain"
	case 71, 73, 75, 77:
		return "Snow"
	case 80:
		return "Light Showers"
	case 81:
		return "Showers"
	case 82:
		return "Heavy Showers"
	case 95:
		return "Thunderstorm"
	case 96, 99:
		return "Thunderstorm with Hail"
	}
	return "Cloudy"
}

// Rainfall summarises today's precipitation (mm) and probability (%).
func Rainfall(mm, probability float64) string {
	switch {
	case mm >= 20 || probability >= 80:
		return RainHeavy
	case mm > 0 || probability >= 40:
		return RainLight
	}
	return RainNone
}

// DayLabel names forecast day i: Today, Tomorrow, then the weekday.
func DayLabel(i int, date time.Time) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	}
	return date.Weekday().String()
}

type adviceRule struct {
	match func(tempC, humidity float64, rainfall string) bool
	text  string
}

// adviceRules are evaluated in order; every match contributes a sentence.
var adviceRules = []adviceRule{
	{
		match: func(_, _ float64, rain string) bool { return rain == RainHeavy },
		text:  "Heavy rain expected: postpone fertilizer and pesticide application and clear drainage channels to avoid waterlogging.",
	},
	{
		match: func(_, _ float64, rain string) bool { return rain == RainLight },
		text:  "Delay irrigation due to expected rainfall. Good conditions for planting vegetables.",
	},
	{
		match: func(t, _ float64, _ string) bool { return t >= 35 },
		text:  "High temperature: irrigate early morning or late evening, mulch around plants and use shade nets for seedlings.",
	},
	{
		match: func(t, h float64, _ string) bool { return h >= 85 && t >= 25 },
		text:  "Warm and humid conditions raise fungal disease risk: inspect leaves and apply Bordeaux mixture where needed.",
	},
	{
		match: func(t, _ float64, _ string) bool { return t <= 18 },
		text:  "Cool temperatures: protect young seedlings and delay sowing of heat-loving crops.",
	},
}

const DefaultAdvice = "Good conditions for field work and planting vegetables."

// Advice applies the rule table to current conditions.
func Advice(tempC, humidity float64, rainfall string) string {
	var lines []string
	for _, r := range adviceRules {
		if r.match(tempC, humidity, rainfall) {
			lines = append(lines, r.text)
		}
	}
	if len(lines) == 0 {
		return DefaultAdvice
	}
	return strings.Join(lines, " ")
}
