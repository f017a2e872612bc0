package weather

import (
	"fmt"
	"math"
	"time"

	"farmbot/entities"
	"farmbot/pkg/weather/provider"
)

func at[T any](s []T, i int) T {
	var zero T
	if i < 0 || i >= len(s) {
		return zero
	}
	return s[i]
}

func round(v float64) int { return int(math.Round(v)) }

// Build converts an Open-Meteo response into the stored snapshot.
func Build(district string, f *provider.Forecast) *entities.WeatherData {
	d := f.Daily

	todayMM := math.Max(at(d.RainSum, 0), f.Current.Rain)
	rain := Rainfall(todayMM, at(d.RainProb, 0))

	days := make([]entities.ForecastDay, 0, len(d.Time))
	for i, day := range d.Time {
		date, _ := time.Parse("2006-01-02", day)
		days = append(days, entities.ForecastDay{
			Day:       DayLabel(i, date),
			Temp:      fmt.Sprintf("%d°/%d°", round(at(d.TempMax, i)), round(at(d.TempMin, i))),
			Condition: Condition(at(d.WeatherCode, i)),
			Rain:      fmt.Sprintf("%d%%", round(at(d.RainProb, i))),
		})
	}

	return &entities.WeatherData{
		District:      district,
		Temperature:   fmt.Sprintf("%d°C", round(f.Current.Temperature)),
		Humidity:      fmt.Sprintf("%d%%", round(f.Current.Humidity)),
		Rainfall:      rain,
		Forecast:      days,
		FarmingAdvice: Advice(f.Current.Temperature, f.Current.Humidity, rain),
		Source:        SourceOpenMeteo,
	}
}
