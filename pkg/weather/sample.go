package weather

import "farmbot/entities"

const (
	SourceOpenMeteo = "open-meteo"
	SourceSample    = "sample"
)

// Sample is served when geocoding or the forecast provider fails.
func Sample(district string) *entities.WeatherData {
	return &entities.WeatherData{
		District:    district,
		Temperature: "28°C",
		Humidity:    "78%",
		Rainfall:    RainLight,
		Forecast: []entities.ForecastDay{
			{Day: "Today", Temp: "32°/24°", Condition: "Sunny", Rain: "0%"},
			{Day: "Tomorrow", Temp: "29°/23°", Condition: "Light Rain", Rain: "60%"},
			{Day: "Wednesday", Temp: "30°/24°", Condition: "Cloudy", Rain: "20%"},
		},
		FarmingAdvice: "Good conditions for planting vegetables. Delay irrigation due to expected rainfall.",
		Source:        SourceSample,
	}
}
