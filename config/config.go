package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	LogLevel string

	Storage     string // memory|sqlite|postgres
	DBPath      string
	DatabaseURL string

	LLMProvider string // openai|gemini
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	GeminiKey   string
	GeminiModel string

	WeatherEndpoint string
	GeocodeEndpoint string
	WeatherTTL      time.Duration

	MarketSourceURL  string
	CropCalendarFile string

	ChatRatePerMin float64
	ChatRateBurst  int

	// EnvFileErr is set when .env could not be read; main logs it once the logger exists.
	EnvFileErr error `json:"-"`
}

func Load() AppConfig {
	envErr := godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	first := func(keys ...string) string {
		for _, k := range keys {
			if v := os.Getenv(k); v != "" {
				return v
			}
		}
		return ""
	}

	ttl, err := time.ParseDuration(get("WEATHER_TTL", "6h"))
	if err != nil || ttl <= 0 {
		ttl = 6 * time.Hour
	}
	rpm, err := strconv.ParseFloat(get("CHAT_RATE_PER_MIN", "20"), 64)
	if err != nil || rpm <= 0 {
		rpm = 20
	}
	burst, err := strconv.Atoi(get("CHAT_RATE_BURST", "5"))
	if err != nil || burst <= 0 {
		burst = 5
	}

	return AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "Asia/Kolkata"),
		LogLevel: get("LOG_LEVEL", "info"),

		Storage:     get("STORAGE", "memory"),
		DBPath:      get("DB_PATH", "farmbot.db"),
		DatabaseURL: get("DATABASE_URL", ""),

		LLMProvider: get("LLM_PROVIDER", "openai"),
		LLMEndpoint: get("LLM_ENDPOINT", "https://api.openai.com"),
		LLMAPIKey:   first("LLM_API_KEY", "OPENAI_API_KEY", "OPENAI_KEY"),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		GeminiKey:   get("GEMINI_API_KEY", ""),
		GeminiModel: get("GEMINI_MODEL", "gemini-2.0-flash"),

		WeatherEndpoint: get("WEATHER_ENDPOINT", "https://api.open-meteo.com"),
		GeocodeEndpoint: get("GEOCODE_ENDPOINT", "https://geocoding-api.open-meteo.com"),
		WeatherTTL:      ttl,

		MarketSourceURL:  get("MARKET_SOURCE_URL", ""),
		CropCalendarFile: get("CROP_CALENDAR_FILE", ""),

		ChatRatePerMin: rpm,
		ChatRateBurst:  burst,

		EnvFileErr: envErr,
	}
}

// Location resolves Timezone, falling back to IST.
func (c AppConfig) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}
