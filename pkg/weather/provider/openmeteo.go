// Package provider fetches forecasts and coordinates from Open-Meteo.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNoLocation = errors.New("location not found")

type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Current struct {
	Temperature float64 `json:"temperature_2m"`
	Humidity    float64 `json:"relative_humidity_2m"`
	Rain        float64 `json:"precipitation"`
	WeatherCode int     `json:"weather_code"`
}

type Daily struct {
	Time        []string  `json:"time"`
	WeatherCode []int     `json:"weather_code"`
	TempMax     []float64 `json:"temperature_2m_max"`
	TempMin     []float64 `json:"temperature_2m_min"`
	RainProb    []float64 `json:"precipitation_probability_max"`
	RainSum     []float64 `json:"precipitation_sum"`
}

type Forecast struct {
	Current Current `json:"current"`
	Daily   Daily   `json:"daily"`
}

type OpenMeteo struct {
	forecastURL string
	geocodeURL  string
	timezone    string
	days        int
	httpc       *http.Client
}

func NewOpenMeteo(forecastBase, geocodeBase string) *OpenMeteo {
	return &OpenMeteo{
		forecastURL: strings.TrimRight(forecastBase, "/") + "/v1/forecast",
		geocodeURL:  strings.TrimRight(geocodeBase, "/") + "/v1/search",
		timezone:    "Asia/Kolkata",
		days:        5,
		httpc:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (o *OpenMeteo) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := o.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("open-meteo: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Geocode resolves a place name within India.
func (o *OpenMeteo) Geocode(ctx context.Context, name string) (Location, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")
	q.Set("countryCode", "IN")

	var out struct {
		Results []Location `json:"results"`
	}
	if err := o.getJSON(ctx, o.geocodeURL+"?"+q.Encode(), &out); err != nil {
		return Location{}, fmt.Errorf("geocode %q: %w", name, err)
	}
	if len(out.Results) == 0 {
		return Location{}, fmt.Errorf("geocode %q: %w", name, ErrNoLocation)
	}
	return out.Results[0], nil
}

func (o *OpenMeteo) Forecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,precipitation,weather_code")
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max,precipitation_sum")
	q.Set("forecast_days", fmt.Sprint(o.days))
	q.Set("timezone", o.timezone)

	var out Forecast
	if err := o.getJSON(ctx, o.forecastURL+"?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	if len(out.Daily.Time) == 0 {
		return nil, errors.New("forecast: no daily data")
	}
	return &out, nil
}
