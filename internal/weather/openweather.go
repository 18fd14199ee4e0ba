// README: OpenWeatherMap client for current conditions.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherClient fetches current conditions from OpenWeatherMap.
type OpenWeatherClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	log     *logrus.Entry
}

func NewOpenWeatherClient(apiKey string, log *logrus.Entry) *OpenWeatherClient {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &OpenWeatherClient{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

// owmResponse is the subset of the OpenWeatherMap payload we read.
type owmResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches current conditions for the named place in imperial units.
func (c *OpenWeatherClient) Current(ctx context.Context, location string) (*Reading, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "imperial")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("weather: status %d", resp.StatusCode)
	}

	var payload owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather: decode response: %w", err)
	}

	name := payload.Name
	if name == "" {
		name = location
	}
	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	return &Reading{
		Location:    name,
		Country:     payload.Sys.Country,
		Description: description,
		TempF:       payload.Main.Temp,
		FeelsLikeF:  payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		PressureHPa: payload.Main.Pressure,
		WindMPH:     payload.Wind.Speed,
	}, nil
}
