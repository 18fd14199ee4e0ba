// README: Weather capability contract and reading model.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotConfigured means no weather API key is present. Permanent for the
	// process lifetime; the chat layer turns it into an explicit "not
	// configured" reply instead of a generic error.
	ErrNotConfigured = errors.New("weather provider not configured")

	// ErrNotFound means the provider does not know the requested place.
	ErrNotFound = errors.New("location not found")
)

// Service is the weather capability consumed by the chat pipeline.
type Service interface {
	Current(ctx context.Context, location string) (*Reading, error)
}

// Reading is one observation of current conditions. Temperatures are in
// Fahrenheit, wind in mph, matching what the upstream API is asked for.
type Reading struct {
	Location    string  `json:"location"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	TempF       float64 `json:"tempF"`
	FeelsLikeF  float64 `json:"feelsLikeF"`
	Humidity    int     `json:"humidity"`
	PressureHPa int     `json:"pressureHPa"`
	WindMPH     float64 `json:"windMPH"`
}

// Format renders a reading as the user-facing weather report.
func (r *Reading) Format() string {
	name := r.Location
	if r.Country != "" {
		name += ", " + r.Country
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌤️ Weather in %s:\n\n", name)
	fmt.Fprintf(&b, "☁️ Conditions: %s\n", titleCase(r.Description))
	fmt.Fprintf(&b, "🌡️ Temperature: %.0f°F (feels like %.0f°F)\n", r.TempF, r.FeelsLikeF)
	fmt.Fprintf(&b, "💧 Humidity: %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "🌬️ Wind Speed: %.1f mph\n", r.WindMPH)
	fmt.Fprintf(&b, "📊 Pressure: %d hPa", r.PressureHPa)
	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
