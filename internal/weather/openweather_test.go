// README: Tests for the OpenWeatherMap client.
package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCurrentParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Paris" {
			t.Errorf("q = %q, want Paris", got)
		}
		if got := r.URL.Query().Get("units"); got != "imperial" {
			t.Errorf("units = %q, want imperial", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Paris",
			"sys": {"country": "FR"},
			"weather": [{"description": "scattered clouds"}],
			"main": {"temp": 64.4, "feels_like": 63.1, "humidity": 70, "pressure": 1012},
			"wind": {"speed": 8.5}
		}`))
	}))
	defer srv.Close()

	c := NewOpenWeatherClient("test-key", nil)
	c.baseURL = srv.URL

	r, err := c.Current(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Location != "Paris" || r.Country != "FR" {
		t.Errorf("location = %q/%q, want Paris/FR", r.Location, r.Country)
	}
	if r.Description != "scattered clouds" {
		t.Errorf("description = %q", r.Description)
	}
	if r.TempF != 64.4 || r.Humidity != 70 || r.WindMPH != 8.5 {
		t.Errorf("reading = %+v", r)
	}
}

func TestCurrentNotConfigured(t *testing.T) {
	c := NewOpenWeatherClient("", nil)
	if _, err := c.Current(context.Background(), "Paris"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestCurrentUnknownLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewOpenWeatherClient("test-key", nil)
	c.baseURL = srv.URL

	if _, err := c.Current(context.Background(), "Atlantis"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReadingFormat(t *testing.T) {
	r := &Reading{
		Location:    "Paris",
		Country:     "FR",
		Description: "scattered clouds",
		TempF:       64.4,
		FeelsLikeF:  63.1,
		Humidity:    70,
		PressureHPa: 1012,
		WindMPH:     8.5,
	}

	out := r.Format()
	for _, want := range []string{"Paris, FR", "Scattered Clouds", "64°F", "70%", "8.5 mph", "1012 hPa"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}
