// README: Config loader with env defaults for HTTP, collaborators, Redis, and providers.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr           string
		AllowedOrigins []string
	}
	Services struct {
		UserURL   string
		FlightURL string
		HotelURL  string
		CarURL    string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		GeminiKey string
		Model     string
	}
	Weather struct {
		APIKey string
	}
}

// Load reads configuration from the environment, with a best-effort .env
// load first. Provider keys are optional on purpose: a missing key selects
// the degraded fallback path instead of refusing to start.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("AGENT_HTTP_ADDR", ":8000")
	cfg.HTTP.AllowedOrigins = splitList(envOrDefault("AGENT_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"))
	cfg.Services.UserURL = envOrDefault("USER_SERVICE_URL", "http://localhost:5001")
	cfg.Services.FlightURL = envOrDefault("FLIGHT_SERVICE_URL", "http://localhost:5002")
	cfg.Services.HotelURL = envOrDefault("HOTEL_SERVICE_URL", "http://localhost:5003")
	cfg.Services.CarURL = envOrDefault("CAR_SERVICE_URL", "http://localhost:5004")
	cfg.Redis.Addr = os.Getenv("AGENT_REDIS_ADDR")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("GEMINI_MODEL", "gemini-2.0-flash")
	cfg.Weather.APIKey = os.Getenv("WEATHER_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
