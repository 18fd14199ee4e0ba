// README: Weather query replies.
package chat

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"tripagent/internal/intent"
	"tripagent/internal/weather"
)

const weatherPromptReply = "I'd be happy to help you with weather information! Please specify a location, " +
	"for example: 'What is the weather in Sunnyvale?' or 'Weather in New York'"

// weatherPhrasePatterns rescue locations the generic extractor misses, e.g.
// places introduced with "at" or "for" ("weather at miami beach?").
var weatherPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)weather in (.+?)(?:\?|$|\.)`),
	regexp.MustCompile(`(?i)weather at (.+?)(?:\?|$|\.)`),
	regexp.MustCompile(`(?i)weather for (.+?)(?:\?|$|\.)`),
	regexp.MustCompile(`(?i)temperature in (.+?)(?:\?|$|\.)`),
}

// weatherReply answers a weather query. A missing API key yields an explicit
// "not configured" reply with a search alternative, never a generic error.
func (s *Service) weatherReply(ctx context.Context, message string) string {
	location := intent.ExtractLocation(message)
	if location == "" {
		for _, p := range weatherPhrasePatterns {
			if m := p.FindStringSubmatch(message); m != nil {
				location = strings.TrimSpace(m[1])
				break
			}
		}
	}
	if location == "" {
		return weatherPromptReply
	}

	reading, err := s.weather.Current(ctx, location)
	switch {
	case err == nil:
		return reading.Format()
	case errors.Is(err, weather.ErrNotConfigured):
		return fmt.Sprintf("I'd love to help you with weather information for %s! However, weather lookups are "+
			"not configured on this server. For now, would you like me to search for flights, hotels, or cars in %s instead?",
			location, location)
	default:
		s.log.WithError(err).WithField("location", location).Warn("weather fetch failed")
		return fmt.Sprintf("I couldn't fetch weather information for %s right now. "+
			"Please make sure the location name is correct, or try again later.", location)
	}
}
