// README: LLM-backed intent extraction with automatic rule-based fallback.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"tripagent/internal/ai"
)

const extractionPrompt = `Analyze this user message and extract search parameters in JSON format:
%q

Return a JSON object with:
- type: "flights", "hotels", or "cars"
- from: origin city/airport (for flights) - only if explicitly mentioned
- to: destination city/airport (for flights) - extract from phrases like "to [city]", "flights to [city]", etc.
- city: city name (for hotels/cars)
- make: car brand/manufacturer (for cars) - extract from phrases like "Toyota cars", "Honda", "BMW", etc.
- departureDate/checkIn/pickupDate: date in YYYY-MM-DD format
- returnDate/checkOut/dropoffDate: date in YYYY-MM-DD format (if mentioned)
- minPrice: minimum price (if mentioned)
- maxPrice: maximum price (if mentioned)
- sortBy: "price" or "rating" (if mentioned)
- sortOrder: "asc" or "desc"

IMPORTANT: For flights, if the message mentions a destination city (like "to Paris", "flights to Paris"), extract it as the "to" field.
Only include fields that are explicitly mentioned or can be inferred. Return only valid JSON, no markdown.`

// Extractor resolves a message to a search intent through the generative
// provider, falling back to the rule-based parser on every failure class.
// Extract never returns an error: the caller always gets a usable intent.
type Extractor struct {
	provider ai.Provider // nil when no credentials are configured
	fallback *Parser
	log      *logrus.Entry
}

func NewExtractor(provider ai.Provider, fallback *Parser, log *logrus.Entry) *Extractor {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Extractor{provider: provider, fallback: fallback, log: log}
}

// Extract returns the provider-derived intent, or the rule-based parse when
// the provider is unconfigured, errors, or replies with unusable JSON.
// Failure causes are logged, never surfaced to the user.
func (e *Extractor) Extract(ctx context.Context, message string) Intent {
	if e.provider == nil {
		e.log.Debug("no generative provider, using rule-based parser")
		return e.fallback.Parse(message)
	}

	raw, err := e.provider.CompleteJSON(ctx, fmt.Sprintf(extractionPrompt, message))
	if err != nil {
		if ai.IsRateLimited(err) {
			e.log.WithError(err).Warn("provider quota exceeded, using rule-based parser")
		} else {
			e.log.WithError(err).Warn("intent extraction failed, using rule-based parser")
		}
		return e.fallback.Parse(message)
	}

	parsed, err := parseIntentReply(raw)
	if err != nil {
		e.log.WithError(err).Warn("unusable intent JSON, using rule-based parser")
		return e.fallback.Parse(message)
	}
	return parsed
}

// intentReply tolerates both reply layouts the model produces: parameters
// nested under "params" and parameters inlined at the top level.
type intentReply struct {
	Type   string  `json:"type"`
	Nested *Params `json:"params"`
	Params
}

func parseIntentReply(raw string) (Intent, error) {
	cleaned := stripCodeFence(raw)

	// Reject non-mapping replies ("null", bare strings, arrays) explicitly;
	// json.Unmarshal would accept null into a struct without complaint.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return Intent{}, fmt.Errorf("parse intent reply: %w", err)
	}
	if probe == nil {
		return Intent{}, fmt.Errorf("parse intent reply: null object")
	}

	var reply intentReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return Intent{}, fmt.Errorf("parse intent reply: %w", err)
	}

	params := reply.Params
	if reply.Nested != nil {
		params = *reply.Nested
	}
	return Intent{Kind: normalizeKind(reply.Type), Params: params}, nil
}

func normalizeKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindFlights:
		return KindFlights
	case KindHotels:
		return KindHotels
	case KindCars:
		return KindCars
	default:
		return KindNone
	}
}

// stripCodeFence removes a markdown code fence if present (``` or ```json).
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
