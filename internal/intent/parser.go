// README: Rule-based intent parser; the deterministic fallback for the LLM extractor.
package intent

import (
	"regexp"
	"strings"
	"time"
)

// Keyword vocabularies for the kind vote.
var (
	flightKindWords = []string{"flight", "fly", "airline", "airport", "plane", "ticket"}
	hotelKindWords  = []string{"hotel", "stay", "accommodation", "room", "lodge", "resort"}
	carKindWords    = []string{"car", "vehicle", "rental", "drive", "automobile"}
)

// Origin/destination markers are case-insensitive; trimLocationMatch sheds
// the trailing word a two-word capture picks up past the place name
// ("from paris to tokyo" captures "paris to").
var (
	fromPattern = regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\b`)
	toPattern   = regexp.MustCompile(`(?i)\bto\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\b`)
)

// Parser derives a search intent from a message without any external call.
// It is pure apart from the injected clock, which resolves relative dates.
type Parser struct {
	now func() time.Time
}

func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserAt builds a parser with a fixed clock, for deterministic tests.
func NewParserAt(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// Parse always returns a well-formed intent; params may be empty when the
// message carries no recognizable constraints.
func (p *Parser) Parse(message string) Intent {
	kind := detectKind(message)
	params := Params{}

	if date := ExtractDate(message, p.now()); date != "" {
		switch kind {
		case KindFlights:
			params.DepartureDate = date
		case KindHotels:
			params.CheckIn = date
		case KindCars:
			params.PickupDate = date
		}
	}

	p.assignLocation(message, kind, &params)

	params.MinPrice, params.MaxPrice = ExtractPriceRange(message)

	if kind == KindCars {
		params.Make = ExtractMake(message)
	}

	applySortHints(message, kind, &params)

	return Intent{Kind: kind, Params: params}
}

// detectKind votes by keyword frequency across the three vocabularies.
// The tie-breaking chain mirrors long-standing behavior: flights win only a
// strict majority, hotels beat cars, and an unclear message defaults to
// flights.
func detectKind(message string) Kind {
	lower := strings.ToLower(message)
	flights := countMatches(lower, flightKindWords)
	hotels := countMatches(lower, hotelKindWords)
	cars := countMatches(lower, carKindWords)

	switch {
	case flights > hotels && flights > cars:
		return KindFlights
	case hotels > cars:
		return KindHotels
	case cars > 0:
		return KindCars
	default:
		return KindFlights
	}
}

// assignLocation fills origin/destination (flights) or city (hotels, cars).
// With no "from"/"to" marker the single location found is treated as a
// destination: most queries express where the user is going, not where they
// are. Known approximation, kept intentionally.
func (p *Parser) assignLocation(message string, kind Kind, params *Params) {
	location := ExtractLocation(message)
	if location == "" {
		return
	}

	if kind != KindFlights {
		params.City = location
		return
	}

	var fromLoc, toLoc string
	if m := fromPattern.FindStringSubmatch(message); m != nil {
		fromLoc = trimLocationMatch(m[1])
	}
	if m := toPattern.FindStringSubmatch(message); m != nil {
		toLoc = trimLocationMatch(m[1])
	}
	lower := strings.ToLower(message)

	switch {
	case fromLoc != "" && toLoc != "":
		params.From = capitalizeWords(fromLoc)
		params.To = capitalizeWords(toLoc)
	case strings.Contains(lower, "from"):
		params.From = location
	default:
		params.To = location
	}
}

func applySortHints(message string, kind Kind, params *Params) {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "cheap") || strings.Contains(lower, "budget") || strings.Contains(lower, "affordable") {
		params.SortBy = "price"
		params.SortOrder = "asc"
	}
	if strings.Contains(lower, "best") || strings.Contains(lower, "top") || strings.Contains(lower, "rated") {
		params.SortBy = "rating"
		if kind == KindFlights {
			params.SortBy = "price"
		}
		params.SortOrder = "desc"
	}
}

func countMatches(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}
