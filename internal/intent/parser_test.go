// README: Tests for the rule-based intent parser.
package intent

import (
	"reflect"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestParseFlightsWithDestinationAndPrice(t *testing.T) {
	p := NewParserAt(fixedClock)

	got := p.Parse("Find flights to Paris under $500")
	if got.Kind != KindFlights {
		t.Fatalf("kind = %q, want %q", got.Kind, KindFlights)
	}
	if got.Params.To != "Paris" {
		t.Errorf("to = %q, want Paris", got.Params.To)
	}
	if got.Params.From != "" {
		t.Errorf("from = %q, want empty", got.Params.From)
	}
	if got.Params.MaxPrice == nil || *got.Params.MaxPrice != 500 {
		t.Errorf("maxPrice = %v, want 500", got.Params.MaxPrice)
	}
	if got.Params.MinPrice != nil {
		t.Errorf("minPrice = %v, want nil", got.Params.MinPrice)
	}
}

func TestParseFlightsOriginAndDestination(t *testing.T) {
	p := NewParserAt(fixedClock)

	got := p.Parse("Find cheap flights from New York to Paris tomorrow")
	if got.Kind != KindFlights {
		t.Fatalf("kind = %q, want %q", got.Kind, KindFlights)
	}
	if got.Params.From != "New York" || got.Params.To != "Paris" {
		t.Errorf("from/to = %q/%q, want New York/Paris", got.Params.From, got.Params.To)
	}
	if got.Params.DepartureDate != "2025-03-16" {
		t.Errorf("departureDate = %q, want 2025-03-16", got.Params.DepartureDate)
	}
	if got.Params.SortBy != "price" || got.Params.SortOrder != "asc" {
		t.Errorf("sort = %q/%q, want price/asc", got.Params.SortBy, got.Params.SortOrder)
	}
}

// Origin/destination markers work on all-lowercase text too: "from paris to
// tokyo" must not end up with the destination in the origin field.
func TestParseFlightsLowercaseOriginAndDestination(t *testing.T) {
	p := NewParserAt(fixedClock)

	got := p.Parse("find flights from paris to tokyo")
	if got.Kind != KindFlights {
		t.Fatalf("kind = %q, want %q", got.Kind, KindFlights)
	}
	if got.Params.From != "Paris" || got.Params.To != "Tokyo" {
		t.Errorf("from/to = %q/%q, want Paris/Tokyo", got.Params.From, got.Params.To)
	}
}

func TestParseFlightsLowercaseDestinationOnly(t *testing.T) {
	p := NewParserAt(fixedClock)

	got := p.Parse("find flights to paris under $500")
	if got.Params.To != "Paris" {
		t.Errorf("to = %q, want Paris", got.Params.To)
	}
	if got.Params.From != "" {
		t.Errorf("from = %q, want empty", got.Params.From)
	}
	if got.Params.MaxPrice == nil || *got.Params.MaxPrice != 500 {
		t.Errorf("maxPrice = %v, want 500", got.Params.MaxPrice)
	}
}

func TestParseHotels(t *testing.T) {
	p := NewParserAt(fixedClock)

	got := p.Parse("Show me hotels in Tokyo next week")
	if got.Kind != KindHotels {
		t.Fatalf("kind = %q, want %q", got.Kind, KindHotels)
	}
	if got.Params.City != "Tokyo" {
		t.Errorf("city = %q, want Tokyo", got.Params.City)
	}
	if got.Params.CheckIn != "2025-03-22" {
		t.Errorf("checkIn = %q, want 2025-03-22", got.Params.CheckIn)
	}
	if got.Params.To != "" {
		t.Errorf("to = %q, want empty for hotels", got.Params.To)
	}
}

func TestParseCarsWithMake(t *testing.T) {
	p := NewParserAt(fixedClock)

	got := p.Parse("I need a Toyota rental in Miami tomorrow")
	if got.Kind != KindCars {
		t.Fatalf("kind = %q, want %q", got.Kind, KindCars)
	}
	if got.Params.Make != "Toyota" {
		t.Errorf("make = %q, want Toyota", got.Params.Make)
	}
	if got.Params.City != "Miami" {
		t.Errorf("city = %q, want Miami", got.Params.City)
	}
	if got.Params.PickupDate != "2025-03-16" {
		t.Errorf("pickupDate = %q, want 2025-03-16", got.Params.PickupDate)
	}
}

func TestParseKindVoting(t *testing.T) {
	p := NewParserAt(fixedClock)

	tests := []struct {
		message string
		want    Kind
	}{
		{"find me a flight", KindFlights},
		{"hotel room for two", KindHotels},
		{"rental car please", KindCars},
		{"somewhere nice", KindFlights}, // unclear defaults to flights
		{"hotel near the airport", KindHotels},
	}
	for _, tt := range tests {
		if got := p.Parse(tt.message).Kind; got != tt.want {
			t.Errorf("Parse(%q).Kind = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestParseSortHints(t *testing.T) {
	p := NewParserAt(fixedClock)

	got := p.Parse("best hotels in Rome")
	if got.Params.SortBy != "rating" || got.Params.SortOrder != "desc" {
		t.Errorf("hotel sort = %q/%q, want rating/desc", got.Params.SortBy, got.Params.SortOrder)
	}

	got = p.Parse("best flights to London")
	if got.Params.SortBy != "price" || got.Params.SortOrder != "desc" {
		t.Errorf("flight sort = %q/%q, want price/desc", got.Params.SortBy, got.Params.SortOrder)
	}
}

// Parsing the same message twice yields identical output: the parser holds no
// per-call state beyond the injected clock.
func TestParseIsDeterministic(t *testing.T) {
	p := NewParserAt(fixedClock)
	msg := "Find cheap flights from Boston to Madrid next week under $400"

	first := p.Parse(msg)
	second := p.Parse(msg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parse not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
