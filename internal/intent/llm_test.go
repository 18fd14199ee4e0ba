// README: Tests for the LLM extractor and its rule-based fallback.
package intent

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tripagent/internal/ai"
)

// jsonProvider returns canned provider output for extraction tests.
type jsonProvider struct {
	reply string
	err   error
}

func (p *jsonProvider) Complete(ctx context.Context, system string, messages []ai.Message) (string, error) {
	return "", errors.New("not used")
}

func (p *jsonProvider) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	return p.reply, p.err
}

func TestExtractNestedParams(t *testing.T) {
	provider := &jsonProvider{reply: `{"type": "flights", "params": {"to": "Paris", "maxPrice": 500}}`}
	e := NewExtractor(provider, NewParserAt(fixedClock), nil)

	got := e.Extract(context.Background(), "Find flights to Paris under $500")
	if got.Kind != KindFlights {
		t.Fatalf("kind = %q, want flights", got.Kind)
	}
	if got.Params.To != "Paris" {
		t.Errorf("to = %q, want Paris", got.Params.To)
	}
	if got.Params.MaxPrice == nil || *got.Params.MaxPrice != 500 {
		t.Errorf("maxPrice = %v, want 500", got.Params.MaxPrice)
	}
}

func TestExtractFlatParams(t *testing.T) {
	provider := &jsonProvider{reply: `{"type": "hotels", "city": "Rome", "checkIn": "2025-04-01"}`}
	e := NewExtractor(provider, NewParserAt(fixedClock), nil)

	got := e.Extract(context.Background(), "hotels in Rome")
	if got.Kind != KindHotels {
		t.Fatalf("kind = %q, want hotels", got.Kind)
	}
	if got.Params.City != "Rome" || got.Params.CheckIn != "2025-04-01" {
		t.Errorf("params = %+v", got.Params)
	}
}

func TestExtractStripsCodeFence(t *testing.T) {
	provider := &jsonProvider{reply: "```json\n{\"type\": \"cars\", \"make\": \"Toyota\"}\n```"}
	e := NewExtractor(provider, NewParserAt(fixedClock), nil)

	got := e.Extract(context.Background(), "Toyota rentals")
	if got.Kind != KindCars || got.Params.Make != "Toyota" {
		t.Fatalf("got %+v, want cars/Toyota", got)
	}
}

func TestExtractFallsBackOnProviderError(t *testing.T) {
	msg := "Find flights to Paris under $500"
	fallback := NewParserAt(fixedClock)
	e := NewExtractor(&jsonProvider{err: errors.New("quota exceeded: 429")}, fallback, nil)

	got := e.Extract(context.Background(), msg)
	if want := fallback.Parse(msg); !reflect.DeepEqual(got, want) {
		t.Fatalf("fallback mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestExtractFallsBackOnUnusableJSON(t *testing.T) {
	msg := "Find hotels in Tokyo"
	fallback := NewParserAt(fixedClock)

	for _, reply := range []string{"null", "not json at all", `"just a string"`, `[1, 2, 3]`} {
		e := NewExtractor(&jsonProvider{reply: reply}, fallback, nil)
		got := e.Extract(context.Background(), msg)
		if want := fallback.Parse(msg); !reflect.DeepEqual(got, want) {
			t.Errorf("reply %q: fallback mismatch:\ngot:  %+v\nwant: %+v", reply, got, want)
		}
	}
}

func TestExtractNilProviderUsesFallback(t *testing.T) {
	msg := "cheap flights to Madrid"
	fallback := NewParserAt(fixedClock)
	e := NewExtractor(nil, fallback, nil)

	got := e.Extract(context.Background(), msg)
	if want := fallback.Parse(msg); !reflect.DeepEqual(got, want) {
		t.Fatalf("fallback mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestNormalizeKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"flights", KindFlights},
		{" Hotels ", KindHotels},
		{"CARS", KindCars},
		{"boats", KindNone},
		{"", KindNone},
	}
	for _, tt := range tests {
		if got := normalizeKind(tt.in); got != tt.want {
			t.Errorf("normalizeKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
