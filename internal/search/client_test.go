// README: Tests for the collaborator search clients.
package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripagent/internal/intent"
)

func TestSearchFlightsBareList(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/flights" {
			t.Errorf("path = %q, want /api/flights", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": [{"flightNumber": "VG100"}, {"flightNumber": "VG200"}]}`))
	}))
	defer srv.Close()

	c := NewServiceClient(srv.URL, srv.URL, srv.URL, nil)
	results, err := c.Search(context.Background(), intent.KindFlights, intent.Params{To: "Paris"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if gotQuery != "to=Paris" {
		t.Errorf("query = %q, want to=Paris", gotQuery)
	}
}

func TestSearchFlightsPaginatedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": {"flights": [{"flightNumber": "VG100"}], "total": 1}}`))
	}))
	defer srv.Close()

	c := NewServiceClient(srv.URL, srv.URL, srv.URL, nil)
	results, err := c.Search(context.Background(), intent.KindFlights, intent.Params{To: "Paris"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

// The car service does not understand a make parameter; it must be stripped
// from the query and applied as a company filter on the response.
func TestSearchCarsStripsMakeAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("make") != "" {
			t.Errorf("make forwarded to car service: %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": [
			{"company": "Toyota", "model": "Corolla"},
			{"company": "Honda", "model": "Civic"},
			{"company": "Toyota", "model": "Camry"}
		]}`))
	}))
	defer srv.Close()

	c := NewServiceClient(srv.URL, srv.URL, srv.URL, nil)
	results, err := c.Search(context.Background(), intent.KindCars, intent.Params{Make: "Toyota", City: "Miami"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 after company filter", len(results))
	}
	for _, r := range results {
		if r.Company() != "Toyota" {
			t.Errorf("company = %q, want Toyota", r.Company())
		}
	}
}

func TestSearchServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewServiceClient(srv.URL, srv.URL, srv.URL, nil)
	if _, err := c.Search(context.Background(), intent.KindHotels, intent.Params{City: "Rome"}); err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestSearchEnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "message": "database unavailable"}`))
	}))
	defer srv.Close()

	c := NewServiceClient(srv.URL, srv.URL, srv.URL, nil)
	if _, err := c.Search(context.Background(), intent.KindFlights, intent.Params{To: "Paris"}); err == nil {
		t.Fatal("expected error on success=false envelope")
	}
}

func TestSearchUnknownKind(t *testing.T) {
	c := NewServiceClient("http://unused", "http://unused", "http://unused", nil)
	if _, err := c.Search(context.Background(), intent.KindNone, intent.Params{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
