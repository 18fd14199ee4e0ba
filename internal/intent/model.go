// README: Query types and search intent model shared by the parsers.
package intent

import (
	"net/url"
	"strconv"
)

// QueryType labels what the user is asking for. Classification is total:
// every message resolves to exactly one type, defaulting to conversation.
type QueryType string

const (
	QueryBookingDetails  QueryType = "booking_details"
	QueryWeather         QueryType = "weather"
	QueryTripPlanning    QueryType = "trip_planning"
	QueryTripSuggestions QueryType = "trip_suggestions"
	QuerySearch          QueryType = "search"
	QueryConversation    QueryType = "conversation"
)

// Kind is the search domain a message implies. Empty means no search.
type Kind string

const (
	KindNone    Kind = ""
	KindFlights Kind = "flights"
	KindHotels  Kind = "hotels"
	KindCars    Kind = "cars"
)

// Params holds extracted search parameters. A zero value means the field was
// not present in the message; fields are never filled with placeholders that
// could be mistaken for user intent.
type Params struct {
	From          string   `json:"from,omitempty"`
	To            string   `json:"to,omitempty"`
	City          string   `json:"city,omitempty"`
	Make          string   `json:"make,omitempty"`
	DepartureDate string   `json:"departureDate,omitempty"`
	ReturnDate    string   `json:"returnDate,omitempty"`
	CheckIn       string   `json:"checkIn,omitempty"`
	CheckOut      string   `json:"checkOut,omitempty"`
	PickupDate    string   `json:"pickupDate,omitempty"`
	DropoffDate   string   `json:"dropoffDate,omitempty"`
	MinPrice      *float64 `json:"minPrice,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
	SortBy        string   `json:"sortBy,omitempty"`
	SortOrder     string   `json:"sortOrder,omitempty"`
}

// Intent is the structured result of parsing one message.
type Intent struct {
	Kind   Kind   `json:"type"`
	Params Params `json:"params"`
}

// IsSearch reports whether the intent names a searchable domain.
func (i Intent) IsSearch() bool {
	switch i.Kind {
	case KindFlights, KindHotels, KindCars:
		return true
	}
	return false
}

// Destination returns the place the user is heading to, if any.
func (p Params) Destination() string {
	if p.To != "" {
		return p.To
	}
	return p.City
}

// Query encodes the set parameters as collaborator query values.
func (p Params) Query() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("from", p.From)
	set("to", p.To)
	set("city", p.City)
	set("make", p.Make)
	set("departureDate", p.DepartureDate)
	set("returnDate", p.ReturnDate)
	set("checkIn", p.CheckIn)
	set("checkOut", p.CheckOut)
	set("pickupDate", p.PickupDate)
	set("dropoffDate", p.DropoffDate)
	set("sortBy", p.SortBy)
	set("sortOrder", p.SortOrder)
	if p.MinPrice != nil {
		v.Set("minPrice", trimFloat(*p.MinPrice))
	}
	if p.MaxPrice != nil {
		v.Set("maxPrice", trimFloat(*p.MaxPrice))
	}
	return v
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
