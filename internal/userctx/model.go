// README: User context model (preferences, bookings, favourites).
package userctx

// Booking is one record from the user's booking history. Details keep the
// collaborator's shape; only well-known keys are interpreted for formatting.
type Booking struct {
	Type      string         `json:"type"`
	BookingID string         `json:"bookingId"`
	Status    string         `json:"status"`
	Details   map[string]any `json:"details"`
}

// Context carries everything known about the requesting user for one turn.
type Context struct {
	UserID         string
	Name           string
	Email          string
	Preferences    map[string]any
	BookingHistory []Booking
	Favourites     []map[string]any
}
