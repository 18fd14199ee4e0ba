// README: Booking-history replies and formatting.
package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tripagent/internal/userctx"
)

const (
	loginForBookingsReply = "I'd be happy to help you with your booking details! Please log in to view your bookings."

	badUserIDReply = "I'm having trouble accessing your booking information. " +
		"Please make sure you're logged in correctly and try refreshing the page."

	bookingsUnavailableReply = "I'm having trouble accessing your booking information right now. Please try again in a moment."

	noBookingsReply = "You don't have any bookings yet. Would you like to search for flights, hotels, or cars?"
)

// objectIDPattern matches the 24-hex record ids the user service issues.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// bookingDetailsReply answers a booking-history query. Without a logged-in
// user no collaborator call is made at all.
func (s *Service) bookingDetailsReply(ctx context.Context, req Request) string {
	if req.UserID == "" {
		return loginForBookingsReply
	}
	if !objectIDPattern.MatchString(req.UserID) {
		s.log.WithField("user_id", req.UserID).Warn("malformed user id on bookings query")
		return badUserIDReply
	}

	bookings, err := s.users.Bookings(ctx, req.UserID, req.Token)
	if err != nil {
		s.log.WithError(err).Warn("booking history fetch failed")
		return bookingsUnavailableReply
	}
	if len(bookings) == 0 {
		return noBookingsReply
	}
	return "Here are your booking details:\n\n" + formatBookings(bookings)
}

func formatBookings(bookings []userctx.Booking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 You have %d booking(s):\n\n", len(bookings))

	for _, booking := range bookings {
		switch booking.Type {
		case "flight":
			origin := nestedDetail(booking.Details, "departureAirport", "city")
			dest := nestedDetail(booking.Details, "arrivalAirport", "city")
			airline := detailString(booking.Details, "airline")
			when := prettyDate(firstDetail(booking.Details, "departureDateTime", "departureDate"), "Jan 02, 2006")
			price := detailNumber(booking.Details, "totalAmountPaid", "ticketPrice")
			fmt.Fprintf(&b, "✈️ Flight %s: %s → %s\n   %s • %s • $%.2f • %s\n\n",
				booking.BookingID, orUnknown(origin), orUnknown(dest), orUnknown(airline), when, price, titleCase(booking.Status))

		case "hotel":
			name := detailString(booking.Details, "hotelName")
			city := detailString(booking.Details, "city")
			state := detailString(booking.Details, "state")
			checkIn := prettyDate(detailString(booking.Details, "checkIn"), "Jan 02")
			checkOut := prettyDate(detailString(booking.Details, "checkOut"), "Jan 02")
			guests := int(detailNumber(booking.Details, "guests"))
			if guests == 0 {
				guests = 1
			}
			price := detailNumber(booking.Details, "totalAmountPaid", "pricePerNight")
			location := city
			if state != "" {
				location = city + ", " + state
			}
			fmt.Fprintf(&b, "🏨 Hotel %s: %s\n   %s • %s - %s • %d guest(s) • $%.2f • %s\n\n",
				booking.BookingID, orUnknown(name), orUnknown(location), checkIn, checkOut, guests, price, titleCase(booking.Status))

		case "car":
			company := detailString(booking.Details, "company")
			model := detailString(booking.Details, "model")
			carName := strings.TrimSpace(company + " " + model)
			if carName == "" {
				carName = strings.TrimSpace(detailString(booking.Details, "carType") + " Rental")
			}
			city := nestedDetail(booking.Details, "location", "city")
			pickup := prettyDate(detailString(booking.Details, "pickupDate"), "Jan 02")
			ret := prettyDate(detailString(booking.Details, "returnDate"), "Jan 02")
			price := detailNumber(booking.Details, "totalAmountPaid", "dailyRentalPrice")
			fmt.Fprintf(&b, "🚗 Car %s: %s\n   %s • %s - %s • $%.2f • %s\n\n",
				booking.BookingID, carName, orUnknown(city), pickup, ret, price, titleCase(booking.Status))

		default:
			fmt.Fprintf(&b, "📦 %s %s: %s\n\n", titleCase(booking.Type), booking.BookingID, titleCase(booking.Status))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func detailString(details map[string]any, key string) string {
	v, _ := details[key].(string)
	return v
}

func firstDetail(details map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := details[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func nestedDetail(details map[string]any, outer, inner string) string {
	m, ok := details[outer].(map[string]any)
	if !ok {
		return ""
	}
	v, _ := m[inner].(string)
	return v
}

func detailNumber(details map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := details[key].(float64); ok {
			return v
		}
	}
	return 0
}

// prettyDate renders a collaborator timestamp (RFC3339 or bare date) in the
// given layout, falling back to the raw first ten characters.
func prettyDate(raw, layout string) string {
	if raw == "" {
		return ""
	}
	cleaned := strings.NewReplacer("Z", "", "+00:00", "").Replace(raw)
	if t, err := time.Parse("2006-01-02T15:04:05", cleaned); err == nil {
		return t.Format(layout)
	}
	if len(cleaned) >= 10 {
		if t, err := time.Parse("2006-01-02", cleaned[:10]); err == nil {
			return t.Format(layout)
		}
		return cleaned[:10]
	}
	return cleaned
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
