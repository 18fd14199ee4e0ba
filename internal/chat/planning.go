// README: Trip planning checklist and trip suggestion replies.
package chat

import (
	"context"
	"fmt"
	"strings"

	"tripagent/internal/intent"
	"tripagent/internal/userctx"
)

var checklistLines = []string{
	"📋 TRIP PLANNING CHECKLIST",
	"",
	"✅ Pre-Travel:",
	"  • Book flights, hotels, and car rentals",
	"  • Check passport validity (6+ months)",
	"  • Get travel insurance",
	"  • Research destination and local customs",
	"  • Check visa requirements",
	"  • Notify bank/credit card companies",
	"  • Download offline maps",
	"",
	"✅ Packing:",
	"  • Pack essentials (clothes, toiletries, medications)",
	"  • Bring travel documents (passport, tickets, confirmations)",
	"  • Pack chargers and adapters",
	"  • Bring first aid kit",
	"",
	"✅ Before Departure:",
	"  • Check-in online (24 hours before)",
	"  • Confirm hotel and car rental reservations",
	"  • Print or save digital confirmations",
	"  • Arrange airport transportation",
	"  • Set up travel alerts",
	"",
	"✅ During Travel:",
	"  • Keep important documents safe",
	"  • Stay hydrated",
	"  • Follow local laws and customs",
	"  • Keep emergency contacts handy",
}

var staticSuggestions = []string{
	"🌍 Popular Destinations: New York, Los Angeles, Miami, Chicago, Denver",
	"✈️ Best Time to Book: 6-8 weeks in advance for best prices",
	"🏨 Hotel Tips: Book during weekdays for better rates",
	"🚗 Car Rentals: Book in advance and compare prices",
}

// planningReply renders the checklist, naming the destination when the
// message points at one.
func planningReply(message string) string {
	destination := ""
	lower := strings.ToLower(message)
	if strings.Contains(lower, "to") || strings.Contains(lower, "for") {
		destination = intent.ExtractLocation(message)
	}

	lines := checklistLines
	if destination != "" {
		lines = append(lines[:2:2], append([]string{"📍 Destination: " + destination, ""}, lines[2:]...)...)
	}
	return strings.Join(lines, "\n")
}

// suggestionsReply builds trip suggestions from a sample of current flights
// plus the user's own history, degrading to static tips when neither is
// available.
func (s *Service) suggestionsReply(ctx context.Context, user *userctx.Context) string {
	var suggestions []string

	if results, err := s.searcher.Search(ctx, intent.KindFlights, intent.Params{}); err == nil {
		seen := map[string]bool{}
		var destinations []string
		for _, r := range results {
			if len(destinations) == 5 {
				break
			}
			city := r.ArrivalCity()
			if city == "" || seen[city] {
				continue
			}
			seen[city] = true
			destinations = append(destinations, city)
		}
		if len(destinations) > 0 {
			suggestions = append(suggestions, "🌍 Popular Destinations: "+strings.Join(destinations, ", "))
		}
	} else {
		s.log.WithError(err).Debug("popular destination sample failed")
	}

	if user != nil {
		if n := len(user.BookingHistory); n > 0 {
			suggestions = append(suggestions, fmt.Sprintf("📅 You have %d past booking(s). Consider revisiting your favorite destinations!", n))
		}
		if n := len(user.Favourites); n > 0 {
			suggestions = append(suggestions, fmt.Sprintf("❤️ You have %d saved favorite(s). Check them out for your next trip!", n))
		}
	}

	if len(suggestions) == 0 {
		suggestions = staticSuggestions
	}

	return fmt.Sprintf("Here are some trip suggestions for you:\n\n%s\n\nWould you like me to search for specific flights, hotels, or cars?",
		strings.Join(suggestions, "\n"))
}
