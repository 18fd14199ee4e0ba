// README: System prompt construction for the conversational branch.
package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripagent/internal/userctx"
)

const systemPrompt = `You are a helpful AI travel assistant for Voyago, a travel booking platform.
Your role is to help users with all aspects of travel planning and booking.

Key capabilities:
1. Search for flights, hotels, and car rentals using natural language
2. Provide booking details and trip information
3. Offer trip planning checklists and travel tips
4. Suggest destinations and travel ideas
5. Answer questions about travel, destinations, bookings, and general travel advice
6. Help users plan complete trips

Guidelines:
- Be friendly, helpful, and conversational
- If you don't have enough information, ask clarifying questions
- Use the user's booking history and preferences to personalize recommendations
- For booking-related queries, provide clear, organized information
- For trip planning, be thorough and helpful
- For suggestions, be creative and personalized

You can handle:
- Search queries: "Find flights to Paris", "Show me hotels in NYC"
- Booking queries: "What are my bookings?", "Show my trip details"
- Planning queries: "Trip planning checklist", "What should I pack?"
- Suggestion queries: "Suggest a trip", "Where should I go?"
- General questions: Travel advice, destination info, etc.`

// buildSystemPrompt appends the user's context to the base instructions so
// the model can personalize its reply.
func buildSystemPrompt(user *userctx.Context) string {
	if user == nil {
		return systemPrompt
	}

	var parts []string
	if user.Name != "" {
		parts = append(parts, "User name: "+user.Name)
	}
	if len(user.Preferences) > 0 {
		if prefs, err := json.MarshalIndent(user.Preferences, "", "  "); err == nil {
			parts = append(parts, "User preferences: "+string(prefs))
		}
	}
	if n := len(user.BookingHistory); n > 0 {
		parts = append(parts, fmt.Sprintf("User has %d past bookings", n))
	}
	if n := len(user.Favourites); n > 0 {
		parts = append(parts, fmt.Sprintf("User has %d saved favourites", n))
	}
	if len(parts) == 0 {
		return systemPrompt
	}
	return systemPrompt + "\n\nUser Context:\n" + strings.Join(parts, "\n")
}
