// README: Priority-ordered query type classification over keyword rules.
package intent

import "strings"

// Vocabulary shared by the classification rules. Order inside each list does
// not matter; rule order in classifierRules does.
var (
	bookingPhrases = []string{
		"booking", "my bookings", "my trips", "reservation",
		"what did i book", "booking details", "show my bookings",
		"my reservations", "my upcoming trips", "past bookings",
	}
	planningPhrases = []string{
		"checklist", "planning", "prepare", "what to pack", "trip planning",
	}
	suggestionPhrases = []string{
		"suggest", "recommend", "where should", "where to go", "ideas", "inspiration",
	}
	searchKeywords = []string{
		"flight", "hotel", "car", "rental", "accommodation", "airline",
		"vehicle", "book a", "reserve",
	}
	searchVerbs = []string{
		"find", "search", "show me", "look for", "need", "want",
		"suggest", "recommend", "book",
	}
	generalQuestionPhrases = []string{
		"what is", "what's", "what are", "how is", "how's", "tell me about",
		"time in", "timezone", "currency", "language",
		"population", "capital", "famous", "known for", "best time to visit",
		"is it safe", "do i need", "should i", "can you tell me", "explain",
	}
)

// classifierRule is one first-match-wins classification rule.
type classifierRule struct {
	name    string
	matches func(msg string) bool
	result  QueryType
}

// classifierRules is evaluated top to bottom. Booking, weather, and planning
// precede the generic suggestion/question rules because their vocabulary
// overlaps with general questions ("what's my booking" vs "what's the
// capital of France").
var classifierRules = []classifierRule{
	{
		name:    "booking",
		matches: func(m string) bool { return containsAny(m, bookingPhrases) },
		result:  QueryBookingDetails,
	},
	{
		name:    "weather",
		matches: func(m string) bool { return strings.Contains(m, "weather") || strings.Contains(m, "temperature") },
		result:  QueryWeather,
	},
	{
		name:    "planning",
		matches: func(m string) bool { return containsAny(m, planningPhrases) },
		result:  QueryTripPlanning,
	},
	{
		name: "suggestions",
		matches: func(m string) bool {
			return !containsAny(m, searchKeywords) && containsAny(m, suggestionPhrases)
		},
		result: QueryTripSuggestions,
	},
	{
		name: "keyword and verb",
		matches: func(m string) bool {
			return containsAny(m, searchKeywords) && containsAny(m, searchVerbs)
		},
		result: QuerySearch,
	},
	{
		name: "general question",
		matches: func(m string) bool {
			return containsAny(m, generalQuestionPhrases) && !containsAny(m, searchKeywords)
		},
		result: QueryConversation,
	},
	{
		name:    "bare verb",
		matches: func(m string) bool { return containsAny(m, searchVerbs) },
		result:  QuerySearch,
	},
}

// Classify resolves a message to a query type. It is total: when no rule
// matches the message is treated as conversation.
func Classify(message string) QueryType {
	m := strings.ToLower(message)
	for _, rule := range classifierRules {
		if rule.matches(m) {
			return rule.result
		}
	}
	return QueryConversation
}

func containsAny(msg string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
