// README: Chat turn request/response model.
package chat

import (
	"tripagent/internal/intent"
	"tripagent/internal/search"
)

// Message is one prior turn supplied by the caller. The pipeline treats the
// history as append-only input; it never mutates or stores it.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Request is one incoming chat turn.
type Request struct {
	Message string
	History []Message
	UserID  string
	Token   string
}

// Response is the composed outcome of one turn. Results is keyed by kind
// ({"flights": [...]}) to match what the transport layer serves.
type Response struct {
	Reply      string                     `json:"response"`
	Results    map[string][]search.Result `json:"search_results,omitempty"`
	SearchKind intent.Kind                `json:"search_type,omitempty"`
}
