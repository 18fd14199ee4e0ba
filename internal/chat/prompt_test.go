// README: Tests for system prompt construction.
package chat

import (
	"strings"
	"testing"

	"tripagent/internal/userctx"
)

func TestBuildSystemPromptWithoutUser(t *testing.T) {
	if got := buildSystemPrompt(nil); got != systemPrompt {
		t.Fatal("nil user should yield the base prompt unchanged")
	}
}

func TestBuildSystemPromptWithUser(t *testing.T) {
	user := &userctx.Context{
		Name:           "Ada",
		Preferences:    map[string]any{"seat": "window"},
		BookingHistory: []userctx.Booking{{Type: "flight"}},
	}

	got := buildSystemPrompt(user)
	for _, want := range []string{"User Context:", "User name: Ada", "window", "1 past bookings"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.HasPrefix(got, systemPrompt) {
		t.Error("user context must be appended after the base prompt")
	}
}
