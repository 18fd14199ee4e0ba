// README: Provider error taxonomy (missing credentials vs transient quota failures).
package ai

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// ErrNotConfigured means no provider credentials are present. This is
// permanent for the process lifetime and always routes callers to their
// rule-based or canned fallback.
var ErrNotConfigured = errors.New("generative provider not configured")

// IsRateLimited reports whether the error looks like a quota or rate-limit
// rejection from the provider. Used to pick the fallback message wording;
// such errors are never surfaced verbatim to the user.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 429 {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"quota", "429", "rate limit", "resource exhausted", "resource_exhausted"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
