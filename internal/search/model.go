// README: Collaborator search result model.
package search

import "tripagent/internal/intent"

// Result is an opaque record returned by a collaborator search service.
// Only the fields needed for validation are interpreted; everything else is
// passed through to the caller untouched.
type Result map[string]any

// ArrivalCity returns the destination city of a flight result, "" when absent.
func (r Result) ArrivalCity() string {
	airport, ok := r["arrivalAirport"].(map[string]any)
	if !ok {
		return ""
	}
	city, _ := airport["city"].(string)
	return city
}

// Company returns the rental company (brand) of a car result, "" when absent.
func (r Result) Company() string {
	company, _ := r["company"].(string)
	return company
}

// ValidatedSet is the subset of collaborator results judged consistent with
// the request parameters, capped for presentation.
type ValidatedSet struct {
	Kind          intent.Kind
	Items         []Result
	RejectedCount int
}

// Empty reports whether validation left nothing to show.
func (v ValidatedSet) Empty() bool {
	return len(v.Items) == 0
}
