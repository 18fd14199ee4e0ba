// README: Post-search validation; rejects results inconsistent with the request.
package search

import (
	"strings"

	"tripagent/internal/intent"
)

// maxPresented caps how many validated results are surfaced per response.
const maxPresented = 10

// Validate filters raw collaborator results against the extracted parameters.
// Collaborators may apply loose or no filtering; a destination- or
// brand-qualified request must never silently come back with mismatched
// results, so a filter that matches nothing yields an empty set rather than
// the unrelated originals.
func Validate(kind intent.Kind, params intent.Params, items []Result) ValidatedSet {
	set := ValidatedSet{Kind: kind}

	switch kind {
	case intent.KindFlights:
		set.Items, set.RejectedCount = validateFlights(params, items)
	case intent.KindCars:
		set.Items, set.RejectedCount = validateCars(params, items)
	default:
		// Hotels rely on the collaborator's own city filtering.
		set.Items = items
	}

	if len(set.Items) > maxPresented {
		set.Items = set.Items[:maxPresented]
	}
	return set
}

// validateFlights keeps flights whose arrival city matches the requested
// destination (case-insensitive, substring in either direction). A query with
// neither origin nor destination is rejected wholesale: an unconstrained
// flight search must not surface arbitrary flights.
func validateFlights(params intent.Params, items []Result) ([]Result, int) {
	if params.To == "" {
		if params.From != "" {
			return items, 0
		}
		return nil, len(items)
	}

	want := strings.ToLower(strings.TrimSpace(params.To))
	var kept []Result
	for _, item := range items {
		city := strings.ToLower(strings.TrimSpace(item.ArrivalCity()))
		if city == "" {
			continue
		}
		if strings.Contains(city, want) || strings.Contains(want, city) {
			kept = append(kept, item)
		}
	}
	return kept, len(items) - len(kept)
}

// validateCars keeps cars whose company equals the requested make exactly
// (case-insensitive). Substring matching is deliberately not used here:
// brand names can be substrings of each other.
func validateCars(params intent.Params, items []Result) ([]Result, int) {
	if params.Make == "" {
		return items, 0
	}

	want := strings.ToLower(strings.TrimSpace(params.Make))
	var kept []Result
	for _, item := range items {
		if strings.ToLower(strings.TrimSpace(item.Company())) == want {
			kept = append(kept, item)
		}
	}
	return kept, len(items) - len(kept)
}
