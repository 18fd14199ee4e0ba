// README: Phrase-pattern extractors for locations, dates, prices, and car makes.
package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Location patterns, most specific first. The capitalized variants run first
// so mixed-case text binds tightly ("to Paris under $500" captures just
// "Paris"); the case-insensitive fallbacks handle all-lowercase messages
// ("weather in new york") and rely on trimLocationMatch to shed a trailing
// non-place word.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bto\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
	regexp.MustCompile(`\bin\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
	regexp.MustCompile(`\bfrom\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?i:airport|city)\b`),
	regexp.MustCompile(`(?i)\bto\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\b`),
	regexp.MustCompile(`(?i)\bin\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\b`),
	regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\b`),
}

// locationStopwords keeps the fallback patterns from capturing articles and
// pronouns ("to the", "in my").
var locationStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "me": true, "your": true,
}

// trailingNoiseWords follow a place name inside the same phrase ("to paris
// under $500", "from paris to tokyo") and are never part of it.
var trailingNoiseWords = map[string]bool{
	"to": true, "from": true, "in": true, "on": true, "at": true, "for": true,
	"with": true, "and": true, "or": true, "under": true, "below": true,
	"over": true, "above": true, "less": true, "more": true, "than": true,
	"max": true, "maximum": true, "min": true, "minimum": true,
	"next": true, "this": true, "that": true, "today": true, "tomorrow": true,
	"tonight": true, "please": true,
}

// ExtractLocation finds the first place name mentioned in the text.
// Returns "" when nothing plausible is found.
func ExtractLocation(text string) string {
	for _, p := range locationPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		loc := trimLocationMatch(m[1])
		if loc == "" {
			continue
		}
		return capitalizeWords(loc)
	}
	return ""
}

// trimLocationMatch drops a trailing noise word from a two-word capture and
// rejects captures that start with an article or pronoun.
func trimLocationMatch(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 2 && trailingNoiseWords[strings.ToLower(words[1])] {
		words = words[:1]
	}
	if len(words) == 0 || locationStopwords[strings.ToLower(words[0])] {
		return ""
	}
	return strings.Join(words, " ")
}

var (
	relativeDatePattern = regexp.MustCompile(`\bin\s+(\d{1,2})\s+(days?|weeks?|months?)\b`)
	numericDatePattern  = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	monthDayPattern     = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

// ExtractDate resolves a relative or absolute date phrase to YYYY-MM-DD,
// evaluated against now. Returns "" when no date is mentioned.
func ExtractDate(text string, now time.Time) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "today"):
		return now.Format(dateLayout)
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(dateLayout)
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7).Format(dateLayout)
	case strings.Contains(lower, "next month"):
		return now.AddDate(0, 0, 30).Format(dateLayout)
	}

	if m := relativeDatePattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return now.AddDate(0, 0, n).Format(dateLayout)
		case strings.HasPrefix(m[2], "week"):
			return now.AddDate(0, 0, 7*n).Format(dateLayout)
		default:
			return now.AddDate(0, n, 0).Format(dateLayout)
		}
	}

	if m := numericDatePattern.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}

	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		month := monthsByName[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 {
			year := now.Year()
			// A month that already passed refers to next year.
			candidate := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
			if candidate.Before(now.AddDate(0, 0, -1)) {
				year++
			}
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}

	return ""
}

var (
	maxPricePattern   = regexp.MustCompile(`\b(?:under|below|less than|max|maximum)\s+\$?(\d+)`)
	minPricePattern   = regexp.MustCompile(`\b(?:over|above|more than|min|minimum)\s+\$?(\d+)`)
	priceRangePattern = regexp.MustCompile(`\$\s*(\d+)\s*(?:to|-)\s*\$?\s*(\d+)`)
)

// ExtractPriceRange finds min/max price bounds from comparison phrases.
// An explicit "$X to $Y" range wins over single-sided bounds.
func ExtractPriceRange(text string) (minPrice, maxPrice *float64) {
	lower := strings.ToLower(text)

	if m := maxPricePattern.FindStringSubmatch(lower); m != nil {
		maxPrice = parsePrice(m[1])
	}
	if m := minPricePattern.FindStringSubmatch(lower); m != nil {
		minPrice = parsePrice(m[1])
	}
	if m := priceRangePattern.FindStringSubmatch(lower); m != nil {
		minPrice = parsePrice(m[1])
		maxPrice = parsePrice(m[2])
	}
	return minPrice, maxPrice
}

// carMakes is the fixed vehicle brand vocabulary. Matching prefers longer
// names so "mercedes-benz" wins over "mercedes".
var carMakes = []string{
	"toyota", "honda", "ford", "chevrolet", "nissan", "bmw", "mercedes", "mercedes-benz",
	"audi", "volkswagen", "hyundai", "kia", "mazda", "subaru", "jeep", "dodge", "lexus",
	"acura", "infiniti", "cadillac", "lincoln", "buick", "gmc", "ram", "tesla", "chrysler",
	"volvo", "porsche", "jaguar", "land rover", "mini", "fiat", "alfa romeo", "mitsubishi",
}

// ExtractMake matches a car brand name mentioned in the text.
func ExtractMake(text string) string {
	lower := strings.ToLower(text)
	best := ""
	for _, brand := range carMakes {
		if strings.Contains(lower, brand) && len(brand) > len(best) {
			best = brand
		}
	}
	return capitalizeWords(best)
}

func parsePrice(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
