// Package extract mines numeric facts out of loosely formatted strings.
// Every quantity the system pulls from free text (prices, mileage figures,
// star ratings) funnels through this package so that defaulting behavior
// stays consistent. Extraction never fails: every function resolves to its
// caller-supplied or documented default instead of returning an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRun = regexp.MustCompile(`\d+`)
	numToken = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// DefaultPriceLakh is the representative price, in lakh rupees, assumed when
// a price string carries no recognizable numbers.
const DefaultPriceLakh = 10

// RupeesPerLakh converts the lakh unit used throughout price extraction to
// rupees for budget comparisons.
const RupeesPerLakh = 100_000

// FirstInt returns the first maximal digit run in s, scanning left to right.
// "22-24 kmpl" yields 22. If s contains no digits, def is returned unchanged.
func FirstInt(s string, def int) int {
	match := digitRun.FindString(s)
	if match == "" {
		return def
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		// Digit run too long for an int; treat as unrecognizable.
		return def
	}
	return n
}

// PriceBounds parses a price range string such as "₹6L - ₹9L" or
// "₹1.2Cr - ₹2Cr" into lower/upper bounds in lakh rupees. The first two
// numeric tokens are the bounds; a single token yields a degenerate range.
// A "Cr" marker anywhere in the string promotes both bounds from crore to
// lakh (x100). ok is false when no numeric token is present.
func PriceBounds(s string) (low, high float64, ok bool) {
	tokens := numToken.FindAllString(s, -1)
	if len(tokens) == 0 {
		return 0, 0, false
	}

	low, _ = strconv.ParseFloat(tokens[0], 64)
	high = low
	if len(tokens) > 1 {
		high, _ = strconv.ParseFloat(tokens[1], 64)
	}

	if strings.Contains(strings.ToLower(s), "cr") {
		low *= 100
		high *= 100
	}

	return low, high, true
}

// RepresentativePrice returns the midpoint of the price bounds in lakh
// rupees, or DefaultPriceLakh when the string carries no recognizable
// numbers. This is the single magnitude used for ranking and price bands.
func RepresentativePrice(s string) float64 {
	low, high, ok := PriceBounds(s)
	if !ok {
		return DefaultPriceLakh
	}
	return (low + high) / 2
}
