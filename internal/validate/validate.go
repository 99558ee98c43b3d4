package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reQ   = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	reCat = regexp.MustCompile(`^[A-Za-z0-9 '&_-]{1,64}$`)
)

// Q validates a search query: trims, enforces allowed characters and max length.
// A whitespace-only term is treated as empty.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// Category validates a category name carried in the URL.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, reCat.MatchString(s)
}

// ProductID parses a catalog product id (positive integer).
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Qty parses a quantity, defaulting to 1 and clamping to 50 to avoid abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// QtySet parses a raw quantity for cart updates without clamping the floor,
// so the cart store itself can refuse values below 1. Caps at 50.
func QtySet(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	if n > 50 {
		n = 50
	}
	return n, true
}

// Page parses a 1-based page number; anything invalid falls back to page 1.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
