package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9_-]`)

// GenerateSlug converts free text into a URL-safe token: trim surrounding
// whitespace, lowercase, then replace every character outside [a-z0-9_-]
// with a single hyphen. Consecutive hyphens are kept as-is and hyphens
// produced at the edges are not stripped, so the output is a deterministic
// one-to-one image of the input ("Hello, World!" -> "hello--world-").
func GenerateSlug(input string) string {
	lowered := strings.ToLower(strings.TrimSpace(input))

	return nonSlugChars.ReplaceAllString(lowered, "-")
}

// MakeUnique returns base if it is still free, otherwise probes base-2,
// base-3, ... until exists reports a free candidate. The loop has no upper
// bound; every probe is one store round-trip. That is a deliberate
// trade-off carried over from the uniqueness contract, not a defect.
func MakeUnique(base string, exists func(candidate string) bool) string {
	candidate := base

	for i := 2; exists(candidate); i++ {
		candidate = base + "-" + strconv.Itoa(i)
	}

	return candidate
}
