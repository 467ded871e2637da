// Package domain contains core business entities and rules.
package domain

import "strings"

// Definition is a single slang definition returned by the dictionary
// provider. This is a domain entity - it has no knowledge of external systems.
type Definition struct {
	// Word is the term this definition belongs to, as spelled by the provider.
	Word string

	// Meaning is the definition text. May be empty for malformed entries.
	Meaning string

	// Example is an optional usage example.
	Example string

	// Author is who submitted the definition. Empty when the provider
	// omits it; presentation layers substitute "unknown".
	Author string

	// ThumbsUp and ThumbsDown are community vote counts.
	// Missing counts default to zero rather than being treated as errors.
	ThumbsUp   int
	ThumbsDown int
}

// NewLookupTerm normalizes user input into a lookup term.
// Leading and trailing whitespace is stripped; the empty string means
// "nothing to look up" and callers must reject it before contacting
// the provider.
func NewLookupTerm(input string) string {
	return strings.TrimSpace(input)
}
