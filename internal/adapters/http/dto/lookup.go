package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen/slangdict/internal/domain"
)

// LookupRequest represents the query parameters of a definition lookup.
type LookupRequest struct {
	// Term is the slang term to look up. Whitespace-only values are
	// rejected by the notempty validator.
	Term string `form:"term" json:"term" validate:"required,notempty"`
}

// StatusResponse reports the outcome of a lookup in a form the caller
// can surface directly: "success" with a summary line, or "error" with
// a user-facing message.
type StatusResponse struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

// RenderedDefinition is a display-ready definition. Every field is a
// complete line of text: optional source fields are substituted with
// fixed fallbacks rather than omitted, so callers never need to
// special-case missing data.
type RenderedDefinition struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
	Author  string `json:"author"`
	Votes   string `json:"votes"`
}

// LookupResponse is the response envelope for a definition lookup.
// Result is present only when a definition was found.
type LookupResponse struct {
	Term   string              `json:"term"`
	Status StatusResponse      `json:"status"`
	Result *RenderedDefinition `json:"result,omitempty"`
}

// bracketStripper removes the literal square brackets Urban Dictionary
// uses as cross-reference markup ("[throw]" links to "throw"). The
// linked words themselves are kept.
var bracketStripper = strings.NewReplacer("[", "", "]", "")

// Sanitize strips cross-reference bracket markup from provider text.
func Sanitize(text string) string {
	return bracketStripper.Replace(text)
}

// NewRenderedDefinition converts a domain definition into display text.
func NewRenderedDefinition(d *domain.Definition) *RenderedDefinition {
	example := "Example: none provided."
	if strings.TrimSpace(d.Example) != "" {
		example = "Example: " + Sanitize(d.Example)
	}

	author := "Author: unknown"
	if d.Author != "" {
		author = "Author: " + d.Author
	}

	return &RenderedDefinition{
		Word:    Sanitize(d.Word),
		Meaning: Sanitize(d.Meaning),
		Example: example,
		Author:  author,
		Votes:   fmt.Sprintf("Votes: %d up / %d down", d.ThumbsUp, d.ThumbsDown),
	}
}
