package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLookupTerm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain word", input: "yeet", expected: "yeet"},
		{name: "surrounding whitespace", input: "  lit  ", expected: "lit"},
		{name: "multi-word phrase", input: "on fleek", expected: "on fleek"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: " \t\n ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewLookupTerm(tt.input))
		})
	}
}
