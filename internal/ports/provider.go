// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrValidation, ErrUnavailable, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/slangdict/internal/domain"
)

// DefinitionProvider is the contract for the remote dictionary service.
// Adapters implement it against a concrete API (Urban Dictionary via
// RapidAPI in this service).
type DefinitionProvider interface {
	// Define looks up all definitions for the given term.
	//
	// An empty slice with a nil error is a successful lookup that simply
	// found nothing; it is NOT an error. Implementations return
	// domain.ErrNotConfigured without issuing any network request when
	// the API credential is absent or still the placeholder value, and
	// domain.ErrUnavailable when the transport fails or the provider
	// responds outside the 2xx range (the reason carries the HTTP status).
	Define(ctx context.Context, term string) ([]domain.Definition, error)
}
