// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Orchestrate use cases (business workflows)
//   - Coordinate between domain and infrastructure
//   - Handle cross-cutting concerns (logging)
//   - Enforce business rules that span multiple entities
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters)
//   - Provider API shapes (that's the ACL)
//   - Core domain logic (that's the domain layer)
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/slangdict/internal/domain"
	"github.com/jsamuelsen/slangdict/internal/platform/logging"
	"github.com/jsamuelsen/slangdict/internal/ports"
)

// LookupService orchestrates the term-lookup use case.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
//
// At most one lookup is in flight at any time. A second lookup arriving
// while one is running is rejected with a conflict error rather than
// queued; the slot is released on every exit path, including panics.
type LookupService struct {
	provider ports.DefinitionProvider
	logger   *slog.Logger

	// inflight has capacity 1 and acts as the trigger gate.
	inflight chan struct{}
}

// LookupServiceConfig contains configuration for the lookup service.
type LookupServiceConfig struct {
	Provider ports.DefinitionProvider
	Logger   *slog.Logger
}

// NewLookupService creates a new lookup service with the provided dependencies.
// Panics if Provider is nil. Defaults logger to slog.Default() if nil.
func NewLookupService(cfg LookupServiceConfig) *LookupService {
	if cfg.Provider == nil {
		panic("LookupService: Provider is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &LookupService{
		provider: cfg.Provider,
		logger:   logger,
		inflight: make(chan struct{}, 1),
	}
}

// LookupResult is the outcome of a completed lookup attempt.
type LookupResult struct {
	// Term is the normalized term that was looked up.
	Term string

	// Status is the terminal presentation state for this attempt.
	Status Status

	// Definition is the first definition returned by the provider.
	// Nil when the provider found nothing.
	Definition *domain.Definition
}

// Lookup validates the term, asks the provider for definitions, and selects
// the first one for presentation.
//
// Error cases surface as domain errors: validation for empty input, conflict
// when another lookup is already in flight, and whatever the provider
// returned otherwise (not-configured, unavailable). A provider response with
// an empty list is NOT an error; it yields a StateError status with a
// "no results" message and a nil Definition.
func (s *LookupService) Lookup(ctx context.Context, rawTerm string) (*LookupResult, error) {
	logger := logging.FromContext(ctx)

	term := domain.NewLookupTerm(rawTerm)
	if term == "" {
		logger.DebugContext(ctx, "rejecting empty lookup term")
		return nil, domain.NewValidationError("term", "enter a term")
	}

	select {
	case s.inflight <- struct{}{}:
	default:
		logger.WarnContext(ctx, "rejecting concurrent lookup",
			slog.String("term", term))
		return nil, domain.NewConflictError("lookup", "another lookup is in progress")
	}
	// The gate must open again on every exit path, including panics,
	// so the next attempt is never stuck behind a dead one.
	defer func() { <-s.inflight }()

	logger.InfoContext(ctx, "looking up term",
		slog.String("term", term),
		slog.String("state", string(StateLoading)),
	)

	definitions, err := s.provider.Define(ctx, term)
	if err != nil {
		logger.ErrorContext(ctx, "lookup failed",
			slog.String("term", term),
			slog.Any("error", err),
		)
		return nil, err
	}

	if len(definitions) == 0 {
		logger.InfoContext(ctx, "no definitions found",
			slog.String("term", term))

		return &LookupResult{
			Term: term,
			Status: Status{
				State:   StateError,
				Message: fmt.Sprintf("no results found for %s", term),
			},
		}, nil
	}

	first := definitions[0]

	logger.InfoContext(ctx, "definition found",
		slog.String("term", term),
		slog.String("word", first.Word),
		slog.Int("candidates", len(definitions)),
	)

	return &LookupResult{
		Term: term,
		Status: Status{
			State:   StateSuccess,
			Message: fmt.Sprintf("showing top definition for %s", term),
		},
		Definition: &first,
	}, nil
}
