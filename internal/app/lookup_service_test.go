package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/slangdict/internal/domain"
	"github.com/jsamuelsen/slangdict/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T) (*LookupService, *mocks.MockDefinitionProvider) {
	t.Helper()

	provider := mocks.NewMockDefinitionProvider(t)
	svc := NewLookupService(LookupServiceConfig{
		Provider: provider,
		Logger:   discardLogger(),
	})

	return svc, provider
}

func TestNewLookupService_PanicsWithoutProvider(t *testing.T) {
	assert.Panics(t, func() {
		NewLookupService(LookupServiceConfig{
			Provider: nil,
			Logger:   slog.Default(),
		})
	})
}

func TestNewLookupService_DefaultsLogger(t *testing.T) {
	provider := mocks.NewMockDefinitionProvider(t)

	svc := NewLookupService(LookupServiceConfig{
		Provider: provider,
		Logger:   nil, // Should default to slog.Default()
	})

	require.NotNil(t, svc)
}

func TestLookupService_Lookup_Success(t *testing.T) {
	svc, provider := newService(t)

	provider.EXPECT().Define(mock.Anything, "yeet").
		Return([]domain.Definition{
			{
				Word:       "yeet",
				Meaning:    "to [throw] with force",
				Example:    "he yeeted it",
				Author:     "wordsmith",
				ThumbsUp:   420,
				ThumbsDown: 7,
			},
			{Word: "yeet", Meaning: "an exclamation"},
		}, nil)

	result, err := svc.Lookup(context.Background(), "yeet")

	require.NoError(t, err)
	assert.Equal(t, "yeet", result.Term)
	assert.Equal(t, StateSuccess, result.Status.State)
	assert.Contains(t, result.Status.Message, "yeet")

	// Only the first definition is selected for presentation.
	require.NotNil(t, result.Definition)
	assert.Equal(t, "to [throw] with force", result.Definition.Meaning)
}

func TestLookupService_Lookup_TrimsTerm(t *testing.T) {
	svc, provider := newService(t)

	provider.EXPECT().Define(mock.Anything, "yeet").
		Return([]domain.Definition{{Word: "yeet", Meaning: "a thing"}}, nil)

	result, err := svc.Lookup(context.Background(), "   yeet  ")

	require.NoError(t, err)
	assert.Equal(t, "yeet", result.Term)
}

func TestLookupService_Lookup_EmptyTerm(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"only spaces", "   "},
		{"tabs and newlines", "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No Define expectation: the provider must not be called.
			svc, _ := newService(t)

			result, err := svc.Lookup(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Contains(t, err.Error(), "enter a term")
			assert.Nil(t, result)
		})
	}
}

func TestLookupService_Lookup_EmptyResultIsNotAnError(t *testing.T) {
	svc, provider := newService(t)

	provider.EXPECT().Define(mock.Anything, "zxqvbn").
		Return([]domain.Definition{}, nil)

	result, err := svc.Lookup(context.Background(), "zxqvbn")

	require.NoError(t, err)
	assert.Equal(t, StateError, result.Status.State)
	assert.Equal(t, "no results found for zxqvbn", result.Status.Message)
	assert.Nil(t, result.Definition)
}

func TestLookupService_Lookup_ProviderErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		errCheck func(error) bool
	}{
		{
			name:     "not configured",
			err:      domain.NewConfigurationError("urban-dictionary", "rapidapi key is not set"),
			errCheck: domain.IsNotConfigured,
		},
		{
			name:     "unavailable",
			err:      domain.NewUnavailableError("urban-dictionary", "HTTP 500: internal error"),
			errCheck: domain.IsUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider := newService(t)

			provider.EXPECT().Define(mock.Anything, "yeet").Return(nil, tt.err)

			result, err := svc.Lookup(context.Background(), "yeet")

			require.Error(t, err)
			assert.True(t, tt.errCheck(err))
			assert.Nil(t, result)
		})
	}
}

func TestLookupService_Lookup_SecondConcurrentLookupConflicts(t *testing.T) {
	svc, provider := newService(t)

	started := make(chan struct{})
	release := make(chan struct{})

	provider.EXPECT().Define(mock.Anything, "slow").
		RunAndReturn(func(ctx context.Context, term string) ([]domain.Definition, error) {
			close(started)
			<-release
			return []domain.Definition{{Word: "slow", Meaning: "not fast"}}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)

	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = svc.Lookup(context.Background(), "slow")
	}()

	<-started

	// The gate is held by the first lookup; this one must be rejected.
	_, err := svc.Lookup(context.Background(), "fast")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
}

func TestLookupService_Lookup_GateReleasedAfterEachOutcome(t *testing.T) {
	svc, provider := newService(t)

	provider.EXPECT().Define(mock.Anything, "a").
		Return([]domain.Definition{{Word: "a", Meaning: "first letter"}}, nil).Once()
	provider.EXPECT().Define(mock.Anything, "b").
		Return([]domain.Definition{}, nil).Once()
	provider.EXPECT().Define(mock.Anything, "c").
		Return(nil, domain.NewUnavailableError("urban-dictionary", "HTTP 502")).Once()
	provider.EXPECT().Define(mock.Anything, "d").
		Return([]domain.Definition{{Word: "d", Meaning: "fourth letter"}}, nil).Once()

	// Success, empty, and failure must each release the gate so the
	// next sequential lookup goes through.
	_, err := svc.Lookup(context.Background(), "a")
	require.NoError(t, err)

	_, err = svc.Lookup(context.Background(), "b")
	require.NoError(t, err)

	_, err = svc.Lookup(context.Background(), "c")
	require.Error(t, err)

	_, err = svc.Lookup(context.Background(), "d")
	require.NoError(t, err)
}

func TestLookupService_Lookup_GateReleasedAfterPanic(t *testing.T) {
	svc, provider := newService(t)

	provider.EXPECT().Define(mock.Anything, "boom").
		RunAndReturn(func(ctx context.Context, term string) ([]domain.Definition, error) {
			panic("provider exploded")
		}).Once()
	provider.EXPECT().Define(mock.Anything, "after").
		Return([]domain.Definition{{Word: "after", Meaning: "later"}}, nil).Once()

	assert.Panics(t, func() {
		_, _ = svc.Lookup(context.Background(), "boom")
	})

	// A panic must not leave the gate stuck closed.
	_, err := svc.Lookup(context.Background(), "after")
	require.NoError(t, err)
}
