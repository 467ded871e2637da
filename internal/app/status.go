package app

// State enumerates the presentation states a lookup moves through:
// Idle -> Loading -> (Success | Error) -> Idle. Only terminal states appear
// in lookup results; Idle and Loading exist for logging and observability.
type State string

const (
	// StateIdle is the resting state between lookups.
	StateIdle State = "idle"

	// StateLoading indicates a lookup is in flight.
	StateLoading State = "loading"

	// StateSuccess indicates a lookup found at least one definition.
	StateSuccess State = "success"

	// StateError covers every non-success terminal state, including the
	// successful-but-empty result list.
	StateError State = "error"
)

// Status is a presentation state plus its user-facing message. It is always
// replaced in full on a transition, never partially updated.
type Status struct {
	State   State
	Message string
}
