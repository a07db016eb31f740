package domain

import "errors"

// Error taxonomy for the display engine. Callers branch with errors.Is.
var (
	// ErrNotFound means a provider returned no candidates or no content for
	// an id. No session is created.
	ErrNotFound = errors.New("nothing found")

	// ErrTransient means a provider call failed (bad status, network error).
	// No session is created and the call is not retried.
	ErrTransient = errors.New("provider unavailable")

	// ErrLocked rejects navigation by a non-owner while the session is locked.
	ErrLocked = errors.New("session is locked")

	// ErrPermissionDenied rejects a lock toggle by anyone but the owner.
	ErrPermissionDenied = errors.New("only the owner may toggle the lock")

	// ErrRetracted marks an action submitted against a torn-down session.
	// It is a structural no-op, not a user-visible failure.
	ErrRetracted = errors.New("session retracted")

	// ErrUnknownAction marks an action tag outside the closed set.
	ErrUnknownAction = errors.New("unknown action")
)
