// Package access decides whether an actor may perform an action against a
// session. "Locked" is an access-control flag owned by the session creator,
// not a concurrency primitive.
package access

import "github.com/linernotes/liner/internal/domain"

// Guard evaluates access attempts against a session's ownership and lock
// state. The owner identity is captured once at session creation and is the
// sole authority for ownership checks.
type Guard struct {
	ownerID  string
	lockable bool
}

// NewGuard creates a guard for a session owned by ownerID. Non-lockable
// sessions never expose a lock control, so a toggle against one is a
// structural no-op rather than a denial.
func NewGuard(ownerID string, lockable bool) Guard {
	return Guard{ownerID: ownerID, lockable: lockable}
}

// OwnerID returns the owning identity.
func (g Guard) OwnerID() string { return g.ownerID }

// Lockable reports whether the session accepts lock toggles at all.
func (g Guard) Lockable() bool { return g.lockable }

// IsOwner reports whether actorID created the session.
func (g Guard) IsOwner(actorID string) bool { return actorID == g.ownerID }

// Authorize decides an access attempt. A nil return permits the action.
// Rejections carry no side effects; callers must not mutate any session
// state on a non-nil return.
//
// The owner is always permitted. A non-owner may never toggle the lock and
// may navigate only while the session is unlocked. Toggles against a
// non-lockable session never reach the guard: the session layer drops them
// before authorization because the control does not exist.
func (g Guard) Authorize(actorID string, act domain.Action, locked bool) error {
	if g.IsOwner(actorID) {
		return nil
	}
	if act == domain.ActionToggleLock {
		return domain.ErrPermissionDenied
	}
	if locked {
		return domain.ErrLocked
	}
	return nil
}
