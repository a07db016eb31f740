package access

import (
	"errors"
	"testing"

	"github.com/linernotes/liner/internal/domain"
)

func TestGuard_Authorize(t *testing.T) {
	const owner = "anon_owner"
	const viewer = "anon_viewer"

	tests := []struct {
		name    string
		actorID string
		action  domain.Action
		locked  bool
		wantErr error
	}{
		{name: "Owner navigates unlocked", actorID: owner, action: domain.ActionNext},
		{name: "Owner navigates locked", actorID: owner, action: domain.ActionNext, locked: true},
		{name: "Owner toggles lock", actorID: owner, action: domain.ActionToggleLock},
		{name: "Owner toggles lock while locked", actorID: owner, action: domain.ActionToggleLock, locked: true},
		{name: "Viewer navigates unlocked", actorID: viewer, action: domain.ActionPrev},
		{
			name:    "Viewer navigation blocked when locked",
			actorID: viewer,
			action:  domain.ActionNext,
			locked:  true,
			wantErr: domain.ErrLocked,
		},
		{
			name:    "Viewer may never toggle lock",
			actorID: viewer,
			action:  domain.ActionToggleLock,
			wantErr: domain.ErrPermissionDenied,
		},
		{
			name:    "Viewer toggle while locked is still permission denied",
			actorID: viewer,
			action:  domain.ActionToggleLock,
			locked:  true,
			wantErr: domain.ErrPermissionDenied,
		},
		{name: "Viewer selects while unlocked", actorID: viewer, action: domain.ActionSelect},
		{
			name:    "Viewer select blocked when locked",
			actorID: viewer,
			action:  domain.ActionSelect,
			locked:  true,
			wantErr: domain.ErrLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(owner, true)

			err := g.Authorize(tt.actorID, tt.action, tt.locked)

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected rejection: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGuard_IsOwner(t *testing.T) {
	g := NewGuard("anon_abc", false)

	if !g.IsOwner("anon_abc") {
		t.Error("creator not recognized as owner")
	}
	if g.IsOwner("anon_def") {
		t.Error("stranger recognized as owner")
	}
	if g.Lockable() {
		t.Error("lockable flag not carried")
	}
}
