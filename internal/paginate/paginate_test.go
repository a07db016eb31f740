package paginate

import (
	"testing"

	"github.com/linernotes/liner/internal/domain"
)

func TestController_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		actions   []domain.Action
		wantIndex int
	}{
		{name: "Starts at zero", count: 5, wantIndex: 0},
		{name: "Next advances", count: 5, actions: []domain.Action{domain.ActionNext}, wantIndex: 1},
		{name: "Last jumps to end", count: 5, actions: []domain.Action{domain.ActionLast}, wantIndex: 4},
		{
			name:      "First returns to start",
			count:     5,
			actions:   []domain.Action{domain.ActionLast, domain.ActionFirst},
			wantIndex: 0,
		},
		{
			name:      "Prev at zero is a no-op",
			count:     5,
			actions:   []domain.Action{domain.ActionPrev, domain.ActionPrev},
			wantIndex: 0,
		},
		{
			name:      "Next at end is a no-op",
			count:     3,
			actions:   []domain.Action{domain.ActionLast, domain.ActionNext, domain.ActionNext},
			wantIndex: 2,
		},
		{
			name:      "Single page ignores everything",
			count:     1,
			actions:   []domain.Action{domain.ActionNext, domain.ActionLast, domain.ActionPrev},
			wantIndex: 0,
		},
		{
			name:      "Non navigation tags are ignored",
			count:     4,
			actions:   []domain.Action{domain.ActionNext, domain.ActionToggleLock, domain.ActionClose},
			wantIndex: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.count)
			for _, act := range tt.actions {
				c.Apply(act)
			}
			if c.Index() != tt.wantIndex {
				t.Errorf("index = %d, want %d", c.Index(), tt.wantIndex)
			}
		})
	}
}

// TestController_RangeInvariant walks every action from every reachable state.
func TestController_RangeInvariant(t *testing.T) {
	actions := []domain.Action{domain.ActionFirst, domain.ActionPrev, domain.ActionNext, domain.ActionLast}

	for n := 1; n <= 6; n++ {
		c := New(n)
		for step := 0; step < 100; step++ {
			c.Apply(actions[step%len(actions)])
			if c.Index() < 0 || c.Index() > n-1 {
				t.Fatalf("n=%d: index %d escaped [0,%d]", n, c.Index(), n-1)
			}
		}
	}
}

func TestController_Controls(t *testing.T) {
	byID := func(controls []domain.Control) map[string]domain.Control {
		m := make(map[string]domain.Control, len(controls))
		for _, c := range controls {
			m[c.ID] = c
		}
		return m
	}

	t.Run("Start of five pages", func(t *testing.T) {
		c := New(5)
		m := byID(c.Controls(true, false))

		for _, id := range []string{"first", "prev"} {
			if !m[id].Disabled {
				t.Errorf("%s should be disabled at index 0", id)
			}
		}
		for _, id := range []string{"next", "last"} {
			if m[id].Disabled {
				t.Errorf("%s should be enabled at index 0", id)
			}
		}
	})

	t.Run("End of five pages", func(t *testing.T) {
		c := New(5)
		c.Last()
		if c.Index() != 4 {
			t.Fatalf("index = %d, want 4", c.Index())
		}
		m := byID(c.Controls(true, false))

		for _, id := range []string{"first", "prev"} {
			if m[id].Disabled {
				t.Errorf("%s should be enabled at last page", id)
			}
		}
		for _, id := range []string{"next", "last"} {
			if !m[id].Disabled {
				t.Errorf("%s should be disabled at last page", id)
			}
		}
	})

	t.Run("Middle page enables everything", func(t *testing.T) {
		c := New(3)
		c.Next()
		for _, ctrl := range c.Controls(true, false) {
			if ctrl.Disabled {
				t.Errorf("%s should be enabled mid-run", ctrl.ID)
			}
		}
	})

	t.Run("Single page has no controls", func(t *testing.T) {
		c := New(1)
		if controls := c.Controls(true, false); controls != nil {
			t.Errorf("expected no controls, got %v", controls)
		}
	})

	t.Run("Lock control only when lockable", func(t *testing.T) {
		c := New(2)
		if _, ok := byID(c.Controls(false, false))["lock"]; ok {
			t.Error("lock control present on non-lockable session")
		}
		if _, ok := byID(c.Controls(true, false))["lock"]; !ok {
			t.Error("lock control missing on lockable session")
		}
	})

	t.Run("Lock label reflects state", func(t *testing.T) {
		c := New(2)
		if got := byID(c.Controls(true, true))["lock"].Label; got != "🔒" {
			t.Errorf("locked label = %q", got)
		}
		if got := byID(c.Controls(true, false))["lock"].Label; got != "🔓" {
			t.Errorf("unlocked label = %q", got)
		}
	})

	t.Run("Recomputed fresh after transitions", func(t *testing.T) {
		c := New(2)
		before := byID(c.Controls(true, false))
		c.Next()
		after := byID(c.Controls(true, false))

		if before["next"].Disabled {
			t.Error("next disabled before moving")
		}
		if !after["next"].Disabled {
			t.Error("next enabled at last page")
		}
		if !before["prev"].Disabled || after["prev"].Disabled {
			t.Error("prev enablement did not follow the index")
		}
	})
}
