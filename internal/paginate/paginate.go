// Package paginate holds the page-index state machine and the derived
// control-enablement view over it.
package paginate

import "github.com/linernotes/liner/internal/domain"

// Controller tracks the current page index over a fixed page count.
// Transitions are total: invoking them at a boundary is a no-op, never an
// error. The zero index and the count stay inside [0, N-1] for the life of
// the controller.
type Controller struct {
	index int
	count int
}

// New creates a controller over n pages. A count below one is treated as a
// single page, matching the chunker's never-empty guarantee.
func New(n int) *Controller {
	if n < 1 {
		n = 1
	}
	return &Controller{count: n}
}

// Index returns the current page index.
func (c *Controller) Index() int { return c.index }

// Count returns the fixed page count.
func (c *Controller) Count() int { return c.count }

// First jumps to the first page.
func (c *Controller) First() { c.index = 0 }

// Prev moves one page back, staying at the first page if already there.
func (c *Controller) Prev() {
	if c.index > 0 {
		c.index--
	}
}

// Next moves one page forward, staying at the last page if already there.
func (c *Controller) Next() {
	if c.index < c.count-1 {
		c.index++
	}
}

// Last jumps to the last page.
func (c *Controller) Last() { c.index = c.count - 1 }

// Apply dispatches a navigation action tag onto the controller.
// Non-navigation tags are ignored.
func (c *Controller) Apply(act domain.Action) {
	switch act {
	case domain.ActionFirst:
		c.First()
	case domain.ActionPrev:
		c.Prev()
	case domain.ActionNext:
		c.Next()
	case domain.ActionLast:
		c.Last()
	}
}

// Controls derives the navigation control row for the current state.
// It is recomputed from scratch on every call; previous control state is
// never retained or diffed. With a single page there is nothing to navigate
// or lock, so no controls exist at all.
func (c *Controller) Controls(lockable, locked bool) []domain.Control {
	if c.count == 1 {
		return nil
	}

	atFirst := c.index == 0
	atLast := c.index == c.count-1

	controls := []domain.Control{
		{ID: string(domain.ActionFirst), Label: "⏮️", Disabled: atFirst},
		{ID: string(domain.ActionPrev), Label: "⏪", Disabled: atFirst},
	}
	if lockable {
		label := "🔓"
		if locked {
			label = "🔒"
		}
		controls = append(controls, domain.Control{ID: string(domain.ActionToggleLock), Label: label})
	}
	controls = append(controls,
		domain.Control{ID: string(domain.ActionNext), Label: "⏩", Disabled: atLast},
		domain.Control{ID: string(domain.ActionLast), Label: "⏭️", Disabled: atLast},
	)
	return controls
}
