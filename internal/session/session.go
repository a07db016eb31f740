// Package session binds pages, pagination, access control and expiry into
// one addressable display surface per invocation.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linernotes/liner/internal/access"
	"github.com/linernotes/liner/internal/domain"
	"github.com/linernotes/liner/internal/expiry"
	"github.com/linernotes/liner/internal/paginate"
)

// Actor is the resolved identity behind an inbound action.
type Actor struct {
	ID   string
	Name string
}

// SelectFunc produces the successor session for a definitive candidate
// selection. Selection is a terminal action: on success the current session
// is retracted and its timer cancelled.
type SelectFunc func(ctx context.Context, candidateID string, actor Actor) (*View, error)

// MenuFunc opens the secondary menu session for a surface. The current
// session stays live; the menu is an independent surface with its own
// shorter expiry.
type MenuFunc func(ctx context.Context, actor Actor) (*View, error)

// Options configures a view at creation. Only the page index and the lock
// flag mutate afterwards; everything else is fixed for the session's life.
type Options struct {
	Title  string
	Author string
	Color  domain.RGB

	// ShowPageFooter appends "Page i/N" to the footer on paged surfaces
	ShowPageFooter bool
	// ControllingFooter prefixes the footer with "Controlling: " while
	// more than one page exists
	ControllingFooter bool
	// FooterNote is appended verbatim after the page counter
	FooterNote string
	// Cached marks surfaces built from a provider cache hit; CachedLabel
	// overrides the default "Cached Result" footer suffix
	Cached      bool
	CachedLabel string

	// Image is the URL of a full-size image shown on the surface
	Image string

	// Links are static URL controls appended after the navigation row
	Links []domain.Control

	Lockable  bool
	OwnerID   string
	OwnerName string
	Timeout   time.Duration

	OnSelect SelectFunc
	OnMenu   MenuFunc
	// OnArt opens the artwork surface; OnLyrics launches a lyrics search.
	// Both spawn independent sessions while this one stays live.
	OnArt    MenuFunc
	OnLyrics MenuFunc
}

// Result is the outcome of an accepted action.
type Result struct {
	// Frame is the fresh render description for the surface
	Frame domain.Frame
	// Spawned is the successor or menu session created by the action
	Spawned *View
	// Closed reports that the action retracted the surface
	Closed bool
}

// View is one interactive display session. It exclusively owns its page
// sequence and its mutable index and lock fields; the hosting environment
// serializes the actions arriving for one surface and the mutex enforces
// that at the boundary. Distinct views share nothing.
type View struct {
	id   string
	log  *zap.Logger
	sink domain.RenderSink

	mu        sync.Mutex
	pages     []domain.Page
	pager     *paginate.Controller
	guard     access.Guard
	locked    bool
	retracted bool
	color     domain.RGB
	opts      Options
	createdAt time.Time

	timer     *expiry.Timer
	onRetract func(id string)
}

// New creates a view over the given pages, arms its expiry timer and pushes
// the initial render. onRetract is invoked exactly once when the surface is
// torn down, by expiry or by an explicit terminal action.
func New(log *zap.Logger, sink domain.RenderSink, pages []domain.Page, opts Options, onRetract func(id string)) *View {
	if len(pages) == 0 {
		// Chunkers never produce an empty sequence; keep the invariant
		// anyway for direct callers.
		pages = []domain.Page{"No content available."}
	}

	v := &View{
		id:        uuid.NewString(),
		log:       log,
		sink:      sink,
		pages:     pages,
		pager:     paginate.New(len(pages)),
		guard:     access.NewGuard(opts.OwnerID, opts.Lockable),
		color:     opts.Color,
		opts:      opts,
		createdAt: time.Now(),
		onRetract: onRetract,
	}
	v.timer = expiry.After(opts.Timeout, v.expire)

	v.log.Info("session created",
		zap.String("session_id", v.id),
		zap.String("owner_id", opts.OwnerID),
		zap.Int("pages", len(pages)),
		zap.Bool("lockable", opts.Lockable),
		zap.Duration("timeout", opts.Timeout))

	v.mu.Lock()
	defer v.mu.Unlock()
	v.renderLocked(Actor{ID: opts.OwnerID, Name: opts.OwnerName})
	return v
}

// ID returns the session's address.
func (v *View) ID() string { return v.id }

// OwnerID returns the identity that created the session.
func (v *View) OwnerID() string { return v.guard.OwnerID() }

// Retracted reports whether teardown has begun.
func (v *View) Retracted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.retracted
}

// Frame recomputes the current render description without mutating state.
func (v *View) Frame() domain.Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frameLocked(Actor{ID: v.guard.OwnerID(), Name: v.opts.OwnerName})
}

// Apply evaluates one actor action against the session. Every accepted
// mutation recomputes the render description from scratch and hands it to
// the sink. Rejections leave index, lock and page state untouched.
func (v *View) Apply(ctx context.Context, act domain.Action, candidateID string, actor Actor) (Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.retracted {
		return Result{}, domain.ErrRetracted
	}

	// The lock control does not exist on a non-lockable session, so a
	// toggle against one is dropped before authorization.
	if act == domain.ActionToggleLock && !v.guard.Lockable() {
		return Result{Frame: v.frameLocked(actor)}, nil
	}

	if err := v.guard.Authorize(actor.ID, act, v.locked); err != nil {
		v.log.Debug("action rejected",
			zap.String("session_id", v.id),
			zap.String("actor_id", actor.ID),
			zap.String("action", string(act)),
			zap.Error(err))
		return Result{}, err
	}

	switch {
	case act.IsNavigation():
		v.pager.Apply(act)
		return Result{Frame: v.renderLocked(actor)}, nil

	case act == domain.ActionToggleLock:
		v.locked = !v.locked
		v.log.Info("lock toggled",
			zap.String("session_id", v.id),
			zap.Bool("locked", v.locked))
		return Result{Frame: v.renderLocked(actor)}, nil

	case act == domain.ActionMenu:
		return v.spawnLocked(ctx, act, v.opts.OnMenu, actor)

	case act == domain.ActionArt:
		return v.spawnLocked(ctx, act, v.opts.OnArt, actor)

	case act == domain.ActionLyrics:
		return v.spawnLocked(ctx, act, v.opts.OnLyrics, actor)

	case act == domain.ActionSelect:
		if v.opts.OnSelect == nil {
			return Result{}, fmt.Errorf("%w: %s", domain.ErrUnknownAction, act)
		}
		spawned, err := v.opts.OnSelect(ctx, candidateID, actor)
		if err != nil {
			// Failed selections are not terminal: the surface stays up
			// so the actor can pick another candidate.
			return Result{}, err
		}
		v.teardownLocked("selected")
		return Result{Spawned: spawned, Closed: true}, nil

	case act == domain.ActionClose:
		v.teardownLocked("closed")
		return Result{Closed: true}, nil

	default:
		return Result{}, fmt.Errorf("%w: %s", domain.ErrUnknownAction, act)
	}
}

// spawnLocked runs a session-spawning hook. The current surface stays live;
// the spawned session is independent with its own expiry.
func (v *View) spawnLocked(ctx context.Context, act domain.Action, hook MenuFunc, actor Actor) (Result, error) {
	if hook == nil {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrUnknownAction, act)
	}
	spawned, err := hook(ctx, actor)
	if err != nil {
		return Result{}, err
	}
	return Result{Frame: v.frameLocked(actor), Spawned: spawned}, nil
}

// SetColor applies the artwork-derived theme color once enrichment
// completes and re-renders. A no-op after teardown.
func (v *View) SetColor(c domain.RGB) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.retracted {
		return
	}
	v.color = c
	v.renderLocked(Actor{ID: v.guard.OwnerID(), Name: v.opts.OwnerName})
}

// Close retracts the surface explicitly, cancelling the expiry timer.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.teardownLocked("closed")
}

// expire is the timer callback racing against inbound actions; teardown is
// idempotent so the loser of the race is inert.
func (v *View) expire() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.teardownLocked("expired")
}

func (v *View) teardownLocked(reason string) {
	if v.retracted {
		return
	}
	v.retracted = true
	// A near-zero timeout can fire before New finishes assigning the timer
	if v.timer != nil {
		v.timer.Cancel()
	}

	v.log.Info("session retracted",
		zap.String("session_id", v.id),
		zap.String("reason", reason),
		zap.Duration("lifetime", time.Since(v.createdAt)))

	v.sink.Retract(v.id)
	if v.onRetract != nil {
		v.onRetract(v.id)
	}
}

func (v *View) renderLocked(actor Actor) domain.Frame {
	frame := v.frameLocked(actor)
	v.sink.Render(v.id, frame)
	return frame
}

func (v *View) frameLocked(actor Actor) domain.Frame {
	controls := v.pager.Controls(v.guard.Lockable(), v.locked)
	if v.opts.OnSelect != nil {
		controls = append(controls, domain.Control{ID: string(domain.ActionSelect), Label: "Select a song"})
	}
	if v.opts.OnArt != nil {
		controls = append(controls, domain.Control{ID: string(domain.ActionArt), Label: "Album Art"})
	}
	if v.opts.OnLyrics != nil {
		controls = append(controls, domain.Control{ID: string(domain.ActionLyrics), Label: "Lyrics"})
	}
	if v.opts.OnMenu != nil {
		controls = append(controls, domain.Control{ID: string(domain.ActionMenu), Label: "Menu"})
	}
	controls = append(controls, v.opts.Links...)

	return domain.Frame{
		Title:    v.opts.Title,
		Body:     string(v.pages[v.pager.Index()]),
		Color:    v.color,
		Footer:   v.footerLocked(actor),
		Author:   v.opts.Author,
		Image:    v.opts.Image,
		Controls: controls,
	}
}

func (v *View) footerLocked(actor Actor) string {
	footer := "@" + actor.Name
	if v.opts.ControllingFooter && v.pager.Count() > 1 {
		footer = "Controlling: " + footer
	}
	if v.opts.ShowPageFooter {
		footer += fmt.Sprintf(" • Page %d/%d", v.pager.Index()+1, v.pager.Count())
	}
	footer += v.opts.FooterNote
	if v.opts.Cached {
		label := v.opts.CachedLabel
		if label == "" {
			label = "Cached Result"
		}
		footer += " • " + label
	}
	return footer
}
