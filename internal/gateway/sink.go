package gateway

import (
	"sync"

	"go.uber.org/zap"

	"github.com/linernotes/liner/internal/domain"
)

// Event is one sink update pushed to stream subscribers.
type Event struct {
	Type  string        `json:"type"` // "frame" or "retract"
	Frame *domain.Frame `json:"frame,omitempty"`
}

// MemorySink keeps the latest frame per session and fans every update out to
// the session's stream subscribers. Retraction drops the frame and closes the
// subscriber channels, so a consumer always observes the retract event last.
type MemorySink struct {
	logger *zap.Logger

	mu     sync.Mutex
	frames map[string]domain.Frame
	subs   map[string][]chan Event
}

// NewMemorySink creates an empty sink.
func NewMemorySink(logger *zap.Logger) *MemorySink {
	return &MemorySink{
		logger: logger,
		frames: make(map[string]domain.Frame),
		subs:   make(map[string][]chan Event),
	}
}

// Render stores the frame as the session's current surface and notifies
// subscribers. A slow subscriber misses intermediate frames rather than
// blocking the session that is rendering.
func (s *MemorySink) Render(sessionID string, frame domain.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frames[sessionID] = frame
	for _, ch := range s.subs[sessionID] {
		select {
		case ch <- Event{Type: "frame", Frame: &frame}:
		default:
			s.logger.Debug("dropping frame for slow subscriber",
				zap.String("session_id", sessionID))
		}
	}
}

// Retract removes the session's surface and ends its streams.
func (s *MemorySink) Retract(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.frames, sessionID)
	for _, ch := range s.subs[sessionID] {
		select {
		case ch <- Event{Type: "retract"}:
		default:
		}
		close(ch)
	}
	delete(s.subs, sessionID)
}

// Latest returns the current frame for a session, if it is still displayed.
func (s *MemorySink) Latest(sessionID string) (domain.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.frames[sessionID]
	return f, ok
}

// Subscribe registers a stream consumer for a session. The returned cancel
// function detaches the subscriber; after retraction the channel is closed
// and cancel is a no-op. Subscribing to a session with no displayed frame
// (unknown, or retracted since the caller last looked) yields an already
// closed channel rather than one that would never close.
func (s *MemorySink) Subscribe(sessionID string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	s.mu.Lock()
	if _, ok := s.frames[sessionID]; !ok {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	s.subs[sessionID] = append(s.subs[sessionID], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		subs := s.subs[sessionID]
		for i, c := range subs {
			if c == ch {
				s.subs[sessionID] = append(subs[:i], subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}
