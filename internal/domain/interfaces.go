package domain

import "context"

// ContentProvider resolves search queries to candidates and candidate ids to
// content documents. Implementations signal failure with ErrNotFound or
// ErrTransient.
//
//go:generate mockgen -destination=mocks/interfaces_mock.go -package=mocks github.com/linernotes/liner/internal/domain ContentProvider,ArtworkFetcher,ColorExtractor,RenderSink
type ContentProvider interface {
	// Search returns candidates for a free-text query, best match first.
	// An empty result set is reported as ErrNotFound.
	Search(ctx context.Context, query string) ([]Candidate, error)

	// Fetch resolves a candidate id to its content document.
	Fetch(ctx context.Context, candidateID string) (Document, error)
}

// ArtworkFetcher retrieves raw artwork bytes from a URL.
type ArtworkFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ColorExtractor derives a dominant color from encoded image bytes.
// Extraction failure is a theming concern only, never fatal to a session.
type ColorExtractor interface {
	Extract(data []byte) (RGB, error)
}

// RenderSink receives render descriptions for a session's display surface.
// Retract permanently removes the surface; the sink must tolerate a Retract
// for an id it has never rendered.
type RenderSink interface {
	Render(sessionID string, frame Frame)
	Retract(sessionID string)
}
