package domain

// Page is one bounded chunk of a session's total content.
// A Page is never empty: chunking substitutes a placeholder for empty input.
type Page string

// RGB is a color extracted from artwork, passed through to the render layer
// unchanged.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// DefaultColor is used until (or instead of) artwork enrichment completes.
var DefaultColor = RGB{R: 128, G: 128, B: 128}

// Candidate is a lightweight search result used to seed a successor session.
// It is produced by a ContentProvider and consumed exactly once.
type Candidate struct {
	ID       string
	Title    string
	Subtitle string
}

// Document is the raw content blob resolved for a selected Candidate.
type Document struct {
	// Title of the matched work
	Title string
	// Artist credited for the matched work
	Artist string
	// Body is the plain text content (e.g. full lyrics)
	Body string
}

// Action identifies an inbound actor action against a session.
// The set is closed: one dispatch function consumes all of them.
type Action string

const (
	// ActionFirst jumps to the first page
	ActionFirst Action = "first"
	// ActionPrev moves one page back
	ActionPrev Action = "prev"
	// ActionNext moves one page forward
	ActionNext Action = "next"
	// ActionLast jumps to the last page
	ActionLast Action = "last"
	// ActionToggleLock flips the owner-only control lock
	ActionToggleLock Action = "lock"
	// ActionSelect picks a candidate and spawns a successor session
	ActionSelect Action = "select"
	// ActionMenu opens the secondary action menu session
	ActionMenu Action = "menu"
	// ActionArt opens the artwork surface for the item
	ActionArt Action = "art"
	// ActionLyrics launches a lyrics search for the item
	ActionLyrics Action = "lyrics"
	// ActionClose retracts the session explicitly
	ActionClose Action = "close"
)

// IsNavigation reports whether the action only moves the page index.
func (a Action) IsNavigation() bool {
	switch a {
	case ActionFirst, ActionPrev, ActionNext, ActionLast:
		return true
	}
	return false
}

// Control is one interactive element of a rendered surface.
// Controls are derived state: they are recomputed from scratch after every
// mutation and never diffed against a previous value.
type Control struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	URL      string `json:"url,omitempty"`
	Disabled bool   `json:"disabled"`
}

// Frame is a complete render description handed to the RenderSink.
type Frame struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Color  RGB    `json:"color"`
	Footer string `json:"footer"`
	Author string `json:"author,omitempty"`
	// Image is the URL of a full-size image shown on the surface, if any
	Image    string    `json:"image,omitempty"`
	Controls []Control `json:"controls"`
}

// ItemMeta carries the metadata the menu composer templates into links.
type ItemMeta struct {
	// Name is the display name of the item
	Name string
	// Artists is the joined artist list for composite items, empty otherwise
	Artists string
	// ExternalURL is the item's canonical external reference
	ExternalURL string
	// ArtworkURL points at the item's artwork, if any
	ArtworkURL string
	// ArtworkWidth and ArtworkHeight are the artwork's pixel dimensions,
	// zero when the source does not report them
	ArtworkWidth  int
	ArtworkHeight int
}

// Track metadata for a track surface.
type Track struct {
	Name        string
	Explicit    bool
	DurationMS  int64
	ExternalURL string
	Album       AlbumRef
	Artists     []ArtistRef
}

// AlbumRef is the album line shown on a track surface.
type AlbumRef struct {
	Name        string
	ExternalURL string
	ReleaseDate string
	ImageURL    string
	ImageWidth  int
	ImageHeight int
}

// ArtistRef is one credited artist.
type ArtistRef struct {
	Name        string
	ExternalURL string
	ImageURL    string
}

// Album metadata for an album surface, including its full track listing.
type Album struct {
	Name        string
	ExternalURL string
	ReleaseDate string
	ImageURL    string
	ImageWidth  int
	ImageHeight int
	Artists     []ArtistRef
	Tracks      []AlbumTrack
}

// AlbumTrack is one row of an album's track listing.
type AlbumTrack struct {
	Name    string
	Artists []string
}

// Artist metadata for an artist surface.
type Artist struct {
	Name        string
	ExternalURL string
	ImageURL    string
	ImageWidth  int
	ImageHeight int
	Followers   int64
	TopTracks   []AlbumTrack
}
