// Package engine orchestrates the display flows: it resolves content through
// the provider (and its cache), chunks it into pages, creates the sessions
// and kicks off artwork color enrichment.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/linernotes/liner/internal/cache"
	"github.com/linernotes/liner/internal/chunk"
	"github.com/linernotes/liner/internal/config"
	"github.com/linernotes/liner/internal/domain"
	"github.com/linernotes/liner/internal/format"
	"github.com/linernotes/liner/internal/menu"
	"github.com/linernotes/liner/internal/session"
)

const (
	explicitMarker = " 🅴"
	enrichTimeout  = 15 * time.Second
	labelWidth     = 100
	trackNameWidth = 200
	authorWidth    = 256
)

// Engine creates and wires display sessions. All collaborators are injected;
// the engine holds no ambient globals.
type Engine struct {
	logger   *zap.Logger
	cfg      *config.Config
	provider domain.ContentProvider
	artwork  domain.ArtworkFetcher
	colors   domain.ColorExtractor
	sink     domain.RenderSink
	registry *session.Registry
	cache    *cache.Store
}

// NewEngine creates the orchestration engine. The cache may be nil, in which
// case every lookup goes to the provider.
func NewEngine(
	logger *zap.Logger,
	cfg *config.Config,
	provider domain.ContentProvider,
	artwork domain.ArtworkFetcher,
	colors domain.ColorExtractor,
	sink domain.RenderSink,
	registry *session.Registry,
	store *cache.Store,
) *Engine {
	return &Engine{
		logger:   logger,
		cfg:      cfg,
		provider: provider,
		artwork:  artwork,
		colors:   colors,
		sink:     sink,
		registry: registry,
		cache:    store,
	}
}

// SearchLyrics resolves a free-text query into a candidate selection session.
// The selection surface is short lived and non-lockable; picking a candidate
// is the terminal action that spawns the lyrics session.
func (e *Engine) SearchLyrics(ctx context.Context, actor session.Actor, query string) (*session.View, error) {
	candidates, cached, err := e.searchCandidates(ctx, query)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Candidate, len(candidates))
	entries := make([]string, 0, len(candidates))
	for i, c := range candidates {
		byID[c.ID] = c
		entries = append(entries, fmt.Sprintf("%d. **%s** - %s",
			i+1,
			format.Shorten(c.Title, labelWidth),
			format.Shorten(c.Subtitle, labelWidth)))
	}
	pages := chunk.Items("Select a song:", entries)

	view := session.New(e.logger, e.sink, pages, session.Options{
		Title:          "Lyrics Search",
		Color:          domain.DefaultColor,
		ShowPageFooter: true,
		Cached:         cached,
		Lockable:       false,
		OwnerID:        actor.ID,
		OwnerName:      actor.Name,
		Timeout:        e.cfg.SecondaryTimeout,
		OnSelect: func(ctx context.Context, candidateID string, selector session.Actor) (*session.View, error) {
			if _, ok := byID[candidateID]; !ok {
				return nil, fmt.Errorf("candidate %q not in this result set: %w", candidateID, domain.ErrNotFound)
			}
			return e.openLyrics(ctx, selector, candidateID)
		},
	}, e.registry.Remove)
	e.registry.Add(view)
	return view, nil
}

// openLyrics fetches the selected document, chunks it and creates the lyrics
// session owned by the selecting actor.
func (e *Engine) openLyrics(ctx context.Context, actor session.Actor, candidateID string) (*session.View, error) {
	doc, cached, err := e.fetchDocument(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	pages := chunk.Text(doc.Body)

	view := session.New(e.logger, e.sink, pages, session.Options{
		Title:          fmt.Sprintf("%s - Lyrics", doc.Title),
		Author:         doc.Artist,
		Color:          domain.DefaultColor,
		ShowPageFooter: true,
		FooterNote:     ", from lrclib.net",
		Cached:         cached,
		Lockable:       true,
		OwnerID:        actor.ID,
		OwnerName:      actor.Name,
		Timeout:        e.cfg.SecondaryTimeout,
	}, e.registry.Remove)
	e.registry.Add(view)
	return view, nil
}

// ShowTrack creates the primary track surface.
func (e *Engine) ShowTrack(ctx context.Context, actor session.Actor, track domain.Track, extra *menu.Extra, cached bool) (*session.View, error) {
	artistNames := make([]string, 0, len(track.Artists))
	for _, a := range track.Artists {
		artistNames = append(artistNames, a.Name)
	}

	title := track.Name
	if track.Explicit {
		title += explicitMarker
	}

	body := fmt.Sprintf("on **[%s](<%s>) • %s**",
		format.EscapeMarkdown(track.Album.Name),
		track.Album.ExternalURL,
		releaseYear(track.Album.ReleaseDate))

	item := domain.ItemMeta{
		Name:          track.Name,
		ExternalURL:   track.ExternalURL,
		ArtworkURL:    track.Album.ImageURL,
		ArtworkWidth:  track.Album.ImageWidth,
		ArtworkHeight: track.Album.ImageHeight,
	}

	// The track menu's lyrics entry searches by name plus credited artists
	lyricsQuery := strings.Join(append([]string{track.Name}, artistNames...), " ")
	onLyrics := func(ctx context.Context, actor session.Actor) (*session.View, error) {
		return e.SearchLyrics(ctx, actor, lyricsQuery)
	}

	view := session.New(e.logger, e.sink, []domain.Page{domain.Page(body)}, session.Options{
		Title:     title,
		Author:    format.JoinNames(artistNames),
		Color:     domain.DefaultColor,
		Cached:    cached,
		Lockable:  false,
		OwnerID:   actor.ID,
		OwnerName: actor.Name,
		Timeout:   e.cfg.PrimaryTimeout,
		Links: []domain.Control{{
			ID:    "play",
			Label: fmt.Sprintf("Play on Spotify (%s)", format.Duration(track.DurationMS)),
			URL:   track.ExternalURL,
		}},
		OnMenu: e.menuOpener(item, extra, onLyrics),
	}, e.registry.Remove)
	e.registry.Add(view)

	e.enrich(view, track.Album.ImageURL)
	return view, nil
}

// ShowAlbum creates the paged album surface: the track listing chunked
// fifteen rows per page under a repeated release header.
func (e *Engine) ShowAlbum(ctx context.Context, actor session.Actor, album domain.Album, extra *menu.Extra, cached bool) (*session.View, error) {
	albumArtists := make([]string, 0, len(album.Artists))
	for _, a := range album.Artists {
		albumArtists = append(albumArtists, format.EscapeMarkdown(a.Name))
	}
	artists := format.Shorten(format.JoinNames(albumArtists), authorWidth)

	header := fmt.Sprintf("*Released **%s***\n", album.ReleaseDate)
	entries := make([]string, 0, len(album.Tracks))
	for i, track := range album.Tracks {
		trackArtists := make([]string, 0, len(track.Artists))
		for _, name := range track.Artists {
			trackArtists = append(trackArtists, format.EscapeMarkdown(name))
		}

		// Per-track artists only show when they differ from the album line
		if equalNames(trackArtists, albumArtists) {
			entries = append(entries, fmt.Sprintf("%d. **%s**",
				i+1, format.Shorten(track.Name, trackNameWidth)))
		} else {
			entries = append(entries, fmt.Sprintf("%d. **%s** - %s",
				i+1,
				format.Shorten(format.EscapeMarkdown(track.Name), labelWidth),
				format.Shorten(format.JoinNames(trackArtists), labelWidth)))
		}
	}
	pages := chunk.Items(header, entries)

	item := domain.ItemMeta{
		Name:          album.Name,
		Artists:       artists,
		ExternalURL:   album.ExternalURL,
		ArtworkURL:    album.ImageURL,
		ArtworkWidth:  album.ImageWidth,
		ArtworkHeight: album.ImageHeight,
	}

	view := session.New(e.logger, e.sink, pages, session.Options{
		Title:             album.Name,
		Author:            artists,
		Color:             domain.DefaultColor,
		ShowPageFooter:    true,
		ControllingFooter: true,
		Cached:            cached,
		CachedLabel:       "Cached Link",
		Lockable:          true,
		OwnerID:           actor.ID,
		OwnerName:         actor.Name,
		Timeout:           e.cfg.PrimaryTimeout,
		Links: []domain.Control{{
			ID:    "play",
			Label: "Play on Spotify",
			URL:   album.ExternalURL,
		}},
		OnMenu: e.menuOpener(item, extra, nil),
	}, e.registry.Remove)
	e.registry.Add(view)

	e.enrich(view, album.ImageURL)
	return view, nil
}

// ShowArtist creates the artist surface: follower count and up to five top
// tracks. Fewer top tracks than the quota is not an error; the available
// subset renders as-is.
func (e *Engine) ShowArtist(ctx context.Context, actor session.Actor, artist domain.Artist) (*session.View, error) {
	var lines []string
	lines = append(lines, fmt.Sprintf("Followers: **%s**", humanize.Comma(artist.Followers)))

	top := artist.TopTracks
	if len(top) > 5 {
		top = top[:5]
	}
	if len(top) > 0 {
		lines = append(lines, "", "**Top Songs**")
		for i, track := range top {
			if len(track.Artists) <= 1 {
				lines = append(lines, fmt.Sprintf("%d. **%s**", i+1, format.EscapeMarkdown(track.Name)))
			} else {
				escaped := make([]string, 0, len(track.Artists))
				for _, name := range track.Artists {
					escaped = append(escaped, format.EscapeMarkdown(name))
				}
				lines = append(lines, fmt.Sprintf("%d. **%s** - %s",
					i+1, format.EscapeMarkdown(track.Name), format.JoinNames(escaped)))
			}
		}
	}

	item := domain.ItemMeta{
		Name:          artist.Name,
		ExternalURL:   artist.ExternalURL,
		ArtworkURL:    artist.ImageURL,
		ArtworkWidth:  artist.ImageWidth,
		ArtworkHeight: artist.ImageHeight,
	}

	view := session.New(e.logger, e.sink, chunk.Text(strings.Join(lines, "\n")), session.Options{
		Title:     artist.Name,
		Color:     domain.DefaultColor,
		Lockable:  false,
		OwnerID:   actor.ID,
		OwnerName: actor.Name,
		Timeout:   e.cfg.PrimaryTimeout,
		Links: []domain.Control{{
			ID:    "play",
			Label: "Play on Spotify",
			URL:   artist.ExternalURL,
		}},
		OnMenu: e.menuOpener(item, nil, nil),
	}, e.registry.Remove)
	e.registry.Add(view)

	e.enrich(view, artist.ImageURL)
	return view, nil
}

// menuOpener builds the OnMenu hook: a short-lived non-lockable session
// whose controls are the composed action list for the item, an artwork
// entry and, when onLyrics is set, a lyrics search entry.
func (e *Engine) menuOpener(item domain.ItemMeta, extra *menu.Extra, onLyrics session.MenuFunc) session.MenuFunc {
	return func(ctx context.Context, actor session.Actor) (*session.View, error) {
		body := item.Name
		if item.Artists != "" {
			body = fmt.Sprintf("%s - %s", item.Name, item.Artists)
		}

		view := session.New(e.logger, e.sink, []domain.Page{domain.Page(body)}, session.Options{
			Title:     "Menu",
			Color:     domain.DefaultColor,
			Lockable:  false,
			OwnerID:   actor.ID,
			OwnerName: actor.Name,
			Timeout:   e.cfg.SecondaryTimeout,
			Links:     menu.Compose(item, extra),
			OnArt:     e.artOpener(item),
			OnLyrics:  onLyrics,
		}, e.registry.Remove)
		e.registry.Add(view)
		return view, nil
	}
}

// artOpener builds the OnArt hook: a short-lived surface carrying the item's
// full-size artwork, or a fallback notice when there is none.
func (e *Engine) artOpener(item domain.ItemMeta) session.MenuFunc {
	return func(ctx context.Context, actor session.Actor) (*session.View, error) {
		opts := session.Options{
			Color:     domain.DefaultColor,
			Lockable:  false,
			OwnerID:   actor.ID,
			OwnerName: actor.Name,
			Timeout:   e.cfg.SecondaryTimeout,
		}

		body := ""
		if item.ArtworkURL == "" {
			opts.Title = "No album art available."
		} else {
			opts.Title = fmt.Sprintf("%s - Album Art", item.Name)
			opts.Image = item.ArtworkURL
			if item.ArtworkWidth > 0 && item.ArtworkHeight > 0 {
				body = fmt.Sprintf("Viewing highest quality (%dx%d)", item.ArtworkWidth, item.ArtworkHeight)
			} else {
				body = "Viewing highest quality (Resolution unknown)"
			}
			opts.Links = []domain.Control{{
				ID:    "open",
				Label: "Open in Browser",
				URL:   item.ArtworkURL,
			}}
		}

		view := session.New(e.logger, e.sink, []domain.Page{domain.Page(body)}, opts, e.registry.Remove)
		e.registry.Add(view)
		return view, nil
	}
}

// enrich fetches artwork and applies its dominant color in the background.
// Enrichment is fully independent per session: any failure logs against this
// session and leaves the default color in place, and can never block or
// corrupt another session's rendering.
func (e *Engine) enrich(view *session.View, imageURL string) {
	if imageURL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), enrichTimeout)
		defer cancel()

		data, err := e.artwork.Fetch(ctx, imageURL)
		if err != nil {
			e.logger.Warn("artwork fetch failed, keeping default color",
				zap.String("session_id", view.ID()),
				zap.Error(err))
			return
		}

		color, err := e.colors.Extract(data)
		if err != nil {
			e.logger.Warn("color extraction failed, keeping default color",
				zap.String("session_id", view.ID()),
				zap.Error(err))
			return
		}

		view.SetColor(color)
	}()
}

func (e *Engine) searchCandidates(ctx context.Context, query string) ([]domain.Candidate, bool, error) {
	key := "search:" + strings.ToLower(query)

	if e.cache != nil {
		var cached []domain.Candidate
		hit, err := e.cache.Get(ctx, key, &cached)
		if err != nil {
			e.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return cached, true, nil
		}
	}

	candidates, err := e.provider.Search(ctx, query)
	if err != nil {
		return nil, false, err
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, key, candidates); err != nil {
			e.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return candidates, false, nil
}

func (e *Engine) fetchDocument(ctx context.Context, candidateID string) (domain.Document, bool, error) {
	key := "doc:" + candidateID

	if e.cache != nil {
		var cached domain.Document
		hit, err := e.cache.Get(ctx, key, &cached)
		if err != nil {
			e.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return cached, true, nil
		}
	}

	doc, err := e.provider.Fetch(ctx, candidateID)
	if err != nil {
		return domain.Document{}, false, err
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, key, doc); err != nil {
			e.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return doc, false, nil
}

// releaseYear extracts the year from a release date like "1975-02-24".
func releaseYear(date string) string {
	year, _, _ := strings.Cut(date, "-")
	return year
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
