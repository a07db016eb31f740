package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/linernotes/liner/internal/config"
	"github.com/linernotes/liner/internal/domain"
	"github.com/linernotes/liner/internal/domain/mocks"
	"github.com/linernotes/liner/internal/engine"
	"github.com/linernotes/liner/internal/session"
)

type testServer struct {
	srv      *httptest.Server
	provider *mocks.MockContentProvider
	registry *session.Registry
	cookies  []*http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockContentProvider(ctrl)
	artwork := mocks.NewMockArtworkFetcher(ctrl)
	artwork.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTransient).AnyTimes()
	colors := mocks.NewMockColorExtractor(ctrl)

	sink := NewMemorySink(zap.NewNop())
	registry := session.NewRegistry(zap.NewNop())
	cfg := &config.Config{PrimaryTimeout: time.Hour, SecondaryTimeout: time.Hour}
	eng := engine.NewEngine(zap.NewNop(), cfg, provider, artwork, colors, sink, registry, nil)

	handler := NewHandler(zap.NewNop(), eng, registry, sink)
	srv := httptest.NewServer(handler.Router())
	t.Cleanup(srv.Close)

	return &testServer{srv: srv, provider: provider, registry: registry}
}

// do issues a request reusing the identity cookie from earlier calls, so a
// sequence of calls acts as one device.
func (ts *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	for _, c := range ts.cookies {
		req.AddCookie(c)
	}

	resp, err := ts.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if len(resp.Cookies()) > 0 {
		ts.cookies = resp.Cookies()
	}
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

func expectSearch(ts *testServer, query string, candidates []domain.Candidate) {
	ts.provider.EXPECT().Search(gomock.Any(), query).Return(candidates, nil)
}

func TestHandler_SearchAndGet(t *testing.T) {
	ts := newTestServer(t)
	expectSearch(ts, "kashmir", []domain.Candidate{
		{ID: "1", Title: "Kashmir", Subtitle: "Led Zeppelin - Physical Graffiti"},
	})

	resp := ts.do(t, http.MethodPost, "/api/lyrics/search", searchRequest{Query: "kashmir"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status = %d", resp.StatusCode)
	}
	created := decodeJSON[sessionResponse](t, resp)
	if created.SessionID == "" {
		t.Fatal("no session id")
	}
	if created.Frame.Title != "Lyrics Search" {
		t.Errorf("title = %q", created.Frame.Title)
	}

	resp = ts.do(t, http.MethodGet, "/api/sessions/"+created.SessionID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	got := decodeJSON[sessionResponse](t, resp)
	if got.Frame.Title != created.Frame.Title {
		t.Errorf("stored frame diverged: %q", got.Frame.Title)
	}
}

func TestHandler_SearchErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "no results", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "provider down", err: domain.ErrTransient, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.provider.EXPECT().Search(gomock.Any(), "q").Return(nil, tt.err)

			resp := ts.do(t, http.MethodPost, "/api/lyrics/search", searchRequest{Query: "q"})
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestHandler_SearchRequiresQuery(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodPost, "/api/lyrics/search", searchRequest{})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestHandler_Actions(t *testing.T) {
	ts := newTestServer(t)
	candidates := make([]domain.Candidate, 20)
	for i := range candidates {
		candidates[i] = domain.Candidate{ID: string(rune('a' + i)), Title: "Song"}
	}
	expectSearch(ts, "songs", candidates)

	resp := ts.do(t, http.MethodPost, "/api/lyrics/search", searchRequest{Query: "songs"})
	created := decodeJSON[sessionResponse](t, resp)

	resp = ts.do(t, http.MethodPost, "/api/sessions/"+created.SessionID+"/actions",
		actionRequest{Action: "next"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("next status = %d", resp.StatusCode)
	}
	next := decodeJSON[actionResponse](t, resp)
	if next.Frame == nil || next.Frame.Body == created.Frame.Body {
		t.Error("next did not advance the page")
	}

	resp = ts.do(t, http.MethodPost, "/api/sessions/"+created.SessionID+"/actions",
		actionRequest{Action: "bogus"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bogus action status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = ts.do(t, http.MethodPost, "/api/sessions/"+created.SessionID+"/actions",
		actionRequest{Action: "close"})
	closed := decodeJSON[actionResponse](t, resp)
	if !closed.Closed {
		t.Error("close did not report closed")
	}

	resp = ts.do(t, http.MethodPost, "/api/sessions/"+created.SessionID+"/actions",
		actionRequest{Action: "next"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("action on closed session status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestHandler_UnknownSession(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/sessions/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = ts.do(t, http.MethodPost, "/api/sessions/nope/actions", actionRequest{Action: "next"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("action status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestHandler_Stream(t *testing.T) {
	ts := newTestServer(t)
	expectSearch(ts, "kashmir", []domain.Candidate{{ID: "1", Title: "Kashmir"}})

	resp := ts.do(t, http.MethodPost, "/api/lyrics/search", searchRequest{Query: "kashmir"})
	created := decodeJSON[sessionResponse](t, resp)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, _, err := websocket.Dial(ctx, ts.srv.URL+"/api/sessions/"+created.SessionID+"/stream", nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer ws.Close(websocket.StatusNormalClosure, "done")

	readEvent := func() Event {
		t.Helper()
		_, data, err := ws.Read(ctx)
		if err != nil {
			t.Fatalf("stream read failed: %v", err)
		}
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("bad stream payload: %v", err)
		}
		return ev
	}

	if ev := readEvent(); ev.Type != "frame" || ev.Frame == nil {
		t.Fatalf("seed event = %+v", ev)
	}

	view, ok := ts.registry.Get(created.SessionID)
	if !ok {
		t.Fatal("session missing from registry")
	}
	view.Close()

	if ev := readEvent(); ev.Type != "retract" {
		t.Fatalf("final event = %+v, want retract", ev)
	}
}
