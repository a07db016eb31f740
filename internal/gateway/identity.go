package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/linernotes/liner/internal/session"
)

const (
	anonCookieName   = "liner_anon_id"
	anonCookieMaxAge = 30 * 24 * time.Hour
)

type contextKey int

const actorKey contextKey = iota

var anonIDPattern = regexp.MustCompile(`^anon_[a-f0-9]{32}$`)

// ActorFromContext extracts the resolved actor identity from the request
// context. The zero actor means the identity middleware did not run.
func ActorFromContext(ctx context.Context) session.Actor {
	if a, ok := ctx.Value(actorKey).(session.Actor); ok {
		return a
	}
	return session.Actor{}
}

func generateAnonID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate anonymous id: %w", err)
	}
	return "anon_" + hex.EncodeToString(buf), nil
}

func deriveUsername(userID string) string {
	if len(userID) > 13 {
		return "anon-" + userID[len(userID)-8:]
	}
	return "anon-user"
}

func getOrCreateAnonID(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(anonCookieName); err == nil && anonIDPattern.MatchString(c.Value) {
		return c.Value, nil
	}

	id, err := generateAnonID()
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(anonCookieMaxAge.Seconds()),
		Expires:  time.Now().Add(anonCookieMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, nil
}

// Identity injects an anonymous per-device actor into the request context,
// minting a cookie on first contact. Distinct devices get distinct owner
// identities, which is what session access control keys on.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := getOrCreateAnonID(w, r)
		if err != nil {
			http.Error(w, `{"error":"failed to establish anonymous identity"}`, http.StatusInternalServerError)
			return
		}

		actor := session.Actor{ID: id, Name: deriveUsername(id)}
		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
