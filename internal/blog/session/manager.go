// Package session binds authenticated user identities to browser sessions.
// Sessions live server-side in a token-keyed map; the browser only ever
// holds an opaque random token in a cookie.
package session

import (
	"net/http"
	"sync"

	"github.com/aussiebroadwan/inkpress/pkg/cryptox"
)

// CookieName is the session cookie set on successful login.
const CookieName = "inkpress_session"

// Manager owns the mapping from session token to bound user identity.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]string // token -> user id
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]string)}
}

// Authenticate binds userID to the request's session, creating one if the
// request doesn't carry a live session cookie. Calling it again with the
// same user in the same session is a no-op.
func (m *Manager) Authenticate(w http.ResponseWriter, r *http.Request, userID string) error {
	if token, ok := m.requestToken(r); ok {
		m.mu.Lock()
		m.sessions[token] = userID
		m.mu.Unlock()
		return nil
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.sessions[token] = userID
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Unauthenticate removes any identity bound to the request's session and
// expires the cookie. Unauthenticated requests are a no-op.
func (m *Manager) Unauthenticate(w http.ResponseWriter, r *http.Request) {
	if token, ok := m.requestToken(r); ok {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// UserID reports the user identity bound to the request's session, if any.
func (m *Manager) UserID(r *http.Request) (string, bool) {
	token, ok := m.requestToken(r)
	if !ok {
		return "", false
	}

	m.mu.RLock()
	userID, ok := m.sessions[token]
	m.mu.RUnlock()
	return userID, ok
}

// requestToken returns the session token carried by the request, but only
// if it maps to a live session; stale cookies are treated as absent so
// Authenticate never resurrects them for a different browser.
func (m *Manager) requestToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	m.mu.RLock()
	_, live := m.sessions[cookie.Value]
	m.mu.RUnlock()
	if !live {
		return "", false
	}
	return cookie.Value, true
}
