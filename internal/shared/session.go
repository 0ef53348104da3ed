package shared

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FlashMessage represents a one-time notification stored in session.
type FlashMessage struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SessionManager issues HMAC-signed cookie sessions. Nothing is stored
// server-side; the cookie carries the whole payload.
type SessionManager struct {
	cookieName string
	ttl        time.Duration
	secure     bool
	secret     []byte
	now        func() time.Time
}

// Session holds per-request session data.
type Session struct {
	ID            string
	values        map[string]string
	authenticated bool
	flashes       []FlashMessage
	isNew         bool
	dirty         bool
	destroyed     bool
}

type sessionPayload struct {
	ID            string            `json:"id"`
	Values        map[string]string `json:"values,omitempty"`
	Authenticated bool              `json:"auth"`
	Flashes       []FlashMessage    `json:"flashes,omitempty"`
	ExpiresAt     int64             `json:"exp"`
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(cookieName string, secret string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
		secret:     []byte(secret),
		now:        time.Now,
	}
}

// Load decodes the session cookie. Missing, expired or tampered cookies yield
// a fresh anonymous session.
func (sm *SessionManager) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(sm.cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return sm.newSession(), nil
		}
		return nil, err
	}
	payload, err := sm.decode(cookie.Value)
	if err != nil {
		return sm.newSession(), nil
	}
	if payload.ExpiresAt > 0 && sm.now().Unix() > payload.ExpiresAt {
		return sm.newSession(), nil
	}
	sess := &Session{
		ID:            payload.ID,
		values:        payload.Values,
		authenticated: payload.Authenticated,
		flashes:       payload.Flashes,
	}
	if sess.values == nil {
		sess.values = make(map[string]string)
	}
	return sess, nil
}

// Commit writes the cookie headers when the session changed.
func (sm *SessionManager) Commit(w http.ResponseWriter, sess *Session) error {
	if sess == nil {
		return nil
	}
	if sess.destroyed {
		http.SetCookie(w, &http.Cookie{
			Name:     sm.cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   sm.secure,
			SameSite: http.SameSiteLaxMode,
		})
		return nil
	}
	if !sess.dirty && !sess.isNew {
		return nil
	}
	expires := sm.now().Add(sm.ttl)
	value, err := sm.encode(sessionPayload{
		ID:            sess.ID,
		Values:        sess.values,
		Authenticated: sess.authenticated,
		Flashes:       sess.flashes,
		ExpiresAt:     expires.Unix(),
	})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
		MaxAge:   int(sm.ttl.Seconds()),
	})
	sess.dirty = false
	sess.isNew = false
	return nil
}

// Destroy marks the session for deletion.
func (sm *SessionManager) Destroy(sess *Session) {
	if sess == nil {
		return
	}
	sess.destroyed = true
}

// TTL exposes the configured session lifetime.
func (sm *SessionManager) TTL() time.Duration {
	return sm.ttl
}

// CookieName returns the cookie identifier used for sessions.
func (sm *SessionManager) CookieName() string {
	return sm.cookieName
}

// Set stores a key-value pair.
func (s *Session) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	s.dirty = true
}

// Get retrieves a value.
func (s *Session) Get(key string) string {
	if s.values == nil {
		return ""
	}
	return s.values[key]
}

// Delete removes a value.
func (s *Session) Delete(key string) {
	if s.values == nil {
		return
	}
	delete(s.values, key)
	s.dirty = true
}

// SetAuthenticated flips the capability flag checked by the route gate.
func (s *Session) SetAuthenticated(ok bool) {
	s.authenticated = ok
	s.dirty = true
}

// Authenticated reports whether the password gate was passed.
func (s *Session) Authenticated() bool {
	return s != nil && s.authenticated && !s.destroyed
}

// AddFlash queues a flash message.
func (s *Session) AddFlash(msg FlashMessage) {
	s.flashes = append(s.flashes, msg)
	s.dirty = true
}

// PopFlash retrieves and clears the oldest flash message.
func (s *Session) PopFlash() *FlashMessage {
	if len(s.flashes) == 0 {
		return nil
	}
	msg := s.flashes[0]
	s.flashes = s.flashes[1:]
	s.dirty = true
	return &msg
}

func (sm *SessionManager) newSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		values: make(map[string]string),
		isNew:  true,
		dirty:  true,
	}
}

func (sm *SessionManager) encode(payload sessionPayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	body := base64.RawURLEncoding.EncodeToString(raw)
	return body + "." + sm.sign(body), nil
}

func (sm *SessionManager) decode(value string) (sessionPayload, error) {
	body, sig, ok := strings.Cut(value, ".")
	if !ok || body == "" || sig == "" {
		return sessionPayload{}, ErrSessionInvalid
	}
	if !hmac.Equal([]byte(sig), []byte(sm.sign(body))) {
		return sessionPayload{}, ErrSessionInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return sessionPayload{}, ErrSessionInvalid
	}
	var payload sessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return sessionPayload{}, ErrSessionInvalid
	}
	if payload.ID == "" {
		return sessionPayload{}, ErrSessionInvalid
	}
	return payload, nil
}

func (sm *SessionManager) sign(body string) string {
	mac := hmac.New(sha256.New, sm.secret)
	_, _ = mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
