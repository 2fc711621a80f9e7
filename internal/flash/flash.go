// Package flash carries one-shot user messages across a redirect.
// Messages travel in a short-lived HS256 JWT cookie so they cannot be
// forged by the client and need no server-side session store.
package flash

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName is the cookie the messages are stored in.  The page cache
// skips requests carrying it.
const CookieName = "fyyur_flash"

// Message kinds.
const (
	Success = "success"
	Error   = "error"
)

const (
	pendingKey  = "flash.pending"
	maxMessages = 10
	defaultTTL  = 5 * time.Minute
)

// Message is a single flash message.
type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type claims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// Store signs and reads flash cookies.
type Store struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// New returns a Store signing with secret.  secure marks the cookie
// Secure; set it when serving over TLS.
func New(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), ttl: defaultTTL, secure: secure, now: time.Now}
}

// Encode signs msgs into a cookie value.
func (s *Store) Encode(msgs []Message) (string, error) {
	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return t.SignedString(s.secret)
}

// Decode verifies a cookie value and returns its messages.  Tampered,
// expired or foreign tokens are rejected.
func (s *Store) Decode(value string) ([]Message, error) {
	var c claims
	_, err := jwt.ParseWithClaims(value, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	return c.Messages, nil
}

// Add queues a message for the next page the client sees.
func (s *Store) Add(c echo.Context, kind, text string) error {
	msgs, pending := c.Get(pendingKey).([]Message)
	if !pending {
		// keep messages not yet shown, e.g. after two redirects in a row
		msgs = s.fromRequest(c)
	}
	msgs = append(msgs, Message{Kind: kind, Text: text})
	if len(msgs) > maxMessages {
		msgs = msgs[len(msgs)-maxMessages:]
	}
	c.Set(pendingKey, msgs)

	value, err := s.Encode(msgs)
	if err != nil {
		return err
	}
	c.SetCookie(s.cookie(value, int(s.ttl/time.Second)))
	return nil
}

// Pop returns and clears every message for this request: those in the
// incoming cookie plus any added while handling it.
func (s *Store) Pop(c echo.Context) []Message {
	msgs, pending := c.Get(pendingKey).([]Message)
	if !pending {
		msgs = s.fromRequest(c)
	}
	_, err := c.Cookie(CookieName)
	if pending || !errors.Is(err, http.ErrNoCookie) {
		c.Set(pendingKey, []Message{})
		c.SetCookie(s.cookie("", -1))
	}
	return msgs
}

func (s *Store) fromRequest(c echo.Context) []Message {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	msgs, err := s.Decode(ck.Value)
	if err != nil {
		return nil
	}
	return msgs
}

func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
