package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Session is the authenticated caller. Cooks and customers are both plain users;
// cook permissions come from owning a cook profile.
type Session struct {
	UserID string
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Session, error)
}

type staticEntry struct {
	token  []byte
	userID string
}

// StaticTokens authenticates against a fixed token list.
type StaticTokens struct {
	entries []staticEntry
}

// ParseStaticTokens reads "token:user_id" pairs separated by commas.
func ParseStaticTokens(raw string) (*StaticTokens, error) {
	st := &StaticTokens{}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		token, userID, ok := strings.Cut(pair, ":")
		token, userID = strings.TrimSpace(token), strings.TrimSpace(userID)
		if !ok || token == "" || userID == "" {
			return nil, fmt.Errorf("malformed token entry %q", pair)
		}

		st.entries = append(st.entries, staticEntry{token: []byte(token), userID: userID})
	}

	return st, nil
}

func (s *StaticTokens) Len() int {
	return len(s.entries)
}

func (s *StaticTokens) Authenticate(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrMissingToken
	}

	candidate := []byte(token)
	for _, e := range s.entries {
		if subtle.ConstantTimeCompare(e.token, candidate) == 1 {
			return Session{UserID: e.userID}, nil
		}
	}

	return Session{}, ErrInvalidToken
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

type sessionContextKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(Session)
	return s, ok
}
