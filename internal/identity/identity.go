// Package identity resolves the opaque session credential presented at
// connection-bind time into a stable player identity. The game core treats
// the result as a black box: only the identity string matters for
// reconnection and scoring.
package identity

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is what the external profile provider knows about a player.
type Identity struct {
	ID          string
	DisplayName string
	EloRating   int
}

// Provider resolves a session credential to an identity. displayName is the
// client-supplied name used when the credential carries none, or for guests.
type Provider interface {
	Resolve(credential, displayName string) (Identity, error)
}

var ErrInvalidCredential = errors.New("invalid session credential")

// TokenProvider verifies HS256 JWT session credentials. An empty credential
// yields a fresh guest identity, so unauthenticated players can always join;
// a present but invalid credential is rejected.
type TokenProvider struct {
	secret []byte
}

// NewTokenProvider creates a provider verifying tokens against secret.
func NewTokenProvider(secret string) *TokenProvider {
	return &TokenProvider{secret: []byte(secret)}
}

type sessionClaims struct {
	Name string `json:"name,omitempty"`
	Elo  int    `json:"elo,omitempty"`
	jwt.RegisteredClaims
}

// Resolve implements Provider.
func (p *TokenProvider) Resolve(credential, displayName string) (Identity, error) {
	if strings.TrimSpace(credential) == "" {
		return GuestIdentity(displayName), nil
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidCredential
	}

	name := claims.Name
	if name == "" {
		name = displayName
	}

	return Identity{
		ID:          claims.Subject,
		DisplayName: name,
		EloRating:   claims.Elo,
	}, nil
}

// GuestIdentity mints a throwaway identity for an unauthenticated player.
// The id is stable for the lifetime of the room only if the client echoes it
// back on reconnect.
func GuestIdentity(displayName string) Identity {
	return Identity{
		ID:          uuid.New().String(),
		DisplayName: displayName,
	}
}
