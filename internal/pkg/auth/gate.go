package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrUnauthorized is returned when a presented token is not accepted.
var ErrUnauthorized = errors.New("unauthorized")

// Gate authorizes admin API calls. Credential issuance lives outside this
// service; the gate only verifies what a client presents.
type Gate interface {
	Authorize(token string) error
}

// StaticTokenGate accepts a single pre-shared token, compared in constant
// time.
type StaticTokenGate struct {
	token []byte
}

// NewStaticTokenGate builds a gate around the configured admin token.
func NewStaticTokenGate(token string) *StaticTokenGate {
	return &StaticTokenGate{token: []byte(token)}
}

// Authorize checks the presented token against the configured one. An empty
// configured token locks the gate entirely.
func (g *StaticTokenGate) Authorize(token string) error {
	if len(g.token) == 0 || token == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare(g.token, []byte(token)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
