// Package tokenpkg creates and verifies the bearer tokens of the identity collaborator.
package tokenpkg

import (
	"fmt"
	"time"
)

// Token types accepted by New.
const (
	TypePaseto = "paseto"
	TypeJWT    = "jwt"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific username, role and duration.
	CreateToken(username, role string, duration time.Duration) (string, *Payload, error)
	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// New returns the Maker of the given token type.
func New(tokenType, key string) (Maker, error) {
	switch tokenType {
	case TypePaseto, "":
		return NewPasetoMaker(key)
	case TypeJWT:
		return NewJWTMaker(key)
	}

	return nil, fmt.Errorf("unsupported token type %q", tokenType)
}
