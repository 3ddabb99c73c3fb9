// Package revocation keeps track of bearer tokens that were logged out
// before they expired.
package revocation

import (
	"context"
	"time"
)

type Store interface {
	// Revoke marks the token as unusable until expiresAt.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
