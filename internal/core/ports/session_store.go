package ports

import (
	"context"
	"time"

	"scribeassist/internal/core/domain/model/account"
)

// SessionStore maps opaque session tokens to actors. The token itself
// carries no meaning; resolution is a lookup against the store.
type SessionStore interface {
	// Issue stores a new session for the actor and returns its opaque
	// token. The session expires after ttl.
	Issue(ctx context.Context, actor account.Actor, ttl time.Duration) (string, error)

	// Resolve returns the actor for a token, or errs.ObjectNotFoundError
	// for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (account.Actor, error)

	// Revoke deletes a session. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}
