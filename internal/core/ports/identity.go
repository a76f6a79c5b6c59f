package ports

import (
	"context"

	"github.com/shopnexus/storefront/internal/core/domain"
)

// IdentityProvider talks to the external identity service. Tokens are opaque
// bearer credentials minted upstream; the gateway never inspects them.
type IdentityProvider interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, username, password string) (string, error)
	// Register creates an account. The response body is unused beyond
	// success or failure.
	Register(ctx context.Context, username, email, password string) error
	// Profile resolves the user behind a token. A failure here means the
	// token is invalid or expired, or the service is unreachable.
	Profile(ctx context.Context, token string) (*domain.User, error)
}
