// Package identity wraps the external identity provider behind a narrow
// verification interface. The application never issues credentials; it only
// validates what the provider signed and reads the profile claims.
package identity

import "context"

// Identity is the verified caller as asserted by the provider token.
type Identity struct {
	// Subject is the provider-side stable account identifier.
	Subject string
	// Email is the verified account email.
	Email string
	// Name is the provider-side display name, if the profile has one.
	Name string
	// Picture is the provider-side photo URL, if the profile has one.
	Picture string
}

// Verifier validates an opaque bearer credential and returns the caller's
// identity. Implementations must fail with apperrors.ErrUnauthenticated for
// every malformed, expired or otherwise invalid credential.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}
