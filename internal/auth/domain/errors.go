package domain

import (
	"github.com/lifebook/lifebook/internal/errors"
)

// Authentication errors. All of them map to 401; the distinct values keep
// log lines meaningful without leaking the difference to clients.
var (
	// ErrMissingToken indicates the Authorization header is absent or malformed.
	ErrMissingToken = errors.Wrap(errors.ErrUnauthorized, "missing bearer token")

	// ErrInvalidToken indicates the token failed signature or expiry checks.
	// A tampered token and an expired one are deliberately indistinguishable.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid or expired token")

	// ErrSubjectGone indicates the token was valid but its subject no longer exists.
	ErrSubjectGone = errors.Wrap(errors.ErrUnauthorized, "subject no longer exists")

	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	// One error for both cases prevents user enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrNotAdmin indicates an authenticated, non-administrator subject.
	ErrNotAdmin = errors.Wrap(errors.ErrForbidden, "not an administrator")
)
