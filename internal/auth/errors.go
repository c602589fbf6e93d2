package auth

import (
	"github.com/goliatone/go-errors"
)

// Text codes exposed to API clients alongside the HTTP status.
const (
	TextCodeInvalidCreds   = "INVALID_CREDENTIALS"
	TextCodeInvalidToken   = "INVALID_TOKEN"
	TextCodeTokenExpired   = "TOKEN_EXPIRED"
	TextCodeTokenMalformed = "TOKEN_MALFORMED"
	TextCodeInactiveUser   = "INACTIVE_USER"
	TextCodeNotEnoughPerms = "NOT_ENOUGH_PERMISSIONS"
)

// ErrInvalidCredentials is the single answer for every login failure:
// unknown username, disabled account, and wrong password all collapse into
// it so the response cannot be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("Incorrect username or password", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeInvalidCreds)

// ErrCouldNotValidate is the single answer for every session-resolution
// failure where the token itself could not be proven: bad signature,
// malformed structure, expiry, and a subject that no longer resolves.
var ErrCouldNotValidate = errors.New("Could not validate credentials", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeInvalidToken)

// ErrInactiveUser is returned when a proven-valid token points at a
// disabled account. This one case intentionally carries a distinct
// message: identity is already established, only access is withheld.
var ErrInactiveUser = errors.New("Inactive user", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode(TextCodeInactiveUser)

// ErrNotEnoughPermissions is returned by the role gate for an enabled
// actor whose role is outside the allowed set.
var ErrNotEnoughPermissions = errors.New("Not enough permissions", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode(TextCodeNotEnoughPerms)

// ErrTokenExpired marks a structurally valid token past its expiry.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeTokenExpired)

// ErrTokenMalformed marks a token that failed signature or structure checks.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeTokenMalformed)
