package auth

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/mmarinn/dayder/internal/store"
)

// Authenticator verifies credentials against the user store and resolves
// the current actor behind a bearer token. It performs no writes and no
// retries; a store failure propagates to the caller.
type Authenticator struct {
	lookup UserLookup
	tokens *TokenService
	logger Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(lookup UserLookup, tokens *TokenService) *Authenticator {
	return &Authenticator{
		lookup: lookup,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (a *Authenticator) WithLogger(logger Logger) *Authenticator {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// TokenService returns the TokenService instance used by this Authenticator
func (a *Authenticator) TokenService() *TokenService {
	return a.tokens
}

// Login verifies the username/password pair and issues a bearer token.
// Unknown username, disabled account and wrong password all fail with
// ErrInvalidCredentials; nothing in the result distinguishes them.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.lookup.FindByUsername(ctx, username)
	if err != nil {
		a.logger.Error("login user lookup failed: %v", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if user == nil {
		return "", ErrInvalidCredentials
	}

	if user.Disabled {
		return "", ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.tokens.Generate(user.Username)
	if err != nil {
		a.logger.Error("login token generation failed: %v", err)
		return "", err
	}

	return token, nil
}

// CurrentUser resolves the actor for a request from its bearer token: the
// token is verified, the subject re-fetched from the store, and the
// account confirmed enabled. Token and lookup failures collapse into
// ErrCouldNotValidate; a disabled account fails with the distinct
// ErrInactiveUser since the token was already proven valid.
func (a *Authenticator) CurrentUser(ctx context.Context, raw string) (*store.User, error) {
	claims, err := a.tokens.Validate(raw)
	if err != nil {
		a.logger.Debug("session token validation failed: %v", err)
		return nil, ErrCouldNotValidate
	}

	user, err := a.lookup.FindByUsername(ctx, claims.Subject)
	if err != nil {
		a.logger.Error("session user lookup failed: %v", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during session resolution")
	}

	if user == nil {
		return nil, ErrCouldNotValidate
	}

	if user.Disabled {
		return nil, ErrInactiveUser
	}

	return user, nil
}
