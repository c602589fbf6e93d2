package store

import (
	"context"

	"github.com/goliatone/go-errors"
)

// EnsureDefaultAdmin creates the configured admin account when no user with
// that username exists yet. It reports whether a record was created.
//
// The call is idempotent: a second run against the same store is a no-op. A
// concurrent creation racing the existence check is absorbed through the
// username unique constraint.
func EnsureDefaultAdmin(ctx context.Context, users *Users, username, passwordHash string) (bool, error) {
	existing, err := users.FindByUsername(ctx, username)
	if err != nil {
		return false, errors.Wrap(err, errors.CategoryInternal, "admin bootstrap lookup failed")
	}
	if existing != nil {
		return false, nil
	}

	admin := &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
	}

	if _, err := users.Create(ctx, admin); err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) && richErr.Category == errors.CategoryConflict {
			// Lost the race to another instance, the admin exists.
			return false, nil
		}
		return false, errors.Wrap(err, errors.CategoryInternal, "admin bootstrap insert failed")
	}

	return true, nil
}
