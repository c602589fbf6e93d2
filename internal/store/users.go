package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the repository for user records.
type Users struct {
	db *bun.DB
}

// NewUsers will create a new Users repository
func NewUsers(db *bun.DB) *Users {
	return &Users{db: db}
}

// GetByUsername returns the user with the given username, or a not-found
// error when absent.
func (r *Users) GetByUsername(ctx context.Context, username string) (*User, error) {
	user := new(User)
	err := r.db.NewSelect().
		Model(user).
		Where("usr.username = ?", username).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithMetadata(map[string]any{"username": username})
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user")
	}
	return user, nil
}

// FindByUsername is the lookup contract the auth core consumes: absence is
// reported as a nil record, never as an error.
func (r *Users) FindByUsername(ctx context.Context, username string) (*User, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetByID returns the user with the given id, or a not-found error.
func (r *Users) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user := new(User)
	err := r.db.NewSelect().
		Model(user).
		Where("usr.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithMetadata(map[string]any{"id": id.String()})
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user")
	}
	return user, nil
}

// Create inserts the record, assigning the id. A duplicate username is
// reported as a conflict.
func (r *Users) Create(ctx context.Context, user *User) (*User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = RoleUser
	}
	now := time.Now()
	if user.CreatedAt == nil {
		user.CreatedAt = &now
	}
	if user.UpdatedAt == nil {
		user.UpdatedAt = &now
	}

	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, errors.New("username already taken", errors.CategoryConflict).
				WithCode(errors.CodeConflict).
				WithMetadata(map[string]any{"username": user.Username})
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create user")
	}
	return user, nil
}

// List returns a page of users ordered by username.
func (r *Users) List(ctx context.Context, params ListParams) (*Page[*User], error) {
	params = params.Normalize()

	var users []*User
	total, err := r.db.NewSelect().
		Model(&users).
		Order("usr.username ASC").
		Limit(params.Size).
		Offset(params.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list users")
	}

	return NewPage(users, total, params), nil
}

// Delete removes the user with the given id. Deleting an absent record is a
// not-found error.
func (r *Users) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*User)(nil)).
		Where("usr.id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete user")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New("user not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound).
			WithMetadata(map[string]any{"id": id.String()})
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "constraint failed")
}
