package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Announcements is the repository for announcement records.
type Announcements struct {
	db *bun.DB
}

// NewAnnouncements will create a new Announcements repository
func NewAnnouncements(db *bun.DB) *Announcements {
	return &Announcements{db: db}
}

// List returns a page of announcements, newest first.
func (r *Announcements) List(ctx context.Context, params ListParams) (*Page[*Announcement], error) {
	params = params.Normalize()

	var items []*Announcement
	total, err := r.db.NewSelect().
		Model(&items).
		Order("ann.created_at DESC").
		Limit(params.Size).
		Offset(params.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list announcements")
	}

	return NewPage(items, total, params), nil
}

// GetByID returns the announcement with the given id, or a not-found error.
func (r *Announcements) GetByID(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	item := new(Announcement)
	err := r.db.NewSelect().
		Model(item).
		Where("ann.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, notFoundAnnouncement(id)
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve announcement")
	}
	return item, nil
}

// Create inserts the record, assigning the id.
func (r *Announcements) Create(ctx context.Context, item *Announcement) (*Announcement, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	if item.CreatedAt == nil {
		item.CreatedAt = &now
	}
	if item.UpdatedAt == nil {
		item.UpdatedAt = &now
	}

	if _, err := r.db.NewInsert().Model(item).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create announcement")
	}
	return item, nil
}

// Update overwrites title, description and thumbnail of the record with the
// given id and bumps updated_at.
func (r *Announcements) Update(ctx context.Context, item *Announcement) (*Announcement, error) {
	now := time.Now()
	item.UpdatedAt = &now

	res, err := r.db.NewUpdate().
		Model(item).
		Column("title", "description", "thumbnail", "updated_at").
		Where("ann.id = ?", item.ID).
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update announcement")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, notFoundAnnouncement(item.ID)
	}
	return r.GetByID(ctx, item.ID)
}

// Delete removes the announcement with the given id. Deleting an absent
// record is a not-found error.
func (r *Announcements) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*Announcement)(nil)).
		Where("ann.id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete announcement")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFoundAnnouncement(id)
	}
	return nil
}

func notFoundAnnouncement(id uuid.UUID) *errors.Error {
	return errors.New("Announcement not found", errors.CategoryNotFound).
		WithCode(errors.CodeNotFound).
		WithMetadata(map[string]any{"id": id.String()})
}
