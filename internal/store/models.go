package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	// RoleUser is the default role (read announcements, manage own session)
	RoleUser Role = "user"
	// RoleAdmin can additionally manage user records
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole safely parses a string into a Role type
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username"`
	Email         string     `bun:"email" json:"email,omitempty"`
	FullName      string     `bun:"full_name" json:"full_name,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Disabled      bool       `bun:"disabled,notnull,default:false" json:"disabled"`
	Role          Role       `bun:"user_role,notnull,default:'user'" json:"role"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// EffectiveRole resolves the stored role, defaulting to RoleUser when the
// record predates role support.
func (u *User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// Announcement is the announcement model
type Announcement struct {
	bun.BaseModel `bun:"table:announcements,alias:ann"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title"`
	Description   string     `bun:"description,notnull" json:"description"`
	Thumbnail     string     `bun:"thumbnail" json:"thumbnail,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
