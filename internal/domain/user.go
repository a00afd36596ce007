package domain

import (
	"context"
	"time"
)

// Role is a user's role within the application.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCreator    Role = "creator"
	RoleRespondent Role = "respondent"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCreator || r == RoleRespondent
}

// User represents an application user. The first user in the store is treated
// as the current (logged in) user; there is no session concept.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Role              Role      `json:"role"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Name == "" {
		return NewInvalidInputError("user name is required")
	}
	if u.Email == "" {
		return NewInvalidInputError("user email is required")
	}
	if !u.Role.IsValid() {
		return NewInvalidInputError("user role must be admin, creator or respondent")
	}
	return nil
}

// UserDraft carries the caller-supplied fields of a new user. The store
// assigns the identifier, creation timestamp and a default avatar reference
// when none is supplied.
type UserDraft struct {
	Name              string
	Email             string
	Role              Role
	ProfilePictureURL string
}

// UserUpdate enumerates the user fields a partial update may change.
type UserUpdate struct {
	Name              *string
	Email             *string
	Role              *Role
	ProfilePictureURL *string
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// Current returns the first user in the collection, or a synthesized
	// guest user when the collection is empty.
	Current(ctx context.Context) (*User, error)
	Add(ctx context.Context, draft UserDraft) (*User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*User, error)
	// Delete fails with a primary-admin DomainError when the collection has
	// at most one user or the target is the first (current) user.
	Delete(ctx context.Context, id string) error
}
