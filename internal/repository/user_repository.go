package repository

import (
	"context"
	"time"

	"surveyforge/internal/domain"
	"surveyforge/internal/store"
	"surveyforge/internal/util"
)

// documentUserRepository implements domain.UserRepository over the document
// store.
type documentUserRepository struct {
	store *store.Store
}

// NewUserRepository creates a user repository backed by s.
func NewUserRepository(s *store.Store) domain.UserRepository {
	return &documentUserRepository{store: s}
}

// List returns all users in insertion order.
func (r *documentUserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.store.View(ctx, func(doc *store.Document) error {
		copied, err := store.Copy(doc.Users)
		if err != nil {
			return domain.NewInternalError("Failed to copy users", err)
		}
		users = copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns (nil, nil) when no user has the given identifier.
func (r *documentUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var found *domain.User
	err := r.store.View(ctx, func(doc *store.Document) error {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				copied, err := store.Copy(doc.Users[i])
				if err != nil {
					return domain.NewInternalError("Failed to copy user", err)
				}
				found = &copied
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Current returns the first user in the collection as the logged-in user.
// An empty collection yields a synthesized guest rather than a failure.
func (r *documentUserRepository) Current(ctx context.Context) (*domain.User, error) {
	var current *domain.User
	err := r.store.View(ctx, func(doc *store.Document) error {
		if len(doc.Users) == 0 {
			current = &domain.User{
				ID:        "guest",
				Name:      "Guest",
				Email:     "guest@example.com",
				Role:      domain.RoleRespondent,
				CreatedAt: time.Now().UTC(),
			}
			return nil
		}
		copied, err := store.Copy(doc.Users[0])
		if err != nil {
			return domain.NewInternalError("Failed to copy user", err)
		}
		current = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

// Add assigns an identifier, creation timestamp and a default avatar
// reference when none is supplied, then appends the user.
func (r *documentUserRepository) Add(ctx context.Context, draft domain.UserDraft) (*domain.User, error) {
	id := util.NewULID()
	avatar := draft.ProfilePictureURL
	if avatar == "" {
		avatar = "https://i.pravatar.cc/150?u=" + id
	}
	user := domain.User{
		ID:                id,
		Name:              draft.Name,
		Email:             draft.Email,
		Role:              draft.Role,
		ProfilePictureURL: avatar,
		CreatedAt:         time.Now().UTC(),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	err := r.store.Update(ctx, func(doc *store.Document) error {
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	copied, err := store.Copy(user)
	if err != nil {
		return nil, domain.NewInternalError("Failed to copy user", err)
	}
	return &copied, nil
}

// Update merges the non-nil fields of update onto the stored user. It fails
// with a not-found error when the user is absent.
func (r *documentUserRepository) Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	var merged domain.User
	err := r.store.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Users {
			if doc.Users[i].ID != id {
				continue
			}
			u := &doc.Users[i]
			if update.Name != nil {
				u.Name = *update.Name
			}
			if update.Email != nil {
				u.Email = *update.Email
			}
			if update.Role != nil {
				u.Role = *update.Role
			}
			if update.ProfilePictureURL != nil {
				u.ProfilePictureURL = *update.ProfilePictureURL
			}
			if err := u.Validate(); err != nil {
				return err
			}
			merged = *u
			return nil
		}
		return domain.NewUserNotFoundError(id)
	})
	if err != nil {
		return nil, err
	}
	copied, err := store.Copy(merged)
	if err != nil {
		return nil, domain.NewInternalError("Failed to copy user", err)
	}
	return &copied, nil
}

// Delete removes a user. The sole remaining user and the first (current)
// user are protected; deleting them fails with a primary-admin error and
// leaves the store unchanged.
func (r *documentUserRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(doc *store.Document) error {
		if len(doc.Users) <= 1 || doc.Users[0].ID == id {
			return domain.NewPrimaryAdminError()
		}
		users := doc.Users[:0]
		for i := range doc.Users {
			if doc.Users[i].ID != id {
				users = append(users, doc.Users[i])
			}
		}
		doc.Users = users
		return nil
	})
}
