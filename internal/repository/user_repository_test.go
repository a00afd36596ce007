package repository

import (
	"context"
	"testing"

	"surveyforge/internal/domain"
	"surveyforge/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_SeededAdmin(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Jane Doe", users[0].Name)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, users[0].ID, current.ID)
}

func TestUserRepository_CurrentGuestFallback(t *testing.T) {
	// An explicitly empty document, as opposed to the seeded default.
	s, err := store.Open(context.Background(), store.NewMemoryBackendWith([]byte(`{"users":[],"surveys":[],"responses":[]}`)))
	require.NoError(t, err)
	repo := NewUserRepository(s)

	current, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "guest", current.ID)
	assert.Equal(t, "Guest", current.Name)
	assert.Equal(t, domain.RoleRespondent, current.Role)
}

func TestUserRepository_AddAssignsDefaults(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	added, err := repo.Add(ctx, domain.UserDraft{Name: "Ada", Email: "ada@example.com", Role: domain.RoleCreator})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Contains(t, added.ProfilePictureURL, added.ID)

	withAvatar, err := repo.Add(ctx, domain.UserDraft{
		Name:              "Grace",
		Email:             "grace@example.com",
		Role:              domain.RoleRespondent,
		ProfilePictureURL: "https://example.com/grace.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/grace.png", withAvatar.ProfilePictureURL)
}

func TestUserRepository_AddRejectsInvalid(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	_, err := repo.Add(context.Background(), domain.UserDraft{Name: "No Email", Role: domain.RoleCreator})
	require.Error(t, err)

	_, err = repo.Add(context.Background(), domain.UserDraft{Name: "Bad Role", Email: "x@example.com", Role: "owner"})
	require.Error(t, err)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	added, err := repo.Add(ctx, domain.UserDraft{Name: "Ada", Email: "ada@example.com", Role: domain.RoleCreator})
	require.NoError(t, err)

	role := domain.RoleAdmin
	updated, err := repo.Update(ctx, added.ID, domain.UserUpdate{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.Equal(t, "Ada", updated.Name)

	_, err = repo.Update(ctx, "missing", domain.UserUpdate{Role: &role})
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrUserNotFound, domainErr.Code)
}

func TestUserRepository_DeletePrimaryAdminGuard(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	admin := users[0]

	// The sole remaining user cannot be deleted.
	err = repo.Delete(ctx, admin.ID)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrPrimaryAdminRemoval, domainErr.Code)

	added, err := repo.Add(ctx, domain.UserDraft{Name: "Ada", Email: "ada@example.com", Role: domain.RoleCreator})
	require.NoError(t, err)

	// Even with others present, the first user stays protected.
	err = repo.Delete(ctx, admin.ID)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrPrimaryAdminRemoval, domainErr.Code)

	// A later member deletes normally.
	require.NoError(t, repo.Delete(ctx, added.ID))
	users, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, admin.ID, users[0].ID)
}
