package services

import (
	"testing"

	"plume/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	svc := NewUserService(setupDB(t))

	user, err := svc.Register(&models.RegisterRequest{
		Name:     "Ada",
		Email:    "  Ada@Example.COM ",
		Password: "secret-pass",
		Role:     "author",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, models.RoleAuthor, user.Role)
	assert.NotEqual(t, "secret-pass", user.PasswordHash)
}

func TestRegisterRoleDefaultsToReader(t *testing.T) {
	svc := NewUserService(setupDB(t))

	for _, role := range []string{"", "reader", "admin", "AUTHOR"} {
		user, err := svc.Register(&models.RegisterRequest{
			Name:     "u" + role,
			Email:    "u" + role + "@example.com",
			Password: "secret-pass",
			Role:     role,
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleReader, user.Role, "role input %q", role)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc := NewUserService(setupDB(t))

	_, err := svc.Register(&models.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "12345",
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(setupDB(t))

	_, err := svc.Register(&models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	// Same address, different case: email uniqueness is case-insensitive.
	_, err = svc.Register(&models.RegisterRequest{
		Name: "Imposter", Email: "ADA@example.com", Password: "secret-pass",
	})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(&models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	user, err := svc.Authenticate("ada@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	// Unknown email and wrong password fail identically.
	_, badEmail := svc.Authenticate("nobody@example.com", "secret-pass")
	_, badPassword := svc.Authenticate("ada@example.com", "wrong")
	assert.ErrorIs(t, badEmail, models.ErrNotAuthenticated)
	assert.ErrorIs(t, badPassword, models.ErrNotAuthenticated)
}
