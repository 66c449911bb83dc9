package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		user, err := NewUser("Admin", "correct-horse-battery", RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
		assert.NotContains(t, user.PasswordHash, "correct-horse")
		assert.True(t, user.CheckPassword("correct-horse-battery"))
		assert.False(t, user.CheckPassword("wrong"))
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := NewUser("admin", "short", RoleAdmin)
		assert.ErrorContains(t, err, "8 characters")
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewUser("  ", "long-enough-password", RoleEditor)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("admin", "long-enough-password", "superuser")
		assert.Error(t, err)
	})
}

func TestUser_Deactivate(t *testing.T) {
	user, err := NewUser("editor", "long-enough-password", RoleEditor)
	require.NoError(t, err)

	user.Deactivate()

	assert.False(t, user.IsActive)
	assert.Equal(t, 3, user.Version)
}
