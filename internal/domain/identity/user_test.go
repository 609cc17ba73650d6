package identity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser("Amina Diallo", "Amina@Example.com ", "supersecret")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.GetID())
		assert.Equal(t, "Amina Diallo", user.Name)
		assert.Equal(t, "amina@example.com", user.Email)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.True(t, user.IsActive())
		assert.NotEqual(t, "supersecret", user.PasswordHash)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewUser("   ", "amina@example.com", "supersecret")
		assert.Error(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := NewUser("Amina", "not-an-email", "supersecret")
		assert.Error(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := NewUser("Amina", "amina@example.com", "short")
		assert.Error(t, err)
	})

	t.Run("password too long for bcrypt", func(t *testing.T) {
		_, err := NewUser("Amina", "amina@example.com", strings.Repeat("x", 73))
		assert.Error(t, err)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("Amina", "amina@example.com", "supersecret")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("supersecret"))
	assert.False(t, user.VerifyPassword("wrongpassword"))
	assert.False(t, user.VerifyPassword(""))
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser("Amina", "amina@example.com", "supersecret")
	require.NoError(t, err)
	oldHash := user.PasswordHash

	require.NoError(t, user.ChangePassword("evenmoresecret"))
	assert.NotEqual(t, oldHash, user.PasswordHash)
	assert.True(t, user.VerifyPassword("evenmoresecret"))
	assert.False(t, user.VerifyPassword("supersecret"))

	assert.Error(t, user.ChangePassword("tiny"))
}

func TestUser_UpdateProfile(t *testing.T) {
	user, err := NewUser("Amina", "amina@example.com", "supersecret")
	require.NoError(t, err)
	version := user.GetVersion()

	require.NoError(t, user.UpdateProfile("Amina D.", "+223 70 00 00 00", "Bamako, Mali"))
	assert.Equal(t, "Amina D.", user.Name)
	assert.Equal(t, "+223 70 00 00 00", user.Phone)
	assert.Equal(t, "Bamako, Mali", user.Address)
	assert.Equal(t, version+1, user.GetVersion())

	assert.Error(t, user.UpdateProfile("", "", ""))
	assert.Error(t, user.UpdateProfile("Amina", strings.Repeat("9", 51), ""))
}

func TestUser_Deactivate(t *testing.T) {
	user, err := NewUser("Amina", "amina@example.com", "supersecret")
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())
	assert.False(t, user.IsActive())
	assert.Error(t, user.Deactivate())
}
