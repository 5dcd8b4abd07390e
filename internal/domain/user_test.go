package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("Juan", "juan@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "Juan", user.Name)
		assert.Equal(t, "juan@example.com", user.Email)
		assert.Equal(t, "secret", user.Password)
		assert.Zero(t, user.ID)
	})

	t.Run("short password is allowed", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("Juan", "juan@example.com", "a")
		assert.NoError(t, err)
	})
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name:    "valid with plaintext password",
			user:    User{Name: "Juan", Email: "juan@example.com", Password: "secret"},
			wantErr: nil,
		},
		{
			name:    "valid with hash only",
			user:    User{Name: "Juan", Email: "juan@example.com", HashedPassword: "x"},
			wantErr: nil,
		},
		{
			name:    "empty name",
			user:    User{Email: "juan@example.com", Password: "secret"},
			wantErr: ErrEmptyUserName,
		},
		{
			name:    "empty email",
			user:    User{Name: "Juan", Password: "secret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			user:    User{Name: "Juan", Email: "not-an-email", Password: "secret"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email missing domain dot",
			user:    User{Name: "Juan", Email: "juan@example", Password: "secret"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "no password and no hash",
			user:    User{Name: "Juan", Email: "juan@example.com"},
			wantErr: ErrEmptyPassword,
		},
		{
			name: "password over bcrypt limit",
			user: User{
				Name:     "Juan",
				Email:    "juan@example.com",
				Password: strings.Repeat("a", 73),
			},
			wantErr: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
