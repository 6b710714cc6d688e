package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{cost: bcrypt.MinCost}

	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{
			name:     "Admin password",
			password: "stars-admin-2025",
		},
		{
			name:          "Empty",
			password:      "",
			expectedError: ErrEmptyPassword,
		},
		{
			name:          "Too short",
			password:      "admin",
			expectedError: ErrShortPassword,
		},
		{
			name:     "Eight cyrillic runes",
			password: "звёздочк",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hashService.HashPassword(tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.True(t, hashService.ComparePassword(hash, tt.password))
		})
	}
}

func TestDefaultCost(t *testing.T) {
	hash, err := (&HashService{}).HashPassword("stars-admin-2025")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{cost: bcrypt.MinCost}
	hash, err := hashService.HashPassword("stars-admin-2025")
	require.NoError(t, err)

	tests := []struct {
		name        string
		stored      string
		password    string
		expectMatch bool
	}{
		{"Login with the right password", hash, "stars-admin-2025", true},
		{"Hash copied from an env file with a newline", hash + "\n", "stars-admin-2025", true},
		{"Wrong password", hash, "stars-admin-2024", false},
		{"Empty password", hash, "", false},
		{"Admin api not configured", "", "stars-admin-2025", false},
		{"Garbage in env", "not-a-hash", "stars-admin-2025", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.stored, tt.password))
		})
	}
}
