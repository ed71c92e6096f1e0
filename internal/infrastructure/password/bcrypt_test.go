package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_Hash(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("very-secure-password")
	require.NoError(t, err)
	assert.NotEqual(t, "very-secure-password", hash)
	assert.True(t, h.IsHash(hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("very-secure-password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("bogus-password")))

	again, err := h.Hash("very-secure-password")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salt must differ between hashes")
}

func TestBcrypt_Table(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr bool
	}{
		{"empty", "", true},
		{"too long", strings.Repeat("x", 73), true},
		{"max length", strings.Repeat("x", 72), false},
	}

	h := NewBcrypt(bcrypt.MinCost)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Hash(tt.plain)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewBcrypt_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
	assert.False(t, NewBcrypt(0).IsHash("plaintext"))
}
