package bcrypt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gocrypt "golang.org/x/crypto/bcrypt"

	"backend/insurance-platform/app/pkg/bcrypt"
)

func TestNewBcrypt(t *testing.T) {
	tests := []struct {
		name         string
		cost         int
		expectedCost int
	}{
		{name: "valid cost within range", cost: 12, expectedCost: 12},
		{name: "cost below minimum defaults to default", cost: 3, expectedCost: gocrypt.DefaultCost},
		{name: "cost above maximum defaults to default", cost: 32, expectedCost: gocrypt.DefaultCost},
		{name: "minimum cost", cost: gocrypt.MinCost, expectedCost: gocrypt.MinCost},
		{name: "maximum cost", cost: gocrypt.MaxCost, expectedCost: gocrypt.MaxCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := bcrypt.NewBcrypt(tt.cost)
			assert.Equal(t, tt.expectedCost, hasher.Cost())
		})
	}
}

func TestBcrypt_HashPassword(t *testing.T) {
	hasher := bcrypt.NewBcrypt(gocrypt.MinCost)

	t.Run("empty password rejected", func(t *testing.T) {
		_, err := hasher.HashPassword("")
		assert.Error(t, err)
	})

	t.Run("hash differs from plaintext and verifies", func(t *testing.T) {
		hash, err := hasher.HashPassword("s3cret-pass")
		assert.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", hash)
		assert.True(t, strings.HasPrefix(hash, "$2"))

		ok, err := hasher.CheckPassword("s3cret-pass", hash)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hash, err := hasher.HashPassword("s3cret-pass")
		assert.NoError(t, err)

		ok, _ := hasher.CheckPassword("other-pass", hash)
		assert.False(t, ok)
	})
}
