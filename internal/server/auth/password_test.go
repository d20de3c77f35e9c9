package auth

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/bloghub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	ps := NewPasswordServiceWithCost(bcrypt.MinCost)

	hash, err := ps.Hash("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotContains(t, hash, "secret")

	assert.NoError(t, ps.Verify(hash, "secret"))
	assert.ErrorIs(t, ps.Verify(hash, "wrong"), common.ErrorInvalidCredentials)
}

func TestHash_SaltedPerCall(t *testing.T) {
	ps := NewPasswordServiceWithCost(bcrypt.MinCost)

	h1, err := ps.Hash("secret")
	require.NoError(t, err)
	h2, err := ps.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerify_MalformedHash(t *testing.T) {
	ps := NewPasswordServiceWithCost(bcrypt.MinCost)

	err := ps.Verify("not-a-hash", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestNewPasswordService_DefaultCost(t *testing.T) {
	assert.Equal(t, DefaultCost, NewPasswordService().cost)
}

func TestNewPasswordServiceWithCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "configured", cost: 4, want: 4},
		{name: "max", cost: bcrypt.MaxCost, want: bcrypt.MaxCost},
		{name: "zero falls back", cost: 0, want: DefaultCost},
		{name: "above max falls back", cost: bcrypt.MaxCost + 1, want: DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPasswordServiceWithCost(tt.cost).cost)
		})
	}
}

func TestHash_UsesConfiguredCost(t *testing.T) {
	hash, err := NewPasswordServiceWithCost(5).Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
