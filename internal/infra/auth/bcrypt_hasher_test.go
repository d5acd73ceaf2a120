package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vms/config"
)

func newTestHasher(strength *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4} // min cost keeps the tests fast
	cfg.PasswordStrength = strength

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher(nil)

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength_Defaults(t *testing.T) {
	hasher := newTestHasher(nil)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "strong password", password: "Str0ngPassword", wantErr: false},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "no uppercase", password: "weakpassword1", wantErr: true},
		{name: "no lowercase", password: "WEAKPASSWORD1", wantErr: true},
		{name: "no digits", password: "WeakPassword", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_ValidatePasswordStrength_Configured(t *testing.T) {
	hasher := newTestHasher(&config.PasswordStrengthConfig{
		MinLength:      12,
		RequireSpecial: true,
	})

	assert.Error(t, hasher.ValidatePasswordStrength("NoSpecial123"))
	assert.Error(t, hasher.ValidatePasswordStrength("Sh0rt!"))
	assert.NoError(t, hasher.ValidatePasswordStrength("l0ng-enough-pass!"))
}
