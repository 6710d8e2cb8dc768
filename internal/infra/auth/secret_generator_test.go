package auth

import (
	"strings"
	"testing"
	"unicode"

	"usersvc/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretGenerator_SatisfiesStrengthRules(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TemporaryPasswordLength: 16},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
	gen := NewSecretGenerator(cfg)

	seen := make(map[string]struct{})
	for range 50 {
		password, err := gen.TemporaryPassword()
		require.NoError(t, err)

		assert.Len(t, password, 16)
		assert.True(t, strings.ContainsFunc(password, unicode.IsUpper), password)
		assert.True(t, strings.ContainsFunc(password, unicode.IsLower), password)
		assert.True(t, strings.ContainsFunc(password, unicode.IsDigit), password)
		assert.True(t, strings.ContainsAny(password, specialAlphabet), password)

		seen[password] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestSecretGenerator_LengthBounds(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "default", cfg: &config.Config{}, want: 12},
		{
			name: "strength minimum wins",
			cfg:  &config.Config{PasswordStrength: &config.PasswordStrengthConfig{MinLength: 20}},
			want: 20,
		},
		{
			name: "capped by maximum",
			cfg: &config.Config{
				Auth:             &config.AuthConfig{TemporaryPasswordLength: 40},
				PasswordStrength: &config.PasswordStrengthConfig{MaxLength: 24},
			},
			want: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := NewSecretGenerator(tt.cfg).TemporaryPassword()

			require.NoError(t, err)
			assert.Len(t, password, tt.want)
		})
	}
}
