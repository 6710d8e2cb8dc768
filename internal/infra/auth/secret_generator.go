package auth

import (
	"crypto/rand"
	"math/big"

	"usersvc/config"
	"usersvc/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	upperAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet   = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet   = "23456789"
	specialAlphabet = "!@#$%&*?"
)

type randomSecretGenerator struct {
	length   int
	required []string
	alphabet string
}

// NewSecretGenerator builds a generator whose passwords satisfy the configured
// password strength rules.
func NewSecretGenerator(cfg *config.Config) service.SecretGenerator {
	length := 12
	if cfg.Auth != nil && cfg.Auth.TemporaryPasswordLength > length {
		length = cfg.Auth.TemporaryPasswordLength
	}

	g := &randomSecretGenerator{
		alphabet: upperAlphabet + lowerAlphabet + digitAlphabet,
	}

	strength := cfg.PasswordStrength
	if strength != nil {
		if strength.MinLength > length {
			length = strength.MinLength
		}
		if strength.MaxLength > 0 && length > strength.MaxLength {
			length = strength.MaxLength
		}
		if strength.RequireUppercase {
			g.required = append(g.required, upperAlphabet)
		}
		if strength.RequireLowercase {
			g.required = append(g.required, lowerAlphabet)
		}
		if strength.RequireNumbers {
			g.required = append(g.required, digitAlphabet)
		}
		if strength.RequireSpecial {
			g.required = append(g.required, specialAlphabet)
			g.alphabet += specialAlphabet
		}
	}
	g.length = max(length, len(g.required))

	return g
}

// TemporaryPassword draws one character from every required class, fills the
// rest from the full alphabet and shuffles the result.
func (g *randomSecretGenerator) TemporaryPassword() (string, error) {
	password := make([]byte, 0, g.length)
	for _, class := range g.required {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < g.length {
		c, err := pick(g.alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for i := len(password) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(alphabet string) (byte, error) {
	i, err := randomIndex(len(alphabet))
	if err != nil {
		return 0, err
	}

	return alphabet[i], nil
}

func randomIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "crypto/rand")
	}

	return int(v.Int64()), nil
}
