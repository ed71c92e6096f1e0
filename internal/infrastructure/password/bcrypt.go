package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password is empty")

// Bcrypt is a one-way salted hasher. Hashes embed their own cost and salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt falls back to bcrypt.DefaultCost when cost is outside the range
// the algorithm accepts.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// IsHash reports whether s already is a bcrypt hash.
func (b *Bcrypt) IsHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
