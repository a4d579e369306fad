package kdf

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = bcrypt.DefaultCost

// BcryptProvider derives a password-hash artifact via bcrypt, the second
// KDF collaborator named in spec.md §6.
type BcryptProvider struct{}

// Algorithm implements Provider.
func (p *BcryptProvider) Algorithm() string {
	return AlgorithmBcrypt
}

// Derive runs bcrypt(password, cost) and returns the encoded hash (which
// embeds the cost and salt, bcrypt's usual convention) as the artifact.
func (p *BcryptProvider) Derive(password []byte, params Params) ([]byte, error) {
	if len(password) == 0 {
		return nil, fmt.Errorf("kdf: bcrypt requires a non-empty password")
	}

	cost := params.Cost
	if cost == 0 {
		cost = defaultBcryptCost
	}

	return bcrypt.GenerateFromPassword(password, cost)
}
