// Package auth provides the credential codecs. The default codec stores
// passwords verbatim and compares them exactly, which keeps existing
// snapshot data working; a bcrypt mode is offered for anyone running this
// beyond a local demo. The trade-off is called out in DESIGN.md.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

type plainCodec struct{}

// NewPlainCodec returns the plaintext codec: passwords are stored verbatim
// and verified by exact, case-sensitive comparison.
func NewPlainCodec() domain.CredentialCodec {
	return plainCodec{}
}

func (plainCodec) Encode(password string) (string, error) {
	return password, nil
}

func (plainCodec) Verify(stored, password string) bool {
	return stored != "" && stored == password
}

type bcryptCodec struct {
	cost int
}

// NewBcryptCodec returns the hardened codec. cost <= 0 selects the bcrypt
// default cost.
func NewBcryptCodec(cost int) domain.CredentialCodec {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptCodec{cost: cost}
}

func (c *bcryptCodec) Encode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (c *bcryptCodec) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
