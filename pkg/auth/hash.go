package auth

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

const minPasswordLen = 8

var (
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrShortPassword = errors.New("password is too short")
)

// HashService produces the ADMIN_PASSWORD_HASH value and checks admin
// logins against it. The zero value hashes with bcrypt.DefaultCost.
type HashService struct {
	cost int
}

func (b *HashService) HashPassword(password string) (string, error) {
	switch {
	case password == "":
		return "", ErrEmptyPassword
	case utf8.RuneCountInString(password) < minPasswordLen:
		return "", ErrShortPassword
	}

	cost := b.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword tolerates the trailing whitespace env files tend to leave
// on the stored hash. An empty hash never matches.
func (b *HashService) ComparePassword(hashedPassword, password string) bool {
	hashedPassword = strings.TrimSpace(hashedPassword)
	if hashedPassword == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
