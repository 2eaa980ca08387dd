package services

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/sha3"
)

const (
	HasherSHA3   = "sha3"
	HasherBcrypt = "bcrypt"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A mismatch is not an error.
	Verify(hash, password string) (bool, error)
}

// SHA3Hasher stores the lowercase hex of one unsalted SHA3-256 pass.
type SHA3Hasher struct{}

func (SHA3Hasher) Hash(password string) (string, error) {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA3Hasher) Verify(hash, password string) (bool, error) {
	computed, _ := h.Hash(password)
	stored := strings.ToLower(strings.TrimSpace(hash))
	return subtle.ConstantTimeCompare([]byte(stored), []byte(computed)) == 1, nil
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(out), nil
}

func (BcryptHasher) Verify(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt verify: %w", err)
	}
}

// multiHasher hashes with primary and verifies whichever format the stored hash is in.
type multiHasher struct {
	primary PasswordHasher
	sha3    SHA3Hasher
	bcrypt  BcryptHasher
}

func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	m := &multiHasher{}
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", HasherSHA3:
		m.primary = m.sha3
	case HasherBcrypt:
		m.primary = m.bcrypt
	default:
		return nil, fmt.Errorf("unknown password hasher %q", scheme)
	}
	return m, nil
}

func (m *multiHasher) Hash(password string) (string, error) {
	return m.primary.Hash(password)
}

func (m *multiHasher) Verify(hash, password string) (bool, error) {
	switch {
	case isBcryptHash(hash):
		return m.bcrypt.Verify(hash, password)
	case isSHA3Hex(hash):
		return m.sha3.Verify(hash, password)
	default:
		return false, nil
	}
}

func isBcryptHash(hash string) bool {
	return len(hash) == 60 && (strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$"))
}

func isSHA3Hex(hash string) bool {
	hash = strings.TrimSpace(hash)
	if len(hash) != 64 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
