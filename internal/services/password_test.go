package services

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSHA3HasherKnownDigest(t *testing.T) {
	h := SHA3Hasher{}
	got, err := h.Hash("abc")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	const want = "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"
	if got != want {
		t.Fatalf("sha3-256(abc): want %s got %s", want, got)
	}
	again, _ := h.Hash("abc")
	if again != got {
		t.Fatalf("unsalted digest should be deterministic")
	}
	if ok, _ := h.Verify(strings.ToUpper(want), "abc"); !ok {
		t.Fatalf("verify should accept uppercase hex")
	}
	if ok, _ := h.Verify(want, "abd"); ok {
		t.Fatalf("verify accepted wrong password")
	}
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if ok, err := h.Verify(hash, "hunter2"); err != nil || !ok {
		t.Fatalf("verify: ok=%v err=%v", ok, err)
	}
	if ok, err := h.Verify(hash, "hunter3"); err != nil || ok {
		t.Fatalf("mismatch should be false without error: ok=%v err=%v", ok, err)
	}
}

func TestMultiHasherDetectsStoredFormat(t *testing.T) {
	legacy, _ := SHA3Hasher{}.Hash("pw")
	modern, _ := BcryptHasher{Cost: bcrypt.MinCost}.Hash("pw")

	for _, scheme := range []string{"", HasherSHA3, HasherBcrypt} {
		h, err := NewPasswordHasher(scheme)
		if err != nil {
			t.Fatalf("NewPasswordHasher(%q): %v", scheme, err)
		}
		for _, stored := range []string{legacy, modern} {
			if ok, err := h.Verify(stored, "pw"); err != nil || !ok {
				t.Fatalf("scheme %q failed to verify %q: ok=%v err=%v", scheme, stored, ok, err)
			}
		}
		if ok, _ := h.Verify("not-a-hash", "pw"); ok {
			t.Fatalf("scheme %q accepted garbage hash", scheme)
		}
	}

	h, _ := NewPasswordHasher(HasherBcrypt)
	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !isBcryptHash(hash) {
		t.Fatalf("bcrypt primary produced %q", hash)
	}

	if _, err := NewPasswordHasher("md5"); err == nil {
		t.Fatalf("expected unknown scheme error")
	}
}
