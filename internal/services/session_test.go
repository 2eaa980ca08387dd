package services

import (
	"strings"
	"testing"
	"time"
)

func TestSessionCodecRoundTrip(t *testing.T) {
	codec, err := NewSessionCodec("secret", 0)
	if err != nil {
		t.Fatalf("NewSessionCodec: %v", err)
	}
	token, issued, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if issued.ExpiresAt != nil {
		t.Fatalf("zero ttl should issue without expiry")
	}
	claims, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	uid, err := claims.UserID()
	if err != nil || uid != 42 {
		t.Fatalf("UserID: %d %v", uid, err)
	}
	if claims.ID == "" || claims.ID != issued.ID {
		t.Fatalf("session id not preserved: %q vs %q", claims.ID, issued.ID)
	}
}

func TestSessionCodecRejectsForeignAndTamperedTokens(t *testing.T) {
	codec, _ := NewSessionCodec("secret", time.Hour)
	other, _ := NewSessionCodec("other-secret", time.Hour)

	token, _, err := other.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := codec.Parse(token); err == nil {
		t.Fatalf("accepted token signed with another secret")
	}

	token, _, _ = codec.Issue(7)
	parts := strings.Split(token, ".")
	parts[1] = parts[1] + "x"
	if _, err := codec.Parse(strings.Join(parts, ".")); err == nil {
		t.Fatalf("accepted tampered token")
	}
	if _, err := codec.Parse(""); err == nil {
		t.Fatalf("accepted empty token")
	}
}

func TestSessionCodecExpiry(t *testing.T) {
	codec, _ := NewSessionCodec("secret", time.Minute)
	start := time.Now()
	codec.now = func() time.Time { return start }

	token, issued, err := codec.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if issued.ExpiresAt == nil {
		t.Fatalf("expected expiry")
	}
	if d := issued.ExpiresAt.Time.Sub(start); d <= 59*time.Second || d > time.Minute {
		t.Fatalf("unexpected expiry offset %s", d)
	}
	if _, err := codec.Parse(token); err != nil {
		t.Fatalf("fresh token rejected: %v", err)
	}
	codec.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, err := codec.Parse(token); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestNewSessionCodecRequiresSecret(t *testing.T) {
	if _, err := NewSessionCodec("  ", 0); err == nil {
		t.Fatalf("expected error for blank secret")
	}
}
