package envutil

import (
	"testing"
	"time"
)

func TestReaders(t *testing.T) {
	t.Setenv("QH_TEST_INT", "12")
	t.Setenv("QH_TEST_BAD_INT", "twelve")
	t.Setenv("QH_TEST_BOOL", "on")
	t.Setenv("QH_TEST_SECONDS", "30")
	t.Setenv("QH_TEST_LIST", " a , ,b ")

	if got := Int("QH_TEST_INT", 1); got != 12 {
		t.Fatalf("Int: got %d", got)
	}
	if got := Int("QH_TEST_BAD_INT", 1); got != 1 {
		t.Fatalf("Int fallback: got %d", got)
	}
	if got := String("QH_TEST_MISSING", "def"); got != "def" {
		t.Fatalf("String fallback: got %q", got)
	}
	if !Bool("QH_TEST_BOOL", false) {
		t.Fatalf("Bool: expected true")
	}
	if got := Seconds("QH_TEST_SECONDS", 0); got != 30*time.Second {
		t.Fatalf("Seconds: got %s", got)
	}
	got := List("QH_TEST_LIST", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("List: got %#v", got)
	}
}
