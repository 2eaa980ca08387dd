package aggregates

import (
	"errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(CodeNotFound, "Quiz.FetchByID", "quiz 4 not found", nil)
	if got := err.Error(); got != "Quiz.FetchByID: quiz 4 not found (not_found)" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := NewError(CodeConflict, "", "", nil).Error(); got != "conflict" {
		t.Fatalf("bare code: %q", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(CodeConflict, "Quiz.Create", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost")
	}
	if !IsCode(err, CodeConflict) || CodeOf(err) != CodeConflict {
		t.Fatalf("code lost: %v", err)
	}
	if Wrap(CodeConflict, "op", nil) != nil {
		t.Fatalf("wrapping nil should return nil")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NewError(CodeNotFound, "op", "", nil)) {
		t.Fatalf("expected not found")
	}
	if IsNotFound(errors.New("plain")) {
		t.Fatalf("plain errors carry no code")
	}
}


func TestQuizNotFoundAndInvalid(t *testing.T) {
	err := QuizNotFound("Quiz.Delete", 12)
	if !IsNotFound(err) || err.Error() != "Quiz.Delete: quiz 12 not found (not_found)" {
		t.Fatalf("unexpected not found error: %v", err)
	}
	if err := Invalid("Quiz.Create", "quiz name is required"); CodeOf(err) != CodeValidation {
		t.Fatalf("expected validation, got %v", err)
	}
	if IsCode(nil, "") {
		t.Fatalf("nil error must not match the empty code")
	}
	if got := NewError(CodeInternal, "Quiz.Create", "", nil).Error(); got != "Quiz.Create (internal)" {
		t.Fatalf("op only: %q", got)
	}
}
