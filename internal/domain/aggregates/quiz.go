package aggregates

import (
	"context"

	"github.com/yungbote/quizhub-backend/internal/domain/quiz"
)

var QuizAggregateContract = Contract{
	Name:             "Quiz.QuizAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicySnapshot,
	Notes: "A quiz header, its ordered questions, their answers and the result bands are created " +
		"and deleted as one unit. No partially written quiz is ever observable.",
}

// QuizAggregate owns quiz writes.
//
// Failures are *aggregates.Error with codes:
// CodeValidation (rejected before any write), CodeNotFound, CodeConflict (store failure, cause attached).
type QuizAggregate interface {
	Aggregate

	// CreateQuiz atomically inserts the quiz and all of its children and returns the new quiz id.
	CreateQuiz(ctx context.Context, ownerID uint, in quiz.IncomingFullQuiz) (uint, error)

	// DeleteQuiz atomically removes a quiz owned by ownerID together with its children.
	DeleteQuiz(ctx context.Context, ownerID, quizID uint) error
}

// SummaryMode selects the quiz listing flavor.
type SummaryMode string

const (
	// SummaryLanding is the capped listing in insertion order.
	SummaryLanding SummaryMode = "landing"
	// SummaryBrowse lists every quiz ordered by name.
	SummaryBrowse SummaryMode = "browse"
)

// QuizReader reassembles quizzes from their tables.
// Lookup failures on FetchByID, Search and FetchByOwner surface as CodeNotFound with the cause attached.
type QuizReader interface {
	FetchSummaries(ctx context.Context, mode SummaryMode) ([]quiz.Quiz, error)
	FetchByID(ctx context.Context, quizID uint) (quiz.FullQuiz, error)
	Search(ctx context.Context, text string) ([]quiz.Quiz, error)
	FetchByOwner(ctx context.Context, ownerID uint) ([]quiz.Quiz, error)
}
