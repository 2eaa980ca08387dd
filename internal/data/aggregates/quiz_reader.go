package aggregates

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	datadb "github.com/yungbote/quizhub-backend/internal/data/db"
	"github.com/yungbote/quizhub-backend/internal/data/repos"
	types "github.com/yungbote/quizhub-backend/internal/domain"
	domainagg "github.com/yungbote/quizhub-backend/internal/domain/aggregates"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

const DefaultLandingLimit = 6

type QuizReaderDeps struct {
	DB  *gorm.DB
	Log *logger.Logger
	// Runner scopes FetchByID. Defaults to a snapshot transaction on DB.
	Runner       TxRunner
	LandingLimit int

	Quizzes   repos.QuizRepo
	Questions repos.QuestionRepo
	Answers   repos.AnswerRepo
	Results   repos.ResultRepo
}

type quizReader struct {
	deps QuizReaderDeps
}

func NewQuizReader(deps QuizReaderDeps) domainagg.QuizReader {
	if deps.Runner == nil {
		deps.Runner = NewGormSnapshotTxRunner(deps.DB)
	}
	if deps.LandingLimit <= 0 {
		deps.LandingLimit = DefaultLandingLimit
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("aggregate", "QuizReader")
	return &quizReader{deps: deps}
}

func (r *quizReader) FetchSummaries(ctx context.Context, mode domainagg.SummaryMode) ([]types.Quiz, error) {
	const op = "Quiz.QuizReader.FetchSummaries"
	ctx, span := startSpan(ctx, op)
	defer span.End()

	dbc := dbctx.Context{Ctx: ctx}
	var (
		out []types.Quiz
		err error
	)
	switch mode {
	case domainagg.SummaryLanding, "":
		out, err = r.deps.Quizzes.ListFirst(dbc, r.deps.LandingLimit)
	case domainagg.SummaryBrowse:
		out, err = r.deps.Quizzes.ListByName(dbc)
	default:
		return nil, domainagg.Invalid(op, fmt.Sprintf("unknown summary mode %q", mode))
	}
	if err != nil {
		mapped := MapError(op, err)
		endSpanWithError(span, mapped)
		return nil, mapped
	}
	return out, nil
}

// FetchByID runs its four lookups inside one read transaction so the header,
// questions, answers and results come from the same snapshot.
func (r *quizReader) FetchByID(ctx context.Context, quizID uint) (types.FullQuiz, error) {
	const op = "Quiz.QuizReader.FetchByID"
	ctx, span := startSpan(ctx, op)
	defer span.End()

	var out types.FullQuiz
	err := r.deps.Runner.InTx(ctx, func(dbc dbctx.Context) error {
		header, err := r.deps.Quizzes.GetByID(dbc, quizID)
		if err != nil {
			return fmt.Errorf("load quiz: %w", err)
		}
		if header == nil {
			return domainagg.QuizNotFound(op, quizID)
		}

		questions, err := r.deps.Questions.ListByQuizID(dbc, quizID)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}

		answers := make([][]types.Answer, len(questions))
		for i, q := range questions {
			answers[i], err = r.deps.Answers.ListByQuestionID(dbc, q.ID)
			if err != nil {
				return fmt.Errorf("load answers for question %d: %w", q.ID, err)
			}
		}

		results, err := r.deps.Results.ListByQuizID(dbc, quizID)
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}

		out = types.FullQuiz{
			Quiz:      *header,
			Questions: questions,
			Answers:   answers,
			Results:   results,
		}
		return nil
	})
	if err != nil {
		if !domainagg.IsNotFound(err) {
			r.deps.Log.Warn("quiz lookup failed", "quiz_id", quizID, "error", err)
		}
		err = readFailure(op, err)
		endSpanWithError(span, err)
		return types.FullQuiz{}, err
	}
	return out, nil
}

func (r *quizReader) Search(ctx context.Context, text string) ([]types.Quiz, error) {
	const op = "Quiz.QuizReader.Search"
	ctx, span := startSpan(ctx, op)
	defer span.End()

	pattern := datadb.BooleanPattern(text)
	if pattern == "" {
		return []types.Quiz{}, nil
	}
	out, err := r.deps.Quizzes.Search(dbctx.Context{Ctx: ctx}, pattern)
	if err != nil {
		r.deps.Log.Warn("quiz search failed", "error", err)
		err = readFailure(op, err)
		endSpanWithError(span, err)
		return nil, err
	}
	return out, nil
}

func (r *quizReader) FetchByOwner(ctx context.Context, ownerID uint) ([]types.Quiz, error) {
	const op = "Quiz.QuizReader.FetchByOwner"
	ctx, span := startSpan(ctx, op)
	defer span.End()

	out, err := r.deps.Quizzes.ListByOwner(dbctx.Context{Ctx: ctx}, ownerID)
	if err != nil {
		r.deps.Log.Warn("owner quiz listing failed", "owner_id", ownerID, "error", err)
		err = readFailure(op, err)
		endSpanWithError(span, err)
		return nil, err
	}
	return out, nil
}
