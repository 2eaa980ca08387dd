package aggregates

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/quizhub-backend/internal/data/repos"
	types "github.com/yungbote/quizhub-backend/internal/domain"
	domainagg "github.com/yungbote/quizhub-backend/internal/domain/aggregates"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
)

type QuizAggregateDeps struct {
	Base BaseDeps

	Quizzes   repos.QuizRepo
	Questions repos.QuestionRepo
	Answers   repos.AnswerRepo
	Results   repos.ResultRepo
}

type quizAggregate struct {
	deps QuizAggregateDeps
}

func NewQuizAggregate(deps QuizAggregateDeps) domainagg.QuizAggregate {
	deps.Base = deps.Base.withDefaults()
	return &quizAggregate{deps: deps}
}

func (a *quizAggregate) Contract() domainagg.Contract {
	return domainagg.QuizAggregateContract
}

func (a *quizAggregate) CreateQuiz(ctx context.Context, ownerID uint, in types.IncomingFullQuiz) (uint, error) {
	const op = "Quiz.QuizAggregate.CreateQuiz"
	if ownerID == 0 {
		return 0, domainagg.Invalid(op, "missing owner_id")
	}
	if err := validateIncoming(in); err != nil {
		return 0, domainagg.Wrap(domainagg.CodeValidation, op, err)
	}
	if err := a.requireRepos(op); err != nil {
		return 0, err
	}

	var quizID uint
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		header := &types.Quiz{
			Name:        in.Quiz.Name,
			Description: in.Quiz.Description,
			OwnerID:     ownerID,
		}
		if _, err := a.deps.Quizzes.Create(dbc, []*types.Quiz{header}); err != nil {
			return fmt.Errorf("insert quiz: %w", err)
		}

		for i, q := range in.Questions {
			question := &types.Question{Description: q.Description, QuizID: header.ID}
			if _, err := a.deps.Questions.Create(dbc, []*types.Question{question}); err != nil {
				return fmt.Errorf("insert question %d: %w", i, err)
			}
			answers := make([]*types.Answer, 0, len(in.Answers[i]))
			for _, ans := range in.Answers[i] {
				answers = append(answers, &types.Answer{
					Description: ans.Description,
					Value:       ans.Value,
					QuestionID:  question.ID,
				})
			}
			if _, err := a.deps.Answers.Create(dbc, answers); err != nil {
				return fmt.Errorf("insert answers for question %d: %w", i, err)
			}
		}

		results := make([]*types.QuizResult, 0, len(in.Results))
		for i, res := range in.Results {
			results = append(results, &types.QuizResult{
				Num:         i,
				Header:      res.Header,
				Description: res.Description,
				QuizID:      header.ID,
			})
		}
		if _, err := a.deps.Results.Create(dbc, results); err != nil {
			return fmt.Errorf("insert results: %w", err)
		}

		quizID = header.ID
		return nil
	})
	if err != nil {
		a.deps.Base.Log.Warn("quiz create rolled back", "owner_id", ownerID, "error", err)
		return 0, storeFailure(op, err)
	}
	return quizID, nil
}

func (a *quizAggregate) DeleteQuiz(ctx context.Context, ownerID, quizID uint) error {
	const op = "Quiz.QuizAggregate.DeleteQuiz"
	if ownerID == 0 || quizID == 0 {
		return domainagg.Invalid(op, "owner_id and quiz_id are required")
	}
	if err := a.requireRepos(op); err != nil {
		return err
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		header, err := a.deps.Quizzes.GetByID(dbc, quizID)
		if err != nil {
			return err
		}
		// Someone else's quiz reads the same as a missing one.
		if header == nil || header.OwnerID != ownerID {
			return domainagg.QuizNotFound(op, quizID)
		}
		if err := a.deps.Answers.DeleteByQuizID(dbc, quizID); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if err := a.deps.Questions.DeleteByQuizID(dbc, quizID); err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
		if err := a.deps.Results.DeleteByQuizID(dbc, quizID); err != nil {
			return fmt.Errorf("delete results: %w", err)
		}
		n, err := a.deps.Quizzes.DeleteOwned(dbc, ownerID, quizID)
		if err != nil {
			return fmt.Errorf("delete quiz: %w", err)
		}
		if n == 0 {
			return domainagg.QuizNotFound(op, quizID)
		}
		return nil
	})
	return storeFailure(op, err)
}

func (a *quizAggregate) requireRepos(op string) error {
	if a.deps.Quizzes == nil || a.deps.Questions == nil || a.deps.Answers == nil || a.deps.Results == nil {
		return domainagg.NewError(domainagg.CodeInternal, op, "quiz aggregate repos not configured", nil)
	}
	return nil
}

func validateIncoming(in types.IncomingFullQuiz) error {
	if strings.TrimSpace(in.Quiz.Name) == "" {
		return ValidationError("quiz name is required")
	}
	if len(in.Answers) != len(in.Questions) {
		return ValidationError(fmt.Sprintf(
			"answer lists (%d) must match questions (%d)", len(in.Answers), len(in.Questions),
		))
	}
	return nil
}
