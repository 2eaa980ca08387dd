package testutil

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/quizhub-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Name:  "Test User",
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedQuiz(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uint, name string) *types.Quiz {
	tb.Helper()
	q := &types.Quiz{
		Name:        name,
		Description: "about " + name,
		OwnerID:     ownerID,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}

// SampleIncoming builds an incoming aggregate with the given number of questions,
// answersPer answers each, and results result bands.
func SampleIncoming(name string, questions, answersPer, results int) types.IncomingFullQuiz {
	in := types.IncomingFullQuiz{
		Quiz: types.IncomingQuiz{Name: name, Description: "description of " + name},
	}
	for i := 0; i < questions; i++ {
		in.Questions = append(in.Questions, types.IncomingQuestion{Description: fmt.Sprintf("question %d", i)})
		answers := make([]types.IncomingAnswer, 0, answersPer)
		for j := 0; j < answersPer; j++ {
			answers = append(answers, types.IncomingAnswer{Description: fmt.Sprintf("answer %d.%d", i, j), Value: j})
		}
		in.Answers = append(in.Answers, answers)
	}
	for i := 0; i < results; i++ {
		in.Results = append(in.Results, types.IncomingResult{Header: fmt.Sprintf("band %d", i), Description: "you scored"})
	}
	return in
}
