package domain

import (
	"github.com/yungbote/quizhub-backend/internal/domain/auth"
	"github.com/yungbote/quizhub-backend/internal/domain/quiz"
	"github.com/yungbote/quizhub-backend/internal/domain/user"
)

type User = user.User
type Credential = auth.Credential

type Quiz = quiz.Quiz
type Question = quiz.Question
type Answer = quiz.Answer
type QuizResult = quiz.Result

type FullQuiz = quiz.FullQuiz
type IncomingQuiz = quiz.IncomingQuiz
type IncomingQuestion = quiz.IncomingQuestion
type IncomingAnswer = quiz.IncomingAnswer
type IncomingResult = quiz.IncomingResult
type IncomingFullQuiz = quiz.IncomingFullQuiz
