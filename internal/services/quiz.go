package services

import (
	"context"

	types "github.com/yungbote/quizhub-backend/internal/domain"
	domainagg "github.com/yungbote/quizhub-backend/internal/domain/aggregates"
	"github.com/yungbote/quizhub-backend/internal/observability"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

// QuizService fronts the quiz aggregate writer and reader for the HTTP layer.
type QuizService interface {
	Landing(ctx context.Context) ([]types.Quiz, error)
	Browse(ctx context.Context) ([]types.Quiz, error)
	Get(ctx context.Context, id uint) (types.FullQuiz, error)
	Search(ctx context.Context, query string) ([]types.Quiz, error)
	ListOwned(ctx context.Context, ownerID uint) ([]types.Quiz, error)
	Create(ctx context.Context, ownerID uint, in types.IncomingFullQuiz) (uint, error)
	Delete(ctx context.Context, ownerID, quizID uint) error
}

type quizService struct {
	log     *logger.Logger
	writer  domainagg.QuizAggregate
	reader  domainagg.QuizReader
	metrics *observability.Metrics
}

func NewQuizService(log *logger.Logger, writer domainagg.QuizAggregate, reader domainagg.QuizReader, metrics *observability.Metrics) QuizService {
	return &quizService{
		log:     log.With("service", "QuizService"),
		writer:  writer,
		reader:  reader,
		metrics: metrics,
	}
}

func (s *quizService) Landing(ctx context.Context) ([]types.Quiz, error) {
	return s.reader.FetchSummaries(ctx, domainagg.SummaryLanding)
}

func (s *quizService) Browse(ctx context.Context) ([]types.Quiz, error) {
	return s.reader.FetchSummaries(ctx, domainagg.SummaryBrowse)
}

func (s *quizService) Get(ctx context.Context, id uint) (types.FullQuiz, error) {
	return s.reader.FetchByID(ctx, id)
}

func (s *quizService) Search(ctx context.Context, query string) ([]types.Quiz, error) {
	out, err := s.reader.Search(ctx, query)
	if err == nil {
		s.metrics.IncSearch(len(out))
	}
	return out, err
}

func (s *quizService) ListOwned(ctx context.Context, ownerID uint) ([]types.Quiz, error) {
	return s.reader.FetchByOwner(ctx, ownerID)
}

func (s *quizService) Create(ctx context.Context, ownerID uint, in types.IncomingFullQuiz) (uint, error) {
	id, err := s.writer.CreateQuiz(ctx, ownerID, in)
	if err != nil {
		return 0, err
	}
	s.log.Info("quiz created", "quiz_id", id, "owner_id", ownerID, "questions", len(in.Questions))
	return id, nil
}

func (s *quizService) Delete(ctx context.Context, ownerID, quizID uint) error {
	if err := s.writer.DeleteQuiz(ctx, ownerID, quizID); err != nil {
		return err
	}
	s.log.Info("quiz deleted", "quiz_id", quizID, "owner_id", ownerID)
	return nil
}
