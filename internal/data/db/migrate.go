package db

import (
	"fmt"

	types "github.com/yungbote/quizhub-backend/internal/domain"
	"gorm.io/gorm"
)

const quizSearchIndex = "idx_quiz_search"

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.User{},
		&types.Credential{},

		&types.Quiz{},
		&types.Question{},
		&types.Answer{},
		&types.QuizResult{},
	); err != nil {
		return err
	}
	return ensureSearchIndex(db)
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Running auto migration")
	return AutoMigrateAll(s.db)
}

// MySQL boolean-mode MATCH needs a FULLTEXT index over exactly the matched columns.
func ensureSearchIndex(db *gorm.DB) error {
	if DialectOf(db) != DialectMySQL {
		return nil
	}
	var count int64
	if err := db.Raw(
		`SELECT COUNT(*) FROM information_schema.statistics WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?`,
		"quiz", quizSearchIndex,
	).Scan(&count).Error; err != nil {
		return fmt.Errorf("inspect search index: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := db.Exec(fmt.Sprintf("CREATE FULLTEXT INDEX %s ON quiz (name, description)", quizSearchIndex)).Error; err != nil {
		return fmt.Errorf("create search index: %w", err)
	}
	return nil
}
