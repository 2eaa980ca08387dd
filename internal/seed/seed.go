// Package seed reads quiz fixtures for bulk loading.
package seed

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/quizhub-backend/internal/domain"
)

type file struct {
	Quizzes []types.IncomingFullQuiz `yaml:"quizzes"`
}

// Load decodes a YAML document of the form {quizzes: [...]}. Unknown keys are
// rejected so typos do not silently drop data.
func Load(r io.Reader) ([]types.IncomingFullQuiz, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty seed file")
		}
		return nil, fmt.Errorf("decode seed yaml: %w", err)
	}
	for i, q := range f.Quizzes {
		if len(q.Answers) != len(q.Questions) {
			return nil, fmt.Errorf("quiz %d (%q): %d answer lists for %d questions", i, q.Quiz.Name, len(q.Answers), len(q.Questions))
		}
	}
	return f.Quizzes, nil
}
