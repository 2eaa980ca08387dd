package quiz

// FullQuiz is the reassembled aggregate. Answers[i] belongs to Questions[i].
type FullQuiz struct {
	Quiz      Quiz       `json:"quiz"`
	Questions []Question `json:"questions"`
	Answers   [][]Answer `json:"answers"`
	Results   []Result   `json:"results"`
}

type IncomingQuiz struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type IncomingQuestion struct {
	Description string `json:"description" yaml:"description"`
}

type IncomingAnswer struct {
	Description string `json:"description" yaml:"description"`
	Value       int    `json:"value" yaml:"value"`
}

type IncomingResult struct {
	Header      string `json:"header" yaml:"header"`
	Description string `json:"description" yaml:"description"`
}

// IncomingFullQuiz is an aggregate as submitted for creation, before any ids exist.
// Answers is positionally paired with Questions.
type IncomingFullQuiz struct {
	Quiz      IncomingQuiz       `json:"quiz" yaml:"quiz"`
	Questions []IncomingQuestion `json:"questions" yaml:"questions"`
	Answers   [][]IncomingAnswer `json:"answers" yaml:"answers"`
	Results   []IncomingResult   `json:"results" yaml:"results"`
}
