package quiz

// Result is a scored outcome band. Num is the 0-based position the writer
// assigned at creation; callers never supply it.
type Result struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Num         int    `gorm:"not null;column:num" json:"num"`
	Header      string `gorm:"not null;size:255;column:header" json:"header"`
	Description string `gorm:"not null;type:text;column:description" json:"description"`
	QuizID      uint   `gorm:"not null;index;column:quiz_id" json:"quiz_id"`
	Quiz        *Quiz  `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuizID;references:ID" json:"-"`
}

func (Result) TableName() string { return "result" }
