package quiz

// Question order under a quiz is insertion order (ascending id).
type Question struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"not null;type:text;column:description" json:"description"`
	QuizID      uint   `gorm:"not null;index;column:quiz_id" json:"quiz_id"`
	Quiz        *Quiz  `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuizID;references:ID" json:"-"`
}

func (Question) TableName() string { return "question" }
