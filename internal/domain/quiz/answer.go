package quiz

type Answer struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"not null;type:text;column:description" json:"description"`
	Value       int       `gorm:"not null;column:value" json:"value"`
	QuestionID  uint      `gorm:"not null;index;column:question_id" json:"question_id"`
	Question    *Question `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuestionID;references:ID" json:"-"`
}

func (Answer) TableName() string { return "answer" }
