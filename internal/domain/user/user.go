package user

type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"not null;size:255;column:name" json:"name"`
	Email string `gorm:"not null;size:255;uniqueIndex;column:email" json:"email"`
}

func (User) TableName() string { return "user" }
