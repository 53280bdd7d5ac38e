package model

// Question is one multiple-choice item in the question bank. The
// correct option is never serialized to clients.
type Question struct {
	BaseModel
	QuestionText  string `gorm:"type:text;not null" json:"question_text"`
	OptionA       string `gorm:"type:text" json:"option_a"`
	OptionB       string `gorm:"type:text" json:"option_b"`
	OptionC       string `gorm:"type:text" json:"option_c"`
	OptionD       string `gorm:"type:text" json:"option_d"`
	CorrectOption string `gorm:"type:char(1);not null" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
