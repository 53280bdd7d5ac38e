package model

// Submission records one graded attempt. Its answer rows are written in
// the same transaction: a submission without its answers never exists.
type Submission struct {
	BaseModel
	Username string `gorm:"size:100;index;not null" json:"username"`
	Score    int    `gorm:"not null" json:"score"`
	Total    int    `gorm:"not null" json:"total"`
}

func (Submission) TableName() string {
	return "submissions"
}

// SubmissionAnswer is one graded answer entry, one row per entry in the
// submitted answer list, duplicates included.
type SubmissionAnswer struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	SubmissionID   uint   `gorm:"index;not null" json:"-"`
	QuestionID     uint   `gorm:"index;not null" json:"question_id"`
	SelectedOption string `gorm:"type:char(1);not null" json:"selected_option"`
	IsCorrect      bool   `gorm:"not null" json:"is_correct"`
}

func (SubmissionAnswer) TableName() string {
	return "answers"
}

// AnswerInput is a single submitted answer before grading.
type AnswerInput struct {
	QuestionID     uint   `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// AnswerResult is the graded outcome for one submitted answer, in input
// order. CorrectOption is nil when the referenced question id does not
// exist; such an answer is scored incorrect, not rejected.
type AnswerResult struct {
	QuestionID     uint    `json:"question_id"`
	SelectedOption string  `json:"selected_option"`
	CorrectOption  *string `json:"correct_option,omitempty"`
	IsCorrect      bool    `json:"is_correct"`
}

// SubmissionResult summarizes a graded submission.
type SubmissionResult struct {
	Username     string         `json:"username"`
	SubmissionID uint           `json:"submission_id"`
	Score        int            `json:"score"`
	Total        int            `json:"total"`
	Results      []AnswerResult `json:"results"`
}
