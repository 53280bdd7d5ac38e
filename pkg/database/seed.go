package database

import (
	"gorm.io/gorm"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
)

// SeedQuestions inserts a starter question set when the bank is empty,
// so a fresh deployment has something to serve. Idempotent.
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []model.Question{
		{
			QuestionText:  "What is the capital of France?",
			OptionA:       "London",
			OptionB:       "Berlin",
			OptionC:       "Paris",
			OptionD:       "Rome",
			CorrectOption: "C",
		},
		{
			QuestionText:  "Which planet is known as the Red Planet?",
			OptionA:       "Earth",
			OptionB:       "Mars",
			OptionC:       "Jupiter",
			OptionD:       "Venus",
			CorrectOption: "B",
		},
		{
			QuestionText:  "2 + 2 = ?",
			OptionA:       "3",
			OptionB:       "4",
			OptionC:       "5",
			OptionD:       "6",
			CorrectOption: "B",
		},
	}

	return db.Create(&defaults).Error
}
