package repository

import (
	"gorm.io/gorm"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// CreateGraded writes the submission and all of its answer rows in one
// transaction. If any answer insert fails the submission row is rolled
// back too; a submission without its full answer set never exists.
func (r *SubmissionRepository) CreateGraded(submission *model.Submission, answers []model.SubmissionAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].SubmissionID = submission.ID
		}
		return tx.Create(&answers).Error
	})
}

func (r *SubmissionRepository) ListByUsername(username string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Where("username = ?", username).Order("id DESC").Find(&submissions).Error
	return submissions, err
}
