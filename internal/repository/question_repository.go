package repository

import (
	"gorm.io/gorm"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) ListOrdered() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Order("id ASC").Find(&questions).Error
	return questions, err
}

// CorrectOptions batch-fetches the correct option for the given
// question ids in one query. Ids with no row are simply absent from
// the map.
func (r *QuestionRepository) CorrectOptions(ids []uint) (map[uint]string, error) {
	var rows []model.Question
	if err := r.DB.Select("id", "correct_option").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	options := make(map[uint]string, len(rows))
	for _, q := range rows {
		options[q.ID] = q.CorrectOption
	}
	return options, nil
}
