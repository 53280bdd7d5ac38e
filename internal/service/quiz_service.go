package service

import (
	"fmt"
	"strings"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/repository"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

// QuizService owns the question bank and submission history.
type QuizService struct {
	Questions   *repository.QuestionRepository
	Submissions *repository.SubmissionRepository
}

func NewQuizService(questions *repository.QuestionRepository, submissions *repository.SubmissionRepository) *QuizService {
	return &QuizService{
		Questions:   questions,
		Submissions: submissions,
	}
}

// ListQuestions returns the bank ordered by id. The correct option
// never leaves the service; the model hides it from serialization.
func (s *QuizService) ListQuestions() ([]model.Question, error) {
	return s.Questions.ListOrdered()
}

// CreateQuestion validates and persists a new question. Caller
// privilege is enforced at the route; this validates content only.
func (s *QuizService) CreateQuestion(q *model.Question) error {
	for _, field := range []string{q.QuestionText, q.OptionA, q.OptionB, q.OptionC, q.OptionD} {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("%w: question text and all four options are required", util.ErrValidation)
		}
	}
	if !util.IsValidOption(q.CorrectOption) {
		return fmt.Errorf("%w: correct option must be one of A/B/C/D", util.ErrValidation)
	}
	q.CorrectOption = util.NormalizeOption(q.CorrectOption)

	return s.Questions.Create(q)
}

// Submit grades the answer list and records the submission with its
// answer rows atomically.
//
// Grading rules: referenced question ids are deduplicated for the
// batch lookup but every input entry is graded and stored, so a
// question id submitted twice yields two answer rows. An id with no
// matching question scores as incorrect with no correct option in the
// result; only a list referencing no existing question at all is
// rejected.
func (s *QuizService) Submit(username string, answers []model.AnswerInput) (*model.SubmissionResult, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: no answers submitted", util.ErrValidation)
	}

	seen := make(map[uint]bool, len(answers))
	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		if !seen[a.QuestionID] {
			seen[a.QuestionID] = true
			ids = append(ids, a.QuestionID)
		}
	}

	correctByID, err := s.Questions.CorrectOptions(ids)
	if err != nil {
		return nil, err
	}
	if len(correctByID) == 0 {
		return nil, util.ErrNoQuestionsFound
	}

	score := 0
	results := make([]model.AnswerResult, 0, len(answers))
	rows := make([]model.SubmissionAnswer, 0, len(answers))
	for _, a := range answers {
		selected := util.NormalizeOption(a.SelectedOption)
		if !util.IsValidOption(selected) {
			return nil, fmt.Errorf("%w: selected option must be one of A/B/C/D", util.ErrValidation)
		}

		result := model.AnswerResult{
			QuestionID:     a.QuestionID,
			SelectedOption: selected,
		}
		if correct, ok := correctByID[a.QuestionID]; ok {
			c := correct
			result.CorrectOption = &c
			result.IsCorrect = selected == correct
		}
		if result.IsCorrect {
			score++
		}

		results = append(results, result)
		rows = append(rows, model.SubmissionAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: selected,
			IsCorrect:      result.IsCorrect,
		})
	}

	submission := &model.Submission{
		Username: username,
		Score:    score,
		Total:    len(answers),
	}
	if err := s.Submissions.CreateGraded(submission, rows); err != nil {
		return nil, err
	}

	return &model.SubmissionResult{
		Username:     username,
		SubmissionID: submission.ID,
		Score:        score,
		Total:        len(answers),
		Results:      results,
	}, nil
}

// History lists the caller's past submissions, newest first.
func (s *QuizService) History(username string) ([]model.Submission, error) {
	return s.Submissions.ListByUsername(username)
}
