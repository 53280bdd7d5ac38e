package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/middleware"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/service"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type NewQuestionRequest struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
}

type SubmitRequest struct {
	Answers []model.AnswerInput `json:"answers"`
}

// ListQuestions is public. The model keeps the correct option out of
// the JSON.
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	questions, err := c.QuizService.ListQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	var req NewQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON")
		return
	}

	question := &model.Question{
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
	}

	if err := c.QuizService.CreateQuestion(question); err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "question added", "id": question.ID})
}

func (c *QuizController) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON")
		return
	}

	caller := middleware.GetIdentity(ctx)
	if caller == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.QuizService.Submit(caller.Username, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrNoQuestionsFound):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// History returns the caller's own submissions.
func (c *QuizController) History(ctx *gin.Context) {
	caller := middleware.GetIdentity(ctx)
	if caller == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.QuizService.History(caller.Username)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, submissions)
}
