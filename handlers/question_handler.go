package handlers

import (
	"strconv"

	"github.com/BozorgmehrZia/quiz-peach-backend/helper"
	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewQuestionHandler(questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	question, err := h.questionService.CreateQuestion(req, userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question created successfully", question)
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var params models.QuestionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	questions, total, err := h.questionService.GetQuestions(params, userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"questions": questions,
		"total":     total,
		"page":      params.Page,
		"limit":     params.Limit,
	})
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	question, err := h.questionService.GetQuestion(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", question)
}

func (h *QuestionHandler) RelateQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RelateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.questionService.RelateQuestions(uint(id), req.RelatedID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Questions related successfully", h.Helper.EmptyJsonMap())
}

func (h *QuestionHandler) GetRelatedQuestions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	questions, err := h.questionService.GetRelatedQuestions(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", questions)
}
