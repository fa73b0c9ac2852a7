package handlers

import (
	"github.com/BozorgmehrZia/quiz-peach-backend/helper"
	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService services.AnswerService
	Helper        *helper.HTTPHelper
}

func NewAnswerHandler(answerService services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.answerService.SubmitAnswer(userID.(uint), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer submitted", response)
}

func (h *AnswerHandler) GetMyAnswers(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	answers, err := h.answerService.GetUserAnswers(userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", answers)
}
