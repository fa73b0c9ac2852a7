package handlers

import (
	"github.com/BozorgmehrZia/quiz-peach-backend/helper"
	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
	Helper             *helper.HTTPHelper
}

func NewLeaderboardHandler(leaderboardService services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	var params models.LeaderboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	entries, err := h.leaderboardService.GetLeaderboard(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", entries)
}
