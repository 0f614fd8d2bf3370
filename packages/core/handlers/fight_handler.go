package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/services"
)

type FightHandler struct {
	fightService *services.FightService
}

func NewFightHandler(fightService *services.FightService) *FightHandler {
	return &FightHandler{fightService: fightService}
}

// GetLiveFights
// @Summary Get live fights
// @Description The current fight, the pending fights and the size of the card
// @Tags fights
// @Produce json
// @Success 200 {object} models.LiveFightsResponse
// @Router /fights/live [get]
func (h *FightHandler) GetLiveFights(c *gin.Context) {
	c.JSON(http.StatusOK, h.fightService.GetLiveFights())
}

// FinishFight records a fight outcome
// @Summary Finish fight
// @Description Records the winner and duration. A draw is always stored as 8 minutes.
// @Tags fights
// @Accept json
// @Produce json
// @Param id path string true "Fight ID"
// @Param result body models.FinishFightRequest true "Outcome"
// @Success 200 {object} services.SessionSummary
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /fights/{id}/finish [post]
func (h *FightHandler) FinishFight(c *gin.Context) {
	var req models.FinishFightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.fightService.FinishFight(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// FinishTournament ends the tournament early
// @Summary Finish tournament
// @Tags fights
// @Produce json
// @Success 200 {object} services.SessionSummary
// @Failure 409 {object} map[string]string
// @Router /tournament/finish [post]
func (h *FightHandler) FinishTournament(c *gin.Context) {
	summary, err := h.fightService.FinishTournament(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
