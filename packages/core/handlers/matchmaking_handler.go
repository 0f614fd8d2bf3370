package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/services"
)

type MatchmakingHandler struct {
	matchmakingService *services.MatchmakingService
}

func NewMatchmakingHandler(matchmakingService *services.MatchmakingService) *MatchmakingHandler {
	return &MatchmakingHandler{matchmakingService: matchmakingService}
}

// RunMatchmaking pairs the current day's roster
// @Summary Run matchmaking
// @Description Pairs the in-band roosters of the current day. Only one run may be in progress.
// @Tags matchmaking
// @Produce json
// @Success 200 {object} models.MatchmakingResult
// @Failure 409 {object} map[string]string
// @Router /matchmaking [post]
func (h *MatchmakingHandler) RunMatchmaking(c *gin.Context) {
	result, err := h.matchmakingService.RunMatchmaking(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetResult
// @Summary Get the matchmaking result of a day
// @Tags matchmaking
// @Produce json
// @Param day path int true "Day number"
// @Success 200 {object} models.MatchmakingResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /days/{day}/matchmaking [get]
func (h *MatchmakingHandler) GetResult(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	result, err := h.matchmakingService.GetResult(day)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddManualFight pairs two unpaired roosters
// @Summary Add manual fight
// @Tags matchmaking
// @Accept json
// @Produce json
// @Param fight body models.ManualFightRequest true "Roosters"
// @Success 201 {object} models.Fight
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matchmaking/manual-fights [post]
func (h *MatchmakingHandler) AddManualFight(c *gin.Context) {
	var req models.ManualFightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fight, err := h.matchmakingService.AddManualFight(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fight)
}

// StartFights
// @Summary Start the fights of the current day
// @Tags matchmaking
// @Produce json
// @Success 200 {object} models.LiveFightsResponse
// @Failure 409 {object} map[string]string
// @Router /matchmaking/start [post]
func (h *MatchmakingHandler) StartFights(c *gin.Context) {
	live, err := h.matchmakingService.StartFights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, live)
}
