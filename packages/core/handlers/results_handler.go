package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallera-api/packages/core/services"
)

type ResultsHandler struct {
	resultsService *services.ResultsService
}

func NewResultsHandler(resultsService *services.ResultsService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService}
}

// GetDailyResults
// @Summary List recorded daily results
// @Tags results
// @Produce json
// @Success 200 {array} models.DailyResult
// @Router /results/days [get]
func (h *ResultsHandler) GetDailyResults(c *gin.Context) {
	c.JSON(http.StatusOK, h.resultsService.GetDailyResults())
}

// GetDayResults
// @Summary Get the standings of a day
// @Description Standings by front and the fastest winners of the day
// @Tags results
// @Produce json
// @Param day path int true "Day number"
// @Success 200 {object} models.DayResultsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results/days/{day} [get]
func (h *ResultsHandler) GetDayResults(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	resp, err := h.resultsService.GetDayResults(day)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTournamentResults
// @Summary Get the tournament standings
// @Description Standings by base team across every recorded day and the fastest win of the tournament
// @Tags results
// @Produce json
// @Success 200 {object} models.TournamentResultsResponse
// @Router /results/tournament [get]
func (h *ResultsHandler) GetTournamentResults(c *gin.Context) {
	c.JSON(http.StatusOK, h.resultsService.GetTournamentResults())
}
