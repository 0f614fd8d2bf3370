package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gallera-api/packages/core/services"
)

type SessionHandler struct {
	tournamentService *services.TournamentService
}

func NewSessionHandler(tournamentService *services.TournamentService) *SessionHandler {
	return &SessionHandler{tournamentService: tournamentService}
}

// GetSession returns the session summary
// @Summary Get session
// @Description Current phase, current and viewed day, and whether the viewed day is read-only
// @Tags session
// @Produce json
// @Success 200 {object} services.SessionSummary
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.tournamentService.GetSummary())
}

// SelectDay opens a day
// @Summary Select day
// @Description Open a past or current day. Past days are read-only.
// @Tags session
// @Produce json
// @Param day path int true "Day number"
// @Success 200 {object} services.SessionSummary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /session/days/{day}/select [post]
func (h *SessionHandler) SelectDay(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	summary, err := h.tournamentService.SelectDay(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ResumeLive
// @Summary Resume live fights
// @Tags session
// @Produce json
// @Success 200 {object} services.SessionSummary
// @Failure 409 {object} map[string]string
// @Router /session/live [post]
func (h *SessionHandler) ResumeLive(c *gin.Context) {
	h.navigate(c, h.tournamentService.ResumeLive)
}

// ShowMatchmaking
// @Summary Show the matchmaking result of the viewed day
// @Tags session
// @Produce json
// @Success 200 {object} services.SessionSummary
// @Failure 409 {object} map[string]string
// @Router /session/matchmaking [post]
func (h *SessionHandler) ShowMatchmaking(c *gin.Context) {
	h.navigate(c, h.tournamentService.ShowMatchmaking)
}

// BackToSetup
// @Summary Go back to setup
// @Tags session
// @Produce json
// @Success 200 {object} services.SessionSummary
// @Failure 409 {object} map[string]string
// @Router /session/setup [post]
func (h *SessionHandler) BackToSetup(c *gin.Context) {
	h.navigate(c, h.tournamentService.BackToSetup)
}

// ShowTournamentResults
// @Summary Show the final tournament results
// @Tags session
// @Produce json
// @Success 200 {object} services.SessionSummary
// @Failure 409 {object} map[string]string
// @Router /session/tournament-results [post]
func (h *SessionHandler) ShowTournamentResults(c *gin.Context) {
	h.navigate(c, h.tournamentService.ShowTournamentResults)
}

func (h *SessionHandler) navigate(c *gin.Context, fn func(ctx context.Context) (services.SessionSummary, error)) {
	summary, err := fn(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PreviewNewTournament lists what a new tournament discards
// @Summary Preview new tournament
// @Tags session
// @Produce json
// @Success 200 {object} tournament.Impact
// @Router /session/new-tournament/preview [get]
func (h *SessionHandler) PreviewNewTournament(c *gin.Context) {
	c.JSON(http.StatusOK, h.tournamentService.PreviewNewTournament())
}

// NewTournament starts over from day 1
// @Summary New tournament
// @Description Clears fights and results. Teams, rules and rosters are kept.
// @Tags session
// @Produce json
// @Success 200 {object} services.SessionSummary
// @Failure 500 {object} map[string]string
// @Router /session/new-tournament [post]
func (h *SessionHandler) NewTournament(c *gin.Context) {
	h.navigate(c, h.tournamentService.NewTournament)
}

// PreviewReset lists what a reset discards
// @Summary Preview reset
// @Tags session
// @Produce json
// @Success 200 {object} tournament.Impact
// @Router /session/reset/preview [get]
func (h *SessionHandler) PreviewReset(c *gin.Context) {
	c.JSON(http.StatusOK, h.tournamentService.PreviewReset())
}

// Reset discards the whole session
// @Summary Reset session
// @Tags session
// @Produce json
// @Success 200 {object} services.SessionSummary
// @Failure 500 {object} map[string]string
// @Router /session [delete]
func (h *SessionHandler) Reset(c *gin.Context) {
	h.navigate(c, h.tournamentService.Reset)
}

// LoadDemo loads demo teams and roosters
// @Summary Load demo data
// @Description Replaces the teams and the current day's roster with generated data
// @Tags session
// @Produce json
// @Param seed query int false "Random seed"
// @Success 200 {object} services.SessionSummary
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /session/demo [post]
func (h *SessionHandler) LoadDemo(c *gin.Context) {
	seed := time.Now().UnixNano()
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seed"})
			return
		}
		seed = parsed
	}

	summary, err := h.tournamentService.LoadDemoData(c.Request.Context(), seed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
