package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// GetAllTeams lists every team
// @Summary List teams
// @Description Base teams and their fronts
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.GetAllTeams())
}

// CreateTeam creates a new team
// @Summary Create a new team
// @Description Create a base team and fronts 2..front_count
// @Tags teams
// @Accept json
// @Produce json
// @Param team body models.SaveTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req models.SaveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam updates a team
// @Summary Update team
// @Description Rename a base team and all its fronts, and apply the front count. Lowering the count deletes the surplus fronts and their roosters.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body models.SaveTeamRequest true "Team data"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req models.SaveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// PreviewUpdate
// @Summary Preview a front count change
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Param front_count query int true "New front count"
// @Success 200 {object} tournament.Impact
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/update-preview [get]
func (h *TeamHandler) PreviewUpdate(c *gin.Context) {
	frontCount, err := strconv.Atoi(c.Query("front_count"))
	if err != nil || frontCount < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid front count"})
		return
	}

	impact, err := h.teamService.PreviewUpdate(c.Param("id"), frontCount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, impact)
}

// DeleteTeam deletes a team
// @Summary Delete team
// @Description Delete a front with its roosters, or a base team without fronts
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.DeleteTeam(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// PreviewDelete
// @Summary Preview team deletion
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} tournament.Impact
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/delete-preview [get]
func (h *TeamHandler) PreviewDelete(c *gin.Context) {
	impact, err := h.teamService.PreviewDelete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, impact)
}
