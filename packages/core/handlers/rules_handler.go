package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/services"
)

type RulesHandler struct {
	rulesService *services.RulesService
}

func NewRulesHandler(rulesService *services.RulesService) *RulesHandler {
	return &RulesHandler{rulesService: rulesService}
}

// GetRules
// @Summary Get tournament rules
// @Tags rules
// @Produce json
// @Success 200 {object} models.Rules
// @Router /rules [get]
func (h *RulesHandler) GetRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.rulesService.GetRules())
}

// UpdateRules applies a partial rules update
// @Summary Update tournament rules
// @Description Only the given fields change. Weights are clamped to the tournament band.
// @Tags rules
// @Accept json
// @Produce json
// @Param rules body models.UpdateRulesRequest true "Rules update"
// @Success 200 {object} models.Rules
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rules [patch]
func (h *RulesHandler) UpdateRules(c *gin.Context) {
	var req models.UpdateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rules, err := h.rulesService.UpdateRules(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// AddExceptions
// @Summary Add exceptions
// @Description Forbid every pairing between the first and the second list of teams
// @Tags rules
// @Accept json
// @Produce json
// @Param exceptions body models.AddExceptionsRequest true "Team lists"
// @Success 200 {object} models.AddExceptionsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rules/exceptions [post]
func (h *RulesHandler) AddExceptions(c *gin.Context) {
	var req models.AddExceptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.rulesService.AddExceptions(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveException
// @Summary Remove exception
// @Tags rules
// @Produce json
// @Param index path int true "Exception index"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rules/exceptions/{index} [delete]
func (h *RulesHandler) RemoveException(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exception index"})
		return
	}

	if err := h.rulesService.RemoveException(c.Request.Context(), index); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exception removed successfully"})
}
