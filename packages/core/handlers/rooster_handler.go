package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/services"
)

type RoosterHandler struct {
	roosterService *services.RoosterService
}

func NewRoosterHandler(roosterService *services.RoosterService) *RoosterHandler {
	return &RoosterHandler{roosterService: roosterService}
}

// GetRoosters returns the roster of a day
// @Summary List roosters of a day
// @Tags roosters
// @Produce json
// @Param day path int true "Day number"
// @Success 200 {array} models.Rooster
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /days/{day}/roosters [get]
func (h *RoosterHandler) GetRoosters(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	roosters, err := h.roosterService.GetRoosters(day)
	if err != nil {
		respondError(c, err)
		return
	}
	if roosters == nil {
		roosters = []models.Rooster{}
	}

	c.JSON(http.StatusOK, roosters)
}

// CreateRooster registers a rooster for the current day
// @Summary Register rooster
// @Tags roosters
// @Accept json
// @Produce json
// @Param rooster body models.SaveRoosterRequest true "Rooster data"
// @Success 201 {object} models.Rooster
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /roosters [post]
func (h *RoosterHandler) CreateRooster(c *gin.Context) {
	var req models.SaveRoosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rooster, err := h.roosterService.CreateRooster(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rooster)
}

// UpdateRooster
// @Summary Update rooster
// @Tags roosters
// @Accept json
// @Produce json
// @Param id path string true "Rooster ID"
// @Param rooster body models.SaveRoosterRequest true "Rooster data"
// @Success 200 {object} models.Rooster
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /roosters/{id} [put]
func (h *RoosterHandler) UpdateRooster(c *gin.Context) {
	var req models.SaveRoosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rooster, err := h.roosterService.UpdateRooster(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rooster)
}

// DeleteRooster
// @Summary Delete rooster
// @Tags roosters
// @Produce json
// @Param id path string true "Rooster ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /roosters/{id} [delete]
func (h *RoosterHandler) DeleteRooster(c *gin.Context) {
	if err := h.roosterService.DeleteRooster(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rooster deleted successfully"})
}
