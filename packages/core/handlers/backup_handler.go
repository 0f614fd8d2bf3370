package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallera-api/packages/core/services"
)

type BackupHandler struct {
	backupService *services.BackupService
}

func NewBackupHandler(backupService *services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// GetBackups
// @Summary List session backups
// @Description Newest first
// @Tags session
// @Produce json
// @Success 200 {array} store.Snapshot
// @Failure 500 {object} map[string]string
// @Router /session/backups [get]
func (h *BackupHandler) GetBackups(c *gin.Context) {
	snapshots, err := h.backupService.GetSnapshots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshots)
}

// CreateBackup
// @Summary Back up the session now
// @Tags session
// @Produce json
// @Success 201 {object} store.Snapshot
// @Failure 500 {object} map[string]string
// @Router /session/backups [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	snapshot, err := h.backupService.BackupSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}
