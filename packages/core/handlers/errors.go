package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	"gallera-api/packages/core/services"
	"gallera-api/packages/core/tournament"
)

var (
	badRequestErrors = []error{
		tournament.ErrDuplicateRingID,
		tournament.ErrWeightOutOfRange,
		tournament.ErrMissingClassification,
		tournament.ErrRosterCapReached,
		tournament.ErrZeroDuration,
		tournament.ErrInvalidWinner,
		tournament.ErrInvalidTeam,
		tournament.ErrInvalidRules,
		tournament.ErrInvalidException,
		tournament.ErrSameRooster,
	}
	notFoundErrors = []error{
		tournament.ErrTeamNotFound,
		tournament.ErrRoosterNotFound,
		tournament.ErrExceptionNotFound,
		tournament.ErrInvalidDay,
	}
	conflictErrors = []error{
		tournament.ErrBaseTeamHasFronts,
		tournament.ErrDayReadOnly,
		tournament.ErrTournamentFinished,
		tournament.ErrTournamentRunning,
		tournament.ErrDayAlreadyStarted,
		tournament.ErrDayNotStarted,
		tournament.ErrNoMatchmakingResult,
		tournament.ErrEmptyCard,
		tournament.ErrRoosterNotUnpaired,
		tournament.ErrFightAlreadyFinished,
		services.ErrMatchmakingInProgress,
	}
)

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if eris.Is(err, target) {
			return true
		}
	}
	return false
}

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case matchesAny(err, badRequestErrors):
		return http.StatusBadRequest
	case matchesAny(err, notFoundErrors):
		return http.StatusNotFound
	case matchesAny(err, conflictErrors):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseDay(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day"})
		return 0, false
	}
	return day, true
}
