package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"

	"gallera-api/packages/core/services"
	"gallera-api/packages/core/tournament"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", tournament.ErrWeightOutOfRange, http.StatusBadRequest},
		{"wrapped validation", eris.Wrapf(tournament.ErrDuplicateRingID, "ring %q", "R1"), http.StatusBadRequest},
		{"not found", eris.Wrapf(tournament.ErrTeamNotFound, "team %q", "x"), http.StatusNotFound},
		{"invalid day", tournament.ErrInvalidDay, http.StatusNotFound},
		{"structural guard", tournament.ErrBaseTeamHasFronts, http.StatusConflict},
		{"read only", tournament.ErrDayReadOnly, http.StatusConflict},
		{"matchmaking running", services.ErrMatchmakingInProgress, http.StatusConflict},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
