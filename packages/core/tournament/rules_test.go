package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallera-api/packages/core/models"
)

func TestUpdateRules_ClampsWeightBand(t *testing.T) {
	t.Parallel()

	s := NewDefaultState(testNow)

	tests := []struct {
		name    string
		patch   RulesPatch
		wantMin int
		wantMax int
	}{
		{name: "min raised to tournament floor", patch: RulesPatch{MinWeight: ptr(30)}, wantMin: models.MinTournamentWeight, wantMax: s.Rules.MaxWeight},
		{name: "min capped at max", patch: RulesPatch{MinWeight: ptr(100)}, wantMin: s.Rules.MaxWeight, wantMax: s.Rules.MaxWeight},
		{name: "max lowered to tournament ceiling", patch: RulesPatch{MaxWeight: ptr(120)}, wantMin: s.Rules.MinWeight, wantMax: models.MaxTournamentWeight},
		{name: "max kept above min", patch: RulesPatch{MaxWeight: ptr(10)}, wantMin: s.Rules.MinWeight, wantMax: s.Rules.MinWeight},
		{name: "both in range", patch: RulesPatch{MinWeight: ptr(48), MaxWeight: ptr(70)}, wantMin: 48, wantMax: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := s.UpdateRules(tt.patch)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, next.Rules.MinWeight)
			assert.Equal(t, tt.wantMax, next.Rules.MaxWeight)
			assert.LessOrEqual(t, next.Rules.MinWeight, next.Rules.MaxWeight)
		})
	}
}

func TestUpdateRules_Validation(t *testing.T) {
	t.Parallel()

	s := NewDefaultState(testNow)

	_, err := s.UpdateRules(RulesPatch{WeightTolerance: ptr(-1)})
	require.ErrorIs(t, err, ErrInvalidRules)
	_, err = s.UpdateRules(RulesPatch{TournamentDays: ptr(0)})
	require.ErrorIs(t, err, ErrInvalidRules)

	s.CurrentDay, s.ViewingDay = 2, 2
	_, err = s.UpdateRules(RulesPatch{TournamentDays: ptr(1)})
	require.ErrorIs(t, err, ErrInvalidRules)

	next, err := s.UpdateRules(RulesPatch{Name: ptr("Copa Feria"), PointsForWin: ptr(2), TournamentDays: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, "Copa Feria", next.Rules.Name)
	assert.Equal(t, 2, next.Rules.PointsForWin)
	assert.Equal(t, 3, next.Rules.TournamentDays)
	assert.Equal(t, s.Rules.PointsForDraw, next.Rules.PointsForDraw)
}

func TestAddExceptions(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, alamos := mustAddTeam(t, newTestState(), "Los Alamos", 2, ids)
	s, roble := mustAddTeam(t, s, "El Roble", 1, ids)
	s, ceiba := mustAddTeam(t, s, "La Ceiba", 1, ids)
	alamosF2 := models.Fronts(s.Teams, alamos.ID)[1]

	s, added, err := s.AddExceptions([]string{alamosF2.ID, roble.ID}, []string{alamos.ID, ceiba.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, added, "alamos-alamos is skipped")
	assert.Len(t, s.Rules.Exceptions, 3)
	for _, e := range s.Rules.Exceptions {
		assert.NotEqual(t, alamosF2.ID, e.TeamAID, "fronts resolve to their base")
	}

	s, added, err = s.AddExceptions([]string{ceiba.ID}, []string{roble.ID, alamos.ID})
	require.NoError(t, err)
	assert.Zero(t, added, "reversed pairs are duplicates")
	assert.True(t, s.Rules.ExceptionSet().Contains(ceiba.ID, alamos.ID))

	_, _, err = s.AddExceptions([]string{"missing"}, []string{roble.ID})
	require.ErrorIs(t, err, ErrTeamNotFound)
	_, _, err = s.AddExceptions(nil, []string{roble.ID})
	require.ErrorIs(t, err, ErrInvalidException)

	next, err := s.RemoveException(0)
	require.NoError(t, err)
	assert.Len(t, next.Rules.Exceptions, 2)
	assert.Len(t, s.Rules.Exceptions, 3, "receiver must not change")
	_, err = s.RemoveException(3)
	require.ErrorIs(t, err, ErrExceptionNotFound)
}
