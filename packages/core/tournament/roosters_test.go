package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallera-api/packages/core/models"
)

func TestAddRooster(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, team := mustAddTeam(t, newTestState(), "Los Alamos", 1, ids)

	f := form("  AB-12 ", team.ID, 50, 11)
	f.BreederPlateID = ""
	s, r := mustAddRooster(t, s, f, ids)

	assert.Equal(t, "AB-12", r.RingID)
	assert.Equal(t, models.DefaultBreederPlateID, r.BreederPlateID)
	assert.Equal(t, models.AgeCategoryPollo, r.AgeCategory)
	assert.Equal(t, []models.Rooster{r}, s.Roosters(1))
}

func TestAddRooster_Validation(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, team := mustAddTeam(t, newTestState(), "Los Alamos", 1, ids)
	s, _ = mustAddRooster(t, s, form("AB-12", team.ID, 50, 10), ids)

	tests := []struct {
		name    string
		mutate  func(*RoosterForm)
		wantErr error
	}{
		{name: "duplicate ring id ignores case and spaces", mutate: func(f *RoosterForm) { f.RingID = " ab-12" }, wantErr: ErrDuplicateRingID},
		{name: "weight below band", mutate: func(f *RoosterForm) { f.Weight = 39 }, wantErr: ErrWeightOutOfRange},
		{name: "weight above band", mutate: func(f *RoosterForm) { f.Weight = 81 }, wantErr: ErrWeightOutOfRange},
		{name: "missing mark", mutate: func(f *RoosterForm) { f.Mark = 0 }, wantErr: ErrMissingClassification},
		{name: "missing age", mutate: func(f *RoosterForm) { f.AgeMonths = 0 }, wantErr: ErrMissingClassification},
		{name: "missing color", mutate: func(f *RoosterForm) { f.Color = "" }, wantErr: ErrMissingClassification},
		{name: "unknown phenotype", mutate: func(f *RoosterForm) { f.Phenotype = "crested" }, wantErr: ErrMissingClassification},
		{name: "unknown team", mutate: func(f *RoosterForm) { f.TeamID = "nope" }, wantErr: ErrTeamNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := form("NEW-1", team.ID, 50, 10)
			tt.mutate(&f)

			next, _, err := s.AddRooster(f, sequence("x"))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, next.Today().Roosters, 1)
		})
	}
}

func TestAddRooster_RosterCap(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, team := mustAddTeam(t, newTestState(), "Los Alamos", 1, ids)
	s.Rules.RoostersPerFront = 2
	s, first := mustAddRooster(t, s, form("R1", team.ID, 50, 10), ids)
	s, _ = mustAddRooster(t, s, form("R2", team.ID, 50, 10), ids)

	_, _, err := s.AddRooster(form("R3", team.ID, 50, 10), ids)
	require.ErrorIs(t, err, ErrRosterCapReached)

	_, _, err = s.UpdateRooster(first.ID, form("R1", team.ID, 55, 13))
	require.NoError(t, err, "the cap only applies to new roosters")

	s.Rules.RoostersPerFront = 0
	_, _, err = s.AddRooster(form("R3", team.ID, 50, 10), ids)
	require.NoError(t, err, "a zero cap means no limit")
}

func TestUpdateRooster(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, team := mustAddTeam(t, newTestState(), "Los Alamos", 1, ids)
	s, first := mustAddRooster(t, s, form("R1", team.ID, 50, 10), ids)
	s, _ = mustAddRooster(t, s, form("R2", team.ID, 50, 10), ids)

	next, updated, err := s.UpdateRooster(first.ID, form("r1", team.ID, 52, 14))
	require.NoError(t, err, "keeping its own ring id is allowed")
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, models.AgeCategoryGallo, updated.AgeCategory)
	assert.Equal(t, 52, next.Today().Roosters[0].Weight)

	_, _, err = s.UpdateRooster(first.ID, form("R2", team.ID, 50, 10))
	require.ErrorIs(t, err, ErrDuplicateRingID)
	_, _, err = s.UpdateRooster("missing", form("R9", team.ID, 50, 10))
	require.ErrorIs(t, err, ErrRoosterNotFound)
}

func TestDeleteRooster(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, team := mustAddTeam(t, newTestState(), "Los Alamos", 1, ids)
	s, first := mustAddRooster(t, s, form("R1", team.ID, 50, 10), ids)
	s, second := mustAddRooster(t, s, form("R2", team.ID, 50, 10), ids)

	next, err := s.DeleteRooster(first.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Rooster{second}, next.Today().Roosters)
	assert.Len(t, s.Today().Roosters, 2, "receiver must not change")

	_, err = next.DeleteRooster(first.ID)
	require.ErrorIs(t, err, ErrRoosterNotFound)
}

func TestRosterEditsDoNotTouchLiveCard(t *testing.T) {
	t.Parallel()

	s := liveState(t, 1)
	card := append([]models.Fight{}, s.Today().Fights...)
	first := card[0].RoosterA

	s, _ = mustAddRooster(t, s, form("LATE", s.Teams[0].ID, 50, 10), sequence("late"))

	edit := form(first.RingID, first.TeamID, first.Weight+1, first.AgeMonths)
	s, _, err := s.UpdateRooster(first.ID, edit)
	require.NoError(t, err)

	s, err = s.DeleteRooster(card[1].RoosterB.ID)
	require.NoError(t, err)

	assert.Equal(t, card, s.Today().Fights)
	assert.True(t, s.InProgress())
}
