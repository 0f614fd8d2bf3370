package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallera-api/packages/core/models"
)

func TestAddTeam_CreatesFronts(t *testing.T) {
	t.Parallel()

	s, base := mustAddTeam(t, newTestState(), "Los Alamos", 3, sequence("t"))

	require.Len(t, s.Teams, 3)
	assert.Equal(t, models.TeamKindBase, base.Kind)
	assert.Equal(t, "Los Alamos (F1)", base.DisplayName())
	for i, team := range models.Fronts(s.Teams, base.ID) {
		assert.Equal(t, i+1, team.FrontNumber)
		assert.Equal(t, base.ID, team.BaseID())
	}
	assert.Equal(t, "Los Alamos (F3)", s.Teams[2].DisplayName())

	_, _, err := s.AddTeam(TeamForm{Name: "  ", Owner: "x", FrontCount: 1}, sequence("u"))
	require.ErrorIs(t, err, ErrInvalidTeam)
	_, _, err = s.AddTeam(TeamForm{Name: "x", Owner: "y", FrontCount: 0}, sequence("u"))
	require.ErrorIs(t, err, ErrInvalidTeam)
}

func TestUpdateTeam_ReducingFrontsCascades(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, base := mustAddTeam(t, newTestState(), "Los Alamos", 3, ids)
	fronts := models.Fronts(s.Teams, base.ID)
	s, _ = mustAddRooster(t, s, form("R1", fronts[0].ID, 50, 10), ids)
	s, _ = mustAddRooster(t, s, form("R2", fronts[1].ID, 50, 10), ids)
	s, _ = mustAddRooster(t, s, form("R3", fronts[2].ID, 50, 10), ids)
	s, _ = mustAddRooster(t, s, form("R4", fronts[2].ID, 52, 10), ids)
	// The same front also has roosters registered on a later day.
	day2 := s.Days.Get(2)
	day2.Roosters = append(day2.Roosters, models.Rooster{ID: "later", TeamID: fronts[2].ID})
	s.Days[2] = day2

	impact, err := s.PreviewTeamUpdate(base.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, Impact{Fronts: 2, Roosters: 4}, impact)

	next, updated, err := s.UpdateTeam(fronts[1].ID, TeamForm{Name: "Alamos Viejo", Owner: "Ana", FrontCount: 1}, ids)
	require.NoError(t, err)

	assert.Equal(t, base.ID, updated.ID)
	require.Len(t, next.Teams, 1)
	assert.Equal(t, "Alamos Viejo (F1)", next.Teams[0].DisplayName())
	assert.Len(t, next.Today().Roosters, 1)
	assert.Empty(t, next.Days.Get(2).Roosters)
	assert.Len(t, s.Teams, 3, "receiver must not change")
}

func TestUpdateTeam_AddsFronts(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, base := mustAddTeam(t, newTestState(), "El Roble", 1, ids)

	impact, err := s.PreviewTeamUpdate(base.ID, 3)
	require.NoError(t, err)
	assert.Zero(t, impact)

	s, _, err = s.UpdateTeam(base.ID, TeamForm{Name: "El Roble", Owner: "Beto", City: "Xela", FrontCount: 3}, ids)
	require.NoError(t, err)

	fronts := models.Fronts(s.Teams, base.ID)
	require.Len(t, fronts, 3)
	assert.Equal(t, 3, fronts[2].FrontNumber)
	assert.Equal(t, "Xela", fronts[2].City)
	assert.True(t, fronts[2].IsFront())
}

func TestDeleteTeam(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, alamos := mustAddTeam(t, newTestState(), "Los Alamos", 2, ids)
	s, roble := mustAddTeam(t, s, "El Roble", 1, ids)
	front := models.Fronts(s.Teams, alamos.ID)[1]
	s, _ = mustAddRooster(t, s, form("F1", front.ID, 50, 10), ids)
	s, _ = mustAddRooster(t, s, form("R1", roble.ID, 50, 10), ids)
	s, _, err := s.AddExceptions([]string{alamos.ID}, []string{roble.ID})
	require.NoError(t, err)

	_, err = s.PreviewTeamDeletion(alamos.ID)
	require.ErrorIs(t, err, ErrBaseTeamHasFronts)
	_, err = s.DeleteTeam(alamos.ID)
	require.ErrorIs(t, err, ErrBaseTeamHasFronts)

	impact, err := s.PreviewTeamDeletion(front.ID)
	require.NoError(t, err)
	assert.Equal(t, Impact{Teams: 1, Roosters: 1}, impact)

	s, err = s.DeleteTeam(front.ID)
	require.NoError(t, err)
	assert.Len(t, s.Teams, 2)
	assert.Len(t, s.Today().Roosters, 1)
	assert.Len(t, s.Rules.Exceptions, 1, "deleting a front keeps the base's exceptions")

	s, err = s.DeleteTeam(alamos.ID)
	require.NoError(t, err)
	assert.Empty(t, s.Rules.Exceptions)

	_, err = s.DeleteTeam("missing")
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestUpdateTeam_CountsFrontsByPosition(t *testing.T) {
	t.Parallel()

	ids := sequence("t")
	s, base := mustAddTeam(t, newTestState(), "Los Alamos", 3, ids)
	fronts := models.Fronts(s.Teams, base.ID)
	s, _ = mustAddRooster(t, s, form("R3", fronts[2].ID, 50, 10), ids)

	s, err := s.DeleteTeam(fronts[1].ID)
	require.NoError(t, err)
	require.Len(t, models.Fronts(s.Teams, base.ID), 2)

	teamForm := func(n int) TeamForm {
		return TeamForm{Name: "Los Alamos", Owner: "Ana", FrontCount: n}
	}

	t.Run("same count keeps every front", func(t *testing.T) {
		t.Parallel()

		impact, err := s.PreviewTeamUpdate(base.ID, 2)
		require.NoError(t, err)
		assert.Zero(t, impact)

		next, _, err := s.UpdateTeam(base.ID, teamForm(2), sequence("n"))
		require.NoError(t, err)

		kept := models.Fronts(next.Teams, base.ID)
		require.Len(t, kept, 2)
		assert.Equal(t, fronts[2].ID, kept[1].ID)
		assert.Equal(t, "Los Alamos (F2)", kept[1].DisplayName())
		assert.Len(t, next.Today().Roosters, 1)
	})

	t.Run("raising the count fills up to it", func(t *testing.T) {
		t.Parallel()

		next, _, err := s.UpdateTeam(base.ID, teamForm(3), sequence("n"))
		require.NoError(t, err)

		all := models.Fronts(next.Teams, base.ID)
		require.Len(t, all, 3)
		for i, f := range all {
			assert.Equal(t, i+1, f.FrontNumber)
		}
		assert.Equal(t, fronts[2].ID, all[1].ID)
		assert.Equal(t, "n1", all[2].ID)
	})

	t.Run("lowering the count drops the last positions", func(t *testing.T) {
		t.Parallel()

		impact, err := s.PreviewTeamUpdate(base.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, Impact{Fronts: 1, Roosters: 1}, impact)

		next, _, err := s.UpdateTeam(base.ID, teamForm(1), sequence("n"))
		require.NoError(t, err)
		assert.Len(t, models.Fronts(next.Teams, base.ID), 1)
		assert.Empty(t, next.Today().Roosters)
	})
}
