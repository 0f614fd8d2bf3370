package tournament

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallera-api/packages/core/models"
)

func finishedDayOne(t *testing.T) State {
	t.Helper()
	s := liveState(t, 2)
	for _, f := range s.Today().Fights {
		var err error
		s, err = s.FinishFight(f.ID, models.WinnerA, 100)
		require.NoError(t, err)
	}
	require.Equal(t, 2, s.CurrentDay)
	return s
}

func TestNewTournament_KeepsTeamsAndRosters(t *testing.T) {
	t.Parallel()

	s := finishedDayOne(t)
	s.Rules.Name = "Copa Feria"

	assert.Equal(t, Impact{Fights: 2, DailyResults: 1}, s.PreviewNewTournament())

	later := testNow.Add(48 * time.Hour)
	next := s.NewTournament(later)

	assert.Equal(t, 1, next.CurrentDay)
	assert.Equal(t, 1, next.ViewingDay)
	assert.Equal(t, PhaseSetup, next.Phase)
	assert.False(t, next.Finished)
	assert.Empty(t, next.DailyResults)
	assert.Empty(t, next.Today().Fights)
	assert.Nil(t, next.Today().Matchmaking)
	assert.Len(t, next.Today().Roosters, 4)
	assert.Equal(t, s.Teams, next.Teams)
	assert.Equal(t, models.DefaultTournamentName, next.Rules.Name)
	assert.Equal(t, "2026-03-16", next.Rules.Date)
	assert.Equal(t, 2, next.Rules.TournamentDays)

	_, err := next.RunMatchmaking()
	require.NoError(t, err, "day 1 can be fought again")
}

func TestReset(t *testing.T) {
	t.Parallel()

	s := finishedDayOne(t)
	assert.Equal(t, Impact{Teams: 2, Roosters: 4, Fights: 2, DailyResults: 1}, s.PreviewReset())

	fresh := Reset(testNow)
	assert.Empty(t, fresh.Teams)
	assert.Equal(t, 1, fresh.CurrentDay)
	assert.Equal(t, models.DefaultRules(testNow), fresh.Rules)
}

func TestLoadDemo(t *testing.T) {
	t.Parallel()

	s := twoTeamState(t)
	teams := []models.Team{models.NewBaseTeam("demo-1", "Demo", "Dee", "")}
	roosters := []models.Rooster{{ID: "demo-r1", TeamID: "demo-1", Weight: 50}}

	next, err := s.LoadDemo(teams, roosters)
	require.NoError(t, err)
	assert.Equal(t, teams, next.Teams)
	assert.Equal(t, roosters, next.Today().Roosters)

	_, err = liveState(t, 1).LoadDemo(teams, roosters)
	require.ErrorIs(t, err, ErrDayAlreadyStarted)
}

func TestState_JSONRoundTripKeepsDayBook(t *testing.T) {
	t.Parallel()

	s := finishedDayOne(t)
	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded State
	require.NoError(t, json.Unmarshal(raw, &decoded))
	decoded = decoded.Normalized()

	assert.Equal(t, s.CurrentDay, decoded.CurrentDay)
	assert.Len(t, decoded.Days.Get(1).Fights, 2)
	assert.Equal(t, s.DailyResults, decoded.DailyResults)
	assert.Empty(t, decoded.Days.Get(7).Roosters, "unseen days read as empty")
}

func TestNormalized_RepairsEmptyState(t *testing.T) {
	t.Parallel()

	s := State{}.Normalized()

	assert.Equal(t, 1, s.CurrentDay)
	assert.Equal(t, 1, s.ViewingDay)
	assert.Equal(t, PhaseSetup, s.Phase)
	assert.NotNil(t, s.Days)
	assert.Contains(t, s.Days, 1)
}
