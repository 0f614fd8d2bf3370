package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallera-api/packages/core/models"
)

func TestRunMatchmaking_StoresResultForCurrentDay(t *testing.T) {
	t.Parallel()

	s := twoTeamState(t)
	heavy, _, err := s.AddRooster(form("HEAVY", s.Teams[0].ID, 90, 10), sequence("h"))
	require.ErrorIs(t, err, ErrWeightOutOfRange)
	assert.Len(t, heavy.Today().Roosters, 4)

	next, err := s.RunMatchmaking()
	require.NoError(t, err)

	assert.Equal(t, PhaseMatchmaking, next.Phase)
	mm := next.Today().Matchmaking
	require.NotNil(t, mm)
	assert.Len(t, mm.MainFights, 2)
	assert.Empty(t, mm.Unpaired)
	assert.Equal(t, models.MatchmakingStats{EligibleCount: 4, FightCount: 2}, mm.Stats)

	assert.Nil(t, s.Today().Matchmaking, "receiver must not change")
	assert.Equal(t, PhaseSetup, s.Phase)
}

func TestRunMatchmaking_SkipsRoostersOutsideBand(t *testing.T) {
	t.Parallel()

	s := twoTeamState(t)
	s.Rules.MinWeight = 55

	next, err := s.RunMatchmaking()
	require.NoError(t, err)

	mm := next.Today().Matchmaking
	require.Len(t, mm.MainFights, 1)
	assert.Equal(t, 2, mm.Stats.EligibleCount)
}

func TestAddManualFight(t *testing.T) {
	t.Parallel()

	ids := sequence("m")
	s := twoTeamState(t)
	s, _ = mustAddRooster(t, s, form("A3", s.Teams[0].ID, 70, 20), ids)
	s, _ = mustAddRooster(t, s, form("A4", s.Teams[0].ID, 45, 3), ids)

	s, err := s.RunMatchmaking()
	require.NoError(t, err)
	mm := s.Today().Matchmaking
	require.Len(t, mm.Unpaired, 2)
	x, y := mm.Unpaired[0], mm.Unpaired[1]

	_, _, err = s.AddManualFight(x.ID, x.ID)
	require.ErrorIs(t, err, ErrSameRooster)
	_, _, err = s.AddManualFight(x.ID, mm.MainFights[0].RoosterA.ID)
	require.ErrorIs(t, err, ErrRoosterNotUnpaired)

	next, fight, err := s.AddManualFight(x.ID, y.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, fight.Number)
	assert.True(t, fight.Manual)
	assert.Equal(t, "fight-manual-"+x.ID+"-"+y.ID, fight.ID)
	got := next.Today().Matchmaking
	assert.Len(t, got.MainFights, 3)
	assert.Empty(t, got.Unpaired)
	assert.Equal(t, 1, got.Stats.ManualFightCount)
	assert.Len(t, s.Today().Matchmaking.Unpaired, 2, "receiver must not change")
}

func TestAddManualFight_NeedsMatchmakingResult(t *testing.T) {
	t.Parallel()

	_, _, err := twoTeamState(t).AddManualFight("a", "b")
	require.ErrorIs(t, err, ErrNoMatchmakingResult)
}

func TestStartFights(t *testing.T) {
	t.Parallel()

	s := twoTeamState(t)
	_, err := s.StartFights()
	require.ErrorIs(t, err, ErrNoMatchmakingResult)

	s, err = s.RunMatchmaking()
	require.NoError(t, err)
	s, err = s.StartFights()
	require.NoError(t, err)

	assert.Equal(t, PhaseLiveFight, s.Phase)
	assert.Len(t, s.Today().Fights, 2)
	assert.True(t, s.InProgress())

	_, err = s.RunMatchmaking()
	require.ErrorIs(t, err, ErrDayAlreadyStarted)
	_, err = s.StartFights()
	require.ErrorIs(t, err, ErrDayAlreadyStarted)
}

func TestStartFights_RejectsEmptyCard(t *testing.T) {
	t.Parallel()

	s, err := newTestState().RunMatchmaking()
	require.NoError(t, err)

	_, err = s.StartFights()
	require.ErrorIs(t, err, ErrEmptyCard)
}

func TestCurrentFight_IsLowestUnresolved(t *testing.T) {
	t.Parallel()

	s := liveState(t, 1)
	fights := s.Today().Fights
	require.Len(t, fights, 2)

	current, ok := s.CurrentFight()
	require.True(t, ok)
	assert.Equal(t, 1, current.Number)

	s, err := s.FinishFight(fights[1].ID, models.WinnerA, 30)
	require.NoError(t, err)
	current, ok = s.CurrentFight()
	require.True(t, ok)
	assert.Equal(t, 1, current.Number)

	pending, total := s.PendingFights()
	assert.Len(t, pending, 1)
	assert.Equal(t, 2, total)
}

func TestFinishFight_DrawIsAlwaysFullDistance(t *testing.T) {
	t.Parallel()

	s := liveState(t, 1)
	id := s.Today().Fights[0].ID

	for _, seconds := range []int{0, 1, 125, 9999} {
		next, err := s.FinishFight(id, models.WinnerDraw, seconds)
		require.NoError(t, err)
		assert.Equal(t, 480, next.Today().Fights[0].DurationSeconds)
		assert.Equal(t, models.WinnerDraw, next.Today().Fights[0].Winner)
	}
}

func TestFinishFight_Rejections(t *testing.T) {
	t.Parallel()

	s := liveState(t, 1)
	id := s.Today().Fights[0].ID

	_, err := s.FinishFight(id, models.WinnerA, 0)
	require.ErrorIs(t, err, ErrZeroDuration)
	_, err = s.FinishFight(id, models.WinnerB, -5)
	require.ErrorIs(t, err, ErrZeroDuration)
	_, err = s.FinishFight(id, "C", 30)
	require.ErrorIs(t, err, ErrInvalidWinner)
	assert.False(t, s.Today().Fights[0].Finished())

	next, err := s.FinishFight("fight-unknown", models.WinnerA, 30)
	require.NoError(t, err)
	assert.Equal(t, s, next)

	next, err = next.FinishFight(id, models.WinnerA, 30)
	require.NoError(t, err)
	_, err = next.FinishFight(id, models.WinnerB, 40)
	require.ErrorIs(t, err, ErrFightAlreadyFinished)
}

func TestFinishFight_LastFightEndsFinalDay(t *testing.T) {
	t.Parallel()

	s := liveState(t, 1)
	fights := s.Today().Fights

	s, err := s.FinishFight(fights[0].ID, models.WinnerA, 125)
	require.NoError(t, err)
	assert.Empty(t, s.DailyResults)
	assert.Equal(t, PhaseLiveFight, s.Phase)

	s, err = s.FinishFight(fights[1].ID, models.WinnerDraw, 0)
	require.NoError(t, err)

	assert.True(t, s.Finished)
	assert.Equal(t, PhaseTournamentResults, s.Phase)
	assert.Equal(t, 1, s.CurrentDay)
	require.Len(t, s.DailyResults, 1)
	result := s.DailyResults[0]
	assert.Equal(t, 1, result.Day)
	require.Len(t, result.Fights, 2)
	assert.Equal(t, models.WinnerA, result.Fights[0].Winner)
	assert.Equal(t, 125, result.Fights[0].DurationSeconds)

	_, err = s.FinishFight(fights[0].ID, models.WinnerA, 10)
	require.ErrorIs(t, err, ErrTournamentFinished)
}

func TestFinishFight_DayRollsOver(t *testing.T) {
	t.Parallel()

	s := liveState(t, 2)
	for _, f := range s.Today().Fights {
		var err error
		s, err = s.FinishFight(f.ID, models.WinnerB, 60)
		require.NoError(t, err)
	}

	assert.False(t, s.Finished)
	assert.Equal(t, 2, s.CurrentDay)
	assert.Equal(t, 2, s.ViewingDay)
	assert.Equal(t, PhaseSetup, s.Phase)

	day2 := s.Today()
	assert.Empty(t, day2.Roosters)
	assert.Empty(t, day2.Fights)
	assert.Nil(t, day2.Matchmaking)

	require.True(t, s.DayFinished(1))
	assert.Len(t, s.Days.Get(1).Fights, 2)
	assert.Len(t, s.Days.Get(1).Roosters, 4)

	past, err := s.SelectDay(1)
	require.NoError(t, err)
	assert.Equal(t, PhaseResults, past.Phase)
	assert.True(t, past.ReadOnly())
	_, err = past.RunMatchmaking()
	require.ErrorIs(t, err, ErrDayReadOnly)
	_, _, err = past.AddRooster(form("Z", s.Teams[0].ID, 50, 10), sequence("z"))
	require.ErrorIs(t, err, ErrDayReadOnly)
	_, err = past.DeleteTeam(s.Teams[0].ID)
	require.ErrorIs(t, err, ErrDayReadOnly)
	_, err = past.UpdateRules(RulesPatch{WeightTolerance: ptr(3)})
	require.ErrorIs(t, err, ErrDayReadOnly)

	back, err := past.SelectDay(2)
	require.NoError(t, err)
	assert.Equal(t, PhaseSetup, back.Phase)
	assert.False(t, back.ReadOnly())

	_, err = s.SelectDay(3)
	require.ErrorIs(t, err, ErrInvalidDay)
}

func TestFinishTournament_RecordsDecidedFights(t *testing.T) {
	t.Parallel()

	s := liveState(t, 3)
	first := s.Today().Fights[0]

	s, err := s.FinishFight(first.ID, models.WinnerA, 90)
	require.NoError(t, err)
	s, err = s.FinishTournament()
	require.NoError(t, err)

	assert.True(t, s.Finished)
	assert.Equal(t, PhaseTournamentResults, s.Phase)
	require.Len(t, s.DailyResults, 1)
	require.Len(t, s.DailyResults[0].Fights, 1)
	assert.Equal(t, first.ID, s.DailyResults[0].Fights[0].ID)

	_, err = s.FinishTournament()
	require.ErrorIs(t, err, ErrTournamentFinished)
}

func TestFinishTournament_WithoutDecidedFightsKeepsResults(t *testing.T) {
	t.Parallel()

	s := liveState(t, 2)
	s, err := s.FinishTournament()
	require.NoError(t, err)

	assert.True(t, s.Finished)
	assert.Empty(t, s.DailyResults)

	_, err = twoTeamState(t).FinishTournament()
	require.ErrorIs(t, err, ErrDayNotStarted)
}

func TestRecordDailyResult_ReplacesAndSorts(t *testing.T) {
	t.Parallel()

	s := newTestState()
	s.recordDailyResult(models.DailyResult{Day: 3})
	s.recordDailyResult(models.DailyResult{Day: 1})
	s.recordDailyResult(models.DailyResult{Day: 2})
	s.recordDailyResult(models.DailyResult{Day: 1, Fights: []models.Fight{{ID: "again"}}})

	require.Len(t, s.DailyResults, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{s.DailyResults[0].Day, s.DailyResults[1].Day, s.DailyResults[2].Day})
	assert.Equal(t, "again", s.DailyResults[0].Fights[0].ID)
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	s := twoTeamState(t)
	_, err := s.ShowMatchmaking()
	require.ErrorIs(t, err, ErrNoMatchmakingResult)
	_, err = s.ResumeLive()
	require.ErrorIs(t, err, ErrDayNotStarted)
	_, err = s.ShowTournamentResults()
	require.ErrorIs(t, err, ErrTournamentRunning)

	s, err = s.RunMatchmaking()
	require.NoError(t, err)
	s, err = s.BackToSetup()
	require.NoError(t, err)
	assert.Equal(t, PhaseSetup, s.Phase)
	s, err = s.ShowMatchmaking()
	require.NoError(t, err)
	assert.Equal(t, PhaseMatchmaking, s.Phase)

	s, err = s.StartFights()
	require.NoError(t, err)
	_, err = s.BackToSetup()
	require.ErrorIs(t, err, ErrDayAlreadyStarted)

	s, err = s.ShowMatchmaking()
	require.NoError(t, err)
	s, err = s.ResumeLive()
	require.NoError(t, err)
	assert.Equal(t, PhaseLiveFight, s.Phase)
}

func ptr[T any](v T) *T {
	return &v
}
