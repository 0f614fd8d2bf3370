package tournament

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gallera-api/packages/core/models"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newTestState() State {
	rules := models.DefaultRules(testNow)
	rules.MinWeight = 40
	rules.MaxWeight = 80
	return NewState(rules)
}

func mustAddTeam(t *testing.T, s State, name string, fronts int, newID func() string) (State, models.Team) {
	t.Helper()
	next, team, err := s.AddTeam(TeamForm{Name: name, Owner: "owner of " + name, FrontCount: fronts}, newID)
	require.NoError(t, err)
	return next, team
}

func form(ring, teamID string, weight, age int) RoosterForm {
	return RoosterForm{
		RingID:    ring,
		Color:     "giro",
		TeamID:    teamID,
		Weight:    weight,
		AgeMonths: age,
		Mark:      1,
		Phenotype: models.PhenotypeLiso,
	}
}

func mustAddRooster(t *testing.T, s State, f RoosterForm, newID func() string) (State, models.Rooster) {
	t.Helper()
	next, r, err := s.AddRooster(f, newID)
	require.NoError(t, err)
	return next, r
}

// twoTeamState returns a session with two teams and four roosters that pair
// into two fights.
func twoTeamState(t *testing.T) State {
	t.Helper()
	ids := sequence("id")
	s := newTestState()
	s, a := mustAddTeam(t, s, "Los Alamos", 1, ids)
	s, b := mustAddTeam(t, s, "El Roble", 1, ids)
	s, _ = mustAddRooster(t, s, form("A1", a.ID, 50, 10), ids)
	s, _ = mustAddRooster(t, s, form("B1", b.ID, 50, 10), ids)
	s, _ = mustAddRooster(t, s, form("A2", a.ID, 60, 14), ids)
	s, _ = mustAddRooster(t, s, form("B2", b.ID, 61, 15), ids)
	return s
}

func liveState(t *testing.T, days int) State {
	t.Helper()
	s := twoTeamState(t)
	s.Rules.TournamentDays = days
	s, err := s.RunMatchmaking()
	require.NoError(t, err)
	s, err = s.StartFights()
	require.NoError(t, err)
	return s
}
