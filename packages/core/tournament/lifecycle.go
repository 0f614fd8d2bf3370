package tournament

import (
	"time"

	"gallera-api/packages/core/models"
)

// PreviewNewTournament counts the fights and results a new tournament discards.
func (s State) PreviewNewTournament() Impact {
	impact := Impact{DailyResults: len(s.DailyResults)}
	for _, d := range s.Days {
		impact.Fights += len(d.Fights)
	}
	return impact
}

// NewTournament starts over from day 1. Teams, rules and rosters are kept;
// fights, matchmaking results and daily results are cleared.
func (s State) NewTournament(now time.Time) State {
	next := s.Clone()
	for day, d := range next.Days {
		d.Fights = []models.Fight{}
		d.Matchmaking = nil
		next.setDay(day, d)
	}
	next.DailyResults = []models.DailyResult{}
	next.CurrentDay = 1
	next.ViewingDay = 1
	next.Finished = false
	next.Phase = PhaseSetup
	next.Rules.Name = models.DefaultTournamentName
	next.Rules.Date = now.Format(time.DateOnly)
	next.Days.Ensure(1)
	return next
}

// PreviewReset counts everything a full reset discards.
func (s State) PreviewReset() Impact {
	impact := s.PreviewNewTournament()
	for _, t := range s.Teams {
		if t.IsFront() {
			impact.Fronts++
		} else {
			impact.Teams++
		}
	}
	for _, d := range s.Days {
		impact.Roosters += len(d.Roosters)
	}
	return impact
}

// Reset discards the whole session.
func Reset(now time.Time) State {
	return NewDefaultState(now)
}

// LoadDemo replaces the teams and the current day's roster. Roosters of other
// days whose team no longer exists are dropped.
func (s State) LoadDemo(teams []models.Team, roosters []models.Rooster) (State, error) {
	if err := s.guardCard(); err != nil {
		return s, err
	}

	next := s.Clone()
	next.Teams = append([]models.Team{}, teams...)
	next.Rules.Exceptions = []models.Exception{}
	stale := map[string]struct{}{}
	for _, t := range s.Teams {
		stale[t.ID] = struct{}{}
	}
	for _, t := range teams {
		delete(stale, t.ID)
	}
	next.removeRoosters(stale)

	day := next.Days.Get(next.CurrentDay)
	day.Roosters = append([]models.Rooster{}, roosters...)
	day.Matchmaking = nil
	next.setDay(next.CurrentDay, day)
	next.Phase = PhaseSetup
	return next, nil
}
