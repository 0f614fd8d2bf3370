package tournament

import (
	"cmp"
	"slices"

	"github.com/rotisserie/eris"

	"gallera-api/packages/core/models"
)

// PendingFights returns the unresolved fights of the current day in fight
// number order, and the size of the whole card.
func (s State) PendingFights() ([]models.Fight, int) {
	fights := s.Today().Fights
	pending := make([]models.Fight, 0, len(fights))
	for _, f := range fights {
		if !f.Finished() {
			pending = append(pending, f)
		}
	}
	slices.SortStableFunc(pending, func(a, b models.Fight) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return pending, len(fights)
}

// CurrentFight is the lowest-numbered fight without an outcome.
func (s State) CurrentFight() (models.Fight, bool) {
	pending, _ := s.PendingFights()
	if len(pending) == 0 {
		return models.Fight{}, false
	}
	return pending[0], true
}

// FinishFight records the outcome of a live fight. A draw is always stored
// with DrawDurationSeconds. Unknown fight ids are ignored. Resolving the last
// open fight ends the day.
func (s State) FinishFight(fightID string, winner models.Winner, durationSeconds int) (State, error) {
	if s.Finished {
		return s, ErrTournamentFinished
	}
	if !winner.Valid() {
		return s, eris.Wrapf(ErrInvalidWinner, "winner %q", winner)
	}

	idx := slices.IndexFunc(s.Today().Fights, func(f models.Fight) bool { return f.ID == fightID })
	if idx < 0 {
		return s, nil
	}
	if s.Today().Fights[idx].Finished() {
		return s, eris.Wrapf(ErrFightAlreadyFinished, "fight %q", fightID)
	}

	if winner == models.WinnerDraw {
		durationSeconds = models.DrawDurationSeconds
	} else if durationSeconds <= 0 {
		return s, eris.Wrapf(ErrZeroDuration, "fight %q", fightID)
	}

	next := s.Clone()
	day := next.Days.Get(next.CurrentDay)
	day.Fights[idx].Winner = winner
	day.Fights[idx].DurationSeconds = durationSeconds
	next.setDay(next.CurrentDay, day)

	if !next.InProgress() {
		next.endDay()
	}
	return next, nil
}

// FinishTournament ends the tournament early. Fights already decided on the
// current day are recorded as that day's result.
func (s State) FinishTournament() (State, error) {
	if s.Finished {
		return s, ErrTournamentFinished
	}
	if !s.Today().Started() {
		return s, eris.Wrapf(ErrDayNotStarted, "day %d", s.CurrentDay)
	}

	next := s.Clone()
	if finished := next.finishedFights(); len(finished) > 0 {
		next.recordDailyResult(models.DailyResult{Day: next.CurrentDay, Fights: finished})
	}
	next.Finished = true
	next.ViewingDay = next.CurrentDay
	next.Phase = PhaseTournamentResults
	return next, nil
}

// endDay records the current day's result and rolls the session forward.
// It mutates s, so it must only be called on a clone.
func (s *State) endDay() {
	s.recordDailyResult(models.DailyResult{Day: s.CurrentDay, Fights: s.finishedFights()})

	if s.CurrentDay >= s.Rules.TournamentDays {
		s.Finished = true
		s.ViewingDay = s.CurrentDay
		s.Phase = PhaseTournamentResults
		return
	}

	s.CurrentDay++
	s.Days.Ensure(s.CurrentDay)
	s.ViewingDay = s.CurrentDay
	s.Phase = PhaseSetup
}

func (s State) finishedFights() []models.Fight {
	var out []models.Fight
	for _, f := range s.Today().Fights {
		if f.Finished() {
			out = append(out, f)
		}
	}
	return out
}
