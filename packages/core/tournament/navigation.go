package tournament

import "github.com/rotisserie/eris"

// SelectDay moves the operator to day. A day with a recorded result opens on
// its results, any other day on setup. Days before the current one are read-only.
func (s State) SelectDay(day int) (State, error) {
	if day < 1 || day > s.CurrentDay {
		return s, eris.Wrapf(ErrInvalidDay, "day %d", day)
	}

	next := s.Clone()
	next.ViewingDay = day
	if next.DayFinished(day) {
		next.Phase = PhaseResults
	} else {
		next.Phase = PhaseSetup
	}
	return next, nil
}

// ResumeLive returns to the live card of the current day.
func (s State) ResumeLive() (State, error) {
	if !s.InProgress() {
		return s, eris.Wrapf(ErrDayNotStarted, "day %d", s.CurrentDay)
	}

	next := s.Clone()
	next.ViewingDay = next.CurrentDay
	next.Phase = PhaseLiveFight
	return next, nil
}

// ShowMatchmaking reopens the matchmaking result of the viewed day.
func (s State) ShowMatchmaking() (State, error) {
	if s.Days.Get(s.ViewingDay).Matchmaking == nil {
		return s, eris.Wrapf(ErrNoMatchmakingResult, "day %d", s.ViewingDay)
	}

	next := s.Clone()
	next.Phase = PhaseMatchmaking
	return next, nil
}

// BackToSetup leaves matchmaking for the setup of the viewed day.
func (s State) BackToSetup() (State, error) {
	if s.Phase == PhaseLiveFight && s.InProgress() {
		return s, eris.Wrapf(ErrDayAlreadyStarted, "day %d", s.CurrentDay)
	}

	next := s.Clone()
	next.Phase = PhaseSetup
	return next, nil
}

func (s State) ShowTournamentResults() (State, error) {
	if !s.Finished {
		return s, ErrTournamentRunning
	}

	next := s.Clone()
	next.Phase = PhaseTournamentResults
	return next, nil
}
