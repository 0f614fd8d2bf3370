package tournament

import (
	"github.com/rotisserie/eris"

	"gallera-api/packages/core/matchmaking"
	"gallera-api/packages/core/models"
)

func (s State) guardCard() error {
	if s.Finished {
		return ErrTournamentFinished
	}
	if err := s.guardEditable(); err != nil {
		return err
	}
	if s.Today().Started() {
		return eris.Wrapf(ErrDayAlreadyStarted, "day %d", s.CurrentDay)
	}
	return nil
}

// RunMatchmaking pairs the in-band roosters of the current day and stores the
// result for that day, replacing any earlier result.
func (s State) RunMatchmaking() (State, error) {
	if err := s.guardCard(); err != nil {
		return s, err
	}

	eligible := matchmaking.WithinWeightBand(s.Today().Roosters, s.Rules)
	res := matchmaking.FindPairs(eligible, s.Rules, s.Teams)

	next := s.Clone()
	day := next.Days.Get(next.CurrentDay)
	day.Matchmaking = models.NewMatchmakingResult(res.Fights, res.Leftovers, len(eligible))
	next.setDay(next.CurrentDay, day)
	next.Phase = PhaseMatchmaking
	return next, nil
}

// AddManualFight forces a fight between two unpaired roosters. Eligibility
// rules are not applied.
func (s State) AddManualFight(roosterAID, roosterBID string) (State, models.Fight, error) {
	if err := s.guardCard(); err != nil {
		return s, models.Fight{}, err
	}
	if roosterAID == roosterBID {
		return s, models.Fight{}, ErrSameRooster
	}
	result := s.Today().Matchmaking
	if result == nil {
		return s, models.Fight{}, eris.Wrapf(ErrNoMatchmakingResult, "day %d", s.CurrentDay)
	}

	a, aIdx := findUnpaired(result.Unpaired, roosterAID)
	b, bIdx := findUnpaired(result.Unpaired, roosterBID)
	if aIdx < 0 {
		return s, models.Fight{}, eris.Wrapf(ErrRoosterNotUnpaired, "rooster %q", roosterAID)
	}
	if bIdx < 0 {
		return s, models.Fight{}, eris.Wrapf(ErrRoosterNotUnpaired, "rooster %q", roosterBID)
	}

	next := s.Clone()
	day := next.Days.Get(next.CurrentDay)
	mm := day.Matchmaking

	number := 0
	for _, f := range mm.MainFights {
		number = max(number, f.Number)
	}
	fight := models.NewManualFight(number+1, a, b)
	mm.MainFights = append(mm.MainFights, fight)

	unpaired := make([]models.Rooster, 0, len(mm.Unpaired))
	for _, r := range mm.Unpaired {
		if r.ID != a.ID && r.ID != b.ID {
			unpaired = append(unpaired, r)
		}
	}
	mm.Unpaired = unpaired
	mm.Refresh()

	next.setDay(next.CurrentDay, day)
	return next, fight, nil
}

// StartFights copies the day's card into its live fight list. Later changes to
// the matchmaking result do not affect the live card.
func (s State) StartFights() (State, error) {
	if err := s.guardCard(); err != nil {
		return s, err
	}
	result := s.Today().Matchmaking
	if result == nil {
		return s, eris.Wrapf(ErrNoMatchmakingResult, "day %d", s.CurrentDay)
	}
	if len(result.MainFights) == 0 {
		return s, eris.Wrapf(ErrEmptyCard, "day %d", s.CurrentDay)
	}

	next := s.Clone()
	day := next.Days.Get(next.CurrentDay)
	day.Fights = append([]models.Fight{}, day.Matchmaking.MainFights...)
	next.setDay(next.CurrentDay, day)
	next.Phase = PhaseLiveFight
	return next, nil
}

func findUnpaired(roosters []models.Rooster, id string) (models.Rooster, int) {
	for i, r := range roosters {
		if r.ID == id {
			return r, i
		}
	}
	return models.Rooster{}, -1
}
