package tournament

import (
	"github.com/rotisserie/eris"

	"gallera-api/packages/core/models"
)

// RulesPatch is a partial rules update; nil fields are left as they are.
type RulesPatch struct {
	Name               *string
	Date               *string
	Manager            *string
	WeightTolerance    *int
	AgeToleranceMonths *int
	MinWeight          *int
	MaxWeight          *int
	RoostersPerFront   *int
	PointsForWin       *int
	PointsForDraw      *int
	TournamentDays     *int
}

// UpdateRules applies p. The weight band is clamped to the tournament limits
// and kept consistent: the minimum never exceeds the maximum.
func (s State) UpdateRules(p RulesPatch) (State, error) {
	if err := s.guardEditable(); err != nil {
		return s, err
	}

	for _, field := range []struct {
		name  string
		value *int
	}{
		{"weight tolerance", p.WeightTolerance},
		{"age tolerance", p.AgeToleranceMonths},
		{"minimum weight", p.MinWeight},
		{"maximum weight", p.MaxWeight},
		{"roosters per front", p.RoostersPerFront},
		{"points for win", p.PointsForWin},
		{"points for draw", p.PointsForDraw},
	} {
		if field.value != nil && *field.value < 0 {
			return s, eris.Wrapf(ErrInvalidRules, "%s must not be negative", field.name)
		}
	}
	if p.TournamentDays != nil {
		if *p.TournamentDays < 1 {
			return s, eris.Wrap(ErrInvalidRules, "a tournament lasts at least one day")
		}
		if *p.TournamentDays < s.CurrentDay {
			return s, eris.Wrapf(ErrInvalidRules, "day %d is already in progress", s.CurrentDay)
		}
	}

	next := s.Clone()
	r := &next.Rules
	setString(&r.Name, p.Name)
	setString(&r.Date, p.Date)
	setString(&r.Manager, p.Manager)
	setInt(&r.WeightTolerance, p.WeightTolerance)
	setInt(&r.AgeToleranceMonths, p.AgeToleranceMonths)
	setInt(&r.RoostersPerFront, p.RoostersPerFront)
	setInt(&r.PointsForWin, p.PointsForWin)
	setInt(&r.PointsForDraw, p.PointsForDraw)
	setInt(&r.TournamentDays, p.TournamentDays)

	if p.MinWeight != nil {
		r.MinWeight = min(max(*p.MinWeight, models.MinTournamentWeight), r.MaxWeight)
	}
	if p.MaxWeight != nil {
		r.MaxWeight = max(min(*p.MaxWeight, models.MaxTournamentWeight), r.MinWeight)
	}
	return next, nil
}

// AddExceptions forbids every pairing between the first and second lists of
// teams. Teams resolve to their base; pairs within one base and pairs already
// listed are skipped. It returns how many exceptions were added.
func (s State) AddExceptions(first, second []string) (State, int, error) {
	if err := s.guardEditable(); err != nil {
		return s, 0, err
	}
	if len(first) == 0 || len(second) == 0 {
		return s, 0, eris.Wrap(ErrInvalidException, "both sides need at least one team")
	}

	ix := models.IndexTeams(s.Teams)
	for _, id := range append(append([]string{}, first...), second...) {
		if _, ok := ix[id]; !ok {
			return s, 0, eris.Wrapf(ErrTeamNotFound, "team %q", id)
		}
	}

	next := s.Clone()
	existing := next.Rules.ExceptionSet()
	added := 0
	for _, a := range first {
		for _, b := range second {
			e := models.Exception{TeamAID: ix.BaseID(a), TeamBID: ix.BaseID(b)}
			if e.TeamAID == e.TeamBID {
				continue
			}
			if _, dup := existing[e.Key()]; dup {
				continue
			}
			existing[e.Key()] = struct{}{}
			next.Rules.Exceptions = append(next.Rules.Exceptions, e)
			added++
		}
	}
	return next, added, nil
}

func (s State) RemoveException(index int) (State, error) {
	if err := s.guardEditable(); err != nil {
		return s, err
	}
	if index < 0 || index >= len(s.Rules.Exceptions) {
		return s, eris.Wrapf(ErrExceptionNotFound, "index %d", index)
	}

	next := s.Clone()
	next.Rules.Exceptions = append(next.Rules.Exceptions[:index], next.Rules.Exceptions[index+1:]...)
	return next, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
