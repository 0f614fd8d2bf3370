package tournament

import (
	"strings"

	"github.com/rotisserie/eris"

	"gallera-api/packages/core/models"
)

// TeamForm is the operator input for creating or editing a team.
type TeamForm struct {
	Name       string
	Owner      string
	City       string
	FrontCount int
}

func (f TeamForm) normalized() (TeamForm, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Owner = strings.TrimSpace(f.Owner)
	f.City = strings.TrimSpace(f.City)
	if f.Name == "" || f.Owner == "" {
		return f, eris.Wrap(ErrInvalidTeam, "name and owner are required")
	}
	if f.FrontCount < 1 {
		return f, eris.Wrap(ErrInvalidTeam, "a team needs at least one front")
	}
	return f, nil
}

// Team looks a team up by id.
func (s State) Team(id string) (models.Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return models.Team{}, false
}

// AddTeam creates a base team and FrontCount-1 extra fronts.
func (s State) AddTeam(form TeamForm, newID func() string) (State, models.Team, error) {
	if err := s.guardEditable(); err != nil {
		return s, models.Team{}, err
	}
	form, err := form.normalized()
	if err != nil {
		return s, models.Team{}, err
	}

	next := s.Clone()
	base := models.NewBaseTeam(newID(), form.Name, form.Owner, form.City)
	next.Teams = append(next.Teams, base)
	for n := 2; n <= form.FrontCount; n++ {
		next.Teams = append(next.Teams, models.NewFront(newID(), base, n))
	}
	return next, base, nil
}

// PreviewTeamUpdate counts the fronts and roosters an edit to frontCount would delete.
func (s State) PreviewTeamUpdate(teamID string, frontCount int) (Impact, error) {
	fronts, err := s.frontsOf(teamID)
	if err != nil {
		return Impact{}, err
	}
	if frontCount < 1 {
		return Impact{}, eris.Wrap(ErrInvalidTeam, "a team needs at least one front")
	}

	var impact Impact
	for _, f := range surplusFronts(fronts, frontCount) {
		impact.Fronts++
		impact.Roosters += s.countRoosters(f.ID)
	}
	return impact, nil
}

// surplusFronts returns the fronts past position frontCount. fronts must be
// ordered by front number, as frontsOf returns them.
func surplusFronts(fronts []models.Team, frontCount int) []models.Team {
	if frontCount >= len(fronts) {
		return nil
	}
	return fronts[frontCount:]
}

// UpdateTeam renames every front of the team and adjusts the number of fronts.
// Fronts are counted by position: those past FrontCount are deleted together
// with their roosters on every day, and the rest are renumbered from 1.
func (s State) UpdateTeam(teamID string, form TeamForm, newID func() string) (State, models.Team, error) {
	if err := s.guardEditable(); err != nil {
		return s, models.Team{}, err
	}
	form, err := form.normalized()
	if err != nil {
		return s, models.Team{}, err
	}
	fronts, err := s.frontsOf(teamID)
	if err != nil {
		return s, models.Team{}, err
	}

	next := s.Clone()
	removed := map[string]struct{}{}
	for _, f := range surplusFronts(fronts, form.FrontCount) {
		removed[f.ID] = struct{}{}
	}
	numbers := make(map[string]int, len(fronts))
	for i, f := range fronts[:min(len(fronts), form.FrontCount)] {
		numbers[f.ID] = i + 1
	}

	baseID := fronts[0].BaseID()
	teams := make([]models.Team, 0, len(next.Teams))
	var base models.Team
	for _, t := range next.Teams {
		if _, gone := removed[t.ID]; gone {
			continue
		}
		if t.BaseID() == baseID {
			t.Name = form.Name
			t.Owner = form.Owner
			t.City = form.City
			t.FrontNumber = numbers[t.ID]
		}
		if t.ID == baseID {
			base = t
		}
		teams = append(teams, t)
	}
	for n := len(fronts) + 1; n <= form.FrontCount; n++ {
		teams = append(teams, models.NewFront(newID(), base, n))
	}
	next.Teams = teams
	next.removeRoosters(removed)

	return next, base, nil
}

// PreviewTeamDeletion counts what deleting teamID would remove.
func (s State) PreviewTeamDeletion(teamID string) (Impact, error) {
	t, ok := s.Team(teamID)
	if !ok {
		return Impact{}, eris.Wrapf(ErrTeamNotFound, "team %q", teamID)
	}
	if !t.IsFront() && s.hasFronts(t.ID) {
		return Impact{}, eris.Wrapf(ErrBaseTeamHasFronts, "team %q", teamID)
	}
	return Impact{Teams: 1, Roosters: s.countRoosters(teamID)}, nil
}

// DeleteTeam removes a front or a base team without fronts, with its roosters
// on every day. Exceptions naming a deleted base team are dropped.
func (s State) DeleteTeam(teamID string) (State, error) {
	if err := s.guardEditable(); err != nil {
		return s, err
	}
	t, ok := s.Team(teamID)
	if !ok {
		return s, eris.Wrapf(ErrTeamNotFound, "team %q", teamID)
	}
	if !t.IsFront() && s.hasFronts(t.ID) {
		return s, eris.Wrapf(ErrBaseTeamHasFronts, "team %q", teamID)
	}

	next := s.Clone()
	teams := make([]models.Team, 0, len(next.Teams))
	for _, other := range next.Teams {
		if other.ID != teamID {
			teams = append(teams, other)
		}
	}
	next.Teams = teams
	next.removeRoosters(map[string]struct{}{teamID: {}})

	if !t.IsFront() {
		kept := make([]models.Exception, 0, len(next.Rules.Exceptions))
		for _, e := range next.Rules.Exceptions {
			if e.TeamAID != teamID && e.TeamBID != teamID {
				kept = append(kept, e)
			}
		}
		next.Rules.Exceptions = kept
	}
	return next, nil
}

func (s State) frontsOf(teamID string) ([]models.Team, error) {
	t, ok := s.Team(teamID)
	if !ok {
		return nil, eris.Wrapf(ErrTeamNotFound, "team %q", teamID)
	}
	fronts := models.Fronts(s.Teams, t.BaseID())
	if len(fronts) == 0 || fronts[0].IsFront() {
		return nil, eris.Wrapf(ErrTeamNotFound, "base of team %q", teamID)
	}
	return fronts, nil
}

func (s State) hasFronts(baseID string) bool {
	for _, t := range s.Teams {
		if t.IsFront() && t.BaseTeamID == baseID {
			return true
		}
	}
	return false
}

func (s State) countRoosters(teamID string) int {
	n := 0
	for _, d := range s.Days {
		for _, r := range d.Roosters {
			if r.TeamID == teamID {
				n++
			}
		}
	}
	return n
}

// removeRoosters drops the roosters of the given teams from every day. It
// mutates s, so it must only be called on a clone.
func (s *State) removeRoosters(teamIDs map[string]struct{}) {
	if len(teamIDs) == 0 {
		return
	}
	for day, d := range s.Days {
		kept := make([]models.Rooster, 0, len(d.Roosters))
		for _, r := range d.Roosters {
			if _, gone := teamIDs[r.TeamID]; !gone {
				kept = append(kept, r)
			}
		}
		d.Roosters = kept
		s.setDay(day, d)
	}
}
