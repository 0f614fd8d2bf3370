package tournament

import (
	"strings"

	"github.com/rotisserie/eris"

	"gallera-api/packages/core/models"
)

// RoosterForm is the operator input for a rooster of the current day.
type RoosterForm struct {
	RingID         string
	MarkingID      string
	BreederPlateID string
	Color          string
	TeamID         string
	Weight         int
	AgeMonths      int
	Mark           int
	Phenotype      models.Phenotype
}

// Roosters returns the roster registered for day.
func (s State) Roosters(day int) []models.Rooster {
	return s.Days.Get(day).Roosters
}

// AddRooster registers a rooster on the current day.
func (s State) AddRooster(form RoosterForm, newID func() string) (State, models.Rooster, error) {
	if err := s.guardEditable(); err != nil {
		return s, models.Rooster{}, err
	}
	if err := s.validateRooster(form, "", true); err != nil {
		return s, models.Rooster{}, err
	}

	r := form.rooster(newID())
	next := s.Clone()
	day := next.Days.Get(next.CurrentDay)
	day.Roosters = append(day.Roosters, r)
	next.setDay(next.CurrentDay, day)
	return next, r, nil
}

// UpdateRooster replaces a rooster of the current day. The roster cap is not
// checked again on edit.
func (s State) UpdateRooster(id string, form RoosterForm) (State, models.Rooster, error) {
	if err := s.guardEditable(); err != nil {
		return s, models.Rooster{}, err
	}
	idx := s.roosterIndex(id)
	if idx < 0 {
		return s, models.Rooster{}, eris.Wrapf(ErrRoosterNotFound, "rooster %q", id)
	}
	if err := s.validateRooster(form, id, false); err != nil {
		return s, models.Rooster{}, err
	}

	r := form.rooster(id)
	next := s.Clone()
	day := next.Days.Get(next.CurrentDay)
	day.Roosters[idx] = r
	next.setDay(next.CurrentDay, day)
	return next, r, nil
}

// DeleteRooster removes a rooster from the current day.
func (s State) DeleteRooster(id string) (State, error) {
	if err := s.guardEditable(); err != nil {
		return s, err
	}
	idx := s.roosterIndex(id)
	if idx < 0 {
		return s, eris.Wrapf(ErrRoosterNotFound, "rooster %q", id)
	}

	next := s.Clone()
	day := next.Days.Get(next.CurrentDay)
	day.Roosters = append(day.Roosters[:idx], day.Roosters[idx+1:]...)
	next.setDay(next.CurrentDay, day)
	return next, nil
}

func (s State) roosterIndex(id string) int {
	for i, r := range s.Today().Roosters {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s State) validateRooster(form RoosterForm, selfID string, isNew bool) error {
	ringID := strings.TrimSpace(form.RingID)
	if ringID == "" || strings.TrimSpace(form.Color) == "" {
		return eris.Wrap(ErrMissingClassification, "ring id and color are required")
	}
	if _, ok := s.Team(form.TeamID); !ok {
		return eris.Wrapf(ErrTeamNotFound, "team %q", form.TeamID)
	}

	roster := s.Today().Roosters
	for _, r := range roster {
		if r.ID != selfID && strings.EqualFold(strings.TrimSpace(r.RingID), ringID) {
			return eris.Wrapf(ErrDuplicateRingID, "ring id %q", ringID)
		}
	}

	if isNew && s.Rules.RoostersPerFront > 0 {
		count := 0
		for _, r := range roster {
			if r.TeamID == form.TeamID {
				count++
			}
		}
		if count >= s.Rules.RoostersPerFront {
			return eris.Wrapf(ErrRosterCapReached, "limit is %d", s.Rules.RoostersPerFront)
		}
	}

	if form.Mark == 0 || form.AgeMonths <= 0 {
		return eris.Wrap(ErrMissingClassification, "mark and age are required")
	}
	if !form.Phenotype.Valid() {
		return eris.Wrapf(ErrMissingClassification, "unknown phenotype %q", form.Phenotype)
	}
	if !s.Rules.InWeightBand(form.Weight) {
		return eris.Wrapf(ErrWeightOutOfRange, "weight %d not in [%d, %d]", form.Weight, s.Rules.MinWeight, s.Rules.MaxWeight)
	}
	return nil
}

func (f RoosterForm) rooster(id string) models.Rooster {
	plate := strings.TrimSpace(f.BreederPlateID)
	if plate == "" {
		plate = models.DefaultBreederPlateID
	}
	return models.Rooster{
		ID:             id,
		RingID:         strings.TrimSpace(f.RingID),
		MarkingID:      strings.TrimSpace(f.MarkingID),
		BreederPlateID: plate,
		Color:          strings.TrimSpace(f.Color),
		TeamID:         f.TeamID,
		Weight:         f.Weight,
		AgeMonths:      f.AgeMonths,
		Mark:           f.Mark,
		Phenotype:      f.Phenotype,
		AgeCategory:    models.AgeCategoryFor(f.AgeMonths),
	}
}
