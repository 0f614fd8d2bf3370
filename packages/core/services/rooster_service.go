package services

import (
	"context"

	"github.com/rotisserie/eris"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/tournament"
)

type RoosterService struct {
	session *Session
}

func NewRoosterService(session *Session) *RoosterService {
	return &RoosterService{session: session}
}

func roosterForm(req models.SaveRoosterRequest) tournament.RoosterForm {
	return tournament.RoosterForm{
		RingID:         req.RingID,
		MarkingID:      req.MarkingID,
		BreederPlateID: req.BreederPlateID,
		Color:          req.Color,
		TeamID:         req.TeamID,
		Weight:         req.Weight,
		AgeMonths:      req.AgeMonths,
		Mark:           req.Mark,
		Phenotype:      req.Phenotype,
	}
}

// GetRoosters returns the roster of day. Days never seen return an empty roster.
func (s *RoosterService) GetRoosters(day int) ([]models.Rooster, error) {
	st := s.session.State()
	if day < 1 || day > st.Rules.TournamentDays {
		return nil, eris.Wrapf(tournament.ErrInvalidDay, "day %d", day)
	}
	return st.Roosters(day), nil
}

func (s *RoosterService) CreateRooster(ctx context.Context, req models.SaveRoosterRequest) (models.Rooster, error) {
	var rooster models.Rooster
	_, err := s.session.apply(ctx, "create rooster", func(st tournament.State) (tournament.State, error) {
		next, r, err := st.AddRooster(roosterForm(req), s.session.newID)
		rooster = r
		return next, err
	})
	return rooster, err
}

func (s *RoosterService) UpdateRooster(ctx context.Context, id string, req models.SaveRoosterRequest) (models.Rooster, error) {
	var rooster models.Rooster
	_, err := s.session.apply(ctx, "update rooster", func(st tournament.State) (tournament.State, error) {
		next, r, err := st.UpdateRooster(id, roosterForm(req))
		rooster = r
		return next, err
	})
	return rooster, err
}

func (s *RoosterService) DeleteRooster(ctx context.Context, id string) error {
	_, err := s.session.apply(ctx, "delete rooster", func(st tournament.State) (tournament.State, error) {
		return st.DeleteRooster(id)
	})
	return err
}
