package services

import (
	"context"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/tournament"
)

type RulesService struct {
	session *Session
}

func NewRulesService(session *Session) *RulesService {
	return &RulesService{session: session}
}

func (s *RulesService) GetRules() models.Rules {
	return s.session.State().Rules
}

func (s *RulesService) UpdateRules(ctx context.Context, req models.UpdateRulesRequest) (models.Rules, error) {
	patch := tournament.RulesPatch{
		Name:               req.Name,
		Date:               req.Date,
		Manager:            req.Manager,
		WeightTolerance:    req.WeightTolerance,
		AgeToleranceMonths: req.AgeToleranceMonths,
		MinWeight:          req.MinWeight,
		MaxWeight:          req.MaxWeight,
		RoostersPerFront:   req.RoostersPerFront,
		PointsForWin:       req.PointsForWin,
		PointsForDraw:      req.PointsForDraw,
		TournamentDays:     req.TournamentDays,
	}

	st, err := s.session.apply(ctx, "update rules", func(st tournament.State) (tournament.State, error) {
		return st.UpdateRules(patch)
	})
	if err != nil {
		return models.Rules{}, err
	}
	return st.Rules, nil
}

func (s *RulesService) AddExceptions(ctx context.Context, req models.AddExceptionsRequest) (models.AddExceptionsResponse, error) {
	var added int
	st, err := s.session.apply(ctx, "add exceptions", func(st tournament.State) (tournament.State, error) {
		next, n, err := st.AddExceptions(req.FirstTeamIDs, req.SecondTeamIDs)
		added = n
		return next, err
	})
	if err != nil {
		return models.AddExceptionsResponse{}, err
	}
	return models.AddExceptionsResponse{Added: added, Exceptions: st.Rules.Exceptions}, nil
}

func (s *RulesService) RemoveException(ctx context.Context, index int) error {
	_, err := s.session.apply(ctx, "remove exception", func(st tournament.State) (tournament.State, error) {
		return st.RemoveException(index)
	})
	return err
}
