package services

import (
	"context"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/tournament"
	"gallera-api/packages/core/utils"
)

type FightService struct {
	session *Session
}

func NewFightService(session *Session) *FightService {
	return &FightService{session: session}
}

func liveFights(st tournament.State) models.LiveFightsResponse {
	pending, total := st.PendingFights()
	resp := models.LiveFightsResponse{
		Day:     st.CurrentDay,
		Pending: pending,
		Total:   total,
	}
	if current, ok := st.CurrentFight(); ok {
		resp.Current = &current
	}
	return resp
}

func (s *FightService) GetLiveFights() models.LiveFightsResponse {
	return liveFights(s.session.State())
}

// FinishFight records a fight outcome. The duration comes from DurationSeconds
// or, when that is zero, from the Minutes/Seconds clock reading.
func (s *FightService) FinishFight(ctx context.Context, id string, req models.FinishFightRequest) (SessionSummary, error) {
	seconds := req.DurationSeconds
	if seconds == 0 {
		seconds = utils.ClockSeconds(req.Minutes, req.Seconds)
	}

	st, err := s.session.apply(ctx, "finish fight", func(st tournament.State) (tournament.State, error) {
		return st.FinishFight(id, req.Winner, seconds)
	})
	if err != nil {
		return SessionSummary{}, err
	}
	return summarize(st), nil
}

// FinishTournament ends the tournament before the last configured day.
func (s *FightService) FinishTournament(ctx context.Context) (SessionSummary, error) {
	st, err := s.session.apply(ctx, "finish tournament", tournament.State.FinishTournament)
	if err != nil {
		return SessionSummary{}, err
	}
	return summarize(st), nil
}
