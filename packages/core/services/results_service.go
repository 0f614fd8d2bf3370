package services

import (
	"github.com/rotisserie/eris"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/standings"
	"gallera-api/packages/core/tournament"
)

type ResultsService struct {
	session *Session
}

func NewResultsService(session *Session) *ResultsService {
	return &ResultsService{session: session}
}

func (s *ResultsService) GetDailyResults() []models.DailyResult {
	return s.session.State().DailyResults
}

// GetDayResults returns the standings of one recorded day, by front.
func (s *ResultsService) GetDayResults(day int) (models.DayResultsResponse, error) {
	st := s.session.State()
	result, ok := st.DailyResult(day)
	if !ok {
		return models.DayResultsResponse{}, eris.Wrapf(tournament.ErrInvalidDay, "no results for day %d", day)
	}

	return models.DayResultsResponse{
		Day:       day,
		Fights:    result.Fights,
		Standings: standings.ByFront(result.Fights, st.Teams, st.Rules),
		Fastest:   standings.FastestWins([]models.DailyResult{result}, standings.DailyFastestLimit),
	}, nil
}

// GetTournamentResults returns the standings across every recorded day, by base team.
func (s *ResultsService) GetTournamentResults() models.TournamentResultsResponse {
	st := s.session.State()

	resp := models.TournamentResultsResponse{
		Name:      st.Rules.Name,
		Days:      len(st.DailyResults),
		Standings: standings.ByBaseTeam(st.DailyResults, st.Teams, st.Rules),
	}
	if fastest := standings.FastestWins(st.DailyResults, standings.TournamentFastestLimit); len(fastest) > 0 {
		resp.Fastest = &fastest[0]
	}
	return resp
}
