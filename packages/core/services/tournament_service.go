package services

import (
	"context"
	"math/rand"

	"gallera-api/fixtures"
	"gallera-api/packages/core/tournament"
)

type TournamentService struct {
	session *Session
}

func NewTournamentService(session *Session) *TournamentService {
	return &TournamentService{session: session}
}

func (s *TournamentService) GetSummary() SessionSummary {
	return summarize(s.session.State())
}

func (s *TournamentService) navigate(ctx context.Context, op string, fn func(tournament.State) (tournament.State, error)) (SessionSummary, error) {
	st, err := s.session.apply(ctx, op, fn)
	if err != nil {
		return SessionSummary{}, err
	}
	return summarize(st), nil
}

func (s *TournamentService) SelectDay(ctx context.Context, day int) (SessionSummary, error) {
	return s.navigate(ctx, "select day", func(st tournament.State) (tournament.State, error) {
		return st.SelectDay(day)
	})
}

func (s *TournamentService) ResumeLive(ctx context.Context) (SessionSummary, error) {
	return s.navigate(ctx, "resume live", tournament.State.ResumeLive)
}

func (s *TournamentService) ShowMatchmaking(ctx context.Context) (SessionSummary, error) {
	return s.navigate(ctx, "show matchmaking", tournament.State.ShowMatchmaking)
}

func (s *TournamentService) BackToSetup(ctx context.Context) (SessionSummary, error) {
	return s.navigate(ctx, "back to setup", tournament.State.BackToSetup)
}

func (s *TournamentService) ShowTournamentResults(ctx context.Context) (SessionSummary, error) {
	return s.navigate(ctx, "show tournament results", tournament.State.ShowTournamentResults)
}

func (s *TournamentService) PreviewNewTournament() tournament.Impact {
	return s.session.State().PreviewNewTournament()
}

// NewTournament clears fights and results and goes back to day 1, keeping
// teams and rosters.
func (s *TournamentService) NewTournament(ctx context.Context) (SessionSummary, error) {
	return s.navigate(ctx, "new tournament", func(st tournament.State) (tournament.State, error) {
		return st.NewTournament(s.session.now()), nil
	})
}

func (s *TournamentService) PreviewReset() tournament.Impact {
	return s.session.State().PreviewReset()
}

// Reset discards the whole session.
func (s *TournamentService) Reset(ctx context.Context) (SessionSummary, error) {
	return s.navigate(ctx, "reset", func(tournament.State) (tournament.State, error) {
		return tournament.Reset(s.session.now()), nil
	})
}

// LoadDemoData replaces teams and the current day's roster with demo data.
func (s *TournamentService) LoadDemoData(ctx context.Context, seed int64) (SessionSummary, error) {
	teams := fixtures.DemoTeams()
	roosters := fixtures.DemoRoosters(teams, rand.New(rand.NewSource(seed))) // #nosec G404

	return s.navigate(ctx, "load demo data", func(st tournament.State) (tournament.State, error) {
		return st.LoadDemo(teams, roosters)
	})
}
