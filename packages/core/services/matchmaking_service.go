package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/tournament"
)

var ErrMatchmakingInProgress = eris.New("matchmaking already running")

type MatchmakingService struct {
	session *Session
	delay   time.Duration
	running atomic.Bool
	logger  zerolog.Logger
}

func NewMatchmakingService(session *Session, delay time.Duration, logger zerolog.Logger) *MatchmakingService {
	return &MatchmakingService{
		session: session,
		delay:   delay,
		logger:  logger.With().Str("component", "matchmaking").Logger(),
	}
}

// RunMatchmaking pairs the current day's roster after the configured delay.
// Only one run may be outstanding; once started it completes even if ctx is
// cancelled.
func (s *MatchmakingService) RunMatchmaking(ctx context.Context) (*models.MatchmakingResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrMatchmakingInProgress
	}
	defer s.running.Store(false)

	ctx = context.WithoutCancel(ctx)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	st, err := s.session.apply(ctx, "run matchmaking", tournament.State.RunMatchmaking)
	if err != nil {
		return nil, err
	}

	result := st.Today().Matchmaking
	s.logger.Info().
		Int("day", st.CurrentDay).
		Int("eligible", result.Stats.EligibleCount).
		Int("fights", result.Stats.FightCount).
		Int("unpaired", result.Stats.UnpairedCount).
		Msg("Matchmaking completed")
	return result, nil
}

// GetResult returns the matchmaking result stored for day.
func (s *MatchmakingService) GetResult(day int) (*models.MatchmakingResult, error) {
	st := s.session.State()
	if day < 1 || day > st.CurrentDay {
		return nil, eris.Wrapf(tournament.ErrInvalidDay, "day %d", day)
	}
	result := st.Days.Get(day).Matchmaking
	if result == nil {
		return nil, eris.Wrapf(tournament.ErrNoMatchmakingResult, "day %d", day)
	}
	return result, nil
}

func (s *MatchmakingService) AddManualFight(ctx context.Context, req models.ManualFightRequest) (models.Fight, error) {
	var fight models.Fight
	_, err := s.session.apply(ctx, "add manual fight", func(st tournament.State) (tournament.State, error) {
		next, f, err := st.AddManualFight(req.RoosterAID, req.RoosterBID)
		fight = f
		return next, err
	})
	return fight, err
}

// StartFights puts the day's card live.
func (s *MatchmakingService) StartFights(ctx context.Context) (models.LiveFightsResponse, error) {
	st, err := s.session.apply(ctx, "start fights", tournament.State.StartFights)
	if err != nil {
		return models.LiveFightsResponse{}, err
	}
	return liveFights(st), nil
}
