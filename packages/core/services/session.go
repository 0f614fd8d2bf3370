package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"gallera-api/packages/core/tournament"
)

// SessionStore persists the whole tournament session.
type SessionStore interface {
	Load(ctx context.Context) (tournament.State, bool, error)
	Save(ctx context.Context, state tournament.State) error
	Clear(ctx context.Context) error
}

// Session owns the live tournament state. Every change is computed on a copy,
// written to the store and only then made visible.
type Session struct {
	mu     sync.Mutex
	state  tournament.State
	store  SessionStore
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewSession restores the last saved session, or starts a new one.
func NewSession(ctx context.Context, store SessionStore, logger zerolog.Logger) (*Session, error) {
	s := &Session{
		store:  store,
		logger: logger.With().Str("component", "session").Logger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}

	state, ok, err := store.Load(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "failed to restore tournament session")
	}
	if !ok {
		state = tournament.NewDefaultState(s.now())
		if err := store.Save(ctx, state); err != nil {
			return nil, eris.Wrap(err, "failed to initialise tournament session")
		}
		s.logger.Info().Msg("Started new tournament session")
	} else {
		s.logger.Info().
			Int("current_day", state.CurrentDay).
			Str("phase", string(state.Phase)).
			Msg("Restored tournament session")
	}
	s.state = state
	return s, nil
}

// State returns a copy of the current session.
func (s *Session) State() tournament.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// apply runs a transition and persists its result. On any error the current
// state is kept.
func (s *Session) apply(ctx context.Context, op string, fn func(tournament.State) (tournament.State, error)) (tournament.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state)
	if err != nil {
		s.logger.Debug().Err(err).Str("op", op).Msg("Rejected session change")
		return tournament.State{}, err
	}

	if err := s.store.Save(ctx, next); err != nil {
		s.logger.Error().Err(err).Str("op", op).Msg("Failed to persist session")
		return tournament.State{}, eris.Wrapf(err, "failed to persist %s", op)
	}

	s.state = next
	s.logger.Info().
		Str("op", op).
		Int("current_day", next.CurrentDay).
		Int("viewing_day", next.ViewingDay).
		Str("phase", string(next.Phase)).
		Msg("Session updated")
	return next.Clone(), nil
}

// SessionSummary is what the operator needs to know to pick the right screen.
type SessionSummary struct {
	Name         string           `json:"name"`
	Phase        tournament.Phase `json:"phase"`
	CurrentDay   int              `json:"current_day"`
	ViewingDay   int              `json:"viewing_day"`
	Days         int              `json:"days"`
	ReadOnly     bool             `json:"read_only"`
	InProgress   bool             `json:"in_progress"`
	Finished     bool             `json:"finished"`
	Teams        int              `json:"teams"`
	Roosters     int              `json:"roosters"`
	FinishedDays []int            `json:"finished_days"`
}

func summarize(st tournament.State) SessionSummary {
	finished := make([]int, 0, len(st.DailyResults))
	for _, r := range st.DailyResults {
		finished = append(finished, r.Day)
	}
	return SessionSummary{
		Name:         st.Rules.Name,
		Phase:        st.Phase,
		CurrentDay:   st.CurrentDay,
		ViewingDay:   st.ViewingDay,
		Days:         st.Rules.TournamentDays,
		ReadOnly:     st.ReadOnly(),
		InProgress:   st.InProgress(),
		Finished:     st.Finished,
		Teams:        len(st.Teams),
		Roosters:     len(st.Today().Roosters),
		FinishedDays: finished,
	}
}
