// Package tournament holds the tournament session aggregate and its transitions.
//
// Every transition is a method with a value receiver that returns a new State.
// The receiver is never modified, so a rejected transition leaves the previous
// state intact and callers can swap states atomically.
package tournament

import (
	"time"

	"gallera-api/packages/core/models"
)

type Phase string

const (
	PhaseSetup             Phase = "setup"
	PhaseMatchmaking       Phase = "matchmaking"
	PhaseLiveFight         Phase = "live_fight"
	PhaseResults           Phase = "results"
	PhaseTournamentResults Phase = "tournament_results"
)

// Day is everything recorded for one tournament day.
type Day struct {
	Roosters    []models.Rooster          `json:"roosters"`
	Fights      []models.Fight            `json:"fights"`
	Matchmaking *models.MatchmakingResult `json:"matchmaking,omitempty"`
}

func (d Day) clone() Day {
	return Day{
		Roosters:    append([]models.Rooster{}, d.Roosters...),
		Fights:      append([]models.Fight{}, d.Fights...),
		Matchmaking: d.Matchmaking.Clone(),
	}
}

// Started reports whether the day's card was copied into live fights.
func (d Day) Started() bool {
	return len(d.Fights) > 0
}

// DayBook maps a day number to its records.
type DayBook map[int]Day

// Get returns the records of day, or empty records for a day not seen yet.
func (b DayBook) Get(day int) Day {
	d, ok := b[day]
	if !ok {
		return Day{Roosters: []models.Rooster{}, Fights: []models.Fight{}}
	}
	return d
}

// Ensure initialises empty slots for day when absent.
func (b DayBook) Ensure(day int) {
	if _, ok := b[day]; !ok {
		b[day] = b.Get(day)
	}
}

func (b DayBook) clone() DayBook {
	out := make(DayBook, len(b))
	for day, d := range b {
		out[day] = d.clone()
	}
	return out
}

// State is the tournament session.
type State struct {
	Phase        Phase                `json:"phase"`
	Teams        []models.Team        `json:"teams"`
	Rules        models.Rules         `json:"rules"`
	Days         DayBook              `json:"days"`
	DailyResults []models.DailyResult `json:"daily_results"`
	CurrentDay   int                  `json:"current_day"`
	ViewingDay   int                  `json:"viewing_day"`
	Finished     bool                 `json:"finished"`
}

func NewState(rules models.Rules) State {
	s := State{
		Phase:        PhaseSetup,
		Teams:        []models.Team{},
		Rules:        rules,
		Days:         DayBook{},
		DailyResults: []models.DailyResult{},
		CurrentDay:   1,
		ViewingDay:   1,
	}
	s.Days.Ensure(1)
	return s
}

// NewDefaultState starts a session with the default rules dated now.
func NewDefaultState(now time.Time) State {
	return NewState(models.DefaultRules(now))
}

// Clone returns a deep copy that shares no slices or maps with s.
func (s State) Clone() State {
	out := s
	out.Teams = append([]models.Team{}, s.Teams...)
	out.Rules.Exceptions = append([]models.Exception{}, s.Rules.Exceptions...)
	out.Days = s.Days.clone()
	out.DailyResults = make([]models.DailyResult, len(s.DailyResults))
	for i, r := range s.DailyResults {
		out.DailyResults[i] = models.DailyResult{Day: r.Day, Fights: append([]models.Fight{}, r.Fights...)}
	}
	return out
}

// ReadOnly reports whether the operator is looking at a past day.
func (s State) ReadOnly() bool {
	return s.ViewingDay < s.CurrentDay
}

// Today returns the records of the day being fought.
func (s State) Today() Day {
	return s.Days.Get(s.CurrentDay)
}

// DailyResult returns the recorded result of day, if any.
func (s State) DailyResult(day int) (models.DailyResult, bool) {
	for _, r := range s.DailyResults {
		if r.Day == day {
			return r, true
		}
	}
	return models.DailyResult{}, false
}

// DayFinished reports whether day has a recorded result.
func (s State) DayFinished(day int) bool {
	_, ok := s.DailyResult(day)
	return ok
}

// InProgress reports whether the current day has live fights still to resolve.
func (s State) InProgress() bool {
	if s.Finished {
		return false
	}
	for _, f := range s.Today().Fights {
		if !f.Finished() {
			return true
		}
	}
	return false
}

// guardEditable rejects setup mutations while a past day is being viewed.
func (s State) guardEditable() error {
	if s.ReadOnly() {
		return ErrDayReadOnly
	}
	return nil
}

// recordDailyResult stores result, replacing an earlier one for the same day
// and keeping the list ordered by day.
func (s *State) recordDailyResult(result models.DailyResult) {
	out := make([]models.DailyResult, 0, len(s.DailyResults)+1)
	inserted := false
	for _, r := range s.DailyResults {
		if r.Day == result.Day {
			continue
		}
		if !inserted && r.Day > result.Day {
			out = append(out, result)
			inserted = true
		}
		out = append(out, r)
	}
	if !inserted {
		out = append(out, result)
	}
	s.DailyResults = out
}

func (s *State) setDay(day int, d Day) {
	s.Days[day] = d
}

// Impact counts what a destructive operation would remove.
type Impact struct {
	Teams        int `json:"teams"`
	Fronts       int `json:"fronts"`
	Roosters     int `json:"roosters"`
	Fights       int `json:"fights"`
	DailyResults int `json:"daily_results"`
}

// Normalized fills in zero values left by decoding a stored session.
func (s State) Normalized() State {
	if s.Days == nil {
		s.Days = DayBook{}
	}
	if s.Teams == nil {
		s.Teams = []models.Team{}
	}
	if s.DailyResults == nil {
		s.DailyResults = []models.DailyResult{}
	}
	if s.Rules.Exceptions == nil {
		s.Rules.Exceptions = []models.Exception{}
	}
	if s.CurrentDay < 1 {
		s.CurrentDay = 1
	}
	if s.ViewingDay < 1 || s.ViewingDay > s.CurrentDay {
		s.ViewingDay = s.CurrentDay
	}
	if s.Phase == "" {
		s.Phase = PhaseSetup
	}
	s.Days.Ensure(s.CurrentDay)
	return s
}
