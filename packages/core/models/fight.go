package models

import "fmt"

type Winner string

const (
	WinnerNone Winner = ""
	WinnerA    Winner = "A"
	WinnerB    Winner = "B"
	WinnerDraw Winner = "DRAW"
)

func (w Winner) Valid() bool {
	return w == WinnerA || w == WinnerB || w == WinnerDraw
}

// DrawDurationSeconds is recorded for every draw; draws go the full distance.
const DrawDurationSeconds = 8 * 60

// Fight is a pelea on a day's card. Roosters are copied in so finished fights
// stay readable after roster edits.
type Fight struct {
	ID              string  `json:"id"`
	Number          int     `json:"number"`
	RoosterA        Rooster `json:"rooster_a"`
	RoosterB        Rooster `json:"rooster_b"`
	Winner          Winner  `json:"winner"`
	DurationSeconds int     `json:"duration_seconds"`
	Manual          bool    `json:"manual,omitempty"`
}

func NewFight(number int, a, b Rooster) Fight {
	return Fight{
		ID:       fmt.Sprintf("fight-%s-%s", a.ID, b.ID),
		Number:   number,
		RoosterA: a,
		RoosterB: b,
	}
}

func NewManualFight(number int, a, b Rooster) Fight {
	f := NewFight(number, a, b)
	f.ID = fmt.Sprintf("fight-manual-%s-%s", a.ID, b.ID)
	f.Manual = true
	return f
}

func (f Fight) Finished() bool {
	return f.Winner != WinnerNone
}

// WinnerAndLoser returns the winning and losing roosters of a decided, non-draw fight.
func (f Fight) WinnerAndLoser() (winner, loser Rooster, ok bool) {
	switch f.Winner {
	case WinnerA:
		return f.RoosterA, f.RoosterB, true
	case WinnerB:
		return f.RoosterB, f.RoosterA, true
	}
	return Rooster{}, Rooster{}, false
}

// MatchmakingStats summarises a day's matchmaking result.
type MatchmakingStats struct {
	EligibleCount    int `json:"eligible_count"`
	FightCount       int `json:"fight_count"`
	ManualFightCount int `json:"manual_fight_count"`
	UnpairedCount    int `json:"unpaired_count"`
}

// MatchmakingResult is the card proposed for a day, before fights start.
type MatchmakingResult struct {
	MainFights []Fight          `json:"main_fights"`
	Unpaired   []Rooster        `json:"unpaired"`
	Stats      MatchmakingStats `json:"stats"`
}

func NewMatchmakingResult(fights []Fight, unpaired []Rooster, eligible int) *MatchmakingResult {
	r := &MatchmakingResult{
		MainFights: fights,
		Unpaired:   unpaired,
	}
	r.Stats.EligibleCount = eligible
	r.Refresh()
	return r
}

// Refresh recomputes the counts after the card changed.
func (r *MatchmakingResult) Refresh() {
	r.Stats.FightCount = len(r.MainFights)
	r.Stats.UnpairedCount = len(r.Unpaired)
	r.Stats.ManualFightCount = 0
	for _, f := range r.MainFights {
		if f.Manual {
			r.Stats.ManualFightCount++
		}
	}
}

func (r *MatchmakingResult) Clone() *MatchmakingResult {
	if r == nil {
		return nil
	}
	out := *r
	out.MainFights = append([]Fight(nil), r.MainFights...)
	out.Unpaired = append([]Rooster(nil), r.Unpaired...)
	return &out
}

// DailyResult holds the decided fights of a finished day.
type DailyResult struct {
	Day    int     `json:"day"`
	Fights []Fight `json:"fights"`
}

// DTOs

type ManualFightRequest struct {
	RoosterAID string `json:"rooster_a_id" binding:"required"`
	RoosterBID string `json:"rooster_b_id" binding:"required"`
}

// FinishFightRequest carries either DurationSeconds or a clock reading.
type FinishFightRequest struct {
	Winner          Winner `json:"winner" binding:"required,oneof=A B DRAW"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	Minutes         int    `json:"minutes,omitempty"`
	Seconds         int    `json:"seconds,omitempty"`
}

type LiveFightsResponse struct {
	Day     int     `json:"day"`
	Current *Fight  `json:"current"`
	Pending []Fight `json:"pending"`
	Total   int     `json:"total"`
}
