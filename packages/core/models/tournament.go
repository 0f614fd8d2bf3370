package models

import (
	"time"

	"gallera-api/packages/core/utils"
)

const DefaultTournamentName = "Torneo de Exhibición"

var (
	// MinTournamentWeight and MaxTournamentWeight bound any configurable weight band.
	MinTournamentWeight = utils.OuncesFromLbsOz(2, 10)
	MaxTournamentWeight = utils.OuncesFromLbsOz(5, 0)
)

// Exception forbids any fight between two base teams. It is unordered.
type Exception struct {
	TeamAID string `json:"team_a_id"`
	TeamBID string `json:"team_b_id"`
}

// Key is the same for (a, b) and (b, a).
func (e Exception) Key() [2]string {
	if e.TeamBID < e.TeamAID {
		return [2]string{e.TeamBID, e.TeamAID}
	}
	return [2]string{e.TeamAID, e.TeamBID}
}

type ExceptionSet map[[2]string]struct{}

func (s ExceptionSet) Contains(baseA, baseB string) bool {
	_, ok := s[Exception{TeamAID: baseA, TeamBID: baseB}.Key()]
	return ok
}

// Rules are the torneo settings. Weights are in ounces, ages in months.
type Rules struct {
	Name               string      `json:"name"`
	Date               string      `json:"date"`
	Manager            string      `json:"manager,omitempty"`
	WeightTolerance    int         `json:"weight_tolerance"`
	AgeToleranceMonths int         `json:"age_tolerance_months"`
	MinWeight          int         `json:"min_weight"`
	MaxWeight          int         `json:"max_weight"`
	RoostersPerFront   int         `json:"roosters_per_front"`
	PointsForWin       int         `json:"points_for_win"`
	PointsForDraw      int         `json:"points_for_draw"`
	TournamentDays     int         `json:"tournament_days"`
	Exceptions         []Exception `json:"exceptions"`
}

func DefaultRules(now time.Time) Rules {
	return Rules{
		Name:               DefaultTournamentName,
		Date:               now.Format(time.DateOnly),
		WeightTolerance:    1,
		AgeToleranceMonths: 2,
		MinWeight:          utils.OuncesFromLbsOz(2, 12),
		MaxWeight:          MaxTournamentWeight,
		RoostersPerFront:   10,
		PointsForWin:       3,
		PointsForDraw:      1,
		TournamentDays:     1,
		Exceptions:         []Exception{},
	}
}

func (r Rules) ExceptionSet() ExceptionSet {
	set := make(ExceptionSet, len(r.Exceptions))
	for _, e := range r.Exceptions {
		set[e.Key()] = struct{}{}
	}
	return set
}

func (r Rules) InWeightBand(weight int) bool {
	return weight >= r.MinWeight && weight <= r.MaxWeight
}

// DTOs

type UpdateRulesRequest struct {
	Name               *string `json:"name,omitempty"`
	Date               *string `json:"date,omitempty"`
	Manager            *string `json:"manager,omitempty"`
	WeightTolerance    *int    `json:"weight_tolerance,omitempty"`
	AgeToleranceMonths *int    `json:"age_tolerance_months,omitempty"`
	MinWeight          *int    `json:"min_weight,omitempty"`
	MaxWeight          *int    `json:"max_weight,omitempty"`
	RoostersPerFront   *int    `json:"roosters_per_front,omitempty"`
	PointsForWin       *int    `json:"points_for_win,omitempty"`
	PointsForDraw      *int    `json:"points_for_draw,omitempty"`
	TournamentDays     *int    `json:"tournament_days,omitempty"`
}

type AddExceptionsRequest struct {
	FirstTeamIDs  []string `json:"first_team_ids" binding:"required,min=1"`
	SecondTeamIDs []string `json:"second_team_ids" binding:"required,min=1"`
}

type AddExceptionsResponse struct {
	Added      int         `json:"added"`
	Exceptions []Exception `json:"exceptions"`
}
