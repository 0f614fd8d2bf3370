// Package standings folds finished fights into ranked team tables.
package standings

import (
	"cmp"
	"slices"

	"gallera-api/packages/core/models"
)

const (
	DailyFastestLimit      = 10
	TournamentFastestLimit = 1
)

// ByFront ranks every front on its own, as used for a single day.
func ByFront(fights []models.Fight, teams []models.Team, rules models.Rules) []models.TeamStanding {
	rows := make(map[string]*models.TeamStanding, len(teams))
	order := make([]string, 0, len(teams))
	for _, t := range teams {
		rows[t.ID] = &models.TeamStanding{
			TeamID:      t.ID,
			TeamName:    t.DisplayName(),
			FrontNumber: t.FrontNumber,
		}
		order = append(order, t.ID)
	}

	for _, f := range fights {
		tally(rows, f, f.RoosterA.TeamID, f.RoosterB.TeamID)
	}

	return rank(rows, order, rules)
}

// ByBaseTeam ranks base teams across every recorded day, merging their fronts.
func ByBaseTeam(results []models.DailyResult, teams []models.Team, rules models.Rules) []models.TeamStanding {
	ix := models.IndexTeams(teams)
	rows := make(map[string]*models.TeamStanding)
	var order []string
	for _, t := range teams {
		if t.IsFront() {
			continue
		}
		rows[t.ID] = &models.TeamStanding{
			TeamID:   t.ID,
			TeamName: t.Name,
		}
		order = append(order, t.ID)
	}
	for _, t := range teams {
		if row, ok := rows[t.BaseID()]; ok {
			row.Fronts++
		}
	}

	for _, r := range results {
		for _, f := range r.Fights {
			tally(rows, f, ix.BaseID(f.RoosterA.TeamID), ix.BaseID(f.RoosterB.TeamID))
		}
	}

	return rank(rows, order, rules)
}

// FastestWins lists decided, non-draw wins with a positive duration, quickest first.
func FastestWins(results []models.DailyResult, limit int) []models.FastestWin {
	var out []models.FastestWin
	for _, r := range results {
		for _, f := range r.Fights {
			winner, _, ok := f.WinnerAndLoser()
			if !ok || f.DurationSeconds <= 0 {
				continue
			}
			out = append(out, models.FastestWin{
				Day:             r.Day,
				FightID:         f.ID,
				FightNumber:     f.Number,
				Rooster:         winner,
				DurationSeconds: f.DurationSeconds,
			})
		}
	}

	slices.SortStableFunc(out, func(a, b models.FastestWin) int {
		return cmp.Compare(a.DurationSeconds, b.DurationSeconds)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Points is wins and draws weighted by the rules.
func Points(wins, draws int, rules models.Rules) int {
	return wins*rules.PointsForWin + draws*rules.PointsForDraw
}

// tally books one fight. Keys with no row (unknown or deleted teams) are skipped.
func tally(rows map[string]*models.TeamStanding, f models.Fight, keyA, keyB string) {
	a, b := rows[keyA], rows[keyB]

	switch f.Winner {
	case models.WinnerDraw:
		for _, row := range []*models.TeamStanding{a, b} {
			if row != nil {
				row.Draws++
				row.TotalDurationSeconds += f.DurationSeconds
			}
		}
	case models.WinnerA, models.WinnerB:
		winner, loser := a, b
		if f.Winner == models.WinnerB {
			winner, loser = b, a
		}
		if winner != nil {
			winner.Wins++
			winner.TotalDurationSeconds += f.DurationSeconds
		}
		if loser != nil {
			loser.Losses++
		}
	}
}

func rank(rows map[string]*models.TeamStanding, order []string, rules models.Rules) []models.TeamStanding {
	out := make([]models.TeamStanding, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if row.Participations() == 0 {
			continue
		}
		row.Points = Points(row.Wins, row.Draws, rules)
		out = append(out, *row)
	}

	slices.SortStableFunc(out, func(a, b models.TeamStanding) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.TotalDurationSeconds, b.TotalDurationSeconds)
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
