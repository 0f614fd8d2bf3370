// Package matchmaking builds a day's fight card from a pool of roosters.
//
// Pairing is greedy: every eligible pair is scored by weight difference, then
// age difference, and accepted in that order as long as neither rooster is
// already taken. The result is deterministic for a given input order but is
// not a maximum matching.
package matchmaking

import (
	"cmp"
	"slices"

	"gallera-api/packages/core/models"
)

// Candidate is an eligible pair found during enumeration.
type Candidate struct {
	A          models.Rooster
	B          models.Rooster
	WeightDiff int
	AgeDiff    int
}

// Result is the main card and the roosters left without a pair.
type Result struct {
	Fights    []models.Fight
	Leftovers []models.Rooster
}

// WithinWeightBand keeps the roosters whose weight falls inside the rules' band.
func WithinWeightBand(roosters []models.Rooster, rules models.Rules) []models.Rooster {
	out := make([]models.Rooster, 0, len(roosters))
	for _, r := range roosters {
		if rules.InWeightBand(r.Weight) {
			out = append(out, r)
		}
	}
	return out
}

// Eligible reports whether a and b may be paired automatically.
func Eligible(a, b models.Rooster, rules models.Rules, teams models.TeamIndex) bool {
	_, ok := evaluate(a, b, rules, teams, rules.ExceptionSet())
	return ok
}

// Candidates enumerates every eligible unordered pair, lower input index first.
func Candidates(roosters []models.Rooster, rules models.Rules, teams models.TeamIndex) []Candidate {
	exceptions := rules.ExceptionSet()

	var out []Candidate
	for i := 0; i < len(roosters); i++ {
		for j := i + 1; j < len(roosters); j++ {
			if c, ok := evaluate(roosters[i], roosters[j], rules, teams, exceptions); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// FindPairs pairs the given roosters. It never fails: with no eligible pair it
// returns no fights and every rooster as a leftover.
func FindPairs(roosters []models.Rooster, rules models.Rules, teams []models.Team) Result {
	candidates := Candidates(roosters, rules, models.IndexTeams(teams))

	slices.SortStableFunc(candidates, func(x, y Candidate) int {
		if c := cmp.Compare(x.WeightDiff, y.WeightDiff); c != 0 {
			return c
		}
		return cmp.Compare(x.AgeDiff, y.AgeDiff)
	})

	paired := make(map[string]struct{}, len(roosters))
	fights := make([]models.Fight, 0, len(roosters)/2)
	for _, c := range candidates {
		if _, taken := paired[c.A.ID]; taken {
			continue
		}
		if _, taken := paired[c.B.ID]; taken {
			continue
		}
		paired[c.A.ID] = struct{}{}
		paired[c.B.ID] = struct{}{}
		fights = append(fights, models.NewFight(len(fights)+1, c.A, c.B))
	}

	leftovers := make([]models.Rooster, 0, len(roosters)-2*len(fights))
	for _, r := range roosters {
		if _, taken := paired[r.ID]; !taken {
			leftovers = append(leftovers, r)
		}
	}

	return Result{Fights: fights, Leftovers: leftovers}
}

func evaluate(a, b models.Rooster, rules models.Rules, teams models.TeamIndex, exceptions models.ExceptionSet) (Candidate, bool) {
	if a.Phenotype != b.Phenotype {
		return Candidate{}, false
	}

	baseA, baseB := teams.BaseID(a.TeamID), teams.BaseID(b.TeamID)
	if baseA == baseB {
		return Candidate{}, false
	}
	if exceptions.Contains(baseA, baseB) {
		return Candidate{}, false
	}

	c := Candidate{
		A:          a,
		B:          b,
		WeightDiff: abs(a.Weight - b.Weight),
		AgeDiff:    abs(a.AgeMonths - b.AgeMonths),
	}
	if c.WeightDiff > rules.WeightTolerance || c.AgeDiff > rules.AgeToleranceMonths {
		return Candidate{}, false
	}
	return c, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
