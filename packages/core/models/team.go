package models

import (
	"cmp"
	"fmt"
	"slices"
)

type TeamKind string

const (
	TeamKindBase  TeamKind = "base"
	TeamKindFront TeamKind = "front"
)

// Team is a cuerda. A base team owns its id; a front is an extra roster bucket
// of a base team and shares its identity for exclusions and tournament standings.
type Team struct {
	ID          string   `json:"id"`
	Kind        TeamKind `json:"kind"`
	BaseTeamID  string   `json:"base_team_id,omitempty"`
	Name        string   `json:"name"`
	FrontNumber int      `json:"front_number"`
	Owner       string   `json:"owner"`
	City        string   `json:"city,omitempty"`
}

func NewBaseTeam(id, name, owner, city string) Team {
	return Team{
		ID:          id,
		Kind:        TeamKindBase,
		Name:        name,
		FrontNumber: 1,
		Owner:       owner,
		City:        city,
	}
}

// NewFront creates front number n of base. Fronts are only ever created from a
// base team, which keeps the team graph two levels deep.
func NewFront(id string, base Team, n int) Team {
	return Team{
		ID:          id,
		Kind:        TeamKindFront,
		BaseTeamID:  base.ID,
		Name:        base.Name,
		FrontNumber: n,
		Owner:       base.Owner,
		City:        base.City,
	}
}

func (t Team) IsFront() bool {
	return t.Kind == TeamKindFront
}

// BaseID returns the id of the base team t belongs to.
func (t Team) BaseID() string {
	if t.IsFront() {
		return t.BaseTeamID
	}
	return t.ID
}

func (t Team) DisplayName() string {
	return fmt.Sprintf("%s (F%d)", t.Name, t.FrontNumber)
}

// TeamIndex resolves team ids for matchmaking and standings.
type TeamIndex map[string]Team

func IndexTeams(teams []Team) TeamIndex {
	ix := make(TeamIndex, len(teams))
	for _, t := range teams {
		ix[t.ID] = t
	}
	return ix
}

// BaseID resolves teamID to its base team id, or "" when the team is unknown.
func (ix TeamIndex) BaseID(teamID string) string {
	t, ok := ix[teamID]
	if !ok {
		return ""
	}
	return t.BaseID()
}

// Fronts returns every team of the given base, the base itself included,
// ordered by front number.
func Fronts(teams []Team, baseID string) []Team {
	var out []Team
	for _, t := range teams {
		if t.BaseID() == baseID {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b Team) int {
		return cmp.Compare(a.FrontNumber, b.FrontNumber)
	})
	return out
}

// DTOs

type SaveTeamRequest struct {
	Name       string `json:"name" binding:"required"`
	Owner      string `json:"owner" binding:"required"`
	City       string `json:"city,omitempty"`
	FrontCount int    `json:"front_count" binding:"required,min=1"`
}
