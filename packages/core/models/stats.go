package models

// TeamStanding is one row of a standings table. For the daily table a row is a
// front; for the tournament table it is a base team with its fronts merged in.
type TeamStanding struct {
	Rank                 int    `json:"rank"`
	TeamID               string `json:"team_id"`
	TeamName             string `json:"team_name"`
	FrontNumber          int    `json:"front_number,omitempty"`
	Fronts               int    `json:"fronts,omitempty"`
	Wins                 int    `json:"wins"`
	Draws                int    `json:"draws"`
	Losses               int    `json:"losses"`
	TotalDurationSeconds int    `json:"total_duration_seconds"`
	Points               int    `json:"points"`
}

func (s TeamStanding) Participations() int {
	return s.Wins + s.Draws + s.Losses
}

type FastestWin struct {
	Day             int     `json:"day"`
	FightID         string  `json:"fight_id"`
	FightNumber     int     `json:"fight_number"`
	Rooster         Rooster `json:"rooster"`
	DurationSeconds int     `json:"duration_seconds"`
}

type DayResultsResponse struct {
	Day       int            `json:"day"`
	Fights    []Fight        `json:"fights"`
	Standings []TeamStanding `json:"standings"`
	Fastest   []FastestWin   `json:"fastest"`
}

type TournamentResultsResponse struct {
	Name      string         `json:"name"`
	Days      int            `json:"days"`
	Standings []TeamStanding `json:"standings"`
	Fastest   *FastestWin    `json:"fastest"`
}
