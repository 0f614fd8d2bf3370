package services

import (
	"context"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/tournament"
)

type TeamService struct {
	session *Session
}

func NewTeamService(session *Session) *TeamService {
	return &TeamService{session: session}
}

func teamForm(req models.SaveTeamRequest) tournament.TeamForm {
	return tournament.TeamForm{
		Name:       req.Name,
		Owner:      req.Owner,
		City:       req.City,
		FrontCount: req.FrontCount,
	}
}

func (s *TeamService) GetAllTeams() []models.Team {
	return s.session.State().Teams
}

func (s *TeamService) CreateTeam(ctx context.Context, req models.SaveTeamRequest) (models.Team, error) {
	var team models.Team
	_, err := s.session.apply(ctx, "create team", func(st tournament.State) (tournament.State, error) {
		next, t, err := st.AddTeam(teamForm(req), s.session.newID)
		team = t
		return next, err
	})
	return team, err
}

// UpdateTeam renames the team and applies its front count. Lowering the count
// deletes fronts; see PreviewUpdate.
func (s *TeamService) UpdateTeam(ctx context.Context, id string, req models.SaveTeamRequest) (models.Team, error) {
	var team models.Team
	_, err := s.session.apply(ctx, "update team", func(st tournament.State) (tournament.State, error) {
		next, t, err := st.UpdateTeam(id, teamForm(req), s.session.newID)
		team = t
		return next, err
	})
	return team, err
}

func (s *TeamService) PreviewUpdate(id string, frontCount int) (tournament.Impact, error) {
	return s.session.State().PreviewTeamUpdate(id, frontCount)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	_, err := s.session.apply(ctx, "delete team", func(st tournament.State) (tournament.State, error) {
		return st.DeleteTeam(id)
	})
	return err
}

func (s *TeamService) PreviewDelete(id string) (tournament.Impact, error) {
	return s.session.State().PreviewTeamDeletion(id)
}
