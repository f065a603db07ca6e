package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/espranza/server/internal/models"
)

type TeamService struct {
	teamRepo models.TeamRepo
}

func NewTeamService(teamRepo models.TeamRepo) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// ListTeamMembers returns the roster sorted ascending by the admin-assigned
// order field, independent of insertion order.
func (ts *TeamService) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	members, err := ts.teamRepo.ListTeamMembers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Order < members[j].Order
	})
	return members, nil
}

func (ts *TeamService) ReplaceTeamMembers(ctx context.Context, members []models.TeamMember) error {
	if members == nil {
		return fmt.Errorf("teamMembers must be an array")
	}

	for i := range members {
		if err := models.Validate.Struct(&members[i]); err != nil {
			return fmt.Errorf("invalid team member data provided: %v", err)
		}
		if members[i].Category == "" {
			members[i].Category = models.DefaultTeamCategory
		} else if !models.IsValidTeamCategory(members[i].Category) {
			return fmt.Errorf("unknown team category: %s", members[i].Category)
		}
		if members[i].IsActive == nil {
			active := true
			members[i].IsActive = &active
		}
		if members[i].Image != nil {
			members[i].Image.Normalize()
		}
	}

	return ts.teamRepo.ReplaceTeamMembers(ctx, members)
}
