package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TeamColName = "team_members"

	DefaultTeamCategory = "Volunteers / Core Committee"
)

// TeamCategories is the fixed set of roster groupings the site renders.
var TeamCategories = []string{
	"Faculty Coordinators",
	"Student Coordinators",
	"Vistara Club Members",
	"Cultural Team",
	"Technical Team",
	"Design & Media Team",
	DefaultTeamCategory,
}

type TeamMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Role      string             `bson:"role" json:"role"`
	Category  string             `bson:"category" json:"category"`
	Image     *MediaAsset        `bson:"image,omitempty" json:"image"`
	IsActive  *bool              `bson:"isActive" json:"isActive"`
	Instagram string             `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Linkedin  string             `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Order     int                `bson:"order" json:"order"`
}

func IsValidTeamCategory(category string) bool {
	for _, c := range TeamCategories {
		if c == category {
			return true
		}
	}
	return false
}

type TeamRepo interface {
	ListTeamMembers(ctx context.Context) ([]TeamMember, error)
	ReplaceTeamMembers(ctx context.Context, members []TeamMember) error
}
