package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RegistrationColName = "registrations"

	ParticipationSolo = "Solo"
	ParticipationTeam = "Team"

	PaymentStatusPending = "Pending"
)

var ErrRegistrationNotFound = errors.New("registration not found")

type RegistrationTeamMember struct {
	Name  string `bson:"name" json:"name" validate:"required"`
	Phone string `bson:"phone" json:"phone" validate:"required"`
}

// Registration is a tagged variant: participationType selects which of
// the solo or team field sets must be present.
type Registration struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email             string             `bson:"email" json:"email" validate:"required,email"`
	EventID           string             `bson:"eventId" json:"eventId" validate:"required"`
	EventName         string             `bson:"eventName" json:"eventName"`
	ParticipationType string             `bson:"participationType" json:"participationType" validate:"required,oneof=Solo Team"`

	// Solo fields
	Name             string `bson:"name,omitempty" json:"name,omitempty"`
	Phone            string `bson:"phone,omitempty" json:"phone,omitempty"`
	College          string `bson:"college,omitempty" json:"college,omitempty"`
	Department       string `bson:"department,omitempty" json:"department,omitempty"`
	Degree           string `bson:"degree,omitempty" json:"degree,omitempty"`
	Course           string `bson:"course,omitempty" json:"course,omitempty"`
	Year             string `bson:"year,omitempty" json:"year,omitempty"`
	IsVeltechStudent bool   `bson:"isVeltechStudent,omitempty" json:"isVeltechStudent,omitempty"`
	VMNumber         string `bson:"vmNumber,omitempty" json:"vmNumber,omitempty"`
	IDCardURL        string `bson:"idCardUrl,omitempty" json:"idCardUrl,omitempty"`

	// Team fields
	TeamName            string                   `bson:"teamName,omitempty" json:"teamName,omitempty"`
	TeamMembers         []RegistrationTeamMember `bson:"teamMembers,omitempty" json:"teamMembers,omitempty" validate:"omitempty,dive"`
	TeamLeaderIDCardURL string                   `bson:"teamLeaderIdCardUrl,omitempty" json:"teamLeaderIdCardUrl,omitempty"`

	// Payment
	PaymentScreenshotURL string `bson:"paymentScreenshotUrl,omitempty" json:"paymentScreenshotUrl,omitempty"`
	PaymentStatus        string `bson:"paymentStatus" json:"paymentStatus"`

	// Admin
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ValidateVariant checks the fields selected by participationType, on top
// of the struct tags Validate covers.
func (r *Registration) ValidateVariant() error {
	switch r.ParticipationType {
	case ParticipationSolo:
		if r.Name == "" {
			return fmt.Errorf("name is required for solo registrations")
		}
		if r.Phone == "" {
			return fmt.Errorf("phone is required for solo registrations")
		}
	case ParticipationTeam:
		if r.TeamName == "" {
			return fmt.Errorf("teamName is required for team registrations")
		}
		if len(r.TeamMembers) == 0 {
			return fmt.Errorf("at least one team member is required for team registrations")
		}
	default:
		return fmt.Errorf("participationType must be either %q or %q", ParticipationSolo, ParticipationTeam)
	}
	return nil
}

type RegistrationRepo interface {
	CreateRegistration(ctx context.Context, reg *Registration) (*Registration, error)
	ListRegistrations(ctx context.Context) ([]Registration, error)
	SetRegistrationActive(ctx context.Context, id primitive.ObjectID, active bool) (*Registration, error)
}
