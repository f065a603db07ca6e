package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/espranza/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidRegistration marks boundary-validation failures so handlers
// can answer with a client error instead of a storage error.
var ErrInvalidRegistration = errors.New("invalid registration")

type RegistrationService struct {
	registrationRepo models.RegistrationRepo
}

func NewRegistrationService(registrationRepo models.RegistrationRepo) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
	}
}

func (rs *RegistrationService) CreateRegistration(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: registration payload is required", ErrInvalidRegistration)
	}
	if err := models.Validate.Struct(reg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}
	if err := reg.ValidateVariant(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}

	if reg.PaymentStatus == "" {
		reg.PaymentStatus = models.PaymentStatusPending
	}
	// Registrations always start unverified regardless of what the form sent.
	reg.IsActive = false
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now()
	}

	return rs.registrationRepo.CreateRegistration(ctx, reg)
}

func (rs *RegistrationService) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	return rs.registrationRepo.ListRegistrations(ctx)
}

func (rs *RegistrationService) VerifyRegistration(ctx context.Context, id primitive.ObjectID, active bool) (*models.Registration, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: registration ID is required", ErrInvalidRegistration)
	}
	return rs.registrationRepo.SetRegistrationActive(ctx, id, active)
}
