package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/espranza/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRegistrationRepo struct {
	stored []models.Registration
}

func (f *fakeRegistrationRepo) CreateRegistration(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	if reg.ID.IsZero() {
		reg.ID = primitive.NewObjectID()
	}
	f.stored = append(f.stored, *reg)
	return reg, nil
}

func (f *fakeRegistrationRepo) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	return f.stored, nil
}

func (f *fakeRegistrationRepo) SetRegistrationActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Registration, error) {
	for i := range f.stored {
		if f.stored[i].ID == id {
			f.stored[i].IsActive = active
			return &f.stored[i], nil
		}
	}
	return nil, models.ErrRegistrationNotFound
}

func soloRegistration() *models.Registration {
	return &models.Registration{
		Email:             "asha@example.com",
		EventID:           "dance-battle",
		EventName:         "Dance Battle",
		ParticipationType: models.ParticipationSolo,
		Name:              "Asha",
		Phone:             "9876543210",
	}
}

func TestCreateRegistrationAppliesDefaults(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	svc := NewRegistrationService(repo)

	reg := soloRegistration()
	reg.IsActive = true // the form cannot pre-verify itself

	created, err := svc.CreateRegistration(context.Background(), reg)
	if err != nil {
		t.Fatalf("CreateRegistration: %v", err)
	}

	if created.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("paymentStatus = %q, want %q", created.PaymentStatus, models.PaymentStatusPending)
	}
	if created.IsActive {
		t.Error("registration created as verified")
	}
	if created.CreatedAt.IsZero() {
		t.Error("createdAt not defaulted")
	}
	if time.Since(created.CreatedAt) > time.Minute {
		t.Errorf("createdAt not recent: %v", created.CreatedAt)
	}
}

func TestCreateRegistrationValidation(t *testing.T) {
	svc := NewRegistrationService(&fakeRegistrationRepo{})

	cases := map[string]*models.Registration{
		"nil payload":   nil,
		"missing email": {EventID: "e1", ParticipationType: models.ParticipationSolo, Name: "A", Phone: "1"},
		"bad type":      {Email: "a@b.c", EventID: "e1", ParticipationType: "Duo"},
		"solo no phone": {Email: "a@b.c", EventID: "e1", ParticipationType: models.ParticipationSolo, Name: "A"},
		"team no members": {
			Email: "a@b.c", EventID: "e1",
			ParticipationType: models.ParticipationTeam, TeamName: "Squad",
		},
	}

	for name, reg := range cases {
		_, err := svc.CreateRegistration(context.Background(), reg)
		if !errors.Is(err, ErrInvalidRegistration) {
			t.Errorf("%s: error = %v, want ErrInvalidRegistration", name, err)
		}
	}
}

func TestVerifyRegistration(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	svc := NewRegistrationService(repo)

	created, err := svc.CreateRegistration(context.Background(), soloRegistration())
	if err != nil {
		t.Fatalf("CreateRegistration: %v", err)
	}

	updated, err := svc.VerifyRegistration(context.Background(), created.ID, true)
	if err != nil {
		t.Fatalf("VerifyRegistration: %v", err)
	}
	if !updated.IsActive {
		t.Error("registration not marked verified")
	}

	regs, _ := svc.ListRegistrations(context.Background())
	if len(regs) != 1 || !regs[0].IsActive {
		t.Errorf("stored registration not updated: %+v", regs)
	}
}

func TestVerifyRegistrationNotFound(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	svc := NewRegistrationService(repo)

	if _, err := svc.CreateRegistration(context.Background(), soloRegistration()); err != nil {
		t.Fatalf("CreateRegistration: %v", err)
	}

	_, err := svc.VerifyRegistration(context.Background(), primitive.NewObjectID(), true)
	if !errors.Is(err, models.ErrRegistrationNotFound) {
		t.Errorf("error = %v, want ErrRegistrationNotFound", err)
	}

	// The miss must not have touched the existing record.
	regs, _ := svc.ListRegistrations(context.Background())
	if len(regs) != 1 || regs[0].IsActive {
		t.Errorf("existing registration altered by a failed verify: %+v", regs)
	}
}
