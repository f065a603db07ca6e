package models

import "testing"

func TestValidateVariantSolo(t *testing.T) {
	reg := Registration{
		ParticipationType: ParticipationSolo,
		Name:              "Asha",
		Phone:             "9876543210",
	}
	if err := reg.ValidateVariant(); err != nil {
		t.Fatalf("valid solo registration rejected: %v", err)
	}

	reg.Phone = ""
	if err := reg.ValidateVariant(); err == nil {
		t.Error("solo registration without phone accepted")
	}
}

func TestValidateVariantTeam(t *testing.T) {
	reg := Registration{
		ParticipationType: ParticipationTeam,
		TeamName:          "Rhythm Squad",
		TeamMembers: []RegistrationTeamMember{
			{Name: "Asha", Phone: "9876543210"},
		},
	}
	if err := reg.ValidateVariant(); err != nil {
		t.Fatalf("valid team registration rejected: %v", err)
	}

	reg.TeamMembers = nil
	if err := reg.ValidateVariant(); err == nil {
		t.Error("team registration without members accepted")
	}
}

func TestValidateVariantUnknownType(t *testing.T) {
	reg := Registration{ParticipationType: "Duo"}
	if err := reg.ValidateVariant(); err == nil {
		t.Error("unknown participation type accepted")
	}
}
