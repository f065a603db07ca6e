package models

import (
	"context"
)

const EventColName = "events"

// Event ids are generated by the admin panel and carried through replace
// calls verbatim; uniqueness is a caller convention.
type Event struct {
	ID                string      `bson:"id" json:"id" validate:"required"`
	Title             string      `bson:"title" json:"title" validate:"required"`
	Date              string      `bson:"date" json:"date"`
	Time              string      `bson:"time" json:"time"`
	Description       string      `bson:"description" json:"description"`
	Category          string      `bson:"category" json:"category"`
	RegisteredCount   int         `bson:"registeredCount" json:"registeredCount"`
	MaxSlots          int         `bson:"maxSlots" json:"maxSlots"`
	Image             *MediaAsset `bson:"image,omitempty" json:"image"`
	ParticipationType string      `bson:"participationType" json:"participationType" validate:"omitempty,oneof=Solo Team"`
	IsPassEvent       bool        `bson:"isPassEvent" json:"isPassEvent"`
	TicketTiers       []string    `bson:"ticketTiers" json:"ticketTiers"`
	EntryFee          float64     `bson:"entryFee,omitempty" json:"entryFee,omitempty"`
	Rules             []string    `bson:"rules" json:"rules"`
	TeamSize          string      `bson:"teamSize,omitempty" json:"teamSize,omitempty"`
	CoordinatorPhone  string      `bson:"coordinatorPhone,omitempty" json:"coordinatorPhone,omitempty"`
}

type EventRepo interface {
	ListEvents(ctx context.Context) ([]Event, error)
	ReplaceEvents(ctx context.Context, events []Event) error
}
