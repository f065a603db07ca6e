package services

import (
	"context"
	"fmt"

	"github.com/espranza/server/internal/models"
)

type EventService struct {
	eventRepo models.EventRepo
}

func NewEventService(eventRepo models.EventRepo) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

func (es *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return es.eventRepo.ListEvents(ctx)
}

// ReplaceEvents swaps the whole catalog for the provided array. Ids are
// carried through verbatim; the admin panel owns their uniqueness.
func (es *EventService) ReplaceEvents(ctx context.Context, events []models.Event) error {
	if events == nil {
		return fmt.Errorf("events must be an array")
	}

	for i := range events {
		if err := models.Validate.Struct(&events[i]); err != nil {
			return fmt.Errorf("invalid event data provided: %v", err)
		}
		if events[i].Image != nil {
			events[i].Image.Normalize()
		}
		if events[i].TicketTiers == nil {
			events[i].TicketTiers = []string{}
		}
		if events[i].Rules == nil {
			events[i].Rules = []string{}
		}
	}

	return es.eventRepo.ReplaceEvents(ctx, events)
}
