package incidents

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetops/internal/domain/fleet"
)

// HistoryLog is the slice of the fleet store incidents write to.
type HistoryLog interface {
	AppendHistory(ctx context.Context, entry fleet.HistoryEntry) error
}

type Service struct {
	store   StoreAPI
	history HistoryLog
	now     func() time.Time
}

func NewService(store StoreAPI, history HistoryLog) *Service {
	return &Service{store: store, history: history, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Incident, error) {
	return s.store.List(ctx)
}

// Save persists the incident and logs it on the vehicle's history.
func (s *Service) Save(ctx context.Context, incident Incident) (Incident, error) {
	if incident.Date.IsZero() {
		incident.Date = s.now()
	}
	if incident.Status == "" {
		incident.Status = StatusOpen
	}

	if incident.ID == "" {
		incident.ID = uuid.NewString()
		if err := s.store.Insert(ctx, incident); err != nil {
			return Incident{}, err
		}
	} else {
		found, err := s.store.Update(ctx, incident)
		if err != nil {
			return Incident{}, err
		}
		if !found {
			return Incident{}, ErrNotFound
		}
	}

	entry := fleet.NewHistoryEntry(
		incident.VehicleID,
		fleet.ActionIncident,
		incident.ReportedBy,
		fmt.Sprintf("incident reported: %s (%s)", incident.Description, incident.Status),
		incident.Date,
	)
	if err := s.history.AppendHistory(ctx, entry); err != nil {
		return Incident{}, err
	}
	return incident, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
