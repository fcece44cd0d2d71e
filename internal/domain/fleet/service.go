package fleet

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Vehicle, error) {
	return s.store.List(ctx)
}

func (s *Service) ListAssignedTo(ctx context.Context, employeeID string) ([]Vehicle, error) {
	return s.store.ListAssignedTo(ctx, employeeID)
}

func (s *Service) Get(ctx context.Context, id string) (Vehicle, error) {
	return s.store.Get(ctx, id)
}

// Save creates or updates a vehicle and appends the matching history entry.
func (s *Service) Save(ctx context.Context, vehicle Vehicle, actor string) (Vehicle, error) {
	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
		if err := s.store.Insert(ctx, vehicle); err != nil {
			return Vehicle{}, err
		}
		entry := NewHistoryEntry(vehicle.ID, ActionCreated, actor, "vehicle registered", s.now())
		if err := s.store.AppendHistory(ctx, entry); err != nil {
			return Vehicle{}, err
		}
		return vehicle, nil
	}

	found, err := s.store.Update(ctx, vehicle)
	if err != nil {
		return Vehicle{}, err
	}
	if !found {
		return Vehicle{}, ErrNotFound
	}
	entry := NewHistoryEntry(vehicle.ID, ActionModified, actor, "vehicle data updated", s.now())
	if err := s.store.AppendHistory(ctx, entry); err != nil {
		return Vehicle{}, err
	}
	return vehicle, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) History(ctx context.Context, vehicleID string) ([]HistoryEntry, error) {
	return s.store.History(ctx, vehicleID)
}

func (s *Service) ListFuelLogs(ctx context.Context, vehicleID string) ([]FuelLog, error) {
	return s.store.ListFuelLogs(ctx, vehicleID)
}

func (s *Service) SaveFuelLog(ctx context.Context, log FuelLog) (FuelLog, error) {
	if log.ID == "" {
		log.ID = uuid.NewString()
		if err := s.store.InsertFuelLog(ctx, log); err != nil {
			return FuelLog{}, err
		}
		return log, nil
	}
	found, err := s.store.UpdateFuelLog(ctx, log)
	if err != nil {
		return FuelLog{}, err
	}
	if !found {
		return FuelLog{}, ErrFuelLogNotFound
	}
	return log, nil
}

func (s *Service) DeleteFuelLog(ctx context.Context, id string) error {
	return s.store.DeleteFuelLog(ctx, id)
}
