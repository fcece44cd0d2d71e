package alerts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fleetops/internal/domain/fleet"
	"fleetops/internal/domain/incidents"
	"fleetops/internal/domain/workforce"
)

var ErrAlertNotFound = errors.New("alert not found")

const (
	recentIncidentCount = 3
	recentVehicleCount  = 3
)

// Service recomputes the alert view from a fresh store snapshot on every
// read. There is no caching or invalidation; at the target data scale a full
// rescan per dashboard load is cheaper than keeping derived state correct.
type Service struct {
	store     StoreAPI
	vehicles  FleetSource
	employees WorkforceSource
	incidents IncidentSource
	now       func() time.Time
}

func NewService(store StoreAPI, vehicles FleetSource, employees WorkforceSource, incidentSrc IncidentSource) *Service {
	return &Service{
		store:     store,
		vehicles:  vehicles,
		employees: employees,
		incidents: incidentSrc,
		now:       time.Now,
	}
}

type Dashboard struct {
	TotalVehicles   int                  `json:"totalVehicles"`
	TotalEmployees  int                  `json:"totalEmployees"`
	PendingAlerts   int                  `json:"pendingAlerts"`
	UpcomingAlerts  []Alert              `json:"upcomingAlerts"`
	RecentIncidents []incidents.Incident `json:"recentIncidents"`
	RecentVehicles  []fleet.Vehicle      `json:"recentVehicles"`
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	merged, vehicles, employees, err := s.mergedAlerts(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	recentIncidents, err := s.incidents.Recent(ctx, recentIncidentCount)
	if err != nil {
		return Dashboard{}, err
	}
	recentVehicles, err := s.vehicles.RecentVehicles(ctx, recentVehicleCount)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		TotalVehicles:   len(vehicles),
		TotalEmployees:  len(employees),
		PendingAlerts:   CountPending(merged),
		UpcomingAlerts:  Rank(merged, DashboardLimit),
		RecentIncidents: recentIncidents,
		RecentVehicles:  recentVehicles,
	}, nil
}

// Pending returns every unseen alert, best first, with no truncation.
func (s *Service) Pending(ctx context.Context) ([]Alert, error) {
	merged, _, _, err := s.mergedAlerts(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(merged, len(merged)), nil
}

// VehicleAlerts returns the derived vehicle alerts without seen filtering,
// for the fleet page side panel.
func (s *Service) VehicleAlerts(ctx context.Context) ([]Alert, error) {
	derived, err := s.derive(ctx)
	if err != nil {
		return nil, err
	}
	var out []Alert
	for _, alert := range derived {
		if alert.Key.Kind == KindVehicle {
			out = append(out, alert)
		}
	}
	return out, nil
}

// MarkSeen records that an alert was acknowledged. For a derived alert the
// record is materialized first so the flag survives re-derivation.
func (s *Service) MarkSeen(ctx context.Context, key Key) error {
	existed, err := s.store.SetSeen(ctx, key)
	if err != nil {
		return err
	}
	if existed {
		return nil
	}

	derived, err := s.derive(ctx)
	if err != nil {
		return err
	}
	for _, alert := range derived {
		if alert.Key == key {
			alert.Seen = true
			return s.store.InsertManual(ctx, alert)
		}
	}
	return ErrAlertNotFound
}

// CreateManual registers a user-created alert. Manual alerts default to low
// urgency; high and medium are reserved for derived deadlines.
func (s *Service) CreateManual(ctx context.Context, alert Alert) (Alert, error) {
	if alert.Key.Facet == "" {
		alert.Key.Facet = "manual-" + uuid.NewString()
	}
	if alert.Urgency == "" {
		alert.Urgency = UrgencyLow
	}
	alert.ID = alert.Key.String()
	alert.Manual = true
	if err := s.store.InsertManual(ctx, alert); err != nil {
		return Alert{}, err
	}
	return alert, nil
}

func (s *Service) derive(ctx context.Context) ([]Alert, error) {
	vehicles, err := s.vehicles.VehicleSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.employees.EmployeeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Generate(vehicles, employees, s.now()), nil
}

func (s *Service) mergedAlerts(ctx context.Context) ([]Alert, []fleet.Vehicle, []workforce.Employee, error) {
	vehicles, err := s.vehicles.VehicleSnapshot(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	employees, err := s.employees.EmployeeSnapshot(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	manual, err := s.store.ListManual(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	derived := Generate(vehicles, employees, s.now())
	return Merge(derived, manual), vehicles, employees, nil
}
