package alerts

import (
	"context"

	"fleetops/internal/domain/fleet"
	"fleetops/internal/domain/incidents"
	"fleetops/internal/domain/workforce"
)

type StoreAPI interface {
	ListManual(ctx context.Context) ([]Alert, error)
	InsertManual(ctx context.Context, alert Alert) error
	// SetSeen marks a persisted record seen; it reports whether a record
	// with that key existed.
	SetSeen(ctx context.Context, key Key) (bool, error)
}

type FleetSource interface {
	VehicleSnapshot(ctx context.Context) ([]fleet.Vehicle, error)
	RecentVehicles(ctx context.Context, limit int) ([]fleet.Vehicle, error)
}

type WorkforceSource interface {
	EmployeeSnapshot(ctx context.Context) ([]workforce.Employee, error)
}

type IncidentSource interface {
	Recent(ctx context.Context, limit int) ([]incidents.Incident, error)
}
