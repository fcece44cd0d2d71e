package fleet

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated  = "created"
	ActionModified = "modified"
	ActionIncident = "incident"
)

// NewHistoryEntry builds a history record for a vehicle mutation.
func NewHistoryEntry(vehicleID, action, actor, details string, at time.Time) HistoryEntry {
	return HistoryEntry{
		ID:         uuid.NewString(),
		VehicleID:  vehicleID,
		OccurredAt: at,
		Action:     action,
		Actor:      actor,
		Details:    details,
	}
}
