package incidents

import "time"

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

type Incident struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	VehicleID   string    `json:"vehicleId"`
	ReportedBy  string    `json:"reportedBy"`
	Status      string    `json:"status"`
}
