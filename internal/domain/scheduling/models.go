package scheduling

import "time"

// Shift is a single work assignment. Start and End form a half-open interval
// [Start, End): a shift ending at 17:00 does not collide with one starting
// at 17:00.
type Shift struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}
