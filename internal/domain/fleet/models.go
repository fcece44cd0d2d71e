package fleet

import "time"

const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"

	VisibilityVisible = "visible"
	VisibilityHidden  = "hidden"
)

// Document is a vehicle file reference. ExpiresAt, when set, is scanned by
// the proactive alert generator.
type Document struct {
	Name       string     `json:"name"`
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

type HistoryEntry struct {
	ID         string    `json:"id"`
	VehicleID  string    `json:"vehicleId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor"`
	Details    string    `json:"details,omitempty"`
}

type Vehicle struct {
	ID              string     `json:"id"`
	Plate           string     `json:"plate"`
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	Year            int        `json:"year"`
	Status          string     `json:"status"`
	Visibility      string     `json:"visibility"`
	NextInspection  time.Time  `json:"nextInspection"`
	NextServiceKm   int        `json:"nextServiceKm"`
	CurrentKm       int        `json:"currentKm"`
	InsuranceExpiry time.Time  `json:"insuranceExpiry"`
	AssignedTo      string     `json:"assignedTo,omitempty"`

	BasicDocuments      []Document `json:"basicDocuments,omitempty"`
	SpecificDocuments   []Document `json:"specificDocuments,omitempty"`
	AdditionalDocuments []Document `json:"additionalDocuments,omitempty"`

	History []HistoryEntry `json:"history,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AllDocuments flattens every document group for expiry scanning.
func (v Vehicle) AllDocuments() []Document {
	out := make([]Document, 0, len(v.BasicDocuments)+len(v.SpecificDocuments)+len(v.AdditionalDocuments))
	out = append(out, v.BasicDocuments...)
	out = append(out, v.SpecificDocuments...)
	out = append(out, v.AdditionalDocuments...)
	return out
}

type FuelLog struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicleId"`
	Date        time.Time `json:"date"`
	Liters      float64   `json:"liters"`
	Cost        float64   `json:"cost"`
	Mileage     int       `json:"mileage"`
	PerformedBy string    `json:"performedBy"`
}
