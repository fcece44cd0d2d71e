package alerts

import (
	"math"
	"time"
)

type Type string

const (
	TypeITV       Type = "itv"
	TypeRevision  Type = "revision"
	TypeInsurance Type = "insurance"
	TypeContract  Type = "contract"
	TypeDocument  Type = "document"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

type EntityKind string

const (
	KindVehicle  EntityKind = "vehicle"
	KindEmployee EntityKind = "employee"
)

// Key identifies an alert across derivations. It is a structured composite of
// the related entity and the facet that triggered the alert, so re-deriving
// the same snapshot yields the same key and merge-by-key is well defined even
// when facet names contain separator characters.
type Key struct {
	Kind     EntityKind `json:"entityKind"`
	EntityID string     `json:"entityId"`
	Facet    string     `json:"facet"`
}

const (
	FacetITV       = "itv"
	FacetInsurance = "insurance"
	FacetRevision  = "revision"
	FacetContract  = "contract"
)

// String renders a display id. Merging never parses this form back.
func (k Key) String() string {
	return string(k.Kind) + ":" + k.EntityID + ":" + k.Facet
}

// Due is a tagged deadline: either a calendar date or a mileage target.
// Exactly one arm is set for generated alerts.
type Due struct {
	Date *time.Time `json:"date,omitempty"`
	Km   *int       `json:"km,omitempty"`
}

func DueOn(date time.Time) Due {
	return Due{Date: &date}
}

func DueAtKm(km int) Due {
	return Due{Km: &km}
}

// sortValue orders dues by calendar date; mileage-based and empty dues sort
// last.
func (d Due) sortValue() int64 {
	if d.Date == nil {
		return math.MaxInt64
	}
	return d.Date.UnixMilli()
}

type Alert struct {
	Key         Key     `json:"key"`
	ID          string  `json:"id"`
	Type        Type    `json:"type"`
	Description string  `json:"description"`
	Due         Due     `json:"due"`
	Urgency     Urgency `json:"urgency"`
	Seen        bool    `json:"seen,omitempty"`
	Manual      bool    `json:"manual,omitempty"`
}
