package alerts

import (
	"fmt"
	"time"

	"fleetops/internal/domain/fleet"
	"fleetops/internal/domain/workforce"
)

// Generate derives the full alert set from a store snapshot. It is a pure
// function of its inputs: the same snapshot and the same now produce the same
// alerts with the same keys, which is what makes merge-by-key against
// persisted seen state possible. Zero or missing dates are treated as "not
// near expiry" and skipped; alerting is best-effort and never fails on dirty
// data.
func Generate(vehicles []fleet.Vehicle, employees []workforce.Employee, now time.Time) []Alert {
	var out []Alert

	for _, vehicle := range vehicles {
		if withinWindow(vehicle.NextInspection, now) {
			out = append(out, newAlert(
				Key{Kind: KindVehicle, EntityID: vehicle.ID, Facet: FacetITV},
				TypeITV,
				fmt.Sprintf("ITV due soon: %s", vehicle.Plate),
				DueOn(vehicle.NextInspection),
				dateUrgency(vehicle.NextInspection, now),
			))
		}

		if withinWindow(vehicle.InsuranceExpiry, now) {
			out = append(out, newAlert(
				Key{Kind: KindVehicle, EntityID: vehicle.ID, Facet: FacetInsurance},
				TypeInsurance,
				fmt.Sprintf("insurance expiring: %s", vehicle.Plate),
				DueOn(vehicle.InsuranceExpiry),
				dateUrgency(vehicle.InsuranceExpiry, now),
			))
		}

		// The revision check runs on the mileage axis, independent of any
		// calendar deadline.
		if vehicle.CurrentKm > 0 && vehicle.NextServiceKm-vehicle.CurrentKm < RevisionKmThreshold {
			urgency := UrgencyMedium
			if vehicle.CurrentKm > vehicle.NextServiceKm {
				urgency = UrgencyHigh
			}
			out = append(out, newAlert(
				Key{Kind: KindVehicle, EntityID: vehicle.ID, Facet: FacetRevision},
				TypeRevision,
				fmt.Sprintf("service revision needed: %s (%d km)", vehicle.Plate, vehicle.CurrentKm),
				DueAtKm(vehicle.NextServiceKm),
				urgency,
			))
		}

		for _, doc := range vehicle.AllDocuments() {
			if doc.ExpiresAt == nil || !withinWindow(*doc.ExpiresAt, now) {
				continue
			}
			out = append(out, newAlert(
				Key{Kind: KindVehicle, EntityID: vehicle.ID, Facet: doc.Name},
				TypeDocument,
				fmt.Sprintf("document %s expiring: %s", doc.Name, vehicle.Plate),
				DueOn(*doc.ExpiresAt),
				dateUrgency(*doc.ExpiresAt, now),
			))
		}
	}

	for _, employee := range employees {
		if employee.ContractEnd != nil && withinWindow(*employee.ContractEnd, now) {
			out = append(out, newAlert(
				Key{Kind: KindEmployee, EntityID: employee.ID, Facet: FacetContract},
				TypeContract,
				fmt.Sprintf("contract ending: %s", employee.FullName()),
				DueOn(*employee.ContractEnd),
				dateUrgency(*employee.ContractEnd, now),
			))
		}

		for _, doc := range employee.AllDocuments() {
			if doc.ExpiresAt == nil || !withinWindow(*doc.ExpiresAt, now) {
				continue
			}
			out = append(out, newAlert(
				Key{Kind: KindEmployee, EntityID: employee.ID, Facet: doc.Name},
				TypeDocument,
				fmt.Sprintf("document %s expiring: %s", doc.Name, employee.FullName()),
				DueOn(*doc.ExpiresAt),
				dateUrgency(*doc.ExpiresAt, now),
			))
		}
	}

	return out
}

func newAlert(key Key, alertType Type, description string, due Due, urgency Urgency) Alert {
	return Alert{
		Key:         key,
		ID:          key.String(),
		Type:        alertType,
		Description: description,
		Due:         due,
		Urgency:     urgency,
	}
}

// withinWindow reports whether due falls before the look-ahead horizon.
// Already-passed dates are within the window; zero dates are not scanned.
func withinWindow(due, now time.Time) bool {
	if due.IsZero() {
		return false
	}
	return due.Sub(now) < LookAheadWindow
}

func dateUrgency(due, now time.Time) Urgency {
	if due.Before(now) {
		return UrgencyHigh
	}
	return UrgencyMedium
}
