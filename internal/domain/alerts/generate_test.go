package alerts

import (
	"testing"
	"time"

	"fleetops/internal/domain/fleet"
	"fleetops/internal/domain/workforce"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func days(n int) time.Time {
	return testNow.Add(time.Duration(n) * 24 * time.Hour)
}

func ptr[T any](v T) *T { return &v }

func findByKey(t *testing.T, alerts []Alert, key Key) Alert {
	t.Helper()
	for _, alert := range alerts {
		if alert.Key == key {
			return alert
		}
	}
	t.Fatalf("no alert with key %v", key)
	return Alert{}
}

func TestGenerateITVWithinWindow(t *testing.T) {
	vehicle := fleet.Vehicle{ID: "v1", Plate: "1234-ABC", NextInspection: days(10), InsuranceExpiry: days(300)}
	out := Generate([]fleet.Vehicle{vehicle}, nil, testNow)

	alert := findByKey(t, out, Key{Kind: KindVehicle, EntityID: "v1", Facet: FacetITV})
	if alert.Type != TypeITV {
		t.Fatalf("expected itv type, got %s", alert.Type)
	}
	if alert.Urgency != UrgencyMedium {
		t.Fatalf("a future deadline must be medium urgency, got %s", alert.Urgency)
	}
	if alert.Due.Date == nil || !alert.Due.Date.Equal(days(10)) {
		t.Fatalf("unexpected due %v", alert.Due)
	}
}

func TestGenerateOverdueITVIsHighUrgency(t *testing.T) {
	vehicle := fleet.Vehicle{ID: "v1", Plate: "1234-ABC", NextInspection: days(-1), InsuranceExpiry: days(300)}
	out := Generate([]fleet.Vehicle{vehicle}, nil, testNow)

	alert := findByKey(t, out, Key{Kind: KindVehicle, EntityID: "v1", Facet: FacetITV})
	if alert.Urgency != UrgencyHigh {
		t.Fatalf("a passed deadline must be high urgency, got %s", alert.Urgency)
	}
}

func TestGenerateSkipsDeadlinesOutsideWindow(t *testing.T) {
	vehicle := fleet.Vehicle{ID: "v1", Plate: "1234-ABC", NextInspection: days(31), InsuranceExpiry: days(45)}
	out := Generate([]fleet.Vehicle{vehicle}, nil, testNow)
	if len(out) != 0 {
		t.Fatalf("expected no alerts outside the 30-day window, got %d", len(out))
	}
}

func TestGenerateRevisionOnMileageAxis(t *testing.T) {
	vehicle := fleet.Vehicle{
		ID: "v1", Plate: "1234-ABC",
		NextInspection: days(300), InsuranceExpiry: days(300),
		CurrentKm: 148000, NextServiceKm: 150000,
	}
	out := Generate([]fleet.Vehicle{vehicle}, nil, testNow)

	alert := findByKey(t, out, Key{Kind: KindVehicle, EntityID: "v1", Facet: FacetRevision})
	if alert.Urgency != UrgencyMedium {
		t.Fatalf("gap of 2000 km must be medium urgency, got %s", alert.Urgency)
	}
	if alert.Due.Km == nil || *alert.Due.Km != 150000 {
		t.Fatalf("expected km due of 150000, got %v", alert.Due)
	}
	if alert.Due.Date != nil {
		t.Fatal("a mileage alert must not carry a date due")
	}
}

func TestGenerateRevisionHighWhenExceeded(t *testing.T) {
	vehicle := fleet.Vehicle{
		ID: "v1", Plate: "1234-ABC",
		NextInspection: days(300), InsuranceExpiry: days(300),
		CurrentKm: 151000, NextServiceKm: 150000,
	}
	out := Generate([]fleet.Vehicle{vehicle}, nil, testNow)
	alert := findByKey(t, out, Key{Kind: KindVehicle, EntityID: "v1", Facet: FacetRevision})
	if alert.Urgency != UrgencyHigh {
		t.Fatalf("exceeded mileage must be high urgency, got %s", alert.Urgency)
	}
}

func TestGenerateNoRevisionWithoutMileageReading(t *testing.T) {
	vehicle := fleet.Vehicle{
		ID: "v1", Plate: "1234-ABC",
		NextInspection: days(300), InsuranceExpiry: days(300),
		NextServiceKm: 1000,
	}
	out := Generate([]fleet.Vehicle{vehicle}, nil, testNow)
	if len(out) != 0 {
		t.Fatalf("a vehicle without a mileage reading must not produce a revision alert, got %d alerts", len(out))
	}
}

func TestGenerateVehicleDocuments(t *testing.T) {
	vehicle := fleet.Vehicle{
		ID: "v1", Plate: "1234-ABC",
		NextInspection: days(300), InsuranceExpiry: days(300),
		BasicDocuments:    []fleet.Document{{Name: "permiso de circulación", ExpiresAt: ptr(days(5))}},
		SpecificDocuments: []fleet.Document{{Name: "ficha técnica"}},
	}
	out := Generate([]fleet.Vehicle{vehicle}, nil, testNow)
	if len(out) != 1 {
		t.Fatalf("expected only the expiring document alert, got %d", len(out))
	}
	alert := out[0]
	if alert.Key.Facet != "permiso de circulación" {
		t.Fatalf("facet must carry the document name, got %q", alert.Key.Facet)
	}
	if alert.Type != TypeDocument {
		t.Fatalf("expected document type, got %s", alert.Type)
	}
}

func TestGenerateEmployeeContractAndDocuments(t *testing.T) {
	employee := workforce.Employee{
		ID: "e1", FirstName: "Ana", LastName: "García",
		ContractEnd:        ptr(days(7)),
		MandatoryDocuments: []workforce.Document{{Name: "carné de conducir", ExpiresAt: ptr(days(-2))}},
	}
	out := Generate(nil, []workforce.Employee{employee}, testNow)

	contract := findByKey(t, out, Key{Kind: KindEmployee, EntityID: "e1", Facet: FacetContract})
	if contract.Urgency != UrgencyMedium {
		t.Fatalf("contract ending in 7 days must be medium, got %s", contract.Urgency)
	}

	doc := findByKey(t, out, Key{Kind: KindEmployee, EntityID: "e1", Facet: "carné de conducir"})
	if doc.Urgency != UrgencyHigh {
		t.Fatalf("expired document must be high, got %s", doc.Urgency)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	vehicles := []fleet.Vehicle{
		{ID: "v1", Plate: "A", NextInspection: days(3), InsuranceExpiry: days(10), CurrentKm: 99000, NextServiceKm: 100000},
		{ID: "v2", Plate: "B", NextInspection: days(-5), InsuranceExpiry: days(300)},
	}
	employees := []workforce.Employee{
		{ID: "e1", FirstName: "Ana", ContractEnd: ptr(days(20))},
	}

	first := Generate(vehicles, employees, testNow)
	second := Generate(vehicles, employees, testNow)

	if len(first) != len(second) {
		t.Fatalf("derivation is not idempotent: %d vs %d alerts", len(first), len(second))
	}
	for i := range first {
		if first[i].Key != second[i].Key {
			t.Fatalf("key mismatch at %d: %v vs %v", i, first[i].Key, second[i].Key)
		}
		if first[i].Urgency != second[i].Urgency {
			t.Fatalf("urgency mismatch at %d", i)
		}
	}
}
