package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"fleetops/internal/domain/alerts"
	"fleetops/internal/domain/scheduling"
	"fleetops/internal/domain/workforce"
)

type fakeAlertSource struct {
	alerts []alerts.Alert
}

func (f fakeAlertSource) Pending(context.Context) ([]alerts.Alert, error) {
	return f.alerts, nil
}

type fakeShiftSource struct {
	shifts []scheduling.Shift
}

func (f fakeShiftSource) ListBetween(context.Context, time.Time, time.Time) ([]scheduling.Shift, error) {
	return f.shifts, nil
}

type fakeEmployeeSource struct {
	employees []workforce.Employee
}

func (f fakeEmployeeSource) EmployeeSnapshot(context.Context) ([]workforce.Employee, error) {
	return f.employees, nil
}

func TestAlertReportPDF(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	service := NewService(fakeAlertSource{alerts: []alerts.Alert{
		{Description: "ITV inspection due", Due: alerts.DueOn(due), Urgency: alerts.UrgencyHigh},
		{Description: "Oil change", Due: alerts.DueAtKm(120000), Urgency: alerts.UrgencyLow},
	}}, fakeShiftSource{}, fakeEmployeeSource{})

	out, err := service.AlertReportPDF(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %q", out[:min(len(out), 8)])
	}
}

func TestAlertReportPDFEmpty(t *testing.T) {
	service := NewService(fakeAlertSource{}, fakeShiftSource{}, fakeEmployeeSource{})
	out, err := service.AlertReportPDF(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected PDF output for empty report")
	}
}

func TestShiftRosterPDF(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	service := NewService(fakeAlertSource{}, fakeShiftSource{shifts: []scheduling.Shift{
		{ID: "s1", EmployeeID: "e1", Start: start, End: start.Add(8 * time.Hour)},
	}}, fakeEmployeeSource{employees: []workforce.Employee{
		{ID: "e1", FirstName: "Ana", LastName: "Garcia"},
	}})

	out, err := service.ShiftRosterPDF(context.Background(), start.AddDate(0, 0, -1), start.AddDate(0, 0, 6))
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}

func TestFormatDue(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		due  alerts.Due
		want string
	}{
		{"date", alerts.DueOn(date), "2026-09-15"},
		{"mileage", alerts.DueAtKm(120000), "120000 km"},
		{"empty", alerts.Due{}, "-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatDue(tc.due); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
