package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fleetops/internal/domain/alerts"
	"fleetops/internal/domain/scheduling"
	"fleetops/internal/domain/workforce"
)

type AlertSource interface {
	Pending(ctx context.Context) ([]alerts.Alert, error)
}

type ShiftSource interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]scheduling.Shift, error)
}

type EmployeeSource interface {
	EmployeeSnapshot(ctx context.Context) ([]workforce.Employee, error)
}

type Service struct {
	alerts    AlertSource
	shifts    ShiftSource
	employees EmployeeSource
	now       func() time.Time
}

func NewService(alertSource AlertSource, shiftSource ShiftSource, employeeSource EmployeeSource) *Service {
	return &Service{alerts: alertSource, shifts: shiftSource, employees: employeeSource, now: time.Now}
}

// AlertReportPDF renders every pending alert, highest urgency first.
func (s *Service) AlertReportPDF(ctx context.Context) ([]byte, error) {
	pending, err := s.alerts.Pending(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Pending alerts")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", s.now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(25, 7, "Urgency", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 7, "Due", "1", 0, "", false, 0, "")
	pdf.CellFormat(130, 7, "Description", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, alert := range pending {
		pdf.CellFormat(25, 7, string(alert.Urgency), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, formatDue(alert.Due), "1", 0, "", false, 0, "")
		pdf.CellFormat(130, 7, alert.Description, "1", 1, "", false, 0, "")
	}
	if len(pending) == 0 {
		pdf.Cell(0, 8, "No pending alerts.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ShiftRosterPDF renders the shifts scheduled in the given window,
// grouped per employee.
func (s *Service) ShiftRosterPDF(ctx context.Context, from, to time.Time) ([]byte, error) {
	shifts, err := s.shifts.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	employees, err := s.employees.EmployeeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(employees))
	for _, employee := range employees {
		names[employee.ID] = employee.FullName()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Shift roster")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 7, "Employee", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 7, "Start", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 7, "End", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, shift := range shifts {
		name := names[shift.EmployeeID]
		if name == "" {
			name = shift.EmployeeID
		}
		pdf.CellFormat(70, 7, name, "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 7, shift.Start.Format("2006-01-02 15:04"), "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 7, shift.End.Format("2006-01-02 15:04"), "1", 1, "", false, 0, "")
	}
	if len(shifts) == 0 {
		pdf.Cell(0, 8, "No shifts scheduled in this window.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDue(due alerts.Due) string {
	switch {
	case due.Date != nil:
		return due.Date.Format("2006-01-02")
	case due.Km != nil:
		return fmt.Sprintf("%d km", *due.Km)
	default:
		return "-"
	}
}
