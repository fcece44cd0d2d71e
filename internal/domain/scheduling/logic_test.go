package scheduling

import (
	"errors"
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint before", at(9), at(11), at(12), at(14), false},
		{"disjoint after", at(15), at(17), at(12), at(14), false},
		{"back to back", at(9), at(17), at(17), at(23), false},
		{"contained", at(10), at(12), at(9), at(17), true},
		{"containing", at(8), at(18), at(9), at(17), true},
		{"partial left", at(8), at(10), at(9), at(17), true},
		{"partial right", at(16), at(18), at(9), at(17), true},
		{"identical", at(9), at(17), at(9), at(17), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps(%v,%v,%v,%v) = %v, want %v", tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	err := Validate(Shift{EmployeeID: "e1", Start: at(17), End: at(9)})
	if err == nil {
		t.Fatal("expected validation error for inverted range")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestValidateRejectsZeroLengthRange(t *testing.T) {
	if err := Validate(Shift{EmployeeID: "e1", Start: at(9), End: at(9)}); err == nil {
		t.Fatal("expected validation error for zero-length range")
	}
}

func TestValidateRejectsMissingTimes(t *testing.T) {
	if err := Validate(Shift{EmployeeID: "e1", End: at(9)}); err == nil {
		t.Fatal("expected validation error for missing start")
	}
	if err := Validate(Shift{EmployeeID: "e1", Start: at(9)}); err == nil {
		t.Fatal("expected validation error for missing end")
	}
}

func TestFindConflictSkipsOtherEmployees(t *testing.T) {
	existing := []Shift{{ID: "s1", EmployeeID: "other", Start: at(9), End: at(17)}}
	if _, ok := FindConflict(Shift{EmployeeID: "e1", Start: at(10), End: at(12)}, existing); ok {
		t.Fatal("shift of another employee must not conflict")
	}
}

func TestFindConflictSkipsShiftBeingEdited(t *testing.T) {
	existing := []Shift{{ID: "s1", EmployeeID: "e1", Start: at(9), End: at(17)}}
	candidate := Shift{ID: "s1", EmployeeID: "e1", Start: at(10), End: at(18)}
	if _, ok := FindConflict(candidate, existing); ok {
		t.Fatal("a shift must not conflict with itself while being edited")
	}
}

func TestFindConflictReturnsConflictingWindow(t *testing.T) {
	existing := []Shift{
		{ID: "s1", EmployeeID: "e1", Start: at(9), End: at(17)},
		{ID: "s2", EmployeeID: "e1", Start: at(18), End: at(20)},
	}
	conflict, ok := FindConflict(Shift{EmployeeID: "e1", Start: at(16), End: at(18)}, existing)
	if !ok {
		t.Fatal("expected conflict with [09:00,17:00)")
	}
	if conflict.ID != "s1" {
		t.Fatalf("expected conflict with s1, got %s", conflict.ID)
	}
}
