package scheduling

import "time"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Validate checks the candidate's time range. Zero timestamps and inverted or
// empty ranges are rejected before conflict detection runs.
func Validate(candidate Shift) error {
	if candidate.EmployeeID == "" {
		return &ValidationError{Field: "employeeId", Reason: "is required"}
	}
	if candidate.Start.IsZero() {
		return &ValidationError{Field: "start", Reason: "must be a valid date-time"}
	}
	if candidate.End.IsZero() {
		return &ValidationError{Field: "end", Reason: "must be a valid date-time"}
	}
	if !candidate.Start.Before(candidate.End) {
		return &ValidationError{Field: "start", Reason: "must be before end"}
	}
	return nil
}

// FindConflict returns the first existing shift of the same employee that
// overlaps the candidate. The shift being edited is matched by id and skipped.
func FindConflict(candidate Shift, existing []Shift) (Shift, bool) {
	for _, shift := range existing {
		if candidate.ID != "" && shift.ID == candidate.ID {
			continue
		}
		if shift.EmployeeID != candidate.EmployeeID {
			continue
		}
		if Overlaps(candidate.Start, candidate.End, shift.Start, shift.End) {
			return shift, true
		}
	}
	return Shift{}, false
}
