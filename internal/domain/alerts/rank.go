package alerts

import "sort"

// Merge combines freshly derived alerts with persisted manual records. A
// manual record whose key was re-derived is superseded by the derived
// version, except that a true seen flag carries over. Manual records whose
// keys were not re-derived pass through untouched.
func Merge(derived, manual []Alert) []Alert {
	derivedKeys := make(map[Key]bool, len(derived))
	for _, alert := range derived {
		derivedKeys[alert.Key] = true
	}

	seen := make(map[Key]bool)
	var out []Alert
	for _, alert := range manual {
		if derivedKeys[alert.Key] {
			if alert.Seen {
				seen[alert.Key] = true
			}
			continue
		}
		out = append(out, alert)
	}

	for _, alert := range derived {
		if seen[alert.Key] {
			alert.Seen = true
		}
		out = append(out, alert)
	}
	return out
}

// Rank filters out seen alerts, sorts high urgency first and then by
// ascending due date (mileage-based dues last), and truncates to limit. The
// sort is stable; non-high urgencies keep their relative order.
func Rank(merged []Alert, limit int) []Alert {
	pending := make([]Alert, 0, len(merged))
	for _, alert := range merged {
		if alert.Seen {
			continue
		}
		pending = append(pending, alert)
	}

	sort.SliceStable(pending, func(i, j int) bool {
		iHigh := pending[i].Urgency == UrgencyHigh
		jHigh := pending[j].Urgency == UrgencyHigh
		if iHigh != jHigh {
			return iHigh
		}
		return pending[i].Due.sortValue() < pending[j].Due.sortValue()
	})

	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

// CountPending counts unseen alerts in a merged set.
func CountPending(merged []Alert) int {
	count := 0
	for _, alert := range merged {
		if !alert.Seen {
			count++
		}
	}
	return count
}
