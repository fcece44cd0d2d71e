package alerts

import (
	"testing"
	"time"
)

func dateDue(t time.Time) Due { return DueOn(t) }

func TestMergePreservesSeenFlag(t *testing.T) {
	key := Key{Kind: KindVehicle, EntityID: "v1", Facet: FacetITV}
	derived := []Alert{{Key: key, Type: TypeITV, Urgency: UrgencyMedium}}
	manual := []Alert{{Key: key, Type: TypeITV, Urgency: UrgencyLow, Seen: true, Manual: true}}

	merged := Merge(derived, manual)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged alert, got %d", len(merged))
	}
	if !merged[0].Seen {
		t.Fatal("seen flag from the persisted record must carry over")
	}
	if merged[0].Urgency != UrgencyMedium {
		t.Fatal("derived fields must supersede the persisted record")
	}
}

func TestMergeKeepsManualOnlyAlerts(t *testing.T) {
	manual := []Alert{{
		Key:     Key{Kind: KindVehicle, EntityID: "v9", Facet: "manual-1"},
		Urgency: UrgencyLow,
		Manual:  true,
	}}
	merged := Merge(nil, manual)
	if len(merged) != 1 || !merged[0].Manual {
		t.Fatalf("manual-only alert must pass through, got %v", merged)
	}
}

func TestRankFiltersSeen(t *testing.T) {
	alerts := []Alert{
		{Key: Key{Kind: KindVehicle, EntityID: "v1", Facet: "a"}, Urgency: UrgencyMedium, Seen: true},
		{Key: Key{Kind: KindVehicle, EntityID: "v2", Facet: "b"}, Urgency: UrgencyMedium},
	}
	ranked := Rank(alerts, DashboardLimit)
	if len(ranked) != 1 {
		t.Fatalf("expected seen alerts filtered, got %d", len(ranked))
	}
	if ranked[0].Key.EntityID != "v2" {
		t.Fatal("wrong alert survived the seen filter")
	}
}

func TestRankHighBeforeAnythingElse(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	alerts := []Alert{
		{Key: Key{EntityID: "low"}, Urgency: UrgencyLow, Due: dateDue(base)},
		{Key: Key{EntityID: "medium"}, Urgency: UrgencyMedium, Due: dateDue(base.AddDate(0, 0, 1))},
		{Key: Key{EntityID: "high"}, Urgency: UrgencyHigh, Due: dateDue(base.AddDate(0, 0, 9))},
	}
	ranked := Rank(alerts, DashboardLimit)
	if ranked[0].Key.EntityID != "high" {
		t.Fatalf("high urgency must rank first, got %s", ranked[0].Key.EntityID)
	}
	// low vs medium keep due-date order, not urgency order
	if ranked[1].Key.EntityID != "low" || ranked[2].Key.EntityID != "medium" {
		t.Fatalf("non-high alerts must sort by due date, got %s then %s", ranked[1].Key.EntityID, ranked[2].Key.EntityID)
	}
}

func TestRankMileageDuesSortLast(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	alerts := []Alert{
		{Key: Key{EntityID: "km"}, Urgency: UrgencyMedium, Due: DueAtKm(150000)},
		{Key: Key{EntityID: "date"}, Urgency: UrgencyMedium, Due: dateDue(base.AddDate(0, 0, 29))},
	}
	ranked := Rank(alerts, DashboardLimit)
	if ranked[0].Key.EntityID != "date" {
		t.Fatal("date dues must sort before mileage dues")
	}
}

func TestRankTruncatesToLimit(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var alerts []Alert
	for i := 0; i < 9; i++ {
		alerts = append(alerts, Alert{
			Key:     Key{Kind: KindVehicle, EntityID: string(rune('a' + i)), Facet: "x"},
			Urgency: UrgencyMedium,
			Due:     dateDue(base.AddDate(0, 0, i)),
		})
	}
	ranked := Rank(alerts, DashboardLimit)
	if len(ranked) != DashboardLimit {
		t.Fatalf("expected %d alerts, got %d", DashboardLimit, len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Due.sortValue() < ranked[i-1].Due.sortValue() {
			t.Fatal("ranked alerts must be in ascending due order")
		}
	}
}
