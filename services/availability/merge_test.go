package availability

import (
	"reflect"
	"testing"

	"gearbook/models"
)

func rawInterval(start, end int, reason models.UnavailabilityReason, apptID string) models.UnavailableInterval {
	return models.UnavailableInterval{
		Interval:      models.TimeInterval{Date: "2024-01-15", Start: start, End: end},
		Reason:        reason,
		AppointmentID: apptID,
	}
}

func TestMergeCoalescesOverlapping(t *testing.T) {
	// Two paid pending requests at 09:00-09:30 and 09:15-09:45 collapse to
	// one busy window while the raw list keeps both entries.
	raw := []models.UnavailableInterval{
		rawInterval(540, 570, models.ReasonPendingAppointment, "appt-1"),
		rawInterval(555, 585, models.ReasonPendingAppointment, "appt-2"),
	}
	merged := Merge(raw)
	if len(merged) != 1 {
		t.Fatalf("Merge produced %d intervals, want 1", len(merged))
	}
	got := merged[0]
	if got.Interval.Start != 540 || got.Interval.End != 585 {
		t.Errorf("merged interval = [%d, %d), want [540, 585)", got.Interval.Start, got.Interval.End)
	}
	if !reflect.DeepEqual(got.AppointmentIDs, []string{"appt-1", "appt-2"}) {
		t.Errorf("merged appointment IDs = %v, want both source appointments", got.AppointmentIDs)
	}
}

func TestMergeTreatsAdjacencyAsConflict(t *testing.T) {
	raw := []models.UnavailableInterval{
		rawInterval(540, 600, models.ReasonScheduledAppointment, "appt-1"),
		rawInterval(600, 660, models.ReasonManuallySet, ""),
	}
	merged := Merge(raw)
	if len(merged) != 1 {
		t.Fatalf("back-to-back intervals should merge, got %d intervals", len(merged))
	}
	if merged[0].Interval.Start != 540 || merged[0].Interval.End != 660 {
		t.Errorf("merged interval = [%d, %d), want [540, 660)", merged[0].Interval.Start, merged[0].Interval.End)
	}
}

func TestMergeKeepsReasonSet(t *testing.T) {
	raw := []models.UnavailableInterval{
		rawInterval(540, 600, models.ReasonManuallySet, ""),
		rawInterval(540, 600, models.ReasonScheduledAppointment, "appt-1"),
	}
	merged := Merge(raw)
	if len(merged) != 1 {
		t.Fatalf("Merge produced %d intervals, want 1", len(merged))
	}
	got := merged[0]
	if got.Reason != models.ReasonManuallySet {
		t.Errorf("representative reason = %q, want first absorbed reason %q", got.Reason, models.ReasonManuallySet)
	}
	want := []models.UnavailabilityReason{models.ReasonManuallySet, models.ReasonScheduledAppointment}
	if !reflect.DeepEqual(got.Reasons, want) {
		t.Errorf("reason set = %v, want %v", got.Reasons, want)
	}
}

func TestMergeOutputDisjointAndNonAdjacent(t *testing.T) {
	raw := []models.UnavailableInterval{
		rawInterval(60, 120, models.ReasonManuallySet, ""),
		rawInterval(90, 150, models.ReasonScheduledAppointment, "a"),
		rawInterval(150, 180, models.ReasonPendingAppointment, "b"),
		rawInterval(300, 360, models.ReasonManuallySet, ""),
		rawInterval(500, 560, models.ReasonScheduledAppointment, "c"),
		rawInterval(420, 500, models.ReasonPendingAppointment, "d"),
	}
	merged := Merge(raw)
	for i := 1; i < len(merged); i++ {
		prev, cur := merged[i-1].Interval, merged[i].Interval
		if cur.Start <= prev.End {
			t.Errorf("intervals %d and %d are overlapping or adjacent: [%d,%d) then [%d,%d)",
				i-1, i, prev.Start, prev.End, cur.Start, cur.End)
		}
	}
	assertSameCoverage(t, raw, merged)
}

func TestMergeIdempotent(t *testing.T) {
	raw := []models.UnavailableInterval{
		rawInterval(60, 120, models.ReasonManuallySet, ""),
		rawInterval(100, 160, models.ReasonScheduledAppointment, "a"),
		rawInterval(200, 260, models.ReasonPendingAppointment, "b"),
	}
	once := Merge(raw)

	// Re-merging the merged output must be a no-op.
	again := make([]models.UnavailableInterval, 0, len(once))
	for _, m := range once {
		again = append(again, models.UnavailableInterval{Interval: m.Interval, Reason: m.Reason})
	}
	twice := Merge(again)

	if len(once) != len(twice) {
		t.Fatalf("re-merge changed interval count: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Interval != twice[i].Interval {
			t.Errorf("re-merge changed interval %d: %v -> %v", i, once[i].Interval, twice[i].Interval)
		}
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(nil); got != nil {
		t.Errorf("Merge(nil) = %v, want nil", got)
	}
}

// assertSameCoverage verifies the union of covered minutes is preserved.
func assertSameCoverage(t *testing.T, raw []models.UnavailableInterval, merged []models.MergedInterval) {
	t.Helper()
	var before, after [models.MinutesPerDay]bool
	for _, u := range raw {
		for m := u.Interval.Start; m < u.Interval.End; m++ {
			before[m] = true
		}
	}
	for _, u := range merged {
		for m := u.Interval.Start; m < u.Interval.End; m++ {
			after[m] = true
		}
	}
	if before != after {
		t.Error("merge changed the union of covered minutes")
	}
}
