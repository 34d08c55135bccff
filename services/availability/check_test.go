package availability

import (
	"context"
	"testing"
	"time"

	"gearbook/models"
)

func mustQuery(t *testing.T, date, slot string) ValidatedQuery {
	t.Helper()
	q, err := ValidateQuery(Query{Date: date, CheckSlot: slot}, time.UTC, 60)
	if err != nil {
		t.Fatalf("ValidateQuery(%s, %s) failed: %v", date, slot, err)
	}
	return q
}

func TestCheckSlotBlockedByManualBlock(t *testing.T) {
	// Manual block 09:00-10:00, no appointments; 09:30-10:30 overlaps it.
	const date = "2024-01-15"
	blocks := &fakeBlockRepo{byDate: map[string]*models.ManualBlock{
		date: {Date: date, Intervals: []models.BlockEntry{{Start: 540, End: 600}}},
	}}
	svc := newTestService(nil, blocks)

	result, report, err := svc.CheckSlot(context.Background(), mustQuery(t, date, "09:30-10:30"))
	if err != nil {
		t.Fatalf("CheckSlot failed: %v", err)
	}
	if result.ConflictCount != 0 {
		t.Errorf("appointmentsCount = %d, want 0", result.ConflictCount)
	}
	if !result.Blocked {
		t.Error("blocked = false, want true (overlaps manual block)")
	}
	if len(report.ManualRaw) != 1 {
		t.Errorf("report has %d manual raw intervals, want 1", len(report.ManualRaw))
	}
}

func TestCheckSlotAdjacentAppointmentConflicts(t *testing.T) {
	// Appointment scheduled 14:00-15:00; a 15:00-16:00 request starts the
	// minute it ends, which counts as a conflict under the adjacency rule.
	const date = "2024-01-15"
	appts := &fakeAppointmentRepo{byDate: map[string][]models.Appointment{
		date: {scheduledAppointment("a1", date, 840, 900)},
	}}
	svc := newTestService(appts, nil)

	result, _, err := svc.CheckSlot(context.Background(), mustQuery(t, date, "15:00-16:00"))
	if err != nil {
		t.Fatalf("CheckSlot failed: %v", err)
	}
	if result.ConflictCount != 1 {
		t.Errorf("appointmentsCount = %d, want 1 (adjacency is a conflict)", result.ConflictCount)
	}
	if result.Blocked {
		t.Error("blocked = true, want false (no manual block)")
	}
}

func TestCheckSlotCancelledAppointmentIgnored(t *testing.T) {
	const date = "2024-01-15"
	cancelled := scheduledAppointment("a1", date, 600, 660)
	cancelled.Status = models.AppointmentStatusCancelled
	appts := &fakeAppointmentRepo{byDate: map[string][]models.Appointment{date: {cancelled}}}
	svc := newTestService(appts, nil)

	result, report, err := svc.CheckSlot(context.Background(), mustQuery(t, date, "10:00-11:00"))
	if err != nil {
		t.Fatalf("CheckSlot failed: %v", err)
	}
	if result.ConflictCount != 0 {
		t.Errorf("appointmentsCount = %d, want 0 (cancellation frees the slot)", result.ConflictCount)
	}
	if result.Blocked {
		t.Error("blocked = true, want false")
	}
	if len(report.ScheduledRaw) != 0 || len(report.Consolidated) != 0 {
		t.Error("cancelled appointment leaked into the report")
	}
}

func TestCheckSlotIndependentSignals(t *testing.T) {
	// Blocked and conflicted at once: both signals must report.
	const date = "2024-01-15"
	appts := &fakeAppointmentRepo{byDate: map[string][]models.Appointment{
		date: {scheduledAppointment("a1", date, 540, 600)},
	}}
	blocks := &fakeBlockRepo{byDate: map[string]*models.ManualBlock{
		date: {Date: date, Intervals: []models.BlockEntry{{Start: 540, End: 600}}},
	}}
	svc := newTestService(appts, blocks)

	result, _, err := svc.CheckSlot(context.Background(), mustQuery(t, date, "09:00-10:00"))
	if err != nil {
		t.Fatalf("CheckSlot failed: %v", err)
	}
	if result.ConflictCount != 1 {
		t.Errorf("appointmentsCount = %d, want 1", result.ConflictCount)
	}
	if !result.Blocked {
		t.Error("blocked = false, want true")
	}
}

func TestDayReportScenarioPendingPair(t *testing.T) {
	// Two paid pending appointments with priority-1 intervals 09:00-09:30
	// and 09:15-09:45: one merged window, two raw scheduled entries.
	const date = "2024-01-15"
	pending := func(id string, start, end int) models.Appointment {
		return models.Appointment{
			ID: id, Date: date,
			Status:            models.AppointmentStatusPending,
			PaymentStatus:     models.PaymentStatusPaid,
			SelectedIntervals: []models.SelectedInterval{{Start: start, End: end, Priority: 1}},
		}
	}
	appts := &fakeAppointmentRepo{byDate: map[string][]models.Appointment{
		date: {pending("a1", 540, 570), pending("a2", 555, 585)},
	}}
	svc := newTestService(appts, nil)

	report, err := svc.DayReport(context.Background(), date, "")
	if err != nil {
		t.Fatalf("DayReport failed: %v", err)
	}
	if len(report.Consolidated) != 1 {
		t.Fatalf("consolidated has %d intervals, want 1", len(report.Consolidated))
	}
	if got := report.Consolidated[0].Interval; got.Start != 540 || got.End != 585 {
		t.Errorf("consolidated interval = [%d, %d), want [540, 585)", got.Start, got.End)
	}
	if len(report.ScheduledRaw) != 2 {
		t.Errorf("scheduled raw has %d entries, want both pending appointments", len(report.ScheduledRaw))
	}
}
