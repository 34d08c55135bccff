package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"gearbook/models"
)

func TestRangeReportOneKeyPerDate(t *testing.T) {
	appts := &fakeAppointmentRepo{byDate: map[string][]models.Appointment{
		"2024-03-15": {scheduledAppointment("a1", "2024-03-15", 540, 600)},
	}}
	svc := newTestService(appts, nil)
	svc.Location = time.UTC

	results, err := svc.RangeReport(context.Background(), "2024-03-15", "2024-03-17", "")
	if err != nil {
		t.Fatalf("RangeReport failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d date keys, want 3", len(results))
	}
	for _, date := range []string{"2024-03-15", "2024-03-16", "2024-03-17"} {
		res, ok := results[date]
		if !ok {
			t.Fatalf("missing date key %s", date)
		}
		if res.Err != nil {
			t.Errorf("date %s failed: %v", date, res.Err)
		}
		if res.Report == nil || res.Report.Date != date {
			t.Errorf("date %s has report %+v, want report for that date", date, res.Report)
		}
	}
	if got := len(results["2024-03-15"].Report.ScheduledRaw); got != 1 {
		t.Errorf("2024-03-15 has %d scheduled entries, want 1", got)
	}
	if got := len(results["2024-03-16"].Report.ScheduledRaw); got != 0 {
		t.Errorf("2024-03-16 has %d scheduled entries, want 0", got)
	}
}

func TestRangeReportDegradesPerDate(t *testing.T) {
	// A failure fetching the middle date must not take down its neighbors.
	appts := &fakeAppointmentRepo{
		byDate: map[string][]models.Appointment{},
		errs:   map[string]error{"2024-03-16": errors.New("timeout")},
	}
	svc := newTestService(appts, nil)
	svc.Location = time.UTC

	results, err := svc.RangeReport(context.Background(), "2024-03-15", "2024-03-17", "")
	if err != nil {
		t.Fatalf("RangeReport failed: %v", err)
	}
	if results["2024-03-15"].Err != nil || results["2024-03-17"].Err != nil {
		t.Error("healthy dates were poisoned by the failing date")
	}
	failed := results["2024-03-16"]
	if failed.Err == nil {
		t.Fatal("failing date reported no error")
	}
	var upstream *UpstreamError
	if !errors.As(failed.Err, &upstream) {
		t.Errorf("failing date error = %v, want *UpstreamError", failed.Err)
	}
}

func TestRangeReportSingleDayRange(t *testing.T) {
	svc := newTestService(nil, nil)
	svc.Location = time.UTC

	results, err := svc.RangeReport(context.Background(), "2024-03-15", "2024-03-15", "")
	if err != nil {
		t.Fatalf("RangeReport failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("got %d date keys, want 1", len(results))
	}
}

func TestRangeReportCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestService(nil, nil)
	svc.Location = time.UTC
	svc.RangeConcurrency = 1

	results, err := svc.RangeReport(ctx, "2024-03-15", "2024-03-20", "")
	if err != nil {
		t.Fatalf("RangeReport failed: %v", err)
	}
	// Every date still gets an entry; none may hang.
	if len(results) != 6 {
		t.Errorf("got %d date keys, want 6", len(results))
	}
}
