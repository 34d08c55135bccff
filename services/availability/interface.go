package availability

import (
	"context"

	"gearbook/models"
)

// AvailabilityService computes unavailable intervals and answers slot
// queries. It is stateless: every call is a pure computation over data
// fetched at the start of the request, so answers are point-in-time and
// carry no reservation semantics. A booking commit must still perform its
// own conditional write at the storage layer.
type AvailabilityService interface {
	// DayReport computes the merged and raw unavailability views for one
	// date, optionally narrowed to a single mechanic.
	DayReport(ctx context.Context, date, mechanicID string) (*models.MergedReport, error)
	// CheckSlot answers a point query, returning both the check result and
	// the full day report it was evaluated against.
	CheckSlot(ctx context.Context, q ValidatedQuery) (*models.AvailabilityCheckResult, *models.MergedReport, error)
	// RangeReport computes DayReport for every date in the inclusive range.
	// A failed date yields a per-date error instead of failing the range.
	RangeReport(ctx context.Context, startDate, endDate, mechanicID string) (map[string]DayResult, error)
}

// DayResult is one date's outcome within a range query.
type DayResult struct {
	Report *models.MergedReport
	Err    error
}
