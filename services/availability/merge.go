package availability

import (
	"sort"

	"gearbook/models"
)

// Merge coalesces raw busy intervals into a disjoint, non-adjacent set.
// Adjacent intervals merge because adjacency is a booking conflict. Each
// merged interval keeps the full set of absorbed reasons and appointment
// IDs; the representative Reason is the first absorbed entry's tag.
// Merging an already-merged list is a no-op.
func Merge(raw []models.UnavailableInterval) []models.MergedInterval {
	if len(raw) == 0 {
		return nil
	}

	sorted := make([]models.UnavailableInterval, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Interval.Start != sorted[j].Interval.Start {
			return sorted[i].Interval.Start < sorted[j].Interval.Start
		}
		return sorted[i].Interval.End < sorted[j].Interval.End
	})

	var merged []models.MergedInterval
	current := newMerged(sorted[0])
	for _, next := range sorted[1:] {
		if current.Interval.Conflicts(next.Interval) {
			absorb(&current, next)
			continue
		}
		merged = append(merged, current)
		current = newMerged(next)
	}
	return append(merged, current)
}

func newMerged(src models.UnavailableInterval) models.MergedInterval {
	m := models.MergedInterval{
		Interval: src.Interval,
		Reason:   src.Reason,
		Reasons:  []models.UnavailabilityReason{src.Reason},
	}
	if src.AppointmentID != "" {
		m.AppointmentIDs = []string{src.AppointmentID}
	}
	return m
}

func absorb(m *models.MergedInterval, src models.UnavailableInterval) {
	if src.Interval.End > m.Interval.End {
		m.Interval.End = src.Interval.End
	}
	if !containsReason(m.Reasons, src.Reason) {
		m.Reasons = append(m.Reasons, src.Reason)
	}
	if src.AppointmentID != "" && !containsString(m.AppointmentIDs, src.AppointmentID) {
		m.AppointmentIDs = append(m.AppointmentIDs, src.AppointmentID)
	}
}

func containsReason(rs []models.UnavailabilityReason, r models.UnavailabilityReason) bool {
	for _, have := range rs {
		if have == r {
			return true
		}
	}
	return false
}

func containsString(ss []string, s string) bool {
	for _, have := range ss {
		if have == s {
			return true
		}
	}
	return false
}
