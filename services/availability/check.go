package availability

import "gearbook/models"

// checkSlot evaluates a point query against the raw (unmerged) intervals,
// so appointment conflicts and staff blocks stay distinguishable.
// ConflictCount counts appointment-sourced conflicts; Blocked reflects
// manual blocks only. The two are independent signals.
func checkSlot(date, requestedSlot string, requested models.TimeInterval, raw []models.UnavailableInterval) models.AvailabilityCheckResult {
	result := models.AvailabilityCheckResult{
		Date:              date,
		RequestedInterval: requested,
		RequestedSlot:     requestedSlot,
	}
	for _, u := range raw {
		if !requested.Conflicts(u.Interval) {
			continue
		}
		switch u.Reason {
		case models.ReasonScheduledAppointment, models.ReasonPendingAppointment:
			result.ConflictCount++
		case models.ReasonManuallySet:
			result.Blocked = true
		}
	}
	return result
}
