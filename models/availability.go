package models

// UnavailabilityReason tags the source a busy interval came from.
type UnavailabilityReason string

const (
	ReasonManuallySet          UnavailabilityReason = "manually_set"
	ReasonScheduledAppointment UnavailabilityReason = "scheduled_appointment"
	ReasonPendingAppointment   UnavailabilityReason = "pending_appointment"
)

// UnavailableInterval is one raw busy interval with its provenance. One
// instance per source record; duplicates across sources are expected and
// resolved only in the merged view.
type UnavailableInterval struct {
	Interval      TimeInterval         `json:"interval"`
	Reason        UnavailabilityReason `json:"reason"`
	AppointmentID string               `json:"appointmentId,omitempty"`
	Status        string               `json:"status,omitempty"`
}

// MergedInterval is one coalesced busy interval. Reason is a representative
// tag (the first absorbed entry's reason); Reasons retains the full set so
// coalescing never loses provenance.
type MergedInterval struct {
	Interval       TimeInterval           `json:"interval"`
	Reason         UnavailabilityReason   `json:"reason"`
	Reasons        []UnavailabilityReason `json:"reasons"`
	AppointmentIDs []string               `json:"appointmentIds,omitempty"`
}

// MergedReport is the per-date availability picture: the consolidated view
// plus the raw per-source lists for auditability. Recomputed per request,
// never persisted.
type MergedReport struct {
	Date         string                `json:"date"`
	Consolidated []MergedInterval      `json:"consolidated"`
	ManualRaw    []TimeInterval        `json:"manualRaw"`
	ScheduledRaw []UnavailableInterval `json:"scheduledRaw"`
}

// AvailabilityCheckResult answers a single point query. ConflictCount and
// Blocked are independent signals: a slot can be staff-blocked with zero
// appointment conflicts, or conflicted without being blocked.
type AvailabilityCheckResult struct {
	Date              string       `json:"date"`
	RequestedInterval TimeInterval `json:"requestedInterval"`
	RequestedSlot     string       `json:"requestedSlot"`
	ConflictCount     int          `json:"appointmentsCount"`
	Blocked           bool         `json:"blocked"`
}
