package models

// SlotView is the wire form of a plain interval: minute offsets plus a
// human-readable "HH:MM-HH:MM" label.
type SlotView struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// MergedSlotView is the wire form of one consolidated busy interval.
type MergedSlotView struct {
	Start          int                    `json:"start"`
	End            int                    `json:"end"`
	Label          string                 `json:"label"`
	Reason         UnavailabilityReason   `json:"reason"`
	Reasons        []UnavailabilityReason `json:"reasons"`
	AppointmentIDs []string               `json:"appointmentIds,omitempty"`
}

// ScheduledSlotView is the wire form of one raw appointment-sourced
// interval.
type ScheduledSlotView struct {
	Start         int                  `json:"start"`
	End           int                  `json:"end"`
	Label         string               `json:"label"`
	Reason        UnavailabilityReason `json:"reason"`
	AppointmentID string               `json:"appointmentId,omitempty"`
	Status        string               `json:"status,omitempty"`
}

// DaySlots is the single-date response body: the merged view plus the raw
// per-source lists.
type DaySlots struct {
	Date                     string              `json:"date"`
	UnavailableSlots         []MergedSlotView    `json:"unavailableSlots"`
	ManuallyUnavailableSlots []SlotView          `json:"manuallyUnavailableSlots"`
	ScheduledSlots           []ScheduledSlotView `json:"scheduledSlots"`
}

// NewDaySlots converts a merged report to its wire form. Lists are always
// present (never null) so clients can iterate without nil checks.
func NewDaySlots(r *MergedReport) DaySlots {
	out := DaySlots{
		Date:                     r.Date,
		UnavailableSlots:         make([]MergedSlotView, 0, len(r.Consolidated)),
		ManuallyUnavailableSlots: make([]SlotView, 0, len(r.ManualRaw)),
		ScheduledSlots:           make([]ScheduledSlotView, 0, len(r.ScheduledRaw)),
	}
	for _, m := range r.Consolidated {
		out.UnavailableSlots = append(out.UnavailableSlots, MergedSlotView{
			Start:          m.Interval.Start,
			End:            m.Interval.End,
			Label:          m.Interval.Label(),
			Reason:         m.Reason,
			Reasons:        m.Reasons,
			AppointmentIDs: m.AppointmentIDs,
		})
	}
	for _, iv := range r.ManualRaw {
		out.ManuallyUnavailableSlots = append(out.ManuallyUnavailableSlots, SlotView{
			Start: iv.Start,
			End:   iv.End,
			Label: iv.Label(),
		})
	}
	for _, u := range r.ScheduledRaw {
		out.ScheduledSlots = append(out.ScheduledSlots, ScheduledSlotView{
			Start:         u.Interval.Start,
			End:           u.Interval.End,
			Label:         u.Interval.Label(),
			Reason:        u.Reason,
			AppointmentID: u.AppointmentID,
			Status:        u.Status,
		})
	}
	return out
}
