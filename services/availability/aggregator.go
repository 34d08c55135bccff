package availability

import (
	"context"

	"gearbook/models"

	"go.uber.org/zap"
)

// collectUnavailable pulls the raw busy intervals for one date from both
// sources: the staff manual block and the qualifying appointments. No
// deduplication happens here; the same wall-clock range may appear once per
// source record, and the merge step resolves the duplication.
func (s *DefaultAvailabilityService) collectUnavailable(ctx context.Context, date, mechanicID string) ([]models.UnavailableInterval, error) {
	block, err := s.BlockRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, &UpstreamError{Date: date, Err: err}
	}

	var appts []models.Appointment
	if mechanicID != "" {
		appts, err = s.AppointmentRepo.GetByDateAndMechanic(ctx, date, mechanicID)
	} else {
		appts, err = s.AppointmentRepo.GetByDate(ctx, date)
	}
	if err != nil {
		return nil, &UpstreamError{Date: date, Err: err}
	}

	raw := blockIntervals(block, s.Logger)
	for i := range appts {
		raw = append(raw, appointmentIntervals(&appts[i], s.Logger)...)
	}
	return raw, nil
}

// blockIntervals emits one manually_set entry per valid block range.
func blockIntervals(block *models.ManualBlock, logger *zap.Logger) []models.UnavailableInterval {
	if block == nil {
		return nil
	}
	var out []models.UnavailableInterval
	for _, entry := range block.Intervals {
		iv := models.TimeInterval{Date: block.Date, Start: entry.Start, End: entry.End}
		if !iv.Valid() {
			logger.Warn("skipping malformed manual block entry",
				zap.String("date", block.Date), zap.Int("start", entry.Start), zap.Int("end", entry.End))
			continue
		}
		out = append(out, models.UnavailableInterval{
			Interval: iv,
			Reason:   models.ReasonManuallySet,
		})
	}
	return out
}

// appointmentIntervals derives the busy intervals one appointment
// contributes. Cancelled and completed appointments contribute nothing. A
// confirmed slot is authoritative; before confirmation, only the priority-1
// selected intervals of a paid pending appointment count, one entry each.
func appointmentIntervals(a *models.Appointment, logger *zap.Logger) []models.UnavailableInterval {
	if a.Status == models.AppointmentStatusCancelled || a.Status == models.AppointmentStatusCompleted {
		return nil
	}

	if iv, ok := a.ScheduledInterval(); ok {
		return []models.UnavailableInterval{{
			Interval:      iv,
			Reason:        models.ReasonScheduledAppointment,
			AppointmentID: a.ID,
			Status:        a.Status,
		}}
	}
	if a.ScheduledStart != nil || a.ScheduledEnd != nil {
		logger.Warn("skipping appointment with malformed scheduled interval", zap.String("id", a.ID))
		return nil
	}

	if a.Status != models.AppointmentStatusPending || a.PaymentStatus != models.PaymentStatusPaid {
		return nil
	}
	var out []models.UnavailableInterval
	for _, sel := range a.SelectedIntervals {
		if sel.Priority != 1 {
			continue
		}
		iv := models.TimeInterval{Date: a.Date, Start: sel.Start, End: sel.End}
		if !iv.Valid() {
			logger.Warn("skipping malformed selected interval", zap.String("id", a.ID))
			continue
		}
		out = append(out, models.UnavailableInterval{
			Interval:      iv,
			Reason:        models.ReasonPendingAppointment,
			AppointmentID: a.ID,
			Status:        a.Status,
		})
	}
	return out
}
