package appointmentRepo

import (
	"context"

	"gearbook/models"
)

// AppointmentRepository defines read access to stored appointments. The
// availability engine only reads; appointment writes belong to the booking
// flow, which is a separate service.
type AppointmentRepository interface {
	// GetByDate returns every appointment on the given date, regardless of
	// status. Status filtering is an engine concern.
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// GetByDateAndMechanic narrows GetByDate to one mechanic's workload.
	GetByDateAndMechanic(ctx context.Context, date, mechanicID string) ([]models.Appointment, error)
}
