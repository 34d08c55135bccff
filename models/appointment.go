package models

import "time"

// Appointment status values form a closed set; anything else in the store
// is treated as a data defect and skipped at the aggregation boundary.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// SelectedInterval is one customer-preferred slot submitted at booking
// time, ranked by priority (1 = first choice).
type SelectedInterval struct {
	Start    int `bson:"start" json:"start"`
	End      int `bson:"end" json:"end"`
	Priority int `bson:"priority" json:"priority"`
}

// Appointment is a stored service appointment. ScheduledStart/End are set
// only once staff confirm a slot; before that the customer's selected
// intervals are the only timing information.
type Appointment struct {
	ID                string             `bson:"id" json:"id"`
	CustomerID        string             `bson:"customer_id" json:"customerId"`
	MechanicID        string             `bson:"mechanic_id,omitempty" json:"mechanicId,omitempty"`
	VehicleID         string             `bson:"vehicle_id,omitempty" json:"vehicleId,omitempty"`
	ServiceType       string             `bson:"service_type" json:"serviceType"`
	Date              string             `bson:"date" json:"date"` // e.g., "2025-02-25"
	Status            string             `bson:"status" json:"status"`
	PaymentStatus     string             `bson:"payment_status" json:"paymentStatus"`
	ScheduledStart    *int               `bson:"scheduled_start,omitempty" json:"scheduledStart,omitempty"`
	ScheduledEnd      *int               `bson:"scheduled_end,omitempty" json:"scheduledEnd,omitempty"`
	SelectedIntervals []SelectedInterval `bson:"selected_intervals,omitempty" json:"selectedIntervals,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ScheduledInterval returns the confirmed slot, if one has been assigned.
func (a *Appointment) ScheduledInterval() (TimeInterval, bool) {
	if a.ScheduledStart == nil || a.ScheduledEnd == nil {
		return TimeInterval{}, false
	}
	iv := TimeInterval{Date: a.Date, Start: *a.ScheduledStart, End: *a.ScheduledEnd}
	return iv, iv.Valid()
}
