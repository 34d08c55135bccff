package appointmentRepo

import (
	"context"
	"fmt"

	"gearbook/config"
	"gearbook/database"
	"gearbook/database/repository"
	"gearbook/models"
	"gearbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDatabase)
	return &MongoAppointmentRepo{coll: db.Collection("appointments")}
}

func (repo *MongoAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return repo.find(ctx, bson.M{"date": date})
}

func (repo *MongoAppointmentRepo) GetByDateAndMechanic(ctx context.Context, date, mechanicID string) ([]models.Appointment, error) {
	return repo.find(ctx, bson.M{"date": date, "mechanic_id": mechanicID})
}

func (repo *MongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := repository.WithRetry(ctx, config.AppConfig.StoreRetries, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, config.StoreTimeout())
		defer cancel()

		cursor, err := repo.coll.Find(ctx, filter)
		if err != nil {
			return fmt.Errorf("error finding appointments: %w", err)
		}
		defer cursor.Close(ctx)

		appts = appts[:0]
		for cursor.Next(ctx) {
			var a models.Appointment
			if err := cursor.Decode(&a); err != nil {
				return fmt.Errorf("error decoding appointment: %w", err)
			}
			if !validAppointment(a) {
				utils.GetLogger().Warn("skipping malformed appointment record",
					zap.String("id", a.ID), zap.Any("filter", filter))
				continue
			}
			appts = append(appts, a)
		}
		if err := cursor.Err(); err != nil {
			return fmt.Errorf("cursor error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// validAppointment gates loosely-typed store records at the read boundary;
// records missing required fields are logged and skipped rather than
// propagated with nil holes.
func validAppointment(a models.Appointment) bool {
	if a.ID == "" || a.Date == "" || a.Status == "" {
		return false
	}
	switch a.Status {
	case models.AppointmentStatusPending, models.AppointmentStatusScheduled,
		models.AppointmentStatusCompleted, models.AppointmentStatusCancelled:
	default:
		return false
	}
	return true
}
