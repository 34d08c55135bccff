package appointmentRepo

import (
	"context"
	"time"

	"gearbook/config"
	"gearbook/database"
	"gearbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureIndexes creates the secondary indexes backing the availability
// read path: per-date status scans and per-mechanic day views.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.MongoClient.Database(config.AppConfig.MongoDatabase).Collection("appointments")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "mechanic_id", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		utils.GetLogger().Error("failed to create appointment indexes", zap.Error(err))
	}
}
