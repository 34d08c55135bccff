package blockRepo

import (
	"context"
	"time"

	"gearbook/config"
	"gearbook/database"
	"gearbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes enforces one manual-block document per date.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.MongoClient.Database(config.AppConfig.MongoDatabase).Collection("manual_blocks")
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
		utils.GetLogger().Error("failed to create manual block index", zap.Error(err))
	}
}
