package blockRepo

import (
	"context"
	"errors"
	"fmt"

	"gearbook/config"
	"gearbook/database"
	"gearbook/database/repository"
	"gearbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBlockRepo implements BlockRepository using MongoDB.
type MongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a new instance of MongoBlockRepo.
func NewMongoBlockRepo() BlockRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDatabase)
	return &MongoBlockRepo{coll: db.Collection("manual_blocks")}
}

func (repo *MongoBlockRepo) GetByDate(ctx context.Context, date string) (*models.ManualBlock, error) {
	var block *models.ManualBlock
	err := repository.WithRetry(ctx, config.AppConfig.StoreRetries, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, config.StoreTimeout())
		defer cancel()

		var b models.ManualBlock
		if err := repo.coll.FindOne(ctx, bson.M{"date": date}).Decode(&b); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				block = nil
				return nil
			}
			return fmt.Errorf("error fetching manual block for %s: %w", date, err)
		}
		block = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}
