package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique publicId index and the lookup indexes
// used by the history queries. It is safe to call repeatedly.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionCommunications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "publicId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("communications index: %w", err)
	}

	if _, err := db.Collection(CollectionPrompts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "communicationId", Value: 1}, {Key: "createdAt", Value: 1}},
	}); err != nil {
		return fmt.Errorf("prompts index: %w", err)
	}

	if _, err := db.Collection(CollectionChatMessages).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "communicationId", Value: 1}, {Key: "timestamp", Value: 1}},
	}); err != nil {
		return fmt.Errorf("chat_messages index: %w", err)
	}
	return nil
}
