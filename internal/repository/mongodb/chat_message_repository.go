package mongodb

import (
	"context"

	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatMessageRepository struct {
	coll *mongo.Collection
}

func NewChatMessageRepository(db *mongo.Database) contract.ChatMessageRepository {
	return &ChatMessageRepository{coll: db.Collection(CollectionChatMessages)}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	doc := chatMessageDocument{
		ID:              primitive.NewObjectID(),
		CommunicationId: message.CommunicationId,
		Role:            string(message.Role),
		Message:         message.Message,
		LlmModel:        string(message.LlmModel),
		Timestamp:       message.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	message.Id = doc.ID.Hex()
	return nil
}

func (r *ChatMessageRepository) FindByCommunicationId(ctx context.Context, communicationId string) ([]*entity.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"communicationId": communicationId}, opts)
	if err != nil {
		return nil, err
	}

	var docs []chatMessageDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	messages := make([]*entity.ChatMessage, 0, len(docs))
	for i := range docs {
		messages = append(messages, docs[i].toEntity())
	}
	return messages, nil
}
