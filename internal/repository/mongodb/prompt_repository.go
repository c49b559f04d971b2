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

type PromptRepository struct {
	coll *mongo.Collection
}

func NewPromptRepository(db *mongo.Database) contract.PromptRepository {
	return &PromptRepository{coll: db.Collection(CollectionPrompts)}
}

func (r *PromptRepository) Create(ctx context.Context, prompt *entity.Prompt) error {
	doc := promptDocument{
		ID:                  primitive.NewObjectID(),
		CommunicationId:     prompt.CommunicationId,
		UserInput:           prompt.UserInput,
		InitialPromptSuffix: prompt.InitialPromptSuffix,
		GeneratedPrompt:     prompt.GeneratedPrompt,
		LlmModel:            string(prompt.LlmModel),
		CreatedAt:           prompt.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	prompt.Id = doc.ID.Hex()
	return nil
}

func (r *PromptRepository) FindByCommunicationId(ctx context.Context, communicationId string) ([]*entity.Prompt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"communicationId": communicationId}, opts)
	if err != nil {
		return nil, err
	}

	var docs []promptDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	prompts := make([]*entity.Prompt, 0, len(docs))
	for i := range docs {
		prompts = append(prompts, docs[i].toEntity())
	}
	return prompts, nil
}
