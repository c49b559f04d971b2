package mongodb

import (
	"context"
	"errors"

	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/repository/contract"
	"socialrobot-be/pkg/casing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommunicationRepository struct {
	coll *mongo.Collection
}

func NewCommunicationRepository(db *mongo.Database) contract.CommunicationRepository {
	return &CommunicationRepository{coll: db.Collection(CollectionCommunications)}
}

func (r *CommunicationRepository) Create(ctx context.Context, communication *entity.Communication) error {
	_, err := r.coll.InsertOne(ctx, newCommunicationDocument(communication))
	return err
}

func (r *CommunicationRepository) FindByPublicId(ctx context.Context, publicId string) (*entity.Communication, error) {
	var doc communicationDocument
	err := r.coll.FindOne(ctx, bson.M{"publicId": publicId}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *CommunicationRepository) ExistsByPublicId(ctx context.Context, publicId string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"publicId": publicId}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CommunicationRepository) UpdateFields(ctx context.Context, publicId string, fields map[entity.CommunicationField]any) (bool, error) {
	set := make(bson.M, len(fields))
	for field, value := range fields {
		set[casing.ToCamel(string(field))] = value
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"publicId": publicId}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
