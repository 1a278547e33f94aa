package document

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database, collection string) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection(collection),
	}
}

func (r *MongoRepo) GetAll(ctx context.Context) ([]Document, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoRepo) GetByField(ctx context.Context, field, value string) ([]Document, error) {
	return r.find(ctx, bson.M{field: value})
}

func (r *MongoRepo) find(ctx context.Context, filter any) ([]Document, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.collection.Name(), err)
	}
	return docs, nil
}

// GetByID returns nil without error when no document has the id.
func (r *MongoRepo) GetByID(ctx context.Context, id string) (Document, error) {
	objectID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc Document
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", r.collection.Name(), err)
	}
	return doc, nil
}

func (r *MongoRepo) Create(ctx context.Context, doc Document) (*InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.collection.Name(), err)
	}
	return &InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// Upsert merges the top-level fields into the document with the given id,
// creating it when absent.
func (r *MongoRepo) Upsert(ctx context.Context, id string, fields Document) (*UpdateResult, error) {
	objectID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	set := make(Document, len(fields))
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidBody)
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert %s: %w", r.collection.Name(), err)
	}

	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

func (r *MongoRepo) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	objectID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete from %s: %w", r.collection.Name(), err)
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}
