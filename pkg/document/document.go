package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxBodyBytes = 1 << 20

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidBody = errors.New("invalid document body")
)

// Document is a schema-free record. Values keep their BSON types; nested
// documents decode as Document too.
type Document = bson.M

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	GetByField(ctx context.Context, field, value string) ([]Document, error)
	Create(ctx context.Context, doc Document) (*InsertResult, error)
	Upsert(ctx context.Context, id string, fields Document) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// Decode reads one JSON object from r. Extended JSON such as {"$oid": ...}
// is understood; anything that is not an object is rejected.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if len(data) > maxBodyBytes {
		return nil, fmt.Errorf("%w: body too large", ErrInvalidBody)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidBody)
	}

	doc := Document{}
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return doc, nil
}
