package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartserver/internal/domain/entity"
	"smartserver/internal/domain/repository"
	apperrors "smartserver/pkg/errors"
)

// Server error codes caused by the submitted document rather than the server.
var clientWriteErrorCodes = []int{
	2,     // BadValue
	9,     // FailedToParse
	14,    // TypeMismatch
	52,    // DollarPrefixedFieldName
	55,    // InvalidDBRef
	56,    // EmptyFieldName
	57,    // DottedFieldName
	66,    // ImmutableField
	121,   // DocumentValidationFailure
	10334, // BSONObjectTooLarge
}

type mongoDocumentRepository struct {
	collection *mongo.Collection
	resource   string
}

func NewMongoDocumentRepository(db *mongo.Database, name string) repository.DocumentRepository {
	return &mongoDocumentRepository{
		collection: db.Collection(name),
		resource:   strings.TrimSuffix(name, "s"),
	}
}

func (r *mongoDocumentRepository) InsertOne(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, bson.M(doc.WithoutID()))
	if err != nil {
		return nil, writeError("Failed to insert document", err)
	}

	return &entity.InsertResult{
		Acknowledged: true,
		InsertedID:   idString(res.InsertedID),
	}, nil
}

func (r *mongoDocumentRepository) Find(ctx context.Context, query repository.FindQuery) ([]entity.Document, error) {
	filter := bson.M{}
	for k, v := range query.Filter {
		filter[k] = v
	}

	opts := options.Find()
	if query.Sort != nil {
		opts.SetSort(bson.D{{Key: query.Sort.Field, Value: int(query.Sort.Direction)}})
	}
	if query.Limit > 0 {
		opts.SetLimit(int64(query.Limit))
	}
	if len(query.Projection) > 0 {
		projection := bson.M{entity.FieldID: 1}
		for _, f := range query.Projection {
			projection[f] = 1
		}
		opts.SetProjection(projection)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Internal("Failed to find documents", err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, apperrors.Internal("Failed to read documents", err)
	}

	docs := make([]entity.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, toDocument(m))
	}
	return docs, nil
}

func (r *mongoDocumentRepository) FindOne(ctx context.Context, id string) (entity.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid id", err)
	}

	var m bson.M
	err = r.collection.FindOne(ctx, bson.M{entity.FieldID: oid}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(r.resource, err)
		}
		return nil, apperrors.Internal("Failed to find document", err)
	}

	return toDocument(m), nil
}

func (r *mongoDocumentRepository) UpdateOne(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid id", err)
	}

	set := fields.WithoutID()
	if len(set) == 0 {
		// $set with an empty document is rejected by the server.
		n, err := r.collection.CountDocuments(ctx, bson.M{entity.FieldID: oid}, options.Count().SetLimit(1))
		if err != nil {
			return nil, apperrors.Internal("Failed to update document", err)
		}
		return &entity.UpdateResult{Acknowledged: true, MatchedCount: n}, nil
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{entity.FieldID: oid}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return nil, writeError("Failed to update document", err)
	}

	result := &entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		upserted := idString(res.UpsertedID)
		result.UpsertedID = &upserted
	}
	return result, nil
}

func (r *mongoDocumentRepository) DeleteOne(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid id", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{entity.FieldID: oid})
	if err != nil {
		return nil, apperrors.Internal("Failed to delete document", err)
	}

	return &entity.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *mongoDocumentRepository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, nil)
}

func writeError(message string, err error) *apperrors.AppError {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		for _, code := range clientWriteErrorCodes {
			if serverErr.HasErrorCode(code) {
				return apperrors.BadRequest("Invalid document", err)
			}
		}
	}
	return apperrors.Internal(message, err)
}

func toDocument(m bson.M) entity.Document {
	doc := entity.Document(m)
	if id, ok := doc[entity.FieldID]; ok {
		doc[entity.FieldID] = idString(id)
	}
	return doc
}

func idString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}
