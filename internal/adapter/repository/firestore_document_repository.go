package repository

import (
	"context"
	"regexp"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"smartserver/internal/domain/entity"
	"smartserver/internal/domain/repository"
	"smartserver/pkg/errors"
)

// Firestore auto ids are 20 alphanumerics.
var firestoreIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{20}$`)

type firestoreDocumentRepository struct {
	client   *firestore.Client
	name     string
	resource string
}

func NewFirestoreDocumentRepository(client *firestore.Client, name string) repository.DocumentRepository {
	return &firestoreDocumentRepository{
		client:   client,
		name:     name,
		resource: strings.TrimSuffix(name, "s"),
	}
}

func (r *firestoreDocumentRepository) InsertOne(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	ref := r.client.Collection(r.name).NewDoc()

	_, err := ref.Create(ctx, map[string]interface{}(doc.WithoutID()))
	if err != nil {
		return nil, errors.Internal("Failed to insert document", err)
	}

	return &entity.InsertResult{Acknowledged: true, InsertedID: ref.ID}, nil
}

func (r *firestoreDocumentRepository) Find(ctx context.Context, query repository.FindQuery) ([]entity.Document, error) {
	q := r.client.Collection(r.name).Query

	for key, value := range query.Filter {
		q = q.WherePath(firestore.FieldPath{key}, "==", value)
	}

	// Firestore leaves documents without the ordered field out of the result.
	if query.Sort != nil {
		dir := firestore.Asc
		if query.Sort.Direction == repository.Descending {
			dir = firestore.Desc
		}
		q = q.OrderByPath(firestore.FieldPath{query.Sort.Field}, dir)
	}

	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	if len(query.Projection) > 0 {
		paths := make([]firestore.FieldPath, 0, len(query.Projection))
		for _, f := range query.Projection {
			if f == entity.FieldID {
				continue
			}
			paths = append(paths, firestore.FieldPath{f})
		}
		q = q.SelectPaths(paths...)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	docs := []entity.Document{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate documents", err)
		}
		docs = append(docs, snapshotToDocument(snap))
	}

	return docs, nil
}

func (r *firestoreDocumentRepository) FindOne(ctx context.Context, id string) (entity.Document, error) {
	if !firestoreIDPattern.MatchString(id) {
		return nil, errors.BadRequest("Invalid id", nil)
	}

	snap, err := r.client.Collection(r.name).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(r.resource, err)
		}
		return nil, errors.Internal("Failed to find document", err)
	}

	return snapshotToDocument(snap), nil
}

func (r *firestoreDocumentRepository) UpdateOne(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error) {
	if !firestoreIDPattern.MatchString(id) {
		return nil, errors.BadRequest("Invalid id", nil)
	}

	ref := r.client.Collection(r.name).Doc(id)
	result := &entity.UpdateResult{Acknowledged: true}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result.MatchedCount, result.ModifiedCount = 0, 0

		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		result.MatchedCount = 1

		current := snap.Data()
		var updates []firestore.Update
		for k, v := range fields.WithoutID() {
			if existing, ok := current[k]; ok && sameValue(existing, v) {
				continue
			}
			updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
		}
		if len(updates) == 0 {
			return nil
		}
		result.ModifiedCount = 1
		return tx.Update(ref, updates)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.UpdateResult{Acknowledged: true}, nil
		}
		return nil, errors.Internal("Failed to update document", err)
	}

	return result, nil
}

func (r *firestoreDocumentRepository) DeleteOne(ctx context.Context, id string) (*entity.DeleteResult, error) {
	if !firestoreIDPattern.MatchString(id) {
		return nil, errors.BadRequest("Invalid id", nil)
	}

	_, err := r.client.Collection(r.name).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.DeleteResult{Acknowledged: true}, nil
		}
		return nil, errors.Internal("Failed to delete document", err)
	}

	return &entity.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (r *firestoreDocumentRepository) Ping(ctx context.Context) error {
	_, err := r.client.Collection(r.name).Limit(1).Documents(ctx).GetAll()
	return err
}

func snapshotToDocument(snap *firestore.DocumentSnapshot) entity.Document {
	doc := entity.Document(snap.Data())
	if doc == nil {
		doc = entity.Document{}
	}
	doc[entity.FieldID] = snap.Ref.ID
	return doc
}

// sameValue compares after Firestore's int64 widening of JSON numbers.
func sameValue(stored, incoming interface{}) bool {
	return compareValues(stored, incoming) == 0 && typeRank(stored) < 5
}
