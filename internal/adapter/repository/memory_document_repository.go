package repository

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartserver/internal/domain/entity"
	"smartserver/internal/domain/repository"
	"smartserver/pkg/errors"
)

// memoryDocumentRepository keeps one collection in process memory. Ids are
// ObjectID hex strings so the HTTP contract matches the mongo driver.
type memoryDocumentRepository struct {
	name  string
	mu    sync.RWMutex
	order []string
	docs  map[string]entity.Document
}

func NewMemoryDocumentRepository(name string) repository.DocumentRepository {
	return &memoryDocumentRepository{
		name: name,
		docs: make(map[string]entity.Document),
	}
}

func (r *memoryDocumentRepository) InsertOne(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	id := primitive.NewObjectID().Hex()

	stored := cloneDocument(doc.WithoutID())
	stored[entity.FieldID] = id

	r.mu.Lock()
	r.docs[id] = stored
	r.order = append(r.order, id)
	r.mu.Unlock()

	return &entity.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *memoryDocumentRepository) Find(ctx context.Context, query repository.FindQuery) ([]entity.Document, error) {
	// Copies are taken under the lock; sorting and projection run on them.
	r.mu.RLock()
	var matched []entity.Document
	for _, id := range r.order {
		doc := r.docs[id]
		if matchesFilter(doc, query.Filter) {
			matched = append(matched, cloneDocument(doc))
		}
	}
	r.mu.RUnlock()

	if query.Sort != nil {
		field, dir := query.Sort.Field, query.Sort.Direction
		sort.SliceStable(matched, func(i, j int) bool {
			c := compareValues(matched[i][field], matched[j][field])
			if dir == repository.Descending {
				return c > 0
			}
			return c < 0
		})
	}

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}

	results := make([]entity.Document, 0, len(matched))
	for _, doc := range matched {
		results = append(results, project(doc, query.Projection))
	}
	return results, nil
}

func (r *memoryDocumentRepository) FindOne(ctx context.Context, id string) (entity.Document, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, errors.BadRequest("Invalid id", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, errors.NotFound(r.resource(), nil)
	}
	return cloneDocument(doc), nil
}

func (r *memoryDocumentRepository) UpdateOne(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, errors.BadRequest("Invalid id", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := &entity.UpdateResult{Acknowledged: true}
	doc, ok := r.docs[id]
	if !ok {
		return result, nil
	}
	result.MatchedCount = 1

	modified := false
	for k, v := range fields.WithoutID() {
		if current, exists := doc[k]; exists && reflect.DeepEqual(current, v) {
			continue
		}
		doc[k] = cloneValue(v)
		modified = true
	}
	if modified {
		result.ModifiedCount = 1
	}
	return result, nil
}

func (r *memoryDocumentRepository) DeleteOne(ctx context.Context, id string) (*entity.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, errors.BadRequest("Invalid id", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := &entity.DeleteResult{Acknowledged: true}
	if _, ok := r.docs[id]; !ok {
		return result, nil
	}
	delete(r.docs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	result.DeletedCount = 1
	return result, nil
}

func (r *memoryDocumentRepository) Ping(ctx context.Context) error {
	return nil
}

func (r *memoryDocumentRepository) resource() string {
	return strings.TrimSuffix(r.name, "s")
}

func matchesFilter(doc entity.Document, filter map[string]interface{}) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(normalizeNumber(got), normalizeNumber(want)) {
			return false
		}
	}
	return true
}

func project(doc entity.Document, fields []string) entity.Document {
	if len(fields) == 0 {
		return doc
	}
	out := entity.Document{entity.FieldID: doc[entity.FieldID]}
	for _, f := range fields {
		if v, ok := doc[f]; ok {
			out[f] = v
		}
	}
	return out
}

// compareValues orders values roughly the way MongoDB does across types:
// missing/null, numbers, strings, booleans, dates, everything else.
func compareValues(a, b interface{}) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return ra - rb
	}

	switch av := normalizeNumber(a).(type) {
	case float64:
		bv := normalizeNumber(b).(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	case string:
		return strings.Compare(av, b.(string))
	case bool:
		bv := b.(bool)
		switch {
		case !av && bv:
			return -1
		case av && !bv:
			return 1
		}
	case time.Time:
		return av.Compare(b.(time.Time))
	}
	return 0
}

func typeRank(v interface{}) int {
	switch normalizeNumber(v).(type) {
	case nil:
		return 0
	case float64:
		return 1
	case string:
		return 2
	case bool:
		return 3
	case time.Time:
		return 4
	default:
		return 5
	}
}

func normalizeNumber(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	}
	return v
}

func cloneDocument(doc entity.Document) entity.Document {
	out := make(entity.Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return map[string]interface{}(cloneDocument(entity.Document(t)))
	case entity.Document:
		return cloneDocument(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	}
	return v
}
