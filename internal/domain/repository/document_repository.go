package repository

import (
	"context"

	"smartserver/internal/domain/entity"
)

type SortDirection int

const (
	Ascending  SortDirection = 1
	Descending SortDirection = -1
)

type SortField struct {
	Field     string
	Direction SortDirection
}

// FindQuery describes a findMany call. Filter values are matched exactly.
// A zero Limit means no limit; an empty Projection returns whole documents.
// When Projection is set the id is always included.
type FindQuery struct {
	Filter     map[string]interface{}
	Sort       *SortField
	Limit      int
	Projection []string
}

// DocumentRepository is one collection of schema-less documents.
type DocumentRepository interface {
	InsertOne(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
	Find(ctx context.Context, query FindQuery) ([]entity.Document, error)
	FindOne(ctx context.Context, id string) (entity.Document, error)
	UpdateOne(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error)
	DeleteOne(ctx context.Context, id string) (*entity.DeleteResult, error)
}

// Pinger is implemented by stores that can report their connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
