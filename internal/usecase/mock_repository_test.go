package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"smartserver/internal/domain/entity"
	"smartserver/internal/domain/repository"
)

type mockDocumentRepository struct {
	mock.Mock
}

func (m *mockDocumentRepository) InsertOne(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	args := m.Called(ctx, doc)
	res, _ := args.Get(0).(*entity.InsertResult)
	return res, args.Error(1)
}

func (m *mockDocumentRepository) Find(ctx context.Context, query repository.FindQuery) ([]entity.Document, error) {
	args := m.Called(ctx, query)
	docs, _ := args.Get(0).([]entity.Document)
	return docs, args.Error(1)
}

func (m *mockDocumentRepository) FindOne(ctx context.Context, id string) (entity.Document, error) {
	args := m.Called(ctx, id)
	doc, _ := args.Get(0).(entity.Document)
	return doc, args.Error(1)
}

func (m *mockDocumentRepository) UpdateOne(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	res, _ := args.Get(0).(*entity.UpdateResult)
	return res, args.Error(1)
}

func (m *mockDocumentRepository) DeleteOne(ctx context.Context, id string) (*entity.DeleteResult, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*entity.DeleteResult)
	return res, args.Error(1)
}
