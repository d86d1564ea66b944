package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartserver/internal/domain/entity"
	"smartserver/internal/domain/repository"
	"smartserver/pkg/errors"
)

func TestProductUseCase_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("without_email", func(t *testing.T) {
		repo := new(mockDocumentRepository)
		repo.On("Find", ctx, repository.FindQuery{}).Return([]entity.Document{{"title": "Lamp"}}, nil)

		docs, err := NewProductUseCase(repo).ListProducts(ctx, "")
		require.NoError(t, err)
		assert.Len(t, docs, 1)
		repo.AssertExpectations(t)
	})

	t.Run("with_email", func(t *testing.T) {
		repo := new(mockDocumentRepository)
		want := repository.FindQuery{Filter: map[string]interface{}{"email": "a@x.com"}}
		repo.On("Find", ctx, want).Return([]entity.Document{}, nil)

		_, err := NewProductUseCase(repo).ListProducts(ctx, "a@x.com")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestProductUseCase_ListRecentProducts(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	repo.On("Find", ctx, repository.FindQuery{
		Sort:       &repository.SortField{Field: "created_at", Direction: repository.Ascending},
		Limit:      6,
		Projection: []string{"title", "image", "price_min", "price_max"},
	}).Return([]entity.Document{}, nil)

	_, err := NewProductUseCase(repo).ListRecentProducts(ctx)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductUseCase_ListOwnerProducts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		email     string
		verified  string
		wantQuery *repository.FindQuery
		wantCode  string
	}{
		{
			name:      "matching_owner",
			email:     "a@x.com",
			verified:  "a@x.com",
			wantQuery: &repository.FindQuery{Filter: map[string]interface{}{"email": "a@x.com"}},
		},
		{
			name:      "absent_owner_lists_all",
			email:     "",
			verified:  "a@x.com",
			wantQuery: &repository.FindQuery{},
		},
		{
			name:     "other_owner_forbidden",
			email:    "b@x.com",
			verified: "a@x.com",
			wantCode: "FORBIDDEN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockDocumentRepository)
			if tc.wantQuery != nil {
				repo.On("Find", ctx, *tc.wantQuery).Return([]entity.Document{}, nil)
			}

			_, err := NewProductUseCase(repo).ListOwnerProducts(ctx, tc.email, tc.verified)
			if tc.wantCode != "" {
				assert.True(t, errors.Is(err, tc.wantCode))
				repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestProductUseCase_ByID(t *testing.T) {
	ctx := context.Background()
	id := "65a1b2c3d4e5f60718293a4b"
	repo := new(mockDocumentRepository)
	uc := NewProductUseCase(repo)

	repo.On("FindOne", ctx, id).Return(entity.Document{"_id": id, "title": "Lamp"}, nil)
	repo.On("UpdateOne", ctx, id, entity.Document{"title": "Desk Lamp"}).
		Return(&entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
	repo.On("DeleteOne", ctx, id).Return(nil, errors.Internal("Failed to delete document", stderrors.New("timeout")))

	doc, err := uc.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", doc["title"])

	res, err := uc.UpdateProduct(ctx, id, entity.Document{"title": "Desk Lamp"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	_, err = uc.DeleteProduct(ctx, id)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))

	repo.AssertExpectations(t)
}

func TestProductUseCase_CreateProduct(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	product := entity.Document{"email": "a@x.com", "title": "Lamp"}
	repo.On("InsertOne", ctx, product).Return(&entity.InsertResult{Acknowledged: true, InsertedID: "65a1b2c3d4e5f60718293a4b"}, nil)

	res, err := NewProductUseCase(repo).CreateProduct(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", res.InsertedID)
	repo.AssertExpectations(t)
}
