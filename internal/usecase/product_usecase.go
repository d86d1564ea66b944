package usecase

import (
	"context"

	"smartserver/internal/domain/entity"
	"smartserver/internal/domain/repository"
)

type ProductUseCase struct {
	productRepo repository.DocumentRepository
}

func NewProductUseCase(productRepo repository.DocumentRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, product entity.Document) (*entity.InsertResult, error) {
	return uc.productRepo.InsertOne(ctx, product)
}

// ListProducts returns every product, or only those owned by email when set.
func (uc *ProductUseCase) ListProducts(ctx context.Context, email string) ([]entity.Document, error) {
	return uc.productRepo.Find(ctx, repository.FindQuery{
		Filter: ownerFilter(entity.FieldEmail, email),
	})
}

// ListRecentProducts returns the six oldest-created products as cards.
func (uc *ProductUseCase) ListRecentProducts(ctx context.Context) ([]entity.Document, error) {
	return uc.productRepo.Find(ctx, repository.FindQuery{
		Sort:       &repository.SortField{Field: entity.FieldCreatedAt, Direction: repository.Ascending},
		Limit:      recentProductsLimit,
		Projection: recentProductFields,
	})
}

// ListOwnerProducts lists products for email on behalf of the verified caller.
func (uc *ProductUseCase) ListOwnerProducts(ctx context.Context, email, verifiedEmail string) ([]entity.Document, error) {
	if err := checkOwner(email, verifiedEmail); err != nil {
		return nil, err
	}
	return uc.ListProducts(ctx, email)
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (entity.Document, error) {
	return uc.productRepo.FindOne(ctx, id)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error) {
	return uc.productRepo.UpdateOne(ctx, id, fields)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) (*entity.DeleteResult, error) {
	return uc.productRepo.DeleteOne(ctx, id)
}
