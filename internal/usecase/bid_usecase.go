package usecase

import (
	"context"

	"smartserver/internal/domain/entity"
	"smartserver/internal/domain/repository"
	"smartserver/pkg/errors"
)

var byBidPriceDesc = &repository.SortField{Field: entity.FieldBidPrice, Direction: repository.Descending}

type BidUseCase struct {
	bidRepo repository.DocumentRepository
}

func NewBidUseCase(bidRepo repository.DocumentRepository) *BidUseCase {
	return &BidUseCase{
		bidRepo: bidRepo,
	}
}

func (uc *BidUseCase) CreateBid(ctx context.Context, bid entity.Document) (*entity.InsertResult, error) {
	return uc.bidRepo.InsertOne(ctx, bid)
}

// ListBids returns all bids, highest price first.
func (uc *BidUseCase) ListBids(ctx context.Context) ([]entity.Document, error) {
	return uc.bidRepo.Find(ctx, repository.FindQuery{Sort: byBidPriceDesc})
}

// ListOwnerBids lists bids placed by buyerEmail on behalf of the verified caller.
func (uc *BidUseCase) ListOwnerBids(ctx context.Context, buyerEmail, verifiedEmail string) ([]entity.Document, error) {
	if err := checkOwner(buyerEmail, verifiedEmail); err != nil {
		return nil, err
	}
	return uc.bidRepo.Find(ctx, repository.FindQuery{
		Filter: ownerFilter(entity.FieldBuyerEmail, buyerEmail),
	})
}

// ListProductBids returns the bids placed on one product, highest first.
func (uc *BidUseCase) ListProductBids(ctx context.Context, productID string) ([]entity.Document, error) {
	if productID == "" {
		return nil, errors.BadRequest("Product id is required", nil)
	}
	return uc.bidRepo.Find(ctx, repository.FindQuery{
		Filter: map[string]interface{}{entity.FieldProduct: productID},
		Sort:   byBidPriceDesc,
	})
}

func (uc *BidUseCase) GetBid(ctx context.Context, id string) (entity.Document, error) {
	return uc.bidRepo.FindOne(ctx, id)
}

func (uc *BidUseCase) UpdateBid(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error) {
	return uc.bidRepo.UpdateOne(ctx, id, fields)
}

func (uc *BidUseCase) DeleteBid(ctx context.Context, id string) (*entity.DeleteResult, error) {
	return uc.bidRepo.DeleteOne(ctx, id)
}
