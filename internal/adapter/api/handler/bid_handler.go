package handler

import (
	"github.com/labstack/echo/v4"

	"smartserver/internal/adapter/api/middleware"
	"smartserver/internal/usecase"
	"smartserver/pkg/errors"
	"smartserver/pkg/response"
)

type BidHandler struct {
	bidUseCase *usecase.BidUseCase
}

func NewBidHandler(bidUseCase *usecase.BidUseCase) *BidHandler {
	return &BidHandler{
		bidUseCase: bidUseCase,
	}
}

func (h *BidHandler) CreateBid(c echo.Context) error {
	bid, err := bindDocument(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.bidUseCase.CreateBid(c.Request().Context(), bid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *BidHandler) ListBids(c echo.Context) error {
	bids, err := h.bidUseCase.ListBids(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bids)
}

// ListMyBids requires AuthMiddleware.Authenticate in front of it.
func (h *BidHandler) ListMyBids(c echo.Context) error {
	bids, err := h.bidUseCase.ListOwnerBids(
		c.Request().Context(),
		c.QueryParam("buyer_email"),
		middleware.VerifiedEmail(c),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bids)
}

func (h *BidHandler) ListProductBids(c echo.Context) error {
	var p productIDParam
	if err := binder.BindPathParams(c, &p); err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}
	if err := c.Validate(&p); err != nil {
		return response.Error(c, err)
	}

	bids, err := h.bidUseCase.ListProductBids(c.Request().Context(), p.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bids)
}

func (h *BidHandler) GetBid(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return response.Error(c, err)
	}

	bid, err := h.bidUseCase.GetBid(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}

func (h *BidHandler) UpdateBid(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return response.Error(c, err)
	}

	fields, err := bindDocument(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.bidUseCase.UpdateBid(c.Request().Context(), id, fields)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *BidHandler) DeleteBid(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.bidUseCase.DeleteBid(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
