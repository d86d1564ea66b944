package handler

import (
	"github.com/labstack/echo/v4"

	"smartserver/internal/adapter/api/middleware"
	"smartserver/internal/usecase"
	"smartserver/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	product, err := bindDocument(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.CreateProduct(c.Request().Context(), product)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.ListProducts(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) ListRecentProducts(c echo.Context) error {
	products, err := h.productUseCase.ListRecentProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

// ListMyProducts requires AuthMiddleware.Authenticate in front of it.
func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	products, err := h.productUseCase.ListOwnerProducts(
		c.Request().Context(),
		c.QueryParam("email"),
		middleware.VerifiedEmail(c),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return response.Error(c, err)
	}

	fields, err := bindDocument(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, fields)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
