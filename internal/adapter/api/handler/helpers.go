package handler

import (
	"github.com/labstack/echo/v4"

	"smartserver/internal/domain/entity"
	"smartserver/pkg/errors"
)

type idParam struct {
	ID string `param:"id" validate:"required"`
}

type productIDParam struct {
	ProductID string `param:"productId" validate:"required"`
}

var binder = &echo.DefaultBinder{}

// bindDocument decodes the JSON body into a schema-less document. Only the
// body is read so path and query values never leak into stored data.
func bindDocument(c echo.Context) (entity.Document, error) {
	var doc entity.Document
	if err := binder.BindBody(c, &doc); err != nil {
		return nil, errors.BadRequest("Invalid request body", err)
	}
	if doc == nil {
		doc = entity.Document{}
	}
	return doc, nil
}

func bindID(c echo.Context) (string, error) {
	var p idParam
	if err := binder.BindPathParams(c, &p); err != nil {
		return "", errors.BadRequest("Invalid id", err)
	}
	if err := c.Validate(&p); err != nil {
		return "", err
	}
	return p.ID, nil
}
