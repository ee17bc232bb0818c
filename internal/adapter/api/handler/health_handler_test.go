package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamezone/internal/domain/entity"
	"gamezone/internal/usecase"
	"gamezone/pkg/errors"
)

type staticProductRepo struct {
	products []*entity.Product
}

func (r *staticProductRepo) FetchAll(ctx context.Context) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *staticProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product not found", nil)
}

func TestCheckHealth(t *testing.T) {
	catalog := usecase.NewCatalogUseCase(&staticProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "PS5"},
		{ID: "p2", Name: "Switch"},
	}})
	require.NoError(t, catalog.Load(context.Background()))
	SetupHealthHandler(catalog)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, GetHealthHandler().CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.Contains(t, rec.Body.String(), `"products":2`)
	}
}
