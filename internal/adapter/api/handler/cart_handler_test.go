package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamezone/internal/adapter/api"
	"gamezone/internal/domain/entity"
	"gamezone/internal/infrastructure/websocket"
	"gamezone/internal/usecase"
	"gamezone/pkg/errors"
)

type staticUserRepo struct {
	users map[string]*entity.User
}

func (r *staticUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *staticUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *staticUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *staticUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *staticUserRepo) SetWelcomeSeen(ctx context.Context, id string) error { return nil }

func (r *staticUserRepo) RecordLogin(ctx context.Context, id string) error { return nil }

func newCartHandlerFixture(t *testing.T) (*CartHandler, *usecase.SessionUseCase) {
	t.Helper()
	ctx := context.Background()

	catalog := usecase.NewCatalogUseCase(&staticProductRepo{products: []*entity.Product{
		{ID: "ps5", Name: "PlayStation 5", Price: 500},
	}})
	require.NoError(t, catalog.Load(ctx))

	users := &staticUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Email: "u1@example.com", Username: "u1"},
	}}
	sessions := usecase.NewSessionUseCase(catalog, users, websocket.NewManager())

	_, err := sessions.Start(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, sessions.AddToCart(ctx, "u1", "ps5", 2))

	return NewCartHandler(sessions), sessions
}

func patchCartItem(t *testing.T, h *CartHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items/ps5", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ps5")
	c.Set("uid", "u1")

	require.NoError(t, h.UpdateItem(c))
	return rec
}

func TestUpdateItemReplacesQuantity(t *testing.T) {
	h, _ := newCartHandlerFixture(t)

	rec := patchCartItem(t, h, `{"quantity":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":5`)
}

func TestUpdateItemBelowOneEchoesUnchangedCart(t *testing.T) {
	h, _ := newCartHandlerFixture(t)

	// Zero and negative quantities get the same treatment: the line
	// keeps its quantity and the cart comes back unchanged.
	for _, body := range []string{`{"quantity":0}`, `{"quantity":-3}`, `{}`} {
		rec := patchCartItem(t, h, body)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"quantity":2`)
	}
}
