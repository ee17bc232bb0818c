package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamezone/internal/domain/entity"
	"gamezone/internal/infrastructure/websocket"
)

func newTestAuth(t *testing.T, users *fakeUserRepo, client *fakeAuthClient) (*AuthUseCase, *SessionUseCase) {
	t.Helper()

	catalog := NewCatalogUseCase(&fakeProductRepo{products: catalogProducts()})
	require.NoError(t, catalog.Load(context.Background()))

	sessions := NewSessionUseCase(catalog, users, websocket.NewManager())
	return NewAuthUseCase(users, client, sessions), sessions
}

func TestAuthRegisterCreatesUserAndSession(t *testing.T) {
	users := newFakeUserRepo()
	auth, sessions := newTestAuth(t, users, &fakeAuthClient{})

	result, err := auth.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-alice", result.User.ID)
	assert.Equal(t, "token", result.Token)

	snap, err := sessions.Snapshot("uid-alice")
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseAuthenticated, snap.Phase)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", Email: "taken@example.com"})
	auth, _ := newTestAuth(t, users, &fakeAuthClient{})

	_, err := auth.Register(context.Background(), RegisterInput{
		Username: "bob",
		Email:    "taken@example.com",
		Password: "secret123",
	})
	assert.Error(t, err)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	users := newFakeUserRepo()
	auth, _ := newTestAuth(t, users, &fakeAuthClient{failSignIn: true})

	_, err := auth.Login(context.Background(), "alice@example.com", "wrong")
	assert.Error(t, err)
}

func TestAuthLogoutClearsSessionAndCart(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "uid-token", Email: "alice@example.com"})
	auth, sessions := newTestAuth(t, users, &fakeAuthClient{})

	result, err := auth.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, sessions.AddToCart(context.Background(), result.User.ID, "ps5", 1))
	require.NoError(t, auth.Logout(context.Background(), result.User.ID))

	_, err = sessions.Snapshot(result.User.ID)
	assert.Error(t, err)
}

func TestAuthForgotPassword(t *testing.T) {
	client := &fakeAuthClient{}
	auth, _ := newTestAuth(t, newFakeUserRepo(), client)

	require.NoError(t, auth.ForgotPassword(context.Background(), "alice@example.com"))
	assert.Equal(t, []string{"alice@example.com"}, client.resetSent)
}
