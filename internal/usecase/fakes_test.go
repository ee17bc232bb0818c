package usecase

import (
	"context"
	"sync"

	"gamezone/internal/domain/entity"
	"gamezone/pkg/errors"
)

type fakeProductRepo struct {
	products []*entity.Product
	fetchErr error
}

func (r *fakeProductRepo) FetchAll(ctx context.Context) ([]*entity.Product, error) {
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	return r.products, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *fakeUserRepo) SetWelcomeSeen(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.HasSeenWelcome = true
	return nil
}

func (r *fakeUserRepo) RecordLogin(ctx context.Context, id string) error {
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

type fakeAuthClient struct {
	failSignIn bool
	resetSent  []string
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return "uid-" + displayName, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return "uid-" + token, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if f.failSignIn {
		return "", errors.Unauthorized("Invalid credentials", nil)
	}
	return "token", nil
}

func (f *fakeAuthClient) SendPasswordResetEmail(email string) error {
	f.resetSent = append(f.resetSent, email)
	return nil
}
