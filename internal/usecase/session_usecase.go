package usecase

import (
	"context"
	"sync"

	"gamezone/internal/domain/entity"
	"gamezone/internal/domain/repository"
	"gamezone/internal/infrastructure/websocket"
	"gamezone/pkg/errors"
	"gamezone/pkg/logger"
)

// SessionUseCase owns the per-user session state trees: cart, filter
// criteria and navigation. State lives only in memory and is bound to
// the authenticated user's lifecycle; logout destroys it. The manager's
// mutex serializes all access so that each session behaves like the
// single-actor state tree it models.
type SessionUseCase struct {
	catalog  *CatalogUseCase
	userRepo repository.UserRepository
	events   *websocket.Manager

	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func NewSessionUseCase(catalog *CatalogUseCase, userRepo repository.UserRepository, events *websocket.Manager) *SessionUseCase {
	return &SessionUseCase{
		catalog:  catalog,
		userRepo: userRepo,
		events:   events,
		sessions: make(map[string]*entity.Session),
	}
}

// SessionSnapshot is the full session state returned to clients and
// pushed over the event stream.
type SessionSnapshot struct {
	Phase      entity.AuthPhase      `json:"phase"`
	View       entity.View           `json:"view"`
	SelectedID string                `json:"selected_id,omitempty"`
	Cart       []entity.CartLine     `json:"cart"`
	CartCount  int                   `json:"cart_count"`
	CartTotal  float64               `json:"cart_total"`
	Criteria   entity.FilterCriteria `json:"criteria"`
}

func (uc *SessionUseCase) withSession(uid string, fn func(s *entity.Session) error) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[uid]
	if !ok {
		return errors.Unauthorized("No active session", nil)
	}
	return fn(s)
}

// Start creates (or returns) the session for uid, walking it through
// the auth phases: the user record is checked before the session
// settles as authenticated.
func (uc *SessionUseCase) Start(ctx context.Context, uid string) (*entity.Session, error) {
	uc.mu.Lock()
	if s, ok := uc.sessions[uid]; ok {
		uc.mu.Unlock()
		return s, nil
	}
	s := entity.NewSession(uid)
	s.Phase = entity.PhaseCheckingSession
	uc.mu.Unlock()

	if _, err := uc.userRepo.GetByID(ctx, uid); err != nil {
		s.Phase = entity.PhaseUnauthenticated
		return nil, errors.Unauthorized("Unknown user", err)
	}

	uc.mu.Lock()
	s.Phase = entity.PhaseAuthenticated
	uc.sessions[uid] = s
	uc.mu.Unlock()

	uc.events.Notify(uid, websocket.Event{Type: "auth", Payload: s.Phase})
	return s, nil
}

// End destroys the session. The cart does not survive logout.
func (uc *SessionUseCase) End(uid string) {
	uc.mu.Lock()
	s, ok := uc.sessions[uid]
	if ok {
		s.Cart.Clear()
		s.Phase = entity.PhaseUnauthenticated
		delete(uc.sessions, uid)
	}
	uc.mu.Unlock()

	if ok {
		uc.events.Notify(uid, websocket.Event{Type: "auth", Payload: entity.PhaseUnauthenticated})
		logger.Info("Session ended for user %s", uid)
	}
}

func (uc *SessionUseCase) Snapshot(uid string) (*SessionSnapshot, error) {
	var snap *SessionSnapshot
	err := uc.withSession(uid, func(s *entity.Session) error {
		snap = uc.snapshot(s)
		return nil
	})
	return snap, err
}

func (uc *SessionUseCase) snapshot(s *entity.Session) *SessionSnapshot {
	snap := &SessionSnapshot{
		Phase:     s.Phase,
		View:      s.Navigator.View(),
		Cart:      s.Cart.Lines(),
		CartCount: s.Cart.Count(),
		CartTotal: entity.Round2(s.Cart.Total()),
		Criteria:  s.Criteria,
	}
	if selected := s.Navigator.Selected(); selected != nil {
		snap.SelectedID = selected.ID
	}
	return snap
}

// Criteria returns the session's filter criteria, or the defaults when
// the caller has no session (anonymous browsing).
func (uc *SessionUseCase) Criteria(uid string) entity.FilterCriteria {
	criteria := entity.DefaultFilterCriteria()
	uc.withSession(uid, func(s *entity.Session) error {
		criteria = s.Criteria
		return nil
	})
	return criteria
}

func (uc *SessionUseCase) SetCriteria(uid string, criteria entity.FilterCriteria) error {
	if criteria.PriceRange.Min > criteria.PriceRange.Max {
		return errors.BadRequest("Price range minimum exceeds maximum", nil)
	}
	return uc.withSession(uid, func(s *entity.Session) error {
		s.Criteria = criteria
		return nil
	})
}

func (uc *SessionUseCase) SetSearchQuery(uid, query string) error {
	return uc.withSession(uid, func(s *entity.Session) error {
		s.Criteria.SearchQuery = query
		return nil
	})
}

func (uc *SessionUseCase) RemoveFilter(uid, kind, value string) error {
	return uc.withSession(uid, func(s *entity.Session) error {
		s.Criteria.Remove(kind, value)
		return nil
	})
}

// Navigate drives the session's view machine.
func (uc *SessionUseCase) Navigate(ctx context.Context, uid string, view entity.View, productID string) error {
	var product *entity.Product
	if view == entity.ViewProductDetail {
		p, err := uc.catalog.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		product = p
	}

	return uc.withSession(uid, func(s *entity.Session) error {
		switch view {
		case entity.ViewHome:
			s.Navigator.GoHome()
		case entity.ViewCart:
			if !s.Navigator.GoToCart() {
				return errors.BadRequest("Cart is only reachable from home", nil)
			}
		case entity.ViewProductDetail:
			if !s.Navigator.GoToProduct(product) {
				return errors.BadRequest("Product detail is not reachable from the current view", nil)
			}
		default:
			return errors.BadRequest("Unknown view", nil)
		}
		return nil
	})
}

// ViewProduct moves the session to the product's detail view. Sessions
// that ended while the lookup was in flight just drop the result.
func (uc *SessionUseCase) ViewProduct(uid string, product *entity.Product) {
	uc.withSession(uid, func(s *entity.Session) error {
		s.Navigator.GoToProduct(product)
		return nil
	})
}

// AddToCart snapshots the product into the session's ledger.
func (uc *SessionUseCase) AddToCart(ctx context.Context, uid, productID string, quantity int) error {
	product, err := uc.catalog.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	err = uc.withSession(uid, func(s *entity.Session) error {
		s.Cart.Add(product, quantity)
		return nil
	})
	if err != nil {
		return err
	}
	uc.notifyCart(uid)
	return nil
}

func (uc *SessionUseCase) UpdateQuantity(uid, productID string, quantity int) error {
	err := uc.withSession(uid, func(s *entity.Session) error {
		s.Cart.UpdateQuantity(productID, quantity)
		return nil
	})
	if err != nil {
		return err
	}
	uc.notifyCart(uid)
	return nil
}

func (uc *SessionUseCase) RemoveItem(uid, productID string) error {
	err := uc.withSession(uid, func(s *entity.Session) error {
		s.Cart.RemoveItem(productID)
		return nil
	})
	if err != nil {
		return err
	}
	uc.notifyCart(uid)
	return nil
}

func (uc *SessionUseCase) ClearCart(uid string) error {
	err := uc.withSession(uid, func(s *entity.Session) error {
		s.Cart.Clear()
		return nil
	})
	if err != nil {
		return err
	}
	uc.notifyCart(uid)
	return nil
}

// Cart returns a detached snapshot of the session's ledger, taken
// under the session lock. Callers can price or iterate it without
// racing concurrent cart mutations.
func (uc *SessionUseCase) Cart(uid string) (*entity.Cart, error) {
	var cart *entity.Cart
	err := uc.withSession(uid, func(s *entity.Session) error {
		cart = s.Cart.Snapshot()
		return nil
	})
	return cart, err
}

// SettleCart deducts the charged lines from the live cart in one
// critical section. Lines the user added while the charge was in
// flight stay in the cart unbilled.
func (uc *SessionUseCase) SettleCart(uid string, lines []entity.CartLine) error {
	err := uc.withSession(uid, func(s *entity.Session) error {
		s.Cart.Deduct(lines)
		return nil
	})
	if err != nil {
		return err
	}
	uc.notifyCart(uid)
	return nil
}

// MarkWelcomeSeen persists the welcome flag on the user record so other
// devices skip the welcome screen too.
func (uc *SessionUseCase) MarkWelcomeSeen(ctx context.Context, uid string) error {
	if err := uc.withSession(uid, func(*entity.Session) error { return nil }); err != nil {
		return err
	}
	if err := uc.userRepo.SetWelcomeSeen(ctx, uid); err != nil {
		return errors.Internal("Failed to record welcome flag", err)
	}
	return nil
}

func (uc *SessionUseCase) notifyCart(uid string) {
	var count int
	var total float64
	err := uc.withSession(uid, func(s *entity.Session) error {
		count = s.Cart.Count()
		total = s.Cart.Total()
		return nil
	})
	if err != nil {
		return
	}
	uc.events.Notify(uid, websocket.Event{Type: "cart", Payload: map[string]interface{}{
		"count": count,
		"total": entity.Round2(total),
	}})
}
