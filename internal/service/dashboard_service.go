package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"orderdesk/internal/model"
	"orderdesk/internal/service/gateway"
	"orderdesk/internal/session"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Config carries the demo placeholders the dashboard operates with: the
// fixed order price and the customer id used while logged out.
type Config struct {
	Gateway           gateway.Config
	DemoPrice         float64
	DefaultCustomerID string
}

// DashboardService owns the session, the gateway client and the last
// successfully fetched order list. Handlers stay thin adapters over its
// operations.
type DashboardService struct {
	store *session.Store
	gw    *gateway.Client
	cfg   Config

	mu     sync.RWMutex
	sess   session.Session
	orders []model.Order
}

// NewDashboardService restores the persisted session and wires the
// gateway client to read the current token from it. A broken session
// file degrades to the logged-out state rather than failing startup.
func NewDashboardService(store *session.Store, cfg Config) *DashboardService {
	s := &DashboardService{
		store: store,
		cfg:   cfg,
	}
	s.gw = gateway.NewClient(cfg.Gateway, s.token)

	sess, err := store.Load()
	if err != nil {
		log.Printf("Failed to restore session, starting logged out: %v", err)
		sess = session.Session{}
	}
	s.sess = sess
	return s
}

func (s *DashboardService) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

func (s *DashboardService) Session() session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

func (s *DashboardService) LoggedIn() bool {
	return s.Session().LoggedIn()
}

// Orders returns a copy of the last successfully fetched order list.
func (s *DashboardService) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Login exchanges the username for a token, persists the new session
// and fetches the user's orders. A failed login leaves the session
// exactly as it was.
func (s *DashboardService) Login(ctx context.Context, username string) error {
	token, err := s.gw.Login(ctx, username)
	if err != nil {
		return err
	}

	sess := session.Session{Token: token, User: username}
	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()

	if err := s.store.Save(sess); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}

	s.RefreshOrders(ctx)
	return nil
}

// Logout clears the session unconditionally. It never talks to the
// gateway.
func (s *DashboardService) Logout() {
	s.mu.Lock()
	s.sess = session.Session{}
	s.orders = nil
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}
}

// PlaceOrder submits one order for the current customer and, on
// success, refreshes the order list exactly once. The list is never
// updated optimistically; the backend stays the source of truth.
func (s *DashboardService) PlaceOrder(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	order := model.OrderRequest{
		ProductID:  productID,
		Quantity:   quantity,
		Price:      s.cfg.DemoPrice,
		CustomerID: s.customerID(),
	}

	if err := s.gw.PlaceOrder(ctx, order); err != nil {
		return err
	}

	s.RefreshOrders(ctx)
	return nil
}

// RefreshOrders replaces the cached list with the backend's view. A
// failed fetch keeps the previous list and is only logged.
func (s *DashboardService) RefreshOrders(ctx context.Context) {
	orders, err := s.gw.OrdersByCustomer(ctx, s.customerID())
	if err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		return
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
}

// GatewayUp reports whether the backend gateway is reachable.
func (s *DashboardService) GatewayUp(ctx context.Context) bool {
	return s.gw.Health(ctx)
}

func (s *DashboardService) customerID() string {
	return s.Session().CustomerID(s.cfg.DefaultCustomerID)
}
