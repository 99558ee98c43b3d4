package services

import (
	"errors"
	"sync"

	"cafestore/internal/domain"
)

// ErrNoSelection is returned for quantity edits or confirms without an open
// product detail.
var ErrNoSelection = errors.New("no open selection")

// Selection is the transient product-detail state: one product plus the
// quantity being edited. It touches nothing outside itself until Confirm.
type Selection struct {
	Product  domain.Product
	Quantity int
}

// SelectionService tracks at most one open selection per session. Opening a
// product pre-fills the quantity from any existing cart entry; Confirm commits
// through the cart and closes, Cancel just closes.
type SelectionService struct {
	Cart *CartService

	mu   sync.Mutex
	open map[string]*Selection
}

func NewSelectionService(cart *CartService) *SelectionService {
	return &SelectionService{Cart: cart, open: map[string]*Selection{}}
}

func (s *SelectionService) Open(sessionID string, p domain.Product) (Selection, error) {
	qty := 1
	entries, err := s.Cart.Store.Load(sessionID)
	if err != nil {
		return Selection{}, err
	}
	for _, e := range entries {
		if e.Product.ID == p.ID {
			qty = e.Quantity
			break
		}
	}
	sel := &Selection{Product: p, Quantity: qty}
	s.mu.Lock()
	s.open[sessionID] = sel
	s.mu.Unlock()
	return *sel, nil
}

func (s *SelectionService) Current(sessionID string) (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.open[sessionID]
	if !ok {
		return Selection{}, false
	}
	return *sel, true
}

func (s *SelectionService) Increment(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.open[sessionID]
	if !ok {
		return ErrNoSelection
	}
	sel.Quantity++
	return nil
}

// Decrement lowers the quantity by one, floored at 1.
func (s *SelectionService) Decrement(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.open[sessionID]
	if !ok {
		return ErrNoSelection
	}
	if sel.Quantity > 1 {
		sel.Quantity--
	}
	return nil
}

// Confirm commits the selection to the cart and closes it.
func (s *SelectionService) Confirm(sessionID string) error {
	s.mu.Lock()
	sel, ok := s.open[sessionID]
	if ok {
		delete(s.open, sessionID)
	}
	s.mu.Unlock()
	if !ok {
		return ErrNoSelection
	}
	return s.Cart.AddOrUpdate(sessionID, sel.Product, sel.Quantity)
}

// Cancel closes the selection, discarding quantity edits.
func (s *SelectionService) Cancel(sessionID string) {
	s.mu.Lock()
	delete(s.open, sessionID)
	s.mu.Unlock()
}
