package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"cafestore/internal/domain"
	"cafestore/internal/repos"
)

// ErrQuantityFloor rejects attempts to drive a cart quantity below 1. Removal
// is an explicit separate operation.
var ErrQuantityFloor = errors.New("quantity must be at least 1")

type CartService struct {
	Store repos.CartStore
}

func NewCartService(store repos.CartStore) *CartService {
	return &CartService{Store: store}
}

type CartView struct {
	Entries []domain.CartEntry
	Total   decimal.Decimal
	Count   int
}

func (s *CartService) View(sessionID string) (CartView, error) {
	entries, err := s.Store.Load(sessionID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Entries: entries, Total: Total(entries), Count: ItemCount(entries)}, nil
}

// AddOrUpdate replaces the quantity of an existing entry for the product, or
// appends a new entry at the end. Quantities below 1 are clamped to 1.
func (s *CartService) AddOrUpdate(sessionID string, p domain.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}
	entries, err := s.Store.Load(sessionID)
	if err != nil {
		return err
	}
	found := false
	for i := range entries {
		if entries[i].Product.ID == p.ID {
			entries[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, domain.CartEntry{Product: p, Quantity: qty})
	}
	return s.Store.Save(sessionID, entries)
}

// SetQuantity updates an existing entry's quantity. Quantities below 1 are
// refused with ErrQuantityFloor, leaving the cart unchanged. An absent product
// id is a no-op.
func (s *CartService) SetQuantity(sessionID string, productID, qty int) error {
	if qty < 1 {
		return ErrQuantityFloor
	}
	entries, err := s.Store.Load(sessionID)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].Product.ID == productID {
			entries[i].Quantity = qty
			return s.Store.Save(sessionID, entries)
		}
	}
	return nil
}

// Remove deletes the entry for the product id if present; absent ids are a
// no-op, not an error.
func (s *CartService) Remove(sessionID string, productID int) error {
	entries, err := s.Store.Load(sessionID)
	if err != nil {
		return err
	}
	out := entries[:0]
	removed := false
	for _, e := range entries {
		if e.Product.ID == productID {
			removed = true
			continue
		}
		out = append(out, e)
	}
	if !removed {
		return nil
	}
	return s.Store.Save(sessionID, out)
}

func (s *CartService) Clear(sessionID string) error {
	return s.Store.Save(sessionID, nil)
}

// Total is the sum of price*quantity over the entries, rounded to 2 places.
func Total(entries []domain.CartEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		line := decimal.NewFromFloat(e.Product.Price).Mul(decimal.NewFromInt(int64(e.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2)
}

// ItemCount is the summed quantity across entries. The cart badge and the
// checkout summary both use this count.
func ItemCount(entries []domain.CartEntry) int {
	n := 0
	for _, e := range entries {
		n += e.Quantity
	}
	return n
}
