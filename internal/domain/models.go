package domain

// Product mirrors the remote catalog's JSON shape. Products are read-only;
// the id is the only identity the cart keys on.
type Product struct {
	ID          int     `json:"id"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// CartEntry pairs a product with a desired quantity. A cart holds at most one
// entry per product id, insertion order preserved. Quantity is always >= 1.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
