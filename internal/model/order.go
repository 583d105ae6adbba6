package model

// Order statuses reported by the backend. The client only branches on
// StatusCreated for display styling; everything else renders as pending.
const (
	StatusCreated   = "CREATED"
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// Order is a backend-owned record. The client never mutates it, only
// displays it.
type Order struct {
	ID        int64   `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
}

type OrderRequest struct {
	ProductID  string  `json:"productId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	CustomerID string  `json:"customerId"`
}
