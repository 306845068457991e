package domain

import "time"

type Order struct {
	ID              uint
	OrderNumber     string
	UserID          *uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	TotalAmount     float64
	Status          string
	Notes           string
	OrderDate       time.Time
	DeliveryDate    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItem
}

const (
	OrderStatusPending        = "Pending"
	OrderStatusConfirmed      = "Confirmed"
	OrderStatusPreparing      = "Preparing"
	OrderStatusOutForDelivery = "OutForDelivery"
	OrderStatusDelivered      = "Delivered"
	OrderStatusCancelled      = "Cancelled"
)

var orderStatuses = map[string]struct{}{
	OrderStatusPending:        {},
	OrderStatusConfirmed:      {},
	OrderStatusPreparing:      {},
	OrderStatusOutForDelivery: {},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

// ValidOrderStatus reports whether status is one of the fixed enumeration.
// Matching is exact; the stored value is always one of the constants above.
func ValidOrderStatus(status string) bool {
	_, ok := orderStatuses[status]
	return ok
}

// OrderStatuses returns the enumeration in lifecycle order.
func OrderStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusOutForDelivery,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// ItemsTotal sums unit price times quantity over the order's items.
func (o *Order) ItemsTotal() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	return total
}
