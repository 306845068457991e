package dto

import "time"

type CreateOrderRequest struct {
	UserID          *uint             `json:"userId"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerPhone   string            `json:"customerPhone"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Notes           string            `json:"notes"`
	Items           []CreateOrderItem `json:"items"`
	TotalAmount     float64           `json:"totalAmount"`
	OrderDate       time.Time         `json:"orderDate"`
}

type CreateOrderItem struct {
	MenuItemID          uint    `json:"menuItemId"`
	ItemName            string  `json:"itemName"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"specialInstructions"`
}

// CreateOrderResponse is the confirmation returned to the storefront.
// ID carries the public order number, not the internal identity.
type CreateOrderResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderDTO struct {
	ID              uint           `json:"id"`
	OrderNumber     string         `json:"orderNumber"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	DeliveryAddress string         `json:"deliveryAddress"`
	TotalAmount     float64        `json:"totalAmount"`
	Status          string         `json:"status"`
	Notes           string         `json:"notes"`
	OrderDate       time.Time      `json:"orderDate"`
	DeliveryDate    *time.Time     `json:"deliveryDate,omitempty"`
	Items           []OrderItemDTO `json:"items"`
}

type OrderItemDTO struct {
	MenuItemID          uint    `json:"menuItemId"`
	ItemName            string  `json:"itemName"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"specialInstructions"`
}
