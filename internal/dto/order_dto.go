package dto

import "github.com/google/uuid"

type OrderItemRequest struct {
	BookID   uuid.UUID `json:"book"`
	Quantity int       `json:"quantity"`
}

type CreateOrderRequest struct {
	ShippingAddress string             `json:"shipping_address"`
	City            string             `json:"city"`
	PostalCode      string             `json:"postal_code"`
	PhoneNumber     string             `json:"phone_number"`
	Items           []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
