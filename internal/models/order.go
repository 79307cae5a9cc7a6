package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is an immutable checkout snapshot. The shipping fields are copied
// from the request at creation, not a live reference to the profile, and
// total_price is computed exactly once. After creation only Status moves.
type Order struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID" json:"-"`

	ShippingAddress string `gorm:"size:255;not null" json:"shipping_address"`
	City            string `gorm:"size:100;not null" json:"city"`
	PostalCode      string `gorm:"size:20;not null" json:"postal_code"`
	PhoneNumber     string `gorm:"size:30;not null" json:"phone_number"`

	Status     OrderStatus     `gorm:"size:20;not null;default:'pending'" json:"status"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem freezes the line price at checkout: total_price is
// book.price × quantity as of order creation. Later price changes to the
// book must never reach back into this row.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	BookID   uuid.UUID `gorm:"type:uuid;not null" json:"book_id"`
	Book     Book      `gorm:"foreignKey:BookID" json:"book"`
	Quantity int       `gorm:"not null" json:"quantity"`

	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
}
