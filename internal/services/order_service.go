package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/models"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrMissingFields   = errors.New("shipping address, city, postal code, phone number and items are required")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
)

// OrderService creates immutable order snapshots and governs their status.
type OrderService struct {
	db     *gorm.DB
	events *EventService
}

func NewOrderService(db *gorm.DB, events *EventService) *OrderService {
	return &OrderService{db: db, events: events}
}

// ValidStatus reports membership in the closed status set. Any member is
// accepted from any current state; the transition graph is deliberately
// permissive.
func ValidStatus(s string) bool {
	switch models.OrderStatus(s) {
	case models.OrderPending, models.OrderShipped, models.OrderDelivered, models.OrderCancelled:
		return true
	}
	return false
}

func validateCreateOrder(req *dto.CreateOrderRequest) error {
	if strings.TrimSpace(req.ShippingAddress) == "" ||
		strings.TrimSpace(req.City) == "" ||
		strings.TrimSpace(req.PostalCode) == "" ||
		strings.TrimSpace(req.PhoneNumber) == "" ||
		len(req.Items) == 0 {
		return ErrMissingFields
	}
	return nil
}

// PriceOrder computes frozen line totals and the order total from
// already-resolved books, in exact decimal arithmetic. Every requested book
// must be present in the map.
func PriceOrder(items []dto.OrderItemRequest, books map[uuid.UUID]models.Book) ([]models.OrderItem, decimal.Decimal, error) {
	lines := make([]models.OrderItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, decimal.Zero, ErrInvalidQuantity
		}
		book, ok := books[item.BookID]
		if !ok {
			return nil, decimal.Zero, ErrBookNotFound
		}
		lineTotal := book.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		lines = append(lines, models.OrderItem{
			ID:         uuid.New(),
			BookID:     book.ID,
			Quantity:   item.Quantity,
			TotalPrice: lineTotal,
		})
	}
	return lines, total, nil
}

// Create validates the checkout request, prices every line against the
// current book prices, and persists the order header, items and total as
// one atomic unit. Any unresolvable book id aborts the whole order; no
// partial order is ever committed.
func (s *OrderService) Create(p principal.Principal, req *dto.CreateOrderRequest) (*models.Order, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ids := make([]uuid.UUID, 0, len(req.Items))
		for _, item := range req.Items {
			ids = append(ids, item.BookID)
		}

		// Lock the referenced books so a concurrent price update cannot
		// race the snapshot read.
		var resolved []models.Book
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Find(&resolved, "id IN ?", ids).Error; err != nil {
			return err
		}
		books := make(map[uuid.UUID]models.Book, len(resolved))
		for _, b := range resolved {
			books[b.ID] = b
		}

		lines, total, err := PriceOrder(req.Items, books)
		if err != nil {
			return err
		}

		order = models.Order{
			ID:              uuid.New(),
			UserID:          p.UserID,
			ShippingAddress: strings.TrimSpace(req.ShippingAddress),
			City:            strings.TrimSpace(req.City),
			PostalCode:      strings.TrimSpace(req.PostalCode),
			PhoneNumber:     strings.TrimSpace(req.PhoneNumber),
			Status:          models.OrderPending,
			TotalPrice:      total,
			Items:           lines,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns all orders for privileged callers and the caller's own
// otherwise. Moderators see every order, not just those tied to their
// categories: orders carry no category scope.
func (s *OrderService) List(p principal.Principal) ([]models.Order, error) {
	q := s.db.Model(&models.Order{}).
		Preload("Items").
		Preload("Items.Book").
		Order("created_at DESC")
	if !p.Privileged() {
		q = q.Where("user_id = ?", p.UserID)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Get(p principal.Principal, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Preload("Items.Book").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !p.Privileged() && order.UserID != p.UserID {
		return nil, ErrForbidden
	}
	return &order, nil
}

// UpdateStatus moves an order to any member of the status set and notifies
// the owner. The legacy system accepted this call unauthenticated; here it
// requires a reviewer role.
func (s *OrderService) UpdateStatus(p principal.Principal, id uuid.UUID, status string) (*models.Order, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if !p.Privileged() {
		return nil, ErrForbidden
	}

	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", id).Error; err != nil {
			return ErrOrderNotFound
		}

		order.Status = models.OrderStatus(status)
		if err := tx.Model(&order).Update("status", order.Status).Error; err != nil {
			return err
		}

		return s.events.Record(tx, order.UserID,
			models.EventOrderStatusUpdated,
			fmt.Sprintf("Your order status changed to '%s'.", status))
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
