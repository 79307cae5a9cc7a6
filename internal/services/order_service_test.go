package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookWithPrice(price string) models.Book {
	return models.Book{
		ID:    uuid.New(),
		Title: "test",
		Price: decimal.RequireFromString(price),
	}
}

func TestPriceOrderExactTotals(t *testing.T) {
	b1 := bookWithPrice("10.00")
	b2 := bookWithPrice("5.00")
	books := map[uuid.UUID]models.Book{b1.ID: b1, b2.ID: b2}

	items := []dto.OrderItemRequest{
		{BookID: b1.ID, Quantity: 2},
		{BookID: b2.ID, Quantity: 1},
	}

	lines, total, err := PriceOrder(items, books)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.True(t, total.Equal(decimal.RequireFromString("25.00")),
		"expected total 25.00, got %s", total)
	assert.True(t, lines[0].TotalPrice.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, lines[1].TotalPrice.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestPriceOrderNoFloatDrift(t *testing.T) {
	// 0.10 * 3 must be exactly 0.30, not 0.30000000000000004.
	b := bookWithPrice("0.10")
	books := map[uuid.UUID]models.Book{b.ID: b}

	_, total, err := PriceOrder([]dto.OrderItemRequest{{BookID: b.ID, Quantity: 3}}, books)
	require.NoError(t, err)
	assert.Equal(t, "0.3", total.String())
}

func TestPriceOrderLineTotalsAreSnapshots(t *testing.T) {
	b := bookWithPrice("12.50")
	books := map[uuid.UUID]models.Book{b.ID: b}

	lines, _, err := PriceOrder([]dto.OrderItemRequest{{BookID: b.ID, Quantity: 2}}, books)
	require.NoError(t, err)

	// Mutating the source price after pricing must not reach the line.
	b.Price = decimal.RequireFromString("99.99")
	books[b.ID] = b
	assert.True(t, lines[0].TotalPrice.Equal(decimal.RequireFromString("25.00")))
}

func TestPriceOrderUnknownBookAborts(t *testing.T) {
	b := bookWithPrice("10.00")
	books := map[uuid.UUID]models.Book{b.ID: b}

	items := []dto.OrderItemRequest{
		{BookID: b.ID, Quantity: 1},
		{BookID: uuid.New(), Quantity: 1},
	}

	lines, total, err := PriceOrder(items, books)
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Nil(t, lines)
	assert.True(t, total.IsZero())
}

func TestPriceOrderRejectsNonPositiveQuantity(t *testing.T) {
	b := bookWithPrice("10.00")
	books := map[uuid.UUID]models.Book{b.ID: b}

	for _, qty := range []int{0, -1} {
		_, _, err := PriceOrder([]dto.OrderItemRequest{{BookID: b.ID, Quantity: qty}}, books)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestValidateCreateOrderRequiresAllFields(t *testing.T) {
	valid := dto.CreateOrderRequest{
		ShippingAddress: "ul. Długa 1",
		City:            "Gdańsk",
		PostalCode:      "80-001",
		PhoneNumber:     "+48 123 456 789",
		Items:           []dto.OrderItemRequest{{BookID: uuid.New(), Quantity: 1}},
	}
	require.NoError(t, validateCreateOrder(&valid))

	cases := map[string]func(r *dto.CreateOrderRequest){
		"address": func(r *dto.CreateOrderRequest) { r.ShippingAddress = "  " },
		"city":    func(r *dto.CreateOrderRequest) { r.City = "" },
		"postal":  func(r *dto.CreateOrderRequest) { r.PostalCode = "" },
		"phone":   func(r *dto.CreateOrderRequest) { r.PhoneNumber = "" },
		"items":   func(r *dto.CreateOrderRequest) { r.Items = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := valid
			mutate(&req)
			assert.ErrorIs(t, validateCreateOrder(&req), ErrMissingFields)
		})
	}
}

func TestValidStatusClosedSet(t *testing.T) {
	for _, s := range []string{"pending", "shipped", "delivered", "cancelled"} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "PENDING", "Shipped", "returned", "unknown"} {
		assert.False(t, ValidStatus(s), s)
	}
}
