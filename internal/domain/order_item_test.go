package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderItem_LineTotal(t *testing.T) {
	item := OrderItem{
		ID:         1,
		OrderID:    100,
		MenuItemID: 5,
		ItemName:   "Margherita Pizza",
		Quantity:   2,
		UnitPrice:  12.99,
	}

	assert.InDelta(t, 25.98, item.LineTotal(), 0.0001)
}

func TestOrderItem_LineTotal_SingleUnit(t *testing.T) {
	item := OrderItem{Quantity: 1, UnitPrice: 8.75}
	assert.Equal(t, 8.75, item.LineTotal())
}

func TestOrderItem_MultipleItems(t *testing.T) {
	items := []OrderItem{
		{
			ID:         1,
			OrderID:    100,
			MenuItemID: 5,
			ItemName:   "Caesar Salad",
			Quantity:   2,
			UnitPrice:  9.25,
		},
		{
			ID:                  2,
			OrderID:             100,
			MenuItemID:          10,
			ItemName:            "Pepperoni Pizza",
			Quantity:            1,
			UnitPrice:           14.99,
			SpecialInstructions: "extra cheese",
		},
	}

	assert.Len(t, items, 2)
	assert.Equal(t, uint(100), items[0].OrderID)
	assert.Equal(t, uint(100), items[1].OrderID)
	assert.Equal(t, "extra cheese", items[1].SpecialInstructions)
}
