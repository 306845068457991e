package domain

type OrderItem struct {
	ID                  uint
	OrderID             uint
	MenuItemID          uint
	ItemName            string
	Quantity            int
	UnitPrice           float64
	SpecialInstructions string
}

// LineTotal is derived, never stored.
func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
