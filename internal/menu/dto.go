package menu

type MenuItemDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	IsPopular   bool    `json:"isPopular"`
	IsAvailable bool    `json:"isAvailable"`
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	IsPopular   bool    `json:"isPopular"`
}

// UpdateMenuItemRequest carries only the fields the caller wants changed.
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Rating      *float64 `json:"rating"`
	IsPopular   *bool    `json:"isPopular"`
	IsAvailable *bool    `json:"isAvailable"`
}
