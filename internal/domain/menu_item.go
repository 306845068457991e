package domain

import "time"

type MenuItem struct {
	ID          uint
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Rating      float64
	IsPopular   bool
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
