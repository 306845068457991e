package domain

import "time"

type Contact struct {
	ID         uint
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Subject    string
	Message    string
	Newsletter bool
	IsRead     bool
	IsResolved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
