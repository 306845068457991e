package domain

import "time"

type User struct {
	ID          uint
	FullName    string
	Email       string
	Phone       string
	Address     string
	IsActive    bool
	CreatedAt   time.Time
	LastLoginAt time.Time
}
