package domain

import "time"

// Category labels income and expense entries. Transfers carry no category.
type Category struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
