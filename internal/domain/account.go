package domain

import "time"

// Account represents a tracked account (checking, savings, cash, ...).
// Archived accounts stay referenced by historical entries and snapshots;
// archival only blocks new record entry.
type Account struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
