package domain

import "errors"

var (
	// Entry errors
	ErrEntryNotFound        = errors.New("ledger entry not found")
	ErrInvalidKind          = errors.New("invalid entry kind")
	ErrInvalidAmount        = errors.New("amount must be non-negative")
	ErrInvalidDate          = errors.New("entry date is required")
	ErrTransferWithCategory = errors.New("transfers cannot carry a category")
	ErrSameAccount          = errors.New("cannot transfer to same account")
	ErrMissingAccount       = errors.New("entry is missing a required account reference")

	// Account / category errors
	ErrAccountNotFound  = errors.New("account not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAccountArchived  = errors.New("account is archived")
	ErrCategoryArchived = errors.New("category is archived")

	// Snapshot errors
	ErrSnapshotNotFound = errors.New("net worth snapshot not found")
)
