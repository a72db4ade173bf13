package analytics

import "github.com/shopspring/decimal"

// RelevantForPeriod reports whether an entity carried non-zero value in
// either the current or the comparison period. This is the single place
// where the archival rule lives: archived accounts and categories remain
// part of historical computation whenever they held value, archival only
// affects new record entry.
func RelevantForPeriod(key string, current, previous map[string]decimal.Decimal) bool {
	return !current[key].IsZero() || !previous[key].IsZero()
}
