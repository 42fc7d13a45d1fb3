package dto

import "time"

// OrderStatsFilter narrows analytics to a time span and optional entity.
type OrderStatsFilter struct {
	Span     string
	Entity   string
	Currency string
	Since    *time.Time
}
