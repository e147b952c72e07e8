package domain

import "time"

// Customer is deduplicated case-insensitively on the trimmed name; the
// stored Name keeps the casing from first creation.
type Customer struct {
	ID          int
	Name        string
	FirstSeen   time.Time
	LastSeen    time.Time
	TotalOrders int
	TotalSpent  float64
}
