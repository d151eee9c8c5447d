package domain

import "time"

// Fund is a single wishlist entry on the savings board. Price keeps the
// user's formatting (digits, commas, periods) and is validated, not parsed.
type Fund struct {
	ID         string
	Title      string
	Price      string
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SavedMoney is the single running total the funds board is measured
// against. Exactly one row exists.
type SavedMoney struct {
	Amount    string
	UpdatedAt time.Time
}
