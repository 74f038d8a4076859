package domain

// EventFinancials is the derived money summary of one event. NetProfit is
// always recomputed from revenue minus the invitation fee total; it is never
// stored.
type EventFinancials struct {
	TotalArtistFees float64 `json:"total_artist_fees"`
	NetProfit       float64 `json:"net_profit"`
}

// LedgerEntry pairs an event with the artist's invitation on it.
type LedgerEntry struct {
	Event      *Event     `json:"event"`
	Invitation Invitation `json:"invitation"`
}

// ArtistLedger is an artist's full booking and payment history.
type ArtistLedger struct {
	Entries             []LedgerEntry `json:"entries"` // sorted by event date, newest first
	TotalPaid           float64       `json:"total_paid"`
	TotalEarnedThisYear float64       `json:"total_earned_this_year"`
	PendingPayments     float64       `json:"pending_payments"`
	ShowsThisYear       int           `json:"shows_this_year"`
}

// MonthlyBucket aggregates one calendar month of revenue and artist-fee
// expenses, for the dashboard and payment charts.
type MonthlyBucket struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// ArtistFeeTotal is an artist's lifetime fee total across all events.
type ArtistFeeTotal struct {
	ArtistID string  `json:"artist_id"`
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
}
