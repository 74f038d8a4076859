package services

import (
	"sort"
	"time"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/store"
)

// DefaultImminentWindowDays is how far ahead the imminent-events view looks.
const DefaultImminentWindowDays = 2

// Views exposes the derived read models over the entity store. Every call
// recomputes from scratch; collections are single-agency sized, so there is
// no caching.
type Views struct {
	store *store.Store
	now   func() time.Time
}

// NewViews creates the derived-view surface. now may be nil for time.Now.
func NewViews(st *store.Store, now func() time.Time) *Views {
	if now == nil {
		now = time.Now
	}
	return &Views{store: st, now: now}
}

func (v *Views) ConfirmedEvents() []*domain.Event {
	return ConfirmedEvents(v.store.Events())
}

func (v *Views) EventsForArtist(artistID string, onlyConfirmed bool) []*domain.Event {
	return EventsForArtist(v.store.Events(), artistID, onlyConfirmed)
}

func (v *Views) ImminentEvents(windowDays int) []*domain.Event {
	return ImminentEvents(v.store.Events(), v.now(), windowDays)
}

func (v *Views) ArtistLedger(artistID string) domain.ArtistLedger {
	return BuildArtistLedger(v.store.Events(), artistID, v.now())
}

func (v *Views) MonthlyAggregate(year int) [12]domain.MonthlyBucket {
	return MonthlyAggregate(v.store.Events(), year)
}

func (v *Views) ArtistFeeTotals() []domain.ArtistFeeTotal {
	return ArtistFeeTotals(v.store.Events(), v.store.Artists())
}

// ConfirmedEvents returns the events whose invitation list is non-empty and
// fully CONFIRMED.
func ConfirmedEvents(events []*domain.Event) []*domain.Event {
	out := make([]*domain.Event, 0)
	for _, e := range events {
		if e.AllConfirmed() {
			out = append(out, e)
		}
	}
	return out
}

// EventsForArtist returns the events carrying an invitation for artistID,
// optionally restricted to invitations the artist has confirmed.
func EventsForArtist(events []*domain.Event, artistID string, onlyConfirmed bool) []*domain.Event {
	out := make([]*domain.Event, 0)
	for _, e := range events {
		inv := e.Invitation(artistID)
		if inv == nil {
			continue
		}
		if onlyConfirmed && inv.Status != domain.StatusConfirmed {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ImminentEvents returns the events dated within [today, today+windowDays]
// inclusive, ascending by date. Events with malformed dates are skipped.
func ImminentEvents(events []*domain.Event, now time.Time, windowDays int) []*domain.Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	limit := today.AddDate(0, 0, windowDays)

	out := make([]*domain.Event, 0)
	for _, e := range events {
		day := e.Day()
		if day.IsZero() {
			continue
		}
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
		if day.Before(today) || day.After(limit) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// BuildArtistLedger assembles the artist's full booking history, newest
// event first, with the payment and earning totals derived from it.
func BuildArtistLedger(events []*domain.Event, artistID string, now time.Time) domain.ArtistLedger {
	ledger := domain.ArtistLedger{Entries: make([]domain.LedgerEntry, 0)}
	year := now.Year()
	for _, e := range events {
		inv := e.Invitation(artistID)
		if inv == nil {
			continue
		}
		ledger.Entries = append(ledger.Entries, domain.LedgerEntry{Event: e, Invitation: *inv})

		if inv.PaymentStatus == domain.PaymentPaid {
			ledger.TotalPaid += inv.Fee
		}
		if inv.Status == domain.StatusConfirmed {
			if inv.PaymentStatus == domain.PaymentPending {
				ledger.PendingPayments += inv.Fee
			}
			if e.Day().Year() == year {
				ledger.TotalEarnedThisYear += inv.Fee
				ledger.ShowsThisYear++
			}
		}
	}
	sort.SliceStable(ledger.Entries, func(i, j int) bool {
		return ledger.Entries[i].Event.Date > ledger.Entries[j].Event.Date
	})
	return ledger
}

// Financials derives the money summary of one event: the fee total owed to
// artists and the net profit against the (possibly unset) revenue.
func Financials(e *domain.Event) domain.EventFinancials {
	var fees float64
	for _, inv := range e.Invitations {
		fees += inv.Fee
	}
	return domain.EventFinancials{
		TotalArtistFees: fees,
		NetProfit:       e.Revenue - fees,
	}
}

// MonthlyAggregate buckets revenue and artist-fee expenses per calendar
// month for the given year.
func MonthlyAggregate(events []*domain.Event, year int) [12]domain.MonthlyBucket {
	var buckets [12]domain.MonthlyBucket
	for _, e := range events {
		day := e.Day()
		if day.IsZero() || day.Year() != year {
			continue
		}
		m := int(day.Month()) - 1
		buckets[m].Revenue += e.Revenue
		for _, inv := range e.Invitations {
			buckets[m].Expenses += inv.Fee
		}
	}
	return buckets
}

// ArtistFeeTotals computes each artist's lifetime fee total across all
// events, omitting artists with no fees.
func ArtistFeeTotals(events []*domain.Event, artists []*domain.Artist) []domain.ArtistFeeTotal {
	out := make([]domain.ArtistFeeTotal, 0)
	for _, a := range artists {
		var total float64
		for _, e := range events {
			if inv := e.Invitation(a.ID); inv != nil {
				total += inv.Fee
			}
		}
		if total > 0 {
			out = append(out, domain.ArtistFeeTotal{ArtistID: a.ID, Name: a.Name, Total: total})
		}
	}
	return out
}
