package domain

import "time"

// InvitationStatus is the lifecycle state of a single artist invitation.
type InvitationStatus string

const (
	StatusPending   InvitationStatus = "PENDING"
	StatusConfirmed InvitationStatus = "CONFIRMED"
	StatusRejected  InvitationStatus = "REJECTED"
	StatusCancelled InvitationStatus = "CANCELLED"
)

// PaymentStatus tracks the payment of an invitation fee. It is orthogonal to
// InvitationStatus: a fee can be paid while the invitation is still PENDING.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
)

// TransportType enumerates how the crew travels to a venue.
type TransportType string

const (
	TransportVan   TransportType = "VAN"
	TransportCar   TransportType = "CAR"
	TransportTrain TransportType = "TRAIN"
	TransportPlane TransportType = "PLANE"
	TransportBus   TransportType = "BUS"
)

// TravelLogistics holds the travel plan attached to an event.
type TravelLogistics struct {
	DepartureTime string        `json:"departure_time"`
	Transport     TransportType `json:"transport_type"`
	Hotel         string        `json:"hotel,omitempty"`
}

// Invitation is one artist's slot on an event: their fee, whether they have
// accepted, and whether they have been paid. An event holds at most one
// invitation per artist.
type Invitation struct {
	ArtistID      string           `json:"artist_id"`
	Fee           float64          `json:"fee"`
	Status        InvitationStatus `json:"status"`
	PaymentStatus PaymentStatus    `json:"payment_status"`
}

// artistResponses lists the statuses an artist may move a PENDING invitation
// to. Resolved invitations accept no further artist-initiated transition;
// CANCELLED is reachable only through administrative paths.
var artistResponses = map[InvitationStatus]bool{
	StatusConfirmed: true,
	StatusRejected:  true,
}

// CanRespond reports whether actor may move this invitation to the target
// status. Both the wrong actor and a non-PENDING source state decline the
// transition; callers treat a false return as a no-op, not an error.
func (inv *Invitation) CanRespond(actor Identity, target InvitationStatus) bool {
	if !actor.CanRespondToInvitation(inv.ArtistID) {
		return false
	}
	return inv.Status == StatusPending && artistResponses[target]
}

// Event is a booked show: when and where it happens, what it pays, and the
// ordered list of artist invitations attached to it. Events are never
// structurally mutated after creation except through their invitations.
type Event struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Client        string          `json:"client,omitempty"`
	Date          string          `json:"date"`       // YYYY-MM-DD
	StartTime     string          `json:"start_time"` // HH:MM
	Duration      string          `json:"duration"`   // free text, e.g. "3h"
	Location      string          `json:"location"`
	VenueName     string          `json:"venue_name"`
	Description   string          `json:"description"`
	Equipment     string          `json:"equipment"`
	Costumes      string          `json:"costumes"`
	RehearsalTime string          `json:"rehearsal_time,omitempty"`
	Logistics     TravelLogistics `json:"logistics"`
	Revenue       float64         `json:"revenue,omitempty"` // gross fee charged to the client
	Invitations   []Invitation    `json:"invitations"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Invitation returns the invitation addressed to artistID, or nil.
func (e *Event) Invitation(artistID string) *Invitation {
	for i := range e.Invitations {
		if e.Invitations[i].ArtistID == artistID {
			return &e.Invitations[i]
		}
	}
	return nil
}

// Invite adds a PENDING, unpaid invitation for artistID with the given fee.
// An event holds at most one invitation per artist: inviting an already
// invited artist collapses into the existing invitation and reports false.
func (e *Event) Invite(artistID string, fee float64) bool {
	if e.Invitation(artistID) != nil {
		return false
	}
	e.Invitations = append(e.Invitations, Invitation{
		ArtistID:      artistID,
		Fee:           fee,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
	})
	return true
}

// RemoveInvitations deletes every invitation addressed to artistID and
// reports whether anything was removed.
func (e *Event) RemoveInvitations(artistID string) bool {
	kept := e.Invitations[:0]
	removed := false
	for _, inv := range e.Invitations {
		if inv.ArtistID == artistID {
			removed = true
			continue
		}
		kept = append(kept, inv)
	}
	e.Invitations = kept
	return removed
}

// AllConfirmed reports whether the event has at least one invitation and
// every invitation is CONFIRMED. An event with no invitees is not confirmed
// by vacuous truth.
func (e *Event) AllConfirmed() bool {
	if len(e.Invitations) == 0 {
		return false
	}
	for _, inv := range e.Invitations {
		if inv.Status != StatusConfirmed {
			return false
		}
	}
	return true
}

// Day parses the event date. The zero time is returned for malformed dates.
func (e *Event) Day() time.Time {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Clone returns a deep copy of the event and its invitations.
func (e *Event) Clone() *Event {
	c := *e
	c.Invitations = make([]Invitation, len(e.Invitations))
	copy(c.Invitations, e.Invitations)
	return &c
}
