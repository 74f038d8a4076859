package domain

import "context"

// SessionState is the resolved authentication state plus the default view the
// user lands on.
type SessionState struct {
	Identity  Identity
	ActiveTab string
}

// SessionService resolves credentials to identities and rehydrates the
// session from the persisted pointer on startup.
type SessionService interface {
	// Register creates the one agency profile. It is a one-time bootstrap
	// gate: once a profile exists it returns ErrProfileExists until an
	// explicit ResetProfile.
	Register(ctx context.Context, agencyName, email, password string) error
	// Login authenticates the given credentials for the requested role.
	// Admin credentials match case-insensitively on email and exactly on
	// password; artists are looked up by email. A failed login leaves the
	// session anonymous.
	Login(ctx context.Context, email, password string, requested RoleKind) (SessionState, error)
	// Rehydrate re-validates the persisted session pointer against current
	// data. A pointer to a since-deleted artist forces a logout.
	Rehydrate(ctx context.Context) (SessionState, error)
	Logout(ctx context.Context) error
	// ForceLogout invalidates the in-process session after the active user
	// was removed from the roster, surfacing the given notice.
	ForceLogout(notice string)
	Current() SessionState
	// ResetProfile clears the agency profile, re-opening registration.
	ResetProfile(ctx context.Context) error
}

// RosterService is the admin surface for managing artists.
type RosterService interface {
	AddArtist(ctx context.Context, actor Identity, artist *Artist) error
	UpdateArtist(ctx context.Context, actor Identity, artist *Artist) error
	// RemoveArtist deletes the artist and cascades the removal of every
	// invitation referencing them. If the removed artist is the active
	// session identity, the session is force-logged-out and a removal
	// notice is surfaced.
	RemoveArtist(ctx context.Context, actor Identity, artistID string) error
}

// BookingService covers event lifecycle and invitation responses.
type BookingService interface {
	CreateEvent(ctx context.Context, actor Identity, event *Event) (*Event, error)
	RemoveEvent(ctx context.Context, actor Identity, eventID string) error
	// RespondToInvitation applies the acting artist's answer to their own
	// invitation on the event. It reports whether state changed; declined
	// transitions are silent no-ops per the state machine rules.
	RespondToInvitation(ctx context.Context, actor Identity, eventID string, status InvitationStatus) (bool, error)
	// MarkInvitationPaid moves an invitation's payment status to PAID.
	// Admin-only and independent of the invitation's acceptance status.
	MarkInvitationPaid(ctx context.Context, actor Identity, eventID, artistID string) (bool, error)
}
