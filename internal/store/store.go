// Package store holds the canonical entity collections of the agency and is
// the single source of truth every view is derived from. All mutations apply
// their cascades fully in memory first and are then followed by one
// whole-snapshot write, so an interrupted write leaves the previously saved
// snapshot intact.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/ids"
)

// Store is the application context object: collections, agency profile, and
// session pointer, guarded by one mutex. A single user drives the system, but
// the mutex keeps the "one mutation completes before the next" contract
// independent of how callers schedule their work.
type Store struct {
	mu        sync.Mutex
	snapshots domain.SnapshotRepository
	logger    *slog.Logger

	artists       []*domain.Artist
	events        []*domain.Event
	notifications []*domain.Notification
	profile       *domain.AgencyProfile
	session       *domain.SessionPointer
}

// Open loads the persisted snapshot and returns a ready store.
func Open(ctx context.Context, snapshots domain.SnapshotRepository, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	snap, err := snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	s := &Store{
		snapshots:     snapshots,
		logger:        logger,
		artists:       snap.Artists,
		events:        snap.Events,
		notifications: snap.Notifications,
		profile:       snap.Profile,
		session:       snap.Session,
	}
	return s, nil
}

// persist writes the whole current state. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	snap := &domain.Snapshot{
		Artists:       s.artists,
		Events:        s.events,
		Notifications: s.notifications,
		Profile:       s.profile,
		Session:       s.session,
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

// AddArtist appends an artist to the roster, generating an id when absent.
func (s *Store) AddArtist(ctx context.Context, artist *domain.Artist) error {
	if artist == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if artist.ID == "" {
		artist.ID = ids.New()
	}
	for _, a := range s.artists {
		if a.ID == artist.ID {
			return domain.ErrDuplicateArtist
		}
	}
	s.artists = append(s.artists, artist.Clone())
	return s.persist(ctx)
}

// UpdateArtist replaces the matching record wholesale. Callers must supply
// the full updated entity; there is no partial-field merge.
func (s *Store) UpdateArtist(ctx context.Context, artist *domain.Artist) error {
	if artist == nil || artist.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.artists {
		if a.ID == artist.ID {
			s.artists[i] = artist.Clone()
			return s.persist(ctx)
		}
	}
	return domain.ErrNotFound
}

// RemoveArtist deletes the artist and, in the same logical operation, every
// invitation referencing them across all events. When the removed artist is
// the active session identity the session pointer is cleared; the returned
// flag tells the caller to surface the forced-logout notice. Removing an
// unknown artist is a silent no-op.
func (s *Store) RemoveArtist(ctx context.Context, artistID string) (forcedLogout bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.artists[:0]
	for _, a := range s.artists {
		if a.ID == artistID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	s.artists = kept
	if !found {
		return false, nil
	}

	for _, e := range s.events {
		e.RemoveInvitations(artistID)
	}
	if s.session != nil && s.session.Role == domain.RoleArtist && s.session.UserID == artistID {
		s.session = nil
		forcedLogout = true
	}
	s.logger.Info("artist removed from roster", "artist_id", artistID, "forced_logout", forcedLogout)
	return forcedLogout, s.persist(ctx)
}

// AddEvent appends the event, generating an id when absent, and synthesizes
// one notification per invited artist. Duplicate invitations for the same
// artist collapse into the first one.
func (s *Store) AddEvent(ctx context.Context, event *domain.Event) error {
	if event == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = ids.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	e := event.Clone()
	invitations := e.Invitations
	e.Invitations = nil
	for _, inv := range invitations {
		e.Invite(inv.ArtistID, inv.Fee)
	}

	s.events = append(s.events, e)
	for _, inv := range e.Invitations {
		n := domain.NewNotification(inv.ArtistID,
			"New invitation",
			fmt.Sprintf("You have been invited to the event: %s", e.Title),
			e.ID, time.Now())
		n.ID = ids.New()
		s.notifications = append(s.notifications, n)
	}
	return s.persist(ctx)
}

// RemoveEvent deletes the event together with its embedded invitations and
// notifies each previously invited artist of the cancellation. Removing an
// unknown event is a silent no-op.
func (s *Store) RemoveEvent(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed *domain.Event
	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID == eventID {
			removed = e
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	if removed == nil {
		return nil
	}
	for _, inv := range removed.Invitations {
		n := domain.NewNotification(inv.ArtistID,
			"Event cancelled",
			fmt.Sprintf("The event %q has been removed from the calendar.", removed.Title),
			removed.ID, time.Now())
		n.ID = ids.New()
		s.notifications = append(s.notifications, n)
	}
	return s.persist(ctx)
}

// UpdateInvitationStatus applies an artist's response to their invitation.
// The transition happens only when the actor owns the invitation and its
// prior status is PENDING; every other combination is a silent no-op. The
// returned flag reports whether state changed.
func (s *Store) UpdateInvitationStatus(ctx context.Context, eventID, artistID string, actor domain.Identity, status domain.InvitationStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID != eventID {
			continue
		}
		inv := e.Invitation(artistID)
		if inv == nil || !inv.CanRespond(actor, status) {
			return false, nil
		}
		inv.Status = status
		return true, s.persist(ctx)
	}
	return false, nil
}

// MarkPaid moves an invitation's payment status from PENDING to PAID. Only
// payment managers may do this, and the transition is independent of the
// invitation's acceptance status. Anything else is a silent no-op.
func (s *Store) MarkPaid(ctx context.Context, eventID, artistID string, actor domain.Identity) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !actor.CanManagePayments() {
		return false, nil
	}
	for _, e := range s.events {
		if e.ID != eventID {
			continue
		}
		inv := e.Invitation(artistID)
		if inv == nil || inv.PaymentStatus != domain.PaymentPending {
			return false, nil
		}
		inv.PaymentStatus = domain.PaymentPaid
		return true, s.persist(ctx)
	}
	return false, nil
}

// AddNotification appends a notification, generating an id when absent.
func (s *Store) AddNotification(ctx context.Context, n *domain.Notification) error {
	if n == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := n.Clone()
	if c.ID == "" {
		c.ID = ids.New()
	}
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now()
	}
	s.notifications = append(s.notifications, c)
	return s.persist(ctx)
}

// MarkNotificationRead flips the read flag. Marking an already-read or
// unknown notification is a no-op, so the operation is idempotent.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.ID == id {
			if n.Read {
				return nil
			}
			n.Read = true
			return s.persist(ctx)
		}
	}
	return nil
}

// SetProfile stores the agency profile.
func (s *Store) SetProfile(ctx context.Context, p *domain.AgencyProfile) error {
	if p == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *p
	s.profile = &c
	return s.persist(ctx)
}

// ResetProfile clears the agency profile and the session pointer, re-opening
// the first-run registration gate. Collections are left untouched.
func (s *Store) ResetProfile(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.session = nil
	return s.persist(ctx)
}

// SetSession stores the session pointer for later rehydration.
func (s *Store) SetSession(ctx context.Context, ptr *domain.SessionPointer) error {
	if ptr == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *ptr
	s.session = &c
	return s.persist(ctx)
}

// ClearSession removes the session pointer, leaving all collections intact.
func (s *Store) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return s.persist(ctx)
}

// Artists returns a copy of the roster.
func (s *Store) Artists() []*domain.Artist {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Artist, len(s.artists))
	for i, a := range s.artists {
		out[i] = a.Clone()
	}
	return out
}

// ArtistByID returns the artist with the given id, or ErrNotFound.
func (s *Store) ArtistByID(id string) (*domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.artists {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

// ArtistByEmail returns the artist with the given email (case-insensitive),
// or ErrNotFound.
func (s *Store) ArtistByEmail(email string) (*domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.artists {
		if strings.EqualFold(a.Email, email) {
			return a.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Events returns a copy of all events with their invitations.
func (s *Store) Events() []*domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Event, len(s.events))
	for i, e := range s.events {
		out[i] = e.Clone()
	}
	return out
}

// EventByID returns the event with the given id, or ErrNotFound.
func (s *Store) EventByID(id string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Notifications returns a copy of all notifications.
func (s *Store) Notifications() []*domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Notification, len(s.notifications))
	for i, n := range s.notifications {
		out[i] = n.Clone()
	}
	return out
}

// NotificationsFor returns the notifications addressed to userID or to all
// users, newest first.
func (s *Store) NotificationsFor(userID string) []*domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Notification
	for _, n := range s.notifications {
		if n.UserID == userID || n.UserID == domain.NotifyAllUsers {
			out = append(out, n.Clone())
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Profile returns the agency profile, or nil when registration has not run.
func (s *Store) Profile() *domain.AgencyProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	c := *s.profile
	return &c
}

// Session returns the persisted session pointer, or nil.
func (s *Store) Session() *domain.SessionPointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	c := *s.session
	return &c
}
