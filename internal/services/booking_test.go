package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/adapters/auth"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/store"
)

func seedRoster(t *testing.T, st *store.Store, ids ...string) {
	t.Helper()
	for _, id := range ids {
		artist := &domain.Artist{ID: id, Name: "Artist " + id, Email: id + "@example.com"}
		require.NoError(t, st.AddArtist(context.Background(), artist))
	}
}

func galaEvent(artistIDs ...string) *domain.Event {
	e := &domain.Event{
		Title:   "Gala di Primavera",
		Client:  "Teatro dell'Opera",
		Date:    "2026-05-15",
		Revenue: 1500,
	}
	for _, id := range artistIDs {
		e.Invite(id, 500)
	}
	return e
}

func TestCreateEventFullFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedRoster(t, st, "a1", "a2")
	alerter := &fakeAlerter{}
	booking := NewBookingService(st, alerter, nil)
	admin := domain.AdminIdentity(false)

	created, err := booking.CreateEvent(ctx, admin, galaEvent("a1", "a2"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// Each invited artist starts pending and gets a notification.
	stored, err := st.EventByID(created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Invitations, 2)
	for _, inv := range stored.Invitations {
		assert.Equal(t, domain.StatusPending, inv.Status)
		assert.Equal(t, domain.PaymentPending, inv.PaymentStatus)
	}
	assert.Len(t, st.NotificationsFor("a1"), 1)
	assert.Len(t, st.NotificationsFor("a2"), 1)
	require.Len(t, alerter.titles, 1)

	// Artist a1 confirms, a2 rejects.
	changed, err := booking.RespondToInvitation(ctx, domain.ArtistIdentity("a1"), created.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = booking.RespondToInvitation(ctx, domain.ArtistIdentity("a2"), created.ID, domain.StatusRejected)
	require.NoError(t, err)
	assert.True(t, changed)

	stored, err = st.EventByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Invitation("a1").Status)
	assert.Equal(t, domain.StatusRejected, stored.Invitation("a2").Status)

	// Admin marks a1 paid.
	changed, err = booking.MarkInvitationPaid(ctx, admin, created.ID, "a1")
	require.NoError(t, err)
	assert.True(t, changed)
	stored, err = st.EventByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, stored.Invitation("a1").PaymentStatus)
}

func TestCreateEventRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	booking := NewBookingService(st, nil, nil)

	_, err := booking.CreateEvent(ctx, domain.ArtistIdentity("a1"), galaEvent())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = booking.CreateEvent(ctx, domain.Anonymous(), galaEvent())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, st.Events())
}

func TestCreateEventValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedRoster(t, st, "a1")
	booking := NewBookingService(st, nil, nil)
	admin := domain.AdminIdentity(false)

	tests := []struct {
		name  string
		event *domain.Event
	}{
		{"missing title", &domain.Event{Date: "2026-05-15"}},
		{"bad date", &domain.Event{Title: "Gala", Date: "15/05/2026"}},
		{"bad start time", &domain.Event{Title: "Gala", Date: "2026-05-15", StartTime: "8pm"}},
		{"negative revenue", &domain.Event{Title: "Gala", Date: "2026-05-15", Revenue: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.CreateEvent(ctx, admin, tt.event)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	t.Run("negative fee", func(t *testing.T) {
		e := &domain.Event{Title: "Gala", Date: "2026-05-15"}
		e.Invite("a1", -100)
		_, err := booking.CreateEvent(ctx, admin, e)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown invitee", func(t *testing.T) {
		_, err := booking.CreateEvent(ctx, admin, galaEvent("ghost"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRespondToInvitationWrongActorIsNoOp(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedRoster(t, st, "a1", "a2")
	booking := NewBookingService(st, nil, nil)

	created, err := booking.CreateEvent(ctx, domain.AdminIdentity(false), galaEvent("a1"))
	require.NoError(t, err)

	// a2 holds no invitation on this event; nothing changes and no error.
	changed, err := booking.RespondToInvitation(ctx, domain.ArtistIdentity("a2"), created.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := st.EventByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Invitation("a1").Status)
}

func TestRespondToInvitationIsFinal(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedRoster(t, st, "a1")
	booking := NewBookingService(st, nil, nil)
	created, err := booking.CreateEvent(ctx, domain.AdminIdentity(false), galaEvent("a1"))
	require.NoError(t, err)

	actor := domain.ArtistIdentity("a1")
	changed, err := booking.RespondToInvitation(ctx, actor, created.ID, domain.StatusRejected)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = booking.RespondToInvitation(ctx, actor, created.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := st.EventByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, stored.Invitation("a1").Status)
}

func TestMarkInvitationPaidRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedRoster(t, st, "a1")
	booking := NewBookingService(st, nil, nil)
	created, err := booking.CreateEvent(ctx, domain.AdminIdentity(false), galaEvent("a1"))
	require.NoError(t, err)

	// The invited artist cannot mark their own fee paid.
	changed, err := booking.MarkInvitationPaid(ctx, domain.ArtistIdentity("a1"), created.ID, "a1")
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := st.EventByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, stored.Invitation("a1").PaymentStatus)
}

func TestRemoveEventNotifiesInvitees(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedRoster(t, st, "a1")
	booking := NewBookingService(st, nil, nil)
	admin := domain.AdminIdentity(false)
	created, err := booking.CreateEvent(ctx, admin, galaEvent("a1"))
	require.NoError(t, err)

	require.NoError(t, booking.RemoveEvent(ctx, admin, created.ID))
	_, err = st.EventByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Invitation notice plus the cancellation notice, newest first.
	notes := st.NotificationsFor("a1")
	require.Len(t, notes, 2)
	assert.Contains(t, notes[0].Title, "cancelled")

	assert.ErrorIs(t, booking.RemoveEvent(ctx, domain.ArtistIdentity("a1"), "any"), domain.ErrForbidden)
}

func TestRosterAddUpdateRemove(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	session := newSessionWithProfile(t, st)
	roster := NewRosterService(st, session, auth.NewPlainCodec(), nil)
	admin := domain.AdminIdentity(false)

	artist := &domain.Artist{Name: "Elena Rossi", Email: "Elena@Example.COM", Discipline: "Singer", Password: "pw"}
	require.NoError(t, roster.AddArtist(ctx, admin, artist))
	require.NotEmpty(t, artist.ID)
	assert.Equal(t, "elena@example.com", artist.Email)

	// Update with an empty password keeps the stored credential.
	updated := &domain.Artist{ID: artist.ID, Name: "Elena Rossi", Email: "elena@example.com", Discipline: "Soprano"}
	require.NoError(t, roster.UpdateArtist(ctx, admin, updated))
	stored, err := st.ArtistByID(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soprano", stored.Discipline)
	assert.Equal(t, "pw", stored.Password)

	require.NoError(t, roster.RemoveArtist(ctx, admin, artist.ID))
	_, err = st.ArtistByID(artist.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRosterForbiddenForNonAdmins(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	session := newSessionWithProfile(t, st)
	roster := NewRosterService(st, session, auth.NewPlainCodec(), nil)
	artist := domain.ArtistIdentity("a1")

	assert.ErrorIs(t, roster.AddArtist(ctx, artist, &domain.Artist{Name: "X", Email: "x@x.it"}), domain.ErrForbidden)
	assert.ErrorIs(t, roster.UpdateArtist(ctx, artist, &domain.Artist{ID: "a1", Name: "X", Email: "x@x.it"}), domain.ErrForbidden)
	assert.ErrorIs(t, roster.RemoveArtist(ctx, artist, "a1"), domain.ErrForbidden)
}

func TestRemoveArtistCascadesToActiveSession(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	session := newSessionWithProfile(t, st)
	roster := NewRosterService(st, session, auth.NewPlainCodec(), nil)
	booking := NewBookingService(st, nil, nil)
	admin := domain.AdminIdentity(false)

	artist := &domain.Artist{Name: "Elena", Email: "elena@x.it", Password: "pw"}
	require.NoError(t, roster.AddArtist(ctx, admin, artist))
	created, err := booking.CreateEvent(ctx, admin, galaEvent(artist.ID))
	require.NoError(t, err)

	_, err = session.Login(ctx, "elena@x.it", "pw", domain.RoleArtist)
	require.NoError(t, err)

	require.NoError(t, roster.RemoveArtist(ctx, admin, artist.ID))

	// Invitations are gone and the artist's session was force-closed.
	stored, err := st.EventByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Invitation(artist.ID))
	assert.True(t, session.Current().Identity.IsAnonymous())
	assert.Nil(t, st.Session())
}
