package domain

// RoleKind enumerates the closed set of application roles.
type RoleKind string

const (
	RoleAnonymous  RoleKind = "ANONYMOUS"
	RoleAdmin      RoleKind = "ADMIN"
	RoleSuperAdmin RoleKind = "SUPER_ADMIN"
	RoleArtist     RoleKind = "ARTIST"
)

// AdminUserID is the fixed identity assigned to agency administrators.
// Admins are not roster entries, so they share one sentinel id.
const AdminUserID = "admin"

// Identity is the resolved authentication state of the application.
// ArtistID is set only when Kind == RoleArtist.
type Identity struct {
	Kind     RoleKind `json:"kind"`
	ArtistID string   `json:"artist_id,omitempty"`
}

// Anonymous returns the unauthenticated identity.
func Anonymous() Identity {
	return Identity{Kind: RoleAnonymous}
}

// AdminIdentity returns the admin identity, or super-admin when elevated.
func AdminIdentity(super bool) Identity {
	if super {
		return Identity{Kind: RoleSuperAdmin}
	}
	return Identity{Kind: RoleAdmin}
}

// ArtistIdentity returns an artist identity bound to the given roster id.
func ArtistIdentity(artistID string) Identity {
	return Identity{Kind: RoleArtist, ArtistID: artistID}
}

// UserID returns the persisted user identifier for this identity.
func (i Identity) UserID() string {
	switch i.Kind {
	case RoleAdmin, RoleSuperAdmin:
		return AdminUserID
	case RoleArtist:
		return i.ArtistID
	}
	return ""
}

// IsAnonymous reports whether no user is authenticated.
func (i Identity) IsAnonymous() bool {
	return i.Kind == RoleAnonymous || i.Kind == ""
}

// CanManageRoster reports whether the identity may create, edit, or delete
// artists and events.
func (i Identity) CanManageRoster() bool {
	return i.Kind == RoleAdmin || i.Kind == RoleSuperAdmin
}

// CanManagePayments reports whether the identity may change payment statuses.
func (i Identity) CanManagePayments() bool {
	return i.Kind == RoleAdmin || i.Kind == RoleSuperAdmin
}

// CanRespondToInvitation reports whether the identity may accept or reject
// the invitation addressed to artistID. Only the owning artist may respond.
func (i Identity) CanRespondToInvitation(artistID string) bool {
	return i.Kind == RoleArtist && i.ArtistID != "" && i.ArtistID == artistID
}

// DefaultTab returns the view a freshly authenticated identity lands on.
func (i Identity) DefaultTab() string {
	if i.Kind == RoleArtist {
		return TabMyCalendar
	}
	return TabDashboard
}

// Known UI tab identifiers, persisted alongside the session pointer.
const (
	TabDashboard  = "dashboard"
	TabMyCalendar = "my-calendar"
)
