package domain

import "context"

// AgencyProfile is the single admin account for the agency. The password is
// encoded by the configured CredentialCodec, which stores it verbatim in the
// default mode.
type AgencyProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionPointer is the persisted identifier of the last authenticated user,
// used only to rehydrate the session on startup. It carries no proof of
// identity and is re-validated against current data before being trusted.
type SessionPointer struct {
	Role   RoleKind `json:"role"`
	UserID string   `json:"user_id"`
}

// Snapshot is the full persisted state of the application: the three
// collections plus the agency profile and session pointer. Every mutation
// writes the whole snapshot; there is no incremental persistence.
type Snapshot struct {
	Artists       []*Artist       `json:"artists"`
	Events        []*Event        `json:"events"`
	Notifications []*Notification `json:"notifications"`
	Profile       *AgencyProfile  `json:"profile,omitempty"`
	Session       *SessionPointer `json:"session,omitempty"`
}

// SnapshotRepository defines whole-snapshot storage. Save must be atomic: a
// failed write leaves the previously saved snapshot intact.
type SnapshotRepository interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// CredentialCodec encodes passwords for storage and verifies submitted ones.
// Implementations: plaintext (source-faithful default) and bcrypt (hardened).
type CredentialCodec interface {
	Encode(password string) (string, error)
	Verify(stored, password string) bool
}

// CopyContext carries the data a CopyWriter may draw on when producing
// invitation or welcome text for an artist.
type CopyContext struct {
	AgencyName string
	Artist     *Artist
	Event      *Event
}

// CopyWriter produces user-facing message copy. The core treats it as an
// opaque collaborator with no effect on entity state.
type CopyWriter interface {
	InvitationCopy(ctx context.Context, data CopyContext) (string, error)
	WelcomeCopy(ctx context.Context, data CopyContext) (string, error)
}

// Alerter delivers best-effort local notices (toast-level messages). Failures
// are ignored by callers.
type Alerter interface {
	Alert(title, body string)
}
