package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/store"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SuperAdminCredential is the distinguished credential that elevates a login
// to SUPER_ADMIN. It is optional and typically comes from configuration.
type SuperAdminCredential struct {
	Email    string
	Password string
}

type sessionService struct {
	store   *store.Store
	creds   domain.CredentialCodec
	super   *SuperAdminCredential
	alerter domain.Alerter
	logger  *slog.Logger

	mu      sync.Mutex
	current domain.SessionState
}

// NewSessionService creates a SessionService over the given store. super may
// be nil when no distinguished super-admin credential is configured.
func NewSessionService(st *store.Store, creds domain.CredentialCodec, super *SuperAdminCredential, alerter domain.Alerter, logger *slog.Logger) domain.SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionService{
		store:   st,
		creds:   creds,
		super:   super,
		alerter: alerter,
		logger:  logger,
		current: domain.SessionState{Identity: domain.Anonymous()},
	}
}

func (s *sessionService) Register(ctx context.Context, agencyName, email, password string) error {
	if s.store.Profile() != nil {
		return domain.ErrProfileExists
	}
	agencyName = strings.TrimSpace(agencyName)
	email = strings.TrimSpace(strings.ToLower(email))
	if agencyName == "" || password == "" {
		return domain.ErrInvalidInput
	}
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("invalid email format: %w", domain.ErrInvalidInput)
	}
	encoded, err := s.creds.Encode(password)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	profile := &domain.AgencyProfile{Name: agencyName, Email: email, Password: encoded}
	if err := s.store.SetProfile(ctx, profile); err != nil {
		return fmt.Errorf("store agency profile: %w", err)
	}
	s.logger.Info("agency profile registered", "agency", agencyName)
	return nil
}

func (s *sessionService) Login(ctx context.Context, email, password string, requested domain.RoleKind) (domain.SessionState, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s.Current(), domain.ErrInvalidInput
	}

	identity, ok := s.resolve(email, password, requested)
	if !ok {
		// No partial session on failure.
		return s.Current(), domain.ErrInvalidCredentials
	}

	state := domain.SessionState{Identity: identity, ActiveTab: identity.DefaultTab()}
	ptr := &domain.SessionPointer{Role: identity.Kind, UserID: identity.UserID()}
	if err := s.store.SetSession(ctx, ptr); err != nil {
		return s.Current(), fmt.Errorf("store session pointer: %w", err)
	}
	s.setCurrent(state)
	s.logger.Info("login", "role", identity.Kind, "user_id", identity.UserID())
	return state, nil
}

// resolve maps a credential pair to an identity. The distinguished
// super-admin credential wins over the agency admin credential; the artist
// lookup runs only when the caller asked for the ARTIST role.
func (s *sessionService) resolve(email, password string, requested domain.RoleKind) (domain.Identity, bool) {
	if s.super != nil && strings.EqualFold(email, s.super.Email) && password == s.super.Password {
		return domain.AdminIdentity(true), true
	}
	if profile := s.store.Profile(); profile != nil &&
		strings.EqualFold(email, profile.Email) && s.creds.Verify(profile.Password, password) {
		return domain.AdminIdentity(false), true
	}
	if requested == domain.RoleArtist {
		artist, err := s.store.ArtistByEmail(email)
		if err == nil && artist.Password != "" && s.creds.Verify(artist.Password, password) {
			return domain.ArtistIdentity(artist.ID), true
		}
	}
	return domain.Anonymous(), false
}

func (s *sessionService) Rehydrate(ctx context.Context) (domain.SessionState, error) {
	ptr := s.store.Session()
	if ptr == nil {
		state := domain.SessionState{Identity: domain.Anonymous()}
		s.setCurrent(state)
		return state, nil
	}

	var identity domain.Identity
	switch ptr.Role {
	case domain.RoleAdmin, domain.RoleSuperAdmin:
		if s.store.Profile() == nil && s.super == nil {
			return s.invalidate(ctx)
		}
		identity = domain.AdminIdentity(ptr.Role == domain.RoleSuperAdmin)
	case domain.RoleArtist:
		// The artist may have been deleted since the last session.
		if _, err := s.store.ArtistByID(ptr.UserID); err != nil {
			return s.invalidate(ctx)
		}
		identity = domain.ArtistIdentity(ptr.UserID)
	default:
		return s.invalidate(ctx)
	}

	state := domain.SessionState{Identity: identity, ActiveTab: identity.DefaultTab()}
	s.setCurrent(state)
	s.logger.Info("session rehydrated", "role", identity.Kind, "user_id", identity.UserID())
	return state, nil
}

// invalidate clears a stale session pointer and returns the anonymous state.
func (s *sessionService) invalidate(ctx context.Context) (domain.SessionState, error) {
	state := domain.SessionState{Identity: domain.Anonymous()}
	s.setCurrent(state)
	if err := s.store.ClearSession(ctx); err != nil {
		return state, fmt.Errorf("clear stale session: %w", err)
	}
	return state, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.setCurrent(domain.SessionState{Identity: domain.Anonymous()})
	if err := s.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *sessionService) ForceLogout(notice string) {
	s.setCurrent(domain.SessionState{Identity: domain.Anonymous()})
	if s.alerter != nil {
		s.alerter.Alert("Signed out", notice)
	}
	s.logger.Info("forced logout", "notice", notice)
}

func (s *sessionService) Current() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *sessionService) setCurrent(state domain.SessionState) {
	s.mu.Lock()
	s.current = state
	s.mu.Unlock()
}

func (s *sessionService) ResetProfile(ctx context.Context) error {
	s.setCurrent(domain.SessionState{Identity: domain.Anonymous()})
	if err := s.store.ResetProfile(ctx); err != nil {
		return fmt.Errorf("reset agency profile: %w", err)
	}
	return nil
}
