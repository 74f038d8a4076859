package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/store"
)

type rosterService struct {
	store   *store.Store
	session domain.SessionService
	creds   domain.CredentialCodec
	logger  *slog.Logger
}

// NewRosterService creates the admin roster surface. The session service is
// needed for the forced-logout cascade when the active artist is removed.
func NewRosterService(st *store.Store, session domain.SessionService, creds domain.CredentialCodec, logger *slog.Logger) domain.RosterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &rosterService{store: st, session: session, creds: creds, logger: logger}
}

func (s *rosterService) AddArtist(ctx context.Context, actor domain.Identity, artist *domain.Artist) error {
	if !actor.CanManageRoster() {
		return domain.ErrForbidden
	}
	if err := validateArtist(artist); err != nil {
		return err
	}
	artist.Email = strings.TrimSpace(strings.ToLower(artist.Email))
	if artist.Password != "" {
		encoded, err := s.creds.Encode(artist.Password)
		if err != nil {
			return fmt.Errorf("encode artist credential: %w", err)
		}
		artist.Password = encoded
	}
	if err := s.store.AddArtist(ctx, artist); err != nil {
		return fmt.Errorf("add artist: %w", err)
	}
	return nil
}

func (s *rosterService) UpdateArtist(ctx context.Context, actor domain.Identity, artist *domain.Artist) error {
	if !actor.CanManageRoster() {
		return domain.ErrForbidden
	}
	if err := validateArtist(artist); err != nil {
		return err
	}
	artist.Email = strings.TrimSpace(strings.ToLower(artist.Email))
	// Wholesale replace: keep the stored credential when the caller left the
	// password field empty, re-encode it when they set a new one.
	prev, err := s.store.ArtistByID(artist.ID)
	if err != nil {
		return err
	}
	if artist.Password == "" {
		artist.Password = prev.Password
	} else if artist.Password != prev.Password {
		encoded, err := s.creds.Encode(artist.Password)
		if err != nil {
			return fmt.Errorf("encode artist credential: %w", err)
		}
		artist.Password = encoded
	}
	if err := s.store.UpdateArtist(ctx, artist); err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

func (s *rosterService) RemoveArtist(ctx context.Context, actor domain.Identity, artistID string) error {
	if !actor.CanManageRoster() {
		return domain.ErrForbidden
	}
	forcedLogout, err := s.store.RemoveArtist(ctx, artistID)
	if err != nil {
		return fmt.Errorf("remove artist: %w", err)
	}
	if forcedLogout {
		s.session.ForceLogout("Your profile was removed from the agency.")
	}
	return nil
}

func validateArtist(artist *domain.Artist) error {
	if artist == nil {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(artist.Name) == "" {
		return fmt.Errorf("artist name is required: %w", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(artist.Email))) {
		return fmt.Errorf("invalid email format: %w", domain.ErrInvalidInput)
	}
	return nil
}
