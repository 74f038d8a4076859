package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/store"
)

type bookingService struct {
	store   *store.Store
	alerter domain.Alerter
	logger  *slog.Logger
}

// NewBookingService creates the event and invitation surface.
func NewBookingService(st *store.Store, alerter domain.Alerter, logger *slog.Logger) domain.BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingService{store: st, alerter: alerter, logger: logger}
}

func (s *bookingService) CreateEvent(ctx context.Context, actor domain.Identity, event *domain.Event) (*domain.Event, error) {
	if !actor.CanManageRoster() {
		return nil, domain.ErrForbidden
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	// Invitations may only target roster members.
	for _, inv := range event.Invitations {
		if _, err := s.store.ArtistByID(inv.ArtistID); err != nil {
			return nil, fmt.Errorf("invited artist %s: %w", inv.ArtistID, err)
		}
	}
	e := event.Clone()
	if err := s.store.AddEvent(ctx, e); err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}
	if s.alerter != nil && len(e.Invitations) > 0 {
		s.alerter.Alert("New invitations sent",
			fmt.Sprintf("%d artist(s) invited to %q", len(e.Invitations), e.Title))
	}
	return e, nil
}

func (s *bookingService) RemoveEvent(ctx context.Context, actor domain.Identity, eventID string) error {
	if !actor.CanManageRoster() {
		return domain.ErrForbidden
	}
	if err := s.store.RemoveEvent(ctx, eventID); err != nil {
		return fmt.Errorf("remove event: %w", err)
	}
	return nil
}

func (s *bookingService) RespondToInvitation(ctx context.Context, actor domain.Identity, eventID string, status domain.InvitationStatus) (bool, error) {
	changed, err := s.store.UpdateInvitationStatus(ctx, eventID, actor.ArtistID, actor, status)
	if err != nil {
		return false, fmt.Errorf("update invitation status: %w", err)
	}
	if changed {
		s.logger.Info("invitation response", "event_id", eventID, "artist_id", actor.ArtistID, "status", status)
	}
	return changed, nil
}

func (s *bookingService) MarkInvitationPaid(ctx context.Context, actor domain.Identity, eventID, artistID string) (bool, error) {
	changed, err := s.store.MarkPaid(ctx, eventID, artistID, actor)
	if err != nil {
		return false, fmt.Errorf("mark invitation paid: %w", err)
	}
	return changed, nil
}

func validateEvent(event *domain.Event) error {
	if event == nil {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("event title is required: %w", domain.ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return fmt.Errorf("event date must be YYYY-MM-DD: %w", domain.ErrInvalidInput)
	}
	if event.StartTime != "" {
		if _, err := time.Parse("15:04", event.StartTime); err != nil {
			return fmt.Errorf("event start time must be HH:MM: %w", domain.ErrInvalidInput)
		}
	}
	if event.Revenue < 0 {
		return fmt.Errorf("event revenue must not be negative: %w", domain.ErrInvalidInput)
	}
	for _, inv := range event.Invitations {
		if inv.Fee < 0 {
			return fmt.Errorf("invitation fee must not be negative: %w", domain.ErrInvalidInput)
		}
	}
	return nil
}
