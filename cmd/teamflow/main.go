// main is the composition root for the TeamFlow agency manager: it wires
// configuration, the snapshot database, the entity store, and the services,
// rehydrates the persisted session, and reports agency status.
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/glauberagbaiye-droid/teamflow-agency/config"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/adapters/alert"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/adapters/auth"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/adapters/copywriter"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/repository/sqlite"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/services"
	"github.com/glauberagbaiye-droid/teamflow-agency/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()
	ctx := context.Background()

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("open snapshot database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	st, err := store.Open(ctx, sqlite.NewSnapshotRepository(db), logger)
	if err != nil {
		logger.Error("open entity store", "error", err)
		os.Exit(1)
	}

	var creds domain.CredentialCodec
	switch cfg.CredentialMode {
	case "bcrypt":
		creds = auth.NewBcryptCodec(0)
	default:
		creds = auth.NewPlainCodec()
		logger.Warn("credentials are stored in plaintext; set CREDENTIAL_MODE=bcrypt for anything beyond a local demo")
	}

	var super *services.SuperAdminCredential
	if cfg.SuperAdminEmail != "" && cfg.SuperAdminPassword != "" {
		super = &services.SuperAdminCredential{
			Email:    cfg.SuperAdminEmail,
			Password: cfg.SuperAdminPassword,
		}
	}

	alerter := alert.NewLogAlerter(logger)
	session := services.NewSessionService(st, creds, super, alerter, logger)
	views := services.NewViews(st, nil)

	state, err := session.Rehydrate(ctx)
	if err != nil {
		logger.Error("rehydrate session", "error", err)
		os.Exit(1)
	}

	year := time.Now().Year()
	monthly := views.MonthlyAggregate(year)
	var revenue, expenses float64
	for _, bucket := range monthly {
		revenue += bucket.Revenue
		expenses += bucket.Expenses
	}
	logger.Info("agency status",
		"role", state.Identity.Kind,
		"active_tab", state.ActiveTab,
		"artists", len(st.Artists()),
		"events", len(st.Events()),
		"confirmed_events", len(views.ConfirmedEvents()),
		"imminent_events", len(views.ImminentEvents(services.DefaultImminentWindowDays)),
		"year", year,
		"revenue", revenue,
		"artist_fees", expenses,
	)

	// Greet a rehydrated artist session the way the UI does after login.
	if state.Identity.Kind == domain.RoleArtist {
		artist, err := st.ArtistByID(state.Identity.ArtistID)
		if err == nil {
			agencyName := "TeamFlow"
			if profile := st.Profile(); profile != nil {
				agencyName = profile.Name
			}
			writer := buildCopyWriter(cfg)
			if text, err := writer.WelcomeCopy(ctx, domain.CopyContext{AgencyName: agencyName, Artist: artist}); err == nil {
				alerter.Alert("Welcome back", text)
			}
			ledger := views.ArtistLedger(artist.ID)
			logger.Info("artist ledger",
				"artist", artist.Name,
				"shows_this_year", ledger.ShowsThisYear,
				"earned_this_year", ledger.TotalEarnedThisYear,
				"total_paid", ledger.TotalPaid,
				"pending_payments", ledger.PendingPayments,
			)
		}
	}
}

func buildCopyWriter(cfg *config.Config) domain.CopyWriter {
	if cfg.CopywriterURL == "" {
		return copywriter.NewTemplateWriter()
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return copywriter.NewRemoteWriter(client, cfg.CopywriterURL, cfg.CopywriterAPIKey)
}
