package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/kavyapatel/portfolio/internal/adapter/driven/github"
	resendadapter "github.com/kavyapatel/portfolio/internal/adapter/driven/resend"
	sqliteadapter "github.com/kavyapatel/portfolio/internal/adapter/driven/sqlite"
	httphandler "github.com/kavyapatel/portfolio/internal/adapter/driving/http"
	webhandler "github.com/kavyapatel/portfolio/internal/adapter/driving/web"
	"github.com/kavyapatel/portfolio/internal/application"
	"github.com/kavyapatel/portfolio/internal/config"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
	"github.com/kavyapatel/portfolio/internal/seed"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"mail_enabled", cfg.MailEnabled(),
		"github_username", cfg.GitHubUsername,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Seed the catalog if the database is empty.
	catalog, err := seed.Load()
	if err != nil {
		return err
	}
	seeded, err := sqliteadapter.NewSeeder(db).SeedIfEmpty(ctx, catalog)
	if err != nil {
		return err
	}
	if seeded {
		slog.Info("seeded empty database",
			"projects", len(catalog.Projects),
			"skills", len(catalog.Skills),
			"achievements", len(catalog.Achievements),
		)
	}

	// 6. Wire store adapters.
	projectStore := sqliteadapter.NewProjectRepo(db)
	skillStore := sqliteadapter.NewSkillRepo(db)
	testimonialStore := sqliteadapter.NewTestimonialRepo(db)
	timelineStore := sqliteadapter.NewTimelineRepo(db)
	statStore := sqliteadapter.NewStatRepo(db)
	achievementStore := sqliteadapter.NewAchievementRepo(db)
	contactStore := sqliteadapter.NewContactRepo(db)

	// 7. Mail transport (nil disables both dispatches, submissions still stored).
	var mailer driven.Mailer
	if cfg.MailEnabled() {
		mailer = resendadapter.NewMailer(cfg.ResendAPIKey)
		slog.Info("mail transport configured", "owner_email", cfg.OwnerEmail)
	} else {
		slog.Info("no mail credentials configured, contact notifications disabled")
	}

	// 8. Social feed source: live GitHub events when a username is configured,
	// otherwise the canned fixture feed.
	var socialFeed driven.SocialFeed
	if cfg.HasSocialSource() {
		socialFeed = githubadapter.NewClient(cfg.GitHubToken, cfg.GitHubUsername)
		slog.Info("social feed from github events", "username", cfg.GitHubUsername)
	} else {
		socialFeed = githubadapter.NewFixtureFeed()
		slog.Info("no github username configured, serving fixture social feed")
	}

	// 9. Contact pipeline service.
	contactSvc := application.NewContactService(
		contactStore, mailer,
		cfg.OwnerEmail, cfg.MailFrom, cfg.SiteName,
		slog.Default(),
	)

	// 10. Register API and page routes, apply middleware.
	apiHandler := httphandler.NewHandler(
		projectStore, skillStore, testimonialStore, timelineStore,
		statStore, achievementStore, contactSvc, socialFeed,
		slog.Default(),
	)
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	pageHandler := webhandler.NewHandler(slog.Default())
	webhandler.RegisterRoutes(mux, pageHandler)

	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	// 11. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
