package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/actions"
	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/scheduler"
	"github.com/MrSnakeDoc/sharelink/internal/sources/contacts"
	"github.com/MrSnakeDoc/sharelink/internal/state"
	"github.com/MrSnakeDoc/sharelink/internal/version"
)

type App struct {
	cfg        *config.Config
	logger     logger.Logger
	server     *httpserver.Server
	store      *state.Store
	linkOpener *scheduler.LinkOpener
}

func New(cfg *config.Config) *App {
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	store := state.NewStore(cfg.DefaultMessage, cfg.DefaultPlatform)

	// Seed contacts (optional). A broken seed file is not fatal: the
	// session simply starts empty.
	var importer *contacts.Importer
	if cfg.ContactsFile != "" {
		importer = contacts.NewImporter(cfg.ContactsFile, loggerClient)
		if _, err := importer.Import(store); err != nil {
			loggerClient.Warn("failed to import contacts on startup",
				logger.String("file", cfg.ContactsFile),
				logger.Error(err))
		}
	} else {
		loggerClient.Info("contacts file not configured, starting with an empty registry")
	}

	clip := actions.NewSystemClipboard()
	if !clip.Supported() {
		loggerClient.Warn("system clipboard unavailable, copy actions fall back to the browser")
	}

	loggerClient.Info("access policy",
		logger.Strings("allowed_hosts", cfg.AllowedHosts),
		logger.Strings("allowed_cidrs", cfg.AllowedCIDRS),
		logger.Strings("cors_origins", cfg.CORSOrigins),
		logger.Bool("trust_proxy", cfg.TrustProxy),
		logger.Bool("clipboard", clip.Supported()))

	linkOpener := scheduler.NewLinkOpener(actions.NewBrowserOpener(), loggerClient, cfg.OpenDelay)

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Store:        store,
		Clipboard:    clip,
		LinkOpener:   linkOpener,
		Importer:     importer,
	}

	return &App{
		cfg:        cfg,
		logger:     loggerClient,
		server:     httpserver.New(cfg, loggerClient, d),
		store:      store,
		linkOpener: linkOpener,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting %s on %s", version.String(), a.cfg.ListenPort)
	defer func() { _ = a.logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.linkOpener.Stop()
		return err
	}

	// Pending "open all" sequences are cancelled, not drained.
	a.linkOpener.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ sharelink stopped cleanly",
		logger.Int("contacts_discarded", a.store.Count()))
	return nil
}
