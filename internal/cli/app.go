// Package cli is the interactive Cannadex client: a REPL over the API
// client, local store, sync coordinator and analytics tracker.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cannadex/cannadex-go/internal/analytics"
	"github.com/cannadex/cannadex-go/internal/api"
	"github.com/cannadex/cannadex-go/internal/config"
	"github.com/cannadex/cannadex-go/internal/logging"
	"github.com/cannadex/cannadex-go/internal/netx"
	"github.com/cannadex/cannadex-go/internal/storage"
	syncx "github.com/cannadex/cannadex-go/internal/sync"
)

// App wires the client components together and hosts the REPL commands.
type App struct {
	config  *config.Config
	client  *api.Client
	store   *storage.Store
	coord   *syncx.Coordinator
	tracker *analytics.Tracker
	online  netx.Checker
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds the full component graph from the given config.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	store, err := storage.Open(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.ResolvedBaseURL()
	checker, err := netx.NewDialChecker(baseURL)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	client := api.New(baseURL, store,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithConnectivity(checker),
		api.WithOfflineQueue(store),
		api.WithLogger(logger),
	)

	settings, err := store.Settings()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	tracker := analytics.NewTracker(client, settings.Analytics, logger)
	coord := syncx.New(store, client, checker, logger)

	return &App{
		config:  cfg,
		client:  client,
		store:   store,
		coord:   coord,
		tracker: tracker,
		online:  checker,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run starts the background sync loop and the REPL, then flushes analytics
// and closes the store on exit.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.coord.Run(ctx, a.config.SyncInterval)

	printlnFn("Welcome to Cannadex (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, bufio.NewScanner(os.Stdin))

	_ = a.tracker.Flush(ctx)
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	token, err := a.store.Token()
	return err == nil && token != ""
}

// status renders the prompt suffix: username, connectivity and queue depth.
func (a *App) status(ctx context.Context) string {
	s := ""
	if user, err := a.store.User(); err == nil && user != nil {
		s = user.Username + " "
	}
	if a.online.Online(ctx) {
		s += "online"
	} else {
		s += "offline"
	}
	if n, err := a.store.QueueLen(); err == nil && n > 0 {
		s += fmt.Sprintf(" %dq", n)
	}
	return "(" + s + ")"
}
