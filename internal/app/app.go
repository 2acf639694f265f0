package app

import (
	"database/sql"
	"log/slog"

	boardservice "github.com/thenoetrevino/notscrum/internal/services/board"
	cardservice "github.com/thenoetrevino/notscrum/internal/services/card"
	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	logger *slog.Logger

	// Service layer (business logic)
	BoardService boardservice.Service
	LaneService  laneservice.Service
	CardService  cardservice.Service
}

// New creates a new App with all services initialized.
// The App takes ownership of db and closes it in Close.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		db:           db,
		logger:       cfg.logger,
		BoardService: boardservice.NewService(db, cfg.defaultLanes),
		LaneService:  laneservice.NewService(db),
		CardService:  cardservice.NewService(db),
	}
}

// DB returns the underlying database handle
func (a *App) DB() *sql.DB {
	return a.db
}

// Logger returns the logger the App was configured with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
