package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/legacykeeper/internal/client/config"
	"github.com/dmitrijs2005/legacykeeper/internal/client/database"
	"github.com/dmitrijs2005/legacykeeper/internal/client/images"
	"github.com/dmitrijs2005/legacykeeper/internal/client/ocr"
	"github.com/dmitrijs2005/legacykeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/legacykeeper/internal/client/services"
	"github.com/dmitrijs2005/legacykeeper/internal/client/session"
	"github.com/dmitrijs2005/legacykeeper/internal/common"
	"github.com/dmitrijs2005/legacykeeper/internal/logging"
)

type App struct {
	config     *config.Config
	log        logging.Logger
	db         *sql.DB
	assets     *services.AssetStore
	heartbeat  *services.HeartbeatScheduler
	session    *session.Session
	recognizer ocr.Recognizer
	images     *images.Store
	loc        *time.Location
	reader     *bufio.Reader
	out        io.Writer
}

// NewApp opens the vault database named by c.DSN and prepares the asset
// store. A store that cannot be initialised leaves the app running with
// storage unavailable; only a database that cannot be opened at all is an
// error.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, c.DSN)
	if err != nil {
		log.Error(ctx, "error opening database", "dsn", c.DSN, "err", err)
		return nil, err
	}

	a := newApp(c, log, db, loc, in, out)
	if err := a.heartbeat.Init(ctx, db); err != nil {
		fmt.Fprintln(a.out, "Warning: heartbeat settings cannot be saved")
	}
	if err := a.assets.Init(ctx, db); err != nil {
		fmt.Fprintln(a.out, "Warning: storage is unavailable, assets cannot be read or saved")
	}
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, db *sql.DB, loc *time.Location, in io.Reader, out io.Writer) *App {
	return &App{
		config:     c,
		log:        log,
		db:         db,
		assets:     services.NewAssetStore(log),
		heartbeat:  services.NewHeartbeatScheduler(metadata.NewSQLiteRepository(db), log, services.WithLocation(loc)),
		session:    session.New(),
		recognizer: ocr.NewStub(c.OCRDelay),
		images:     images.NewStore(c.ImagesDir, log),
		loc:        loc,
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

// Run starts the interactive shell and blocks until the user exits or ctx
// is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to LegacyKeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := "guest"
	if a.isLoggedIn() {
		s = "vault"
	}
	if !a.assets.Available() {
		s += " offline-storage"
	}
	return fmt.Sprintf("(%s)", s)
}

// requireLogin reports common.ErrorUnauthorized to the user when the session
// is not authenticated.
func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	fmt.Fprintln(a.out, "Please login first")
	return common.ErrorUnauthorized
}

// fail prints err to the user and returns it.
func (a *App) fail(msg string, err error) error {
	fmt.Fprintf(a.out, "%s: %v\n", msg, err)
	return err
}
