// Package runtime provides application runtime context for Countdown.
package runtime

import (
	"time"

	"github.com/manav03panchal/countdown/internal/admin"
	"github.com/manav03panchal/countdown/internal/clock"
	"github.com/manav03panchal/countdown/internal/config"
	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/output"
	"github.com/manav03panchal/countdown/internal/scheduler"
	"github.com/manav03panchal/countdown/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	DB        *storage.DB
	Formatter *output.Formatter
	Clock     clock.Clock

	// Repositories
	TimerRepo *storage.TimerRepo
	ThemeRepo *storage.ThemeRepo

	// Admin gate
	Session *admin.Session
	Admin   *admin.Controller

	scheduler *scheduler.Scheduler

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	Config    *config.RuntimeConfig
	Format    output.Format
	ColorMode output.ColorMode
	Clock     clock.Clock
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Config:    config.DefaultRuntimeConfig(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Clock:     clock.Real{},
		Debug:     false,
	}
}

// New creates a new runtime context. The timer collection is loaded right
// away so that seeding and migration happen on every start.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultRuntimeConfig()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}

	path := cfg.Storage.Path
	if path == "" && !cfg.Storage.InMemory {
		path = storage.DefaultPath()
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     path,
		InMemory: cfg.Storage.InMemory,
	})
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("open database", "failed to open database at "+path, err)
	}
	logging.DebugLog("database opened", "path", db.Path(), "in_memory", cfg.Storage.InMemory)

	// Create repositories
	timerRepo := storage.NewTimerRepo(db, clk)
	themeRepo := storage.NewThemeRepo(db)
	if _, err := timerRepo.Load(); err != nil {
		db.Close()
		return nil, err
	}

	session := admin.NewSession(admin.Credentials{
		User:     cfg.Admin.User,
		Password: cfg.Admin.Password,
	})

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:    cfg,
		DB:        db,
		Formatter: formatter,
		Clock:     clk,
		TimerRepo: timerRepo,
		ThemeRepo: themeRepo,
		Session:   session,
		Admin:     admin.NewController(timerRepo, session, clk, time.Local),
		Debug:     opts.Debug,
	}, nil
}

// Scheduler returns the shared recurring-task scheduler, creating it on
// first use.
func (c *Context) Scheduler() *scheduler.Scheduler {
	if c.scheduler == nil {
		c.scheduler = scheduler.NewScheduler()
	}
	return c.scheduler
}

// Close stops the scheduler and closes the database.
func (c *Context) Close() error {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	f := output.NewCLIFormatter(c.Formatter)
	f.ProgressWidth = c.Config.UI.ProgressWidth
	return f
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Login authenticates the admin session.
func (c *Context) Login(user, password string) error {
	return c.Admin.LoginAttempted(user, password)
}
