package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/reel/internal/auth"
	"github.com/desertthunder/reel/internal/catalog"
	"github.com/desertthunder/reel/internal/favorites"
	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/desertthunder/reel/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	catalog    catalog.Service
	store      store.Store
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Catalog    catalog.Service
	Store      store.Store
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		catalog:    opts.Catalog,
		store:      opts.Store,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger, e.g. to redirect logs to a file.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, browseCommand, searchCommand, movieCommand, favoritesCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openStore opens the profile database and returns the record store backed by it.
//
// Migrations run idempotently so any command can be the first one executed
// against a fresh profile.
func (r *Runner) openStore() (store.Store, error) {
	if r.store != nil {
		return r.store, nil
	}

	db, err := shared.NewDatabase(r.config.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Store.MaxOpenConns, r.config.Store.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to migrate profile store: %w", err)
	}

	r.store = store.NewSQLite(db)
	return r.store, nil
}

// sessions returns the auth service over the profile store.
func (r *Runner) sessions() (*auth.Service, error) {
	s, err := r.openStore()
	if err != nil {
		return nil, err
	}
	return auth.NewService(s), nil
}

// favoritesService returns the favorites manager over the profile store.
func (r *Runner) favoritesService() (*favorites.Service, error) {
	s, err := r.openStore()
	if err != nil {
		return nil, err
	}
	if r.catalog == nil {
		return nil, fmt.Errorf("%w: TMDB api_key must be set in config.toml", shared.ErrInvalidConfig)
	}
	return favorites.NewService(s, r.catalog), nil
}

// requireSession fails unless a user is signed in.
//
// Commands over private surfaces (browse, search, movie, favorites, tui)
// call this before doing any work; the session snapshot is trusted as-is.
func (r *Runner) requireSession() (*models.User, error) {
	sessions, err := r.sessions()
	if err != nil {
		return nil, err
	}

	user := sessions.CurrentSession()
	if user == nil {
		return nil, fmt.Errorf("%w: run 'reel auth login' or 'reel auth register' first", shared.ErrNotAuthenticated)
	}

	return user, nil
}

// requireCatalog fails unless the TMDB client is configured.
func (r *Runner) requireCatalog() (catalog.Service, error) {
	if r.catalog == nil {
		return nil, fmt.Errorf("%w: TMDB api_key must be set in config.toml", shared.ErrInvalidConfig)
	}
	return r.catalog, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
