package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jorgeutermoehl/agenda/internal/config"
	"github.com/jorgeutermoehl/agenda/internal/logging"
	"github.com/jorgeutermoehl/agenda/internal/models"
	"github.com/jorgeutermoehl/agenda/internal/repositories/contacts"
	"github.com/jorgeutermoehl/agenda/internal/repositories/users"
	"github.com/jorgeutermoehl/agenda/internal/store"
)

// App is the interactive agenda session: one loaded document, one optional
// authenticated user, and the store that persists every mutation.
type App struct {
	config   *config.Config
	store    *store.Store
	doc      *models.Document
	users    *users.Directory
	contacts *contacts.Repository
	current  *models.User
	reader   *bufio.Reader
	out      io.Writer
	logger   logging.Logger
}

// NewApp builds an App bound to the configured data directory, reading from
// stdin and writing to stdout.
func NewApp(cfg *config.Config, logger logging.Logger) *App {
	return &App{
		config: cfg,
		store:  store.Open(cfg.DataDir, cfg.DataFile, cfg.AuditFile, logger),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		logger: logger,
	}
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

// userLabel names the authenticated user in the contact panel header.
func (a *App) userLabel() string {
	if a.current == nil {
		return ""
	}
	return a.current.Login
}

// Run loads (and, when needed, repairs or migrates) the document, reports
// what happened to the operator, and enters the access-control menu. It
// returns when the user exits, input ends, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	doc, res, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	a.doc = doc
	a.users = users.NewDirectory(doc)
	a.contacts = contacts.NewRepository(doc)

	a.announceLoad(res)
	runAccessMenu(ctx, a, a.reader, a.out)
	return nil
}

// announceLoad tells the operator about recovery and migration branches.
// A normal load stays silent.
func (a *App) announceLoad(res store.LoadResult) {
	switch res.Status {
	case store.LoadRecovered:
		if res.BackupPath != "" {
			fmt.Fprintf(a.out, "Contacts file was corrupt. Backup created at %s.\n", res.BackupPath)
		} else {
			fmt.Fprintln(a.out, "Contacts file was corrupt. Could not create an automatic backup.")
		}
	case store.LoadMigrated:
		fmt.Fprintf(a.out, "Structure migrated. Use login %q and password %q to see the existing contacts.\n",
			store.AdminLogin, store.AdminPassword)
	}
}
