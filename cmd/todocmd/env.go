package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tgienger/todocmd/internal/config"
	"github.com/tgienger/todocmd/internal/db"
	"github.com/tgienger/todocmd/internal/store"
	"github.com/tgienger/todocmd/internal/workspace"
)

// environment is the state shared by all subcommands of one run
type environment struct {
	configPath string
	overrides  config.Overrides

	cfg    *config.Config
	logger *log.Logger
	store  *store.FileStore
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "todocmd",
	})
}

func (e *environment) setup(cmd *cobra.Command) error {
	path := e.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
	}

	cfg, err := config.Load(path, e.overrides)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	e.cfg = cfg
	e.logger = newLogger(cmd.ErrOrStderr(), level)
	e.logger.Debug("loaded config", "path", path, "todo", cfg.TodoFile, "done", cfg.DoneFile)
	return nil
}

// load reads and parses both lists
func (e *environment) load() (*workspace.Workspace, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	e.store = store.New(e.cfg.TodoFile, e.cfg.DoneFile, e.logger)
	ws, err := workspace.Load(e.store)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("parsed lists", "todo", ws.Todo.Len(), "done", ws.Done.Len())
	return ws, nil
}

// save writes both lists back to their files
func (e *environment) save(ws workspace.Workspace) error {
	if err := ws.Save(e.store); err != nil {
		return fmt.Errorf("save lists: %w", err)
	}
	return nil
}

// openIndex opens the SQLite index and syncs it with ws
func (e *environment) openIndex(ws *workspace.Workspace) (*db.DB, error) {
	open := db.New
	if e.cfg.IndexFile != "" {
		open = func() (*db.DB, error) { return db.Open(e.cfg.IndexFile) }
	}
	database, err := open()
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	if err := database.Sync(db.ListTodo, ws.Todo); err != nil {
		database.Close()
		return nil, fmt.Errorf("index todo list: %w", err)
	}
	if err := database.Sync(db.ListDone, ws.Done); err != nil {
		database.Close()
		return nil, fmt.Errorf("index done list: %w", err)
	}
	e.logger.Debug("synced index", "todo", ws.Todo.Len(), "done", ws.Done.Len())
	return database, nil
}
