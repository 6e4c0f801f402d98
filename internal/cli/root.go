// Package cli wires the cobra command tree around the store.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/listoapp/listo/internal/app"
	"github.com/listoapp/listo/internal/logging"
	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/storage"
	"github.com/listoapp/listo/internal/store"
)

// env bundles everything a command needs once the data dir is open.
type env struct {
	cfg     *model.Config
	log     *zap.SugaredLogger
	storage *storage.SQLiteStorage
	store   *store.Store
}

// close releases the environment's resources.
func (e *env) close() {
	_ = e.log.Sync()
	if err := e.storage.Close(); err != nil {
		e.log.Warnw("closing storage", "error", err)
	}
}

// openEnv loads configuration, opens storage, and bootstraps the store.
func openEnv(configPath string) (*env, error) {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", cfg.DataDir, err)
	}

	log, err := logging.New(cfg.Log, cfg.DataDir)
	if err != nil {
		return nil, err
	}

	st, err := storage.NewSQLiteStorage(filepath.Join(cfg.DataDir, "listo.db"))
	if err != nil {
		return nil, err
	}

	s := store.New(st, log)
	s.Load(context.Background())

	return &env{cfg: cfg, log: log, storage: st, store: s}, nil
}

// NewRootCommand builds the listo command tree. Running the bare command
// starts the TUI.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "listo",
		Short: "A task list that empties itself at midnight",
		Long: "Listo is a single-user task manager. Tasks expire at the end of " +
			"the day unless extended or parked on the Overtime board.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(configPath)
		},
	}

	root.PersistentFlags().StringVar(
		&configPath, "config", model.DefaultConfigPath(), "path to config file",
	)

	root.AddCommand(newExportCommand(&configPath))
	root.AddCommand(newImportCommand(&configPath))
	root.AddCommand(newSweepCommand(&configPath))
	root.AddCommand(newResetCommand(&configPath))

	return root
}

// runTUI starts the interactive application with the background sweeper.
func runTUI(configPath string) error {
	e, err := openEnv(configPath)
	if err != nil {
		return err
	}
	defer e.close()

	// Startup check: expired tasks must not survive a restart.
	if removed := e.store.SweepExpired(time.Now()); removed > 0 {
		e.log.Infow("startup sweep", "removed", removed)
	}

	sweeper := store.NewSweeper(
		e.store,
		time.Duration(e.cfg.SweepIntervalSec)*time.Second,
		e.log,
	)
	sweeper.Start()
	defer sweeper.Stop()

	p := tea.NewProgram(app.New(e.store, sweeper), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
