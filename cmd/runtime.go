package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/config"
	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/store"
)

// runtime bundles the resolved config with the resources built from it.
type runtime struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
}

// openRuntime resolves configuration from flags, env and config file, then
// opens the logger and the answer store.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Path:   cfg.Log.File,
	})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	opts := cfg.StoreOptions()
	opts.Logger = log
	st, err := store.Open(cmd.Context(), opts)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	log.Debug("runtime ready",
		zap.String("command", cmd.Name()),
		zap.String("store", opts.Backend))
	return &runtime{cfg: cfg, log: log, store: st}, nil
}

// env builds the dependencies handed to TUI screens.
func (r *runtime) env() screen.Env {
	return screen.Env{
		Catalog:   catalog.Default(),
		Store:     r.store,
		Log:       r.log,
		ReportDir: reportDir(),
	}
}

func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.log.Warn("close store", zap.Error(err))
	}
	r.log.Sync()
}

// reportDir is where saved reports go: the working directory, or the
// data dir when the working directory cannot be resolved.
func reportDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	if dir, err := store.DefaultDataDir(); err == nil {
		return dir
	}
	return "."
}
