package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/bland/document"
	"github.com/iw2rmb/bland/internal/config"
	"github.com/iw2rmb/bland/internal/logging"
	"github.com/iw2rmb/bland/store"
)

var (
	configPath  string
	storeDriver string
	storePath   string
	storeKey    string

	cfg       *config.Config
	logCloser io.Closer
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/bland/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "Snapshot store: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "", "Database file (sqlite) or directory (file)")
	rootCmd.PersistentFlags().StringVar(&storeKey, "key", "", "Snapshot key")
}

var rootCmd = &cobra.Command{
	Use:   "bland",
	Short: "Live markdown editor for the terminal",
	Long: `bland edits a markdown document in place: headings and list items are
styled as you type and their syntax markers only show on the line under the
cursor. The document is autosaved to a local snapshot store.

Examples:
  bland                        # open the saved document
  bland import notes.md        # replace the saved document with a file
  bland export --format html   # print the document as HTML
  bland preview                # render the document for the terminal`,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	RunE: runEdit,
}

// setup loads the config, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("store") {
		c.Store.Driver = storeDriver
	}
	if flags.Changed("db") {
		c.Store.Path = storePath
	}
	if flags.Changed("key") {
		c.Store.Key = storeKey
	}
	cfg = c

	closer, err := logging.Setup(c.Log.File, c.Log.Level)
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}

func openStore() (store.Store, error) {
	st, err := store.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Info("store opened", "driver", cfg.Store.Driver, "path", cfg.Store.Path)
	return st, nil
}

// loadDocument reads the saved snapshot. A missing, blank or unreadable
// snapshot yields the welcome document.
func loadDocument(ctx context.Context, st store.Store) *document.Document {
	snapshot, ok, err := st.Get(ctx, cfg.Store.Key)
	switch {
	case err != nil:
		slog.Warn("snapshot load failed, using welcome document", "key", cfg.Store.Key, "error", err)
		return document.Welcome()
	case !ok:
		slog.Info("no snapshot, using welcome document", "key", cfg.Store.Key)
		return document.Welcome()
	}
	return document.FromSnapshot(snapshot)
}

// withStore opens the store, runs fn and closes the store.
func withStore(fn func(ctx context.Context, st store.Store) error) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(context.Background(), st)
}
