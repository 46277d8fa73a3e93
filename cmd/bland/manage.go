package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	bland "github.com/iw2rmb/bland"
	"github.com/iw2rmb/bland/document"
	"github.com/iw2rmb/bland/store"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the saved document with a markdown file (- for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		return withStore(func(ctx context.Context, st store.Store) error {
			doc := document.New(text)
			if err := st.Set(ctx, cfg.Store.Key, doc.Serialize()); err != nil {
				return fmt.Errorf("save document: %w", err)
			}
			slog.Info("document imported", "file", args[0], "lines", doc.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d lines into %q\n", doc.Len(), cfg.Store.Key)
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved document; the next edit starts from the welcome document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(ctx context.Context, st store.Store) error {
			if err := st.Delete(ctx, cfg.Store.Key); err != nil {
				return fmt.Errorf("delete document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", cfg.Store.Key)
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bland version",
	Args:  cobra.NoArgs,
	// version needs neither config nor store
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), bland.UserVersion())
	},
}

func init() {
	rootCmd.AddCommand(importCmd, resetCmd, versionCmd)
}

func readInput(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return trimFinalNewline(string(b)), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return trimFinalNewline(string(b)), nil
}

// trimFinalNewline drops the file's terminating newline so it does not
// become an extra empty line.
func trimFinalNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
