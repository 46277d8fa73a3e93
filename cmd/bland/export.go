package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/bland/export"
	"github.com/iw2rmb/bland/store"
)

var (
	exportFormat string
	exportOutput string
	previewWidth int
	previewStyle string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the saved document as markdown or HTML",
	Example: `  bland export
  bland export --format html -o notes.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		return writeRendered(cmd, f)
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the saved document's line structure as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeRendered(cmd, export.FormatYAML)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the saved document for the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(ctx context.Context, st store.Store) error {
			doc := loadDocument(ctx, st)
			out, err := export.Terminal(doc, terminalWidth(), terminalStyle())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "md", "Output format: md or html")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	dumpCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 0, "Wrap width (default: terminal width)")
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "Glamour style: dark, light, notty, ascii (default: detected)")
	rootCmd.AddCommand(exportCmd, dumpCmd, previewCmd)
}

func writeRendered(cmd *cobra.Command, f export.Format) error {
	return withStore(func(ctx context.Context, st store.Store) error {
		out, err := export.Render(loadDocument(ctx, st), f)
		if err != nil {
			return err
		}
		if exportOutput == "" {
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}
		if err := os.WriteFile(exportOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		return nil
	})
}

func terminalWidth() int {
	if previewWidth > 0 {
		return previewWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func terminalStyle() string {
	if previewStyle != "" {
		return previewStyle
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "notty"
	}
	return export.DefaultStyle
}
