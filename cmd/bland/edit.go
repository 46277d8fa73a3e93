package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/bland/editor"
	"github.com/iw2rmb/bland/store"
)

const finalSaveTimeout = 5 * time.Second

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the saved document in the editor (default)",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

var quitKeys = key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c", "esc"), key.WithHelp("ctrl+q", "quit"))

type app struct {
	editor editor.Model
	keys   editor.KeyMap
	help   help.Model
	status lipgloss.Style
}

func newApp(ed editor.Model, keys editor.KeyMap) app {
	return app{
		editor: ed,
		keys:   keys,
		help:   help.New(),
		status: lipgloss.NewStyle().Faint(true),
	}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, msg.Height-1)
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			return a, tea.Quit
		}
	case tea.FocusMsg:
		a.editor = a.editor.Focus()
		return a, nil
	case tea.BlurMsg:
		a.editor = a.editor.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.editor.View() + "\n" + a.statusLine()
}

func (a app) statusLine() string {
	state := "saved"
	switch {
	case a.editor.SaveErr() != nil:
		state = "save failed"
	case a.editor.Dirty():
		state = "modified"
	}
	bindings := append(a.keys.ShortHelp(), quitKeys)
	return a.status.Render(state) + "  " + a.help.ShortHelpView(bindings)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	return withStore(func(ctx context.Context, st store.Store) error {
		doc := loadDocument(ctx, st)

		var clip editor.Clipboard
		if sc := (editor.SystemClipboard{}); sc.Available() {
			clip = sc
		}

		keys := editor.DefaultKeyMap()
		theme := editor.ThemeColors{
			Marker:   cfg.Theme.Marker,
			Heading1: cfg.Theme.Heading1,
			Heading2: cfg.Theme.Heading2,
			Heading3: cfg.Theme.Heading3,
			ListItem: cfg.Theme.List,
			Cursor:   cfg.Theme.Cursor,
		}
		ed := editor.New(editor.Config{
			Document:         doc,
			ShowLineNums:     cfg.Editor.ShowLineNumbers,
			Style:            theme.Apply(editor.DefaultStyle()),
			KeyMap:           keys,
			Clipboard:        clip,
			Store:            st,
			StoreKey:         cfg.Store.Key,
			AutosaveInterval: cfg.Autosave.Interval,
		})

		p := tea.NewProgram(newApp(ed, keys), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("run editor: %w", err)
		}

		a, ok := final.(app)
		if !ok || !a.editor.Dirty() {
			return nil
		}
		ctx, cancel := context.WithTimeout(ctx, finalSaveTimeout)
		defer cancel()
		if err := st.Set(ctx, cfg.Store.Key, a.editor.Document().Serialize()); err != nil {
			return fmt.Errorf("save document: %w", err)
		}
		slog.Info("document saved on exit", "key", cfg.Store.Key)
		return nil
	})
}
