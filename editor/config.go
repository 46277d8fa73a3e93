package editor

import (
	"time"

	"github.com/iw2rmb/bland/document"
	"github.com/iw2rmb/bland/store"
)

// Config configures the editor Model.
type Config struct {
	// Document to edit. When nil, Snapshot is loaded instead (an empty
	// snapshot yields the welcome document).
	Document *document.Document
	Snapshot string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	KeyMap       KeyMap
	TabWidth     int // default 4

	ReadOnly bool

	// Optional clipboard for copy/paste keys.
	Clipboard Clipboard

	// Autosave target. A nil Store or a zero interval disables autosave.
	Store            store.Store
	StoreKey         string // default store.DefaultKey
	AutosaveInterval time.Duration

	// OnChange is called after every update that changed the document or the
	// cursor.
	OnChange func(ChangeEvent)
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}

func (c Config) storeKey() string {
	if c.StoreKey == "" {
		return store.DefaultKey
	}
	return c.StoreKey
}
