package editor

import (
	"github.com/rs/zerolog"

	"github.com/iw2rmb/inkwell/document"
	"github.com/iw2rmb/inkwell/toolbar"
)

// Config configures the editor Model.
type Config struct {
	// Initial document; nil starts with an empty paragraph.
	Document *document.Document

	// Forwarded to surface.Options.
	HistoryLimit int

	Style  Style
	KeyMap KeyMap

	// Toolbar layout and the tools it may use. Nil selects the defaults.
	Toolbar  []toolbar.GroupConfig
	Registry *toolbar.Registry

	// ShowContext renders a line describing the annotations of a range
	// selection.
	ShowContext bool
	ReadOnly    bool

	Clipboard Clipboard
	OnChange  func(ChangeEvent)

	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
}
