package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	Home, End                                 key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	// Tool shortcuts run toolbar tools by name.
	Bold, Italic, Code, Link, Clear key.Binding
	Format                          key.Binding
	Number, Bullet                  key.Binding
	Indent, Outdent                 key.Binding

	// ToggleToolbar moves focus between the document and the toolbar.
	ToggleToolbar key.Binding
	Activate      key.Binding
	Escape        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous block")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next block")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "block start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "block end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split block")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		// ctrl+i is tab in most terminals, so text styles fall back to alt.
		Bold:   key.NewBinding(key.WithKeys("ctrl+b", "alt+b"), key.WithHelp("ctrl+b", "bold")),
		Italic: key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Code:   key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code")),
		Link:   key.NewBinding(key.WithKeys("ctrl+k", "alt+k"), key.WithHelp("ctrl+k", "link")),
		Clear:  key.NewBinding(key.WithKeys("alt+x"), key.WithHelp("alt+x", "clear styles")),
		Format: key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "next format")),
		Number: key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "numbered list")),
		Bullet: key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "bulleted list")),

		Indent:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Outdent: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),

		ToggleToolbar: key.NewBinding(key.WithKeys("f10", "alt+t"), key.WithHelp("f10", "toolbar")),
		Activate:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "run tool")),
		Escape:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to text")),
	}
}
