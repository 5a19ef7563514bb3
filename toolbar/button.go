package toolbar

// ButtonTool is the shared state of toggle-style tools. Tools defined
// outside this package embed it to render and take focus like the
// built-in ones.
type ButtonTool struct {
	Widget

	name  string
	title string

	active   bool
	disabled bool

	toolbar *Toolbar
}

func NewButtonTool(tb *Toolbar, def Definition) ButtonTool {
	return ButtonTool{
		Widget:   newWidget(def),
		name:     def.Name,
		title:    def.Title,
		disabled: true,
		toolbar:  tb,
	}
}

func (b *ButtonTool) Name() string { return b.name }

func (b *ButtonTool) Title() string { return b.title }

func (b *ButtonTool) Active() bool { return b.active }

func (b *ButtonTool) Disabled() bool { return b.disabled }

func (b *ButtonTool) SetState(active, disabled bool) {
	b.active, b.disabled = active, disabled
}

// Toolbar returns the toolbar that created the tool.
func (b *ButtonTool) Toolbar() *Toolbar { return b.toolbar }

// ClearState drops any selection-derived state.
func (b *ButtonTool) ClearState() {
	b.active = false
	b.disabled = true
}

func (b *ButtonTool) View(st Style, focused bool) string {
	s := st.Button
	switch {
	case b.disabled:
		s = st.Disabled
	case b.active:
		s = st.Active
	}
	if focused {
		s = s.Inherit(st.Focused)
	}
	return s.Render(b.Content())
}
