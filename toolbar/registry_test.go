package toolbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopTool(tb *Toolbar, def Definition) Tool { return &recorder{name: def.Name, log: new([]string)} }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{Name: "x", New: noopTool}))

	def, ok := r.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "x", def.Name)

	_, ok = r.Lookup("y")
	assert.False(t, ok)

	err := r.Register(Definition{Name: "x", New: noopTool})
	assert.ErrorIs(t, err, ErrDuplicateTool)

	assert.ErrorIs(t, r.Register(Definition{Name: "", New: noopTool}), ErrInvalidDefinition)
	assert.ErrorIs(t, r.Register(Definition{Name: "z"}), ErrInvalidDefinition)
}

func TestRegistry_NilLookup(t *testing.T) {
	var r *Registry
	_, ok := r.Lookup("bold")
	assert.False(t, ok)
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.MustRegister(
			Definition{Name: "x", New: noopTool},
			Definition{Name: "x", New: noopTool},
		)
	})
}

func TestDefaultRegistry_IDs(t *testing.T) {
	want := []string{"bold", "bullet", "clear", "code", "format", "indent", "italic", "link", "number", "outdent", "redo", "undo"}
	assert.Equal(t, want, DefaultRegistry().IDs())
}

func TestDefaultGroups_OnlyNameRegisteredTools(t *testing.T) {
	reg := DefaultRegistry()
	require.NoError(t, ValidateGroups(DefaultGroups()))
	for _, g := range DefaultGroups() {
		for _, item := range g.Items {
			_, ok := reg.Lookup(item)
			assert.Truef(t, ok, "group %s names unregistered tool %s", g.Name, item)
		}
	}
}

func TestValidateGroups(t *testing.T) {
	err := ValidateGroups([]GroupConfig{{Name: "ok"}, {Items: []string{"bold"}}})
	assert.ErrorIs(t, err, ErrInvalidGroup)
	assert.Contains(t, err.Error(), "group 1")
}

func TestWidget(t *testing.T) {
	w := newWidget(Definition{Title: "Bold", Icon: "B", TabOrder: 3})
	assert.Equal(t, "B", w.Content())
	assert.True(t, w.Focusable())
	assert.Equal(t, 3, w.TabIndex.Order)

	w = newWidget(Definition{Title: "Bold", Icon: "B", ShowLabel: true})
	assert.Equal(t, "B Bold", w.Content())

	w = newWidget(Definition{Title: "Format"})
	assert.Nil(t, w.Icon)
	assert.Equal(t, "Format", w.Content())

	var empty Widget
	assert.Equal(t, "", empty.Content())
	assert.False(t, empty.Focusable())
}
