package toolbar

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iw2rmb/inkwell/document"
)

var (
	// ErrDuplicateTool indicates that a tool name is already registered.
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrInvalidDefinition indicates a definition without a name or constructor.
	ErrInvalidDefinition = errors.New("invalid tool definition")
)

// Constructor builds a live tool for a toolbar.
type Constructor func(tb *Toolbar, def Definition) Tool

// Definition describes a tool that can be placed on a toolbar.
type Definition struct {
	Name  string
	Title string
	Icon  string
	// ShowLabel renders the title next to the icon.
	ShowLabel bool
	TabOrder  int
	// Data is handed to the constructor unchanged.
	Data any
	New  Constructor
}

// Registry maps tool names to definitions. Lookups of unknown names fail
// with ok=false; a toolbar skips such names.
type Registry struct {
	defs map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

func (r *Registry) Register(def Definition) error {
	if def.Name == "" || def.New == nil {
		return fmt.Errorf("%w: %q", ErrInvalidDefinition, def.Name)
	}
	if _, ok := r.defs[def.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTool, def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// MustRegister is Register for static setup; it panics on error.
func (r *Registry) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Lookup(name string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	def, ok := r.defs[name]
	return def, ok
}

// IDs returns the registered names in lexical order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.defs))
	for name := range r.defs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry registers the standard tool set.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(
		Definition{Name: "undo", Title: "Undo", Icon: "↶", TabOrder: 10, Data: false, New: newHistoryTool},
		Definition{Name: "redo", Title: "Redo", Icon: "↷", TabOrder: 11, Data: true, New: newHistoryTool},

		Definition{Name: "format", Title: "Format", TabOrder: 20, Data: DefaultFormats(), New: newFormatTool},

		Definition{Name: "bold", Title: "Bold", Icon: "B", TabOrder: 30, Data: annotationData{annotation: document.Bold()}, New: newAnnotationTool},
		Definition{Name: "italic", Title: "Italic", Icon: "I", TabOrder: 31, Data: annotationData{annotation: document.Italic()}, New: newAnnotationTool},
		Definition{Name: "code", Title: "Code", Icon: "<>", TabOrder: 32, Data: annotationData{annotation: document.Code()}, New: newAnnotationTool},
		Definition{Name: "link", Title: "Link", Icon: "↗", TabOrder: 33, Data: annotationData{annotation: document.Link(""), href: LinkTarget}, New: newAnnotationTool},
		Definition{Name: "clear", Title: "Clear", Icon: "⌫", TabOrder: 34, New: newClearTool},

		Definition{Name: "number", Title: "Numbered list", Icon: "1.", TabOrder: 40, Data: document.StyleNumber, New: newListTool},
		Definition{Name: "bullet", Title: "Bulleted list", Icon: "•", TabOrder: 41, Data: document.StyleBullet, New: newListTool},
		Definition{Name: "outdent", Title: "Outdent", Icon: "«", TabOrder: 42, Data: true, New: newIndentationTool},
		Definition{Name: "indent", Title: "Indent", Icon: "»", TabOrder: 43, Data: false, New: newIndentationTool},
	)
	return r
}
