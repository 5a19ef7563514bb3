package toolbar

import (
	"errors"

	"github.com/iw2rmb/inkwell/document"
)

var (
	// ErrUnknownTool indicates that no tool with the given name is on the toolbar.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrNotExecutable indicates that a tool has no action to run.
	ErrNotExecutable = errors.New("tool is not executable")

	// ErrUnsupported indicates that the surface model cannot perform a tool's action.
	ErrUnsupported = errors.New("surface model does not support this action")
)

// Tool is the capability set the toolbar drives. Implementations reflect
// the selection context in their own state.
type Tool interface {
	Name() string
	UpdateState(annotations document.AnnotationSet, nodes []*document.Node)
	ClearState()
}

// Executor is implemented by tools that act on the surface model.
type Executor interface {
	Execute() error
}

// Renderer is implemented by tools that draw themselves.
type Renderer interface {
	View(st Style, focused bool) string
}

// The surface model capabilities tools act through. A model implements
// whichever it supports; tools report ErrUnsupported otherwise.
type (
	Annotator interface {
		Selection() (document.Range, bool)
		Annotate(a document.Annotation, on bool) error
		ClearAnnotations() error
	}

	Formatter interface {
		Convert(t document.NodeType, level int) error
	}

	Lister interface {
		ListWrap(style string) error
		ListUnwrap() error
		Indent() error
		Outdent() error
	}

	History interface {
		Undo() bool
		Redo() bool
		CanUndo() bool
		CanRedo() bool
	}

	// TextSource exposes the selected text, used to seed link targets.
	TextSource interface {
		SelectedText() string
	}
)
