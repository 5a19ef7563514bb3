package editor

import (
	"github.com/iw2rmb/inkwell/document"
	"github.com/iw2rmb/inkwell/surface"
	"github.com/iw2rmb/inkwell/toolbar"
)

// ContextView describes the annotations of the current range selection.
type ContextView struct {
	Visible     bool
	Annotations document.AnnotationSet
}

// Surface pairs the surface model with the editor's context view. It is
// the handle the toolbar attaches to.
type Surface struct {
	model   *surface.Model
	context ContextView
}

var _ toolbar.Surface = (*Surface)(nil)

func newSurface(m *surface.Model) *Surface {
	s := &Surface{model: m}
	m.OnChange(s.observe)
	return s
}

func (s *Surface) Model() toolbar.SurfaceModel { return s.model }

func (s *Surface) ClearContext() { s.context = ContextView{} }

func (s *Surface) Context() ContextView { return s.context }

// observe shows the context for range selections. Carets are left to the
// toolbar, which clears the context when it sees one.
func (s *Surface) observe(surface.Change) {
	r, ok := s.model.Selection()
	if !ok {
		s.context = ContextView{}
		return
	}
	if r.IsCollapsed() {
		return
	}
	s.context = ContextView{
		Visible:     true,
		Annotations: s.model.Document().AnnotationsFromRange(r),
	}
}
