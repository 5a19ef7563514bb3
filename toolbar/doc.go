// Package toolbar keeps a set of editing tools in step with the selection of
// a surface model.
//
// A Toolbar builds its tools from a Registry and a list of GroupConfig
// entries, subscribes once to the surface model's change notifications and,
// on every change, projects the selection onto the affected nodes and the
// annotations in effect before pushing that state to each tool in
// registration order.
package toolbar
