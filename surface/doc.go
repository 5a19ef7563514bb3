// Package surface holds the editing-session model: a document, the current
// selection, undo/redo history and the change notifications observers use
// to stay in sync.
package surface
