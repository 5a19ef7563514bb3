// Package editor provides a Bubble Tea rich-text editing component backed by
// the surface and toolbar packages.
//
// The package is responsible for input handling, viewport behavior,
// annotation-aware rendering, the toolbar row and the context line, and host
// integration hooks (clipboard and change events).
package editor
