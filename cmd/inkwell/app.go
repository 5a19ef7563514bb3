package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/markup"
)

// app hosts the editor and owns the file it was opened with.
type app struct {
	editor editor.Model
	path   string
	log    zerolog.Logger

	savedVersion uint64
	message      string
}

func newApp(cfg editor.Config, path string, log zerolog.Logger) app {
	ed := editor.New(cfg)
	return app{
		editor:       ed,
		path:         path,
		log:          log,
		savedVersion: ed.Surface().Document().Version(),
	}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One row for the app's own status line.
		a.editor = a.editor.SetSize(msg.Width, msg.Height-1)
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			a.editor.Close()
			return a, tea.Quit
		case "ctrl+s":
			a.save()
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a *app) save() {
	if a.path == "" {
		a.message = "no file name; start inkwell with a path to save"
		return
	}
	doc := a.editor.Surface().Document()
	if err := os.WriteFile(a.path, markup.Write(doc), 0o644); err != nil {
		a.log.Error().Err(err).Str("file", a.path).Msg("save failed")
		a.message = fmt.Sprintf("save failed: %v", err)
		return
	}
	a.savedVersion = doc.Version()
	a.log.Info().Str("file", a.path).Msg("saved")
	a.message = "saved " + a.path
}

func (a app) View() string {
	line := a.message
	if a.editor.Surface().Document().Version() != a.savedVersion {
		line = "modified  " + line
	}
	return a.editor.View() + "\n" + line
}
