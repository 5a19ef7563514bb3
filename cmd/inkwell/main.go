package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/inkwell"
	"github.com/iw2rmb/inkwell/document"
	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/internal/config"
	"github.com/iw2rmb/inkwell/internal/logging"
	"github.com/iw2rmb/inkwell/markup"
	"github.com/iw2rmb/inkwell/toolbar"
)

var (
	configPath string
	logLevel   string
	logFile    string
	readOnly   bool

	closeLog = func() {}
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "inkwell [file.md]",
		Short:         "Rich-text Markdown editor for the terminal",
		Long:          `Inkwell edits Markdown as rich text, with a toolbar that follows the selection.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log, closer, err := openLog(settings)
			if err != nil {
				return err
			}
			closeLog = closer
			ctx := context.WithValue(cmd.Context(), settingsKey{}, settings)
			cmd.SetContext(logging.WithContext(ctx, &log))
			return nil
		},
		RunE: runEditor,
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "settings file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides the settings file)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	root.Flags().BoolVar(&readOnly, "read-only", false, "open without editing")

	root.AddCommand(newVersionCommand(), newToolsCommand(), newConfigCommand())
	return root
}

type settingsKey struct{}

// settingsFrom returns the settings the root command loaded into ctx.
func settingsFrom(ctx context.Context) *config.Settings {
	if s, ok := ctx.Value(settingsKey{}).(*config.Settings); ok {
		return s
	}
	return config.DefaultSettings()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "inkwell", "config.yaml")
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inkwell %s\n", inkwell.Describe())
		},
	}
}

func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available toolbar tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := settingsFrom(cmd.Context())
			logging.FromContext(cmd.Context()).Debug().Int("groups", len(settings.Toolbar)).Msg("listing tools")
			placed := make(map[string]string)
			for _, g := range settings.Toolbar {
				for _, item := range g.Items {
					placed[item] = g.Name
				}
			}
			reg := toolbar.DefaultRegistry()
			out := cmd.OutOrStdout()
			for _, id := range reg.IDs() {
				def, _ := reg.Lookup(id)
				group := placed[id]
				if group == "" {
					group = "-"
				}
				fmt.Fprintf(out, "%-8s %-3s %-24s %s\n", id, def.Icon, def.Title, group)
			}
			return nil
		},
	}
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := settingsFrom(cmd.Context()).Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func runEditor(cmd *cobra.Command, args []string) error {
	settings := settingsFrom(cmd.Context())
	log := *logging.FromContext(cmd.Context())

	path := ""
	doc := document.New()
	if len(args) == 1 {
		path = args[0]
		var err error
		doc, err = loadDocument(path)
		if err != nil {
			return err
		}
	}
	log.Info().Str("file", path).Msg("starting editor")

	cfg := editor.Config{
		Document:     doc,
		HistoryLimit: settings.Editor.HistoryLimit,
		Style:        editor.DefaultStyle(),
		KeyMap:       editor.DefaultKeyMap(),
		Toolbar:      settings.Toolbar,
		ShowContext:  settings.Editor.ShowContext,
		ReadOnly:     settings.Editor.ReadOnly || readOnly,
		Clipboard:    systemClipboard{},
		Logger:       &log,
	}
	p := tea.NewProgram(newApp(cfg, path, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run the editor: %w", err)
	}
	return nil
}

func loadDocument(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return document.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := markup.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// openLog honours the flags over the settings file. Without a log file the
// logger is disabled, since the terminal belongs to the editor.
func openLog(settings *config.Settings) (zerolog.Logger, func(), error) {
	level := settings.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	file := settings.Log.File
	if logFile != "" {
		file = logFile
	}
	if strings.TrimSpace(file) == "" {
		if _, err := logging.ParseLevel(level); err != nil {
			return zerolog.Nop(), func() {}, err
		}
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to open log file: %w", err)
	}
	newLogger := logging.New
	if settings.Log.Format == "console" {
		newLogger = logging.NewConsole
	}
	log, err := newLogger(f, level)
	if err != nil {
		_ = f.Close()
		return zerolog.Nop(), func() {}, err
	}
	return log, func() { _ = f.Close() }, nil
}

func main() {
	err := newRootCommand().Execute()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
