// pattern: Imperative Shell
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"treeview/internal/config"
	"treeview/internal/frame"
	"treeview/internal/logging"
	"treeview/internal/tree"
	"treeview/internal/tui"
)

var version = "dev"

func main() {
	configDir := flag.StringP("config-dir", "c", "", "config directory (default: ~/.config/treeview)")
	dump := flag.Bool("dump", false, "print the startup tree without entering the terminal UI")
	showVersion := flag.Bool("version", false, "print version")

	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := loadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}

	if *dump {
		if err := dumpFrame(os.Stdout, tree.Sample()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	os.Exit(runTUI(cfg, *configDir))
}

// loadConfig loads the configuration from the specified directory or default location.
func loadConfig(configDir string) (config.Config, error) {
	if configDir != "" {
		return config.LoadFromDir(configDir)
	}
	return config.Load()
}

// newLogManager opens the rotating log file in the data directory.
func newLogManager(dataDir, level string) (*logging.Manager, error) {
	return logging.NewManager(logging.Config{
		FilePath:   filepath.Join(dataDir, "treeview.log"),
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Level:      level,
	})
}

// dumpFrame writes one uncolored frame of t with its first item selected.
func dumpFrame(w io.Writer, t *tree.Tree) error {
	_, err := fmt.Fprintln(w, frame.Build(t, t.FirstID(), nil).String())
	return err
}

// runTUI runs the interactive tree until the user quits and returns the
// process exit code. The program owns the terminal session and restores it
// on every exit path, panics included.
func runTUI(cfg config.Config, configDir string) int {
	var logProvider logging.LoggerProvider
	appLogger := logging.NopLogger()

	logManager, err := newLogManager(config.DataDir(configDir), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer func() { _ = logManager.Close() }()
		logProvider = logManager
		appLogger = logManager.For("app")
	}

	appLogger.Info("application starting", "version", version, "theme", cfg.Theme)

	tui.ApplyColorProfile(cfg.Color)

	model := tui.NewModel(&cfg, tree.Sample(), logProvider)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		appLogger.Error("application exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}

	appLogger.Info("application stopped")
	return 0
}
