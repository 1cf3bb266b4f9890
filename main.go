// Command drawspace runs the whiteboard.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"

	"DrawSpace/internal/board"
	"DrawSpace/internal/config"
	"DrawSpace/internal/props"
	"DrawSpace/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, resetProps, err := parseFlags(args)
	if err != nil {
		log.Printf("%v", err)
		return 2
	}

	a := app.NewWithID(cfg.AppID)
	store := props.NewStore(a.Preferences(), cfg.PreferencesKey)
	if resetProps {
		log.Println("Resetting tool properties to defaults")
		store.ResetAll()
	}

	b, err := board.New(cfg, store)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	ui.RunApp(a, b, cfg)
	return 0
}

// parseFlags loads the optional config file and applies flag overrides.
func parseFlags(args []string) (config.Config, bool, error) {
	fs := pflag.NewFlagSet("drawspace", pflag.ContinueOnError)
	var (
		configPath  string
		historySize int
		tool        string
		debug       bool
		resetProps  bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	fs.IntVar(&historySize, "history-size", 0, "Maximum number of undo steps (0 = config value)")
	fs.StringVarP(&tool, "tool", "t", "", "Tool selected at start-up")
	fs.BoolVar(&debug, "debug", false, "Log every tool and stroke event")
	fs.BoolVar(&resetProps, "reset-properties", false, "Restore built-in tool properties")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, false, err
		}
		cfg = loaded
	}
	if fs.Changed("history-size") {
		cfg.HistorySize = historySize
	}
	if tool != "" {
		cfg.DefaultTool = tool
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, resetProps, cfg.Validate()
}
