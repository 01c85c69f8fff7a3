package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/app"
	"github.com/abhisek/studyhub/internal/logger"
	"github.com/abhisek/studyhub/internal/screen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the terminal study session",
	RunE:  runPlay,
}

// runPlay opens the store, builds dependencies, and launches the TUI.
func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.ForTerminalUI(cfg.Env, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}
	source, err := buildSource(ctx, cfg, st.EventRepo(), log, false)
	if err != nil {
		return err
	}

	return app.Run(screen.NewSession(newController(cfg, lib, source, log)))
}
