package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studyhub/internal/httpapi"
	"github.com/abhisek/studyhub/internal/logger"
	"github.com/abhisek/studyhub/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the study session JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTP.Addr = addr
		}

		log, err := logger.New(cfg.Env, cfg.Log.File)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		lib, err := loadLibrary(cfg)
		if err != nil {
			return err
		}
		source, err := buildSource(ctx, cfg, st.EventRepo(), log, false)
		if err != nil {
			return err
		}
		if !source.Available() {
			log.Info("no LLM key configured, practice questions come from the bank")
		}

		h := httpapi.NewHandler(newController(cfg, lib, source, log),
			session.NewStore(cfg.Session.TTL), cfg.Session.TTL, log)

		ln, err := net.Listen("tcp", cfg.HTTP.Addr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.HTTP.Addr, err)
		}
		srv := httpapi.NewServer(cfg.HTTP.Addr, h.Router())
		if err := httpapi.Serve(ctx, srv, ln, cfg.HTTP.ShutdownTimeout, log); err != nil {
			log.Error("server stopped", zap.Error(err))
			return err
		}
		log.Info("server exited properly")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
}
