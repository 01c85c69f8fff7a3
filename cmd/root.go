package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studyhub/internal/config"
	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/llm"
	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/questiongen"
	"github.com/abhisek/studyhub/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyhub",
	Short: "Study aid for AP World History Unit 5",
	Long:  "Studyhub is a terminal and web study aid with a study guide, flashcards, practice questions, a practice test and a timed quiz.",
	RunE:  runPlay,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default: ./config.yaml if present)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides db.path and STUDYHUB_DB_PATH)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration, letting --db win over every other source.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB.Path = p
	}
	return cfg, nil
}

// openStore opens the LLM event log at the configured path, or the XDG
// default when none is set.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DB.Path
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildSource returns the remote question source when an LLM is configured
// and NullSource otherwise.
func buildSource(ctx context.Context, cfg *config.Config, events store.EventRepo, logger *zap.Logger, retries bool) (questiongen.Source, error) {
	lc := cfg.LLMConfig()
	if !lc.Enabled() {
		return questiongen.NullSource{}, nil
	}

	opts := []llm.Option{llm.WithLogger(logger)}
	if events != nil {
		opts = append(opts, llm.WithEventLog(events))
	}
	if retries {
		opts = append(opts, llm.WithRetries())
	}
	provider, err := llm.NewProvider(ctx, lc, opts...)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	qcfg := questiongen.DefaultConfig()
	qcfg.Timeout = lc.Timeout
	logger.Info("generated questions enabled",
		zap.String("provider", lc.Provider), zap.String("model", lc.ModelFor()))
	return questiongen.NewRemote(provider, qcfg), nil
}

// loadLibrary loads the embedded course material under the configured topic.
func loadLibrary(cfg *config.Config) (*content.Library, error) {
	lib, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if cfg.LLM.Topic != "" {
		lib.Topic = cfg.LLM.Topic
	}
	return lib, nil
}

// newController wires the library and source with the quiz settings.
func newController(cfg *config.Config, lib *content.Library, source questiongen.Source, logger *zap.Logger) *navigation.Controller {
	return navigation.New(lib, source,
		navigation.WithLogger(logger),
		navigation.WithTimedWindow(cfg.Quiz.TimedWindow),
		navigation.WithDefaultTestSize(cfg.Quiz.DefaultTestSize),
	)
}
