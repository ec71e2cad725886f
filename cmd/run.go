package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizcard/internal/app"
	"github.com/abhisek/quizcard/internal/logger"
	"github.com/abhisek/quizcard/internal/quiz"
)

// runApp loads config, opens the store, and launches the TUI. A store that
// cannot be opened leaves the quiz playable without history.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	opts := app.Options{
		Bank:         quiz.DefaultBank(),
		HistoryLimit: cfg.HistoryLimit,
		Logger:       log,
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Error("attempt store unavailable", zap.String("db_path", cfg.DBPath), zap.Error(err))
		fmt.Fprintln(os.Stderr, "Attempt history unavailable:", err)
	} else {
		defer st.Close()
		opts.Attempts = st.AttemptRepo()
	}

	log.Info("starting quizcard", zap.String("env", cfg.Env), zap.String("version", version))
	return app.Run(opts)
}
