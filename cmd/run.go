package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/history"
	"github.com/abhisek/mathdrill/internal/leaderboard"
	"github.com/abhisek/mathdrill/internal/logging"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/userstore"
)

// runApp loads the configuration, wires the stores and the session
// controller, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	logger, err := logging.New(cfg.LogPath())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open attempt log: %w", err)
	}
	defer st.Close()

	users := userstore.New(cfg.UsersPath())
	hist := history.NewStore(cfg.HistoryDir())

	board := leaderboard.New(cfg.LeaderboardPath())
	if err := board.Load(); err != nil {
		logger.Warn("leaderboard not loaded", zap.Error(err))
	}

	bank := problem.NewBank()
	if _, err := os.Stat(cfg.BankPath()); err == nil {
		if err := bank.Import(cfg.BankPath()); err != nil {
			logger.Warn("question bank not loaded", zap.Error(err))
		}
	}

	gen := problem.NewGenerator(problem.Config{
		Count:        cfg.QuestionCount,
		OperandBound: cfg.OperandBound,
		SumMax:       cfg.OperandBound,
	})

	// A fully stocked bank replaces the generator; a partial one is
	// editor state only.
	src := session.SourceFunc(func() []problem.Problem {
		if bank.Len() == cfg.QuestionCount {
			return bank.Problems()
		}
		return gen.Generate()
	})

	ctx := context.Background()
	ctrl := session.NewController(src, logger,
		hist,
		session.SinkFunc(func(res *session.Result) error {
			_, err := board.Record(res.Owner, res.Score, res.DurationSeconds())
			return err
		}),
		session.SinkFunc(func(res *session.Result) error {
			return st.AppendAttempt(ctx, store.Attempt{
				ID:           res.SessionID,
				Owner:        res.Owner,
				Score:        res.Score,
				Grade:        res.Grade,
				StartedAt:    res.StartedAt,
				FinishedAt:   res.FinishedAt,
				DurationSecs: res.DurationSeconds(),
			})
		}),
	)

	return app.Run(app.Options{
		Controller: ctrl,
		Board:      board,
		History:    hist,
		Users:      users,
		Bank:       bank,
		Config:     cfg,
		Logger:     logger,
	})
}
