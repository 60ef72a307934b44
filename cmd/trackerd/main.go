package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kprajapati/tracker/config"
	"github.com/kprajapati/tracker/service"
)

func main() {
	root := &cobra.Command{
		Use:   "trackerd",
		Short: "Task tracker core service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("trackerd failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tracker, err := service.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer tracker.Close()

	logger.Info("tracker core ready")
	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
