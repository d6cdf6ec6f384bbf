// Package cli implements the registryctl command tree.
package cli

import (
	"context"
	"os"
	"time"

	"entity-registry/internal/entities"
	"entity-registry/internal/repository/memory"
	"entity-registry/internal/usecase"
	"entity-registry/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	logLevel string
	timeout  time.Duration

	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "registryctl",
		Short:        "Validate and look up user records offline",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "timeout per operation")

	cmd.AddCommand(importCmd(a), lookupCmd(a))
	return cmd
}

func (a *app) init(ctx context.Context) error {
	log, err := logger.New(a.logLevel)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	a.log = log
	a.uc = usecase.New(log, ctx, memory.New(log), entities.NewFactory(), a.timeout)
	return nil
}
