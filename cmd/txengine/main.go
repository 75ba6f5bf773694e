package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/transaction-processing-engine/internal/config"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/engine"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/input"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/output"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/telemetry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		parallel bool
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "txengine <input.csv>",
		Short: "Processes a CSV of client payment transactions and prints the final account balances",
		Long: `txengine ingests an ordered sequence of transaction events (deposits,
withdrawals, disputes, resolves, chargebacks), applies them to in-memory
account state, and writes the final state of every touched account to stdout
as CSV. Rows that fail are logged to stderr and skipped; they never abort
the run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer logger.Sync()
			logger = logger.With(zap.String("run_id", uuid.NewString()))

			return run(args[0], parallel, cfg, logger)
		},
	}

	cmd.Flags().BoolVar(&parallel, "parallel", false, "shard clients across worker goroutines")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count in parallel mode (default: one per spare CPU)")
	return cmd
}

func run(path string, parallel bool, cfg *config.Config, logger *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	src, err := input.NewReader(file)
	if err != nil {
		return err
	}

	onSuccess := func(record models.TransactionRecord) {
		logger.Debug("transaction accepted", zap.Stringer("tx", record))
	}
	onError := func(procErr *models.Error) {
		logger.Warn("transaction skipped", zap.Error(procErr))
	}

	var records []models.AccountRecord
	if parallel {
		opts := []engine.Option{
			engine.WithLogger(logger),
			engine.WithChannelCapacity(cfg.ChannelCapacity),
		}
		if cfg.Workers >= 0 {
			opts = append(opts, engine.WithWorkers(cfg.Workers))
		}
		records = engine.ProcessParallel(src, onSuccess, onError, opts...)
	} else {
		for record := range engine.Process(src, onSuccess, onError) {
			records = append(records, record)
		}
	}

	return output.WriteAccounts(os.Stdout, records)
}
