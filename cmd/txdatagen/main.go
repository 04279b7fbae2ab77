package main

import (
	"context"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Behyna/payment-services/txdatagen/internal/config"
	"github.com/Behyna/payment-services/txdatagen/internal/generator"
	"github.com/Behyna/payment-services/txdatagen/internal/model"
	"github.com/Behyna/payment-services/txdatagen/pkg/rng"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			validator.New,
			NewRandSource,

			generator.NewGenerator,
		),
		fx.Invoke(runGenerator),
	).Run()
}

func NewRandSource(cfg *config.Config) rng.Source {
	if cfg.Generator.Seeded() {
		return rng.NewSeeded(cfg.Generator.Seed)
	}
	return rng.New()
}

// runGenerator emits the dataset to stdout and shuts the app down with the
// run's exit code. Logs go to stderr so stdout stays a pure data stream.
func runGenerator(cfg *config.Config, gen generator.Generator, logger *zap.Logger,
	shutdowner fx.Shutdowner, lc fx.Lifecycle,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				runID := uuid.NewString()

				cmd := generator.Command{
					RecordCount: cfg.Generator.Records,
					MaxClientID: cfg.Generator.MaxClientID,
					MaxAmount:   cfg.Generator.MaxAmount,
				}

				logger.Info("starting dataset generation",
					zap.String("runID", runID),
					zap.Int64("records", cmd.RecordCount),
					zap.Int64("maxClientID", cmd.MaxClientID),
					zap.Int64("maxAmount", cmd.MaxAmount),
					zap.Uint64("seed", cfg.Generator.Seed))

				summary, err := gen.Generate(context.Background(), os.Stdout, cmd)
				if err != nil {
					logger.Error("generation failed", zap.String("runID", runID), zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}

				fields := []zap.Field{
					zap.String("runID", runID),
					zap.Int64("records", summary.Total),
					zap.Int64("bytes", summary.BytesOut),
				}
				for _, kind := range model.Kinds {
					fields = append(fields, zap.Int64(string(kind), summary.ByKind[kind]))
				}
				logger.Info("generation complete", fields...)

				_ = shutdowner.Shutdown(fx.ExitCode(0))
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
}
