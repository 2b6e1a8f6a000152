package edi

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oarkflow/date"
	"github.com/oarkflow/log"
	"github.com/robfig/cron/v3"

	"github.com/oarkflow/edi/pkg/adapters/ediadapter"
	"github.com/oarkflow/edi/pkg/adapters/fileadapter"
	"github.com/oarkflow/edi/pkg/adapters/sqladapter"
	"github.com/oarkflow/edi/pkg/checkpoints"
	"github.com/oarkflow/edi/pkg/config"
	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/flatten"
	"github.com/oarkflow/edi/pkg/transformers"
	"github.com/oarkflow/edi/pkg/utils"
)

// ReceiveDate resolves the batch receive date: the configured value when
// present, today otherwise.
func ReceiveDate(cfg *config.Config) (string, error) {
	if cfg.Run.ReceiveDate == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	parsed, err := date.Parse(cfg.Run.ReceiveDate)
	if err != nil {
		return "", fmt.Errorf("invalid receive_date %q: %w", cfg.Run.ReceiveDate, err)
	}
	return parsed.Format("2006-01-02"), nil
}

// Build assembles a pipeline from configuration plus extra options.
func Build(cfg *config.Config, options ...Option) (*Pipeline, error) {
	receiveDate, err := ReceiveDate(cfg)
	if err != nil {
		return nil, err
	}
	run := flatten.RunInfo{ReceiveDate: receiveDate}

	var sourceOpts []contracts.Option
	if len(cfg.Input.Extensions) > 0 {
		sourceOpts = append(sourceOpts, contracts.WithExtensions(cfg.Input.Extensions...))
	}
	if cfg.Input.MaxFiles > 0 {
		sourceOpts = append(sourceOpts, contracts.WithMaxFiles(cfg.Input.MaxFiles))
	}
	if cfg.Input.Pattern != "" {
		sourceOpts = append(sourceOpts, contracts.WithPattern(cfg.Input.Pattern))
	}
	source := ediadapter.NewFileSource(cfg.Input.Path, ediadapter.WithRecursive(cfg.Input.Recursive))

	var loaders []contracts.Loader
	if cfg.Output.Dir != "" {
		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
		loaders = append(loaders, fileadapter.NewFlatOutput(cfg.Output.Dir, run,
			fileadapter.WithBusinessJSON(cfg.WriteBusinessJSON())))
	}
	if cfg.Database != nil {
		db, err := config.OpenDB(*cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		loaders = append(loaders, sqladapter.NewFlatLoader(db, cfg.Database.Driver, sqladapter.FlatTables{
			Claims:    cfg.Database.ClaimsTable,
			Details:   cfg.Database.DetailsTable,
			Companies: cfg.Database.CompaniesTable,
		}, run, cfg.Database.Truncate, cfg.Database.AutoCreate))
	}

	opts := []Option{
		WithSource(source, sourceOpts...),
		WithValidators(transformers.NewEnvelopeValidator()),
		WithTransformers(transformers.NewEDI837Transformer(transformers.EDI837TransformerOptions{})),
		WithLoaders(loaders...),
		WithWorkerCount(cfg.Run.WorkerCount),
		WithBuffer(cfg.Run.Buffer),
	}
	if cfg.Run.CheckpointFile != "" {
		store := checkpoints.NewFileCheckpointStore(cfg.Run.CheckpointFile)
		opts = append(opts, WithCheckpoint(store, func(rec utils.Record) string {
			path, _ := rec["source_path"].(string)
			return path
		}))
	}
	opts = append(opts, options...)
	return NewPipeline(opts...)
}

// Run executes one batch described by cfg.
func Run(ctx context.Context, cfg *config.Config, options ...Option) (*Summary, error) {
	p, err := Build(cfg, options...)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx)
}

// RunScheduled executes batches on the configured cron schedule until ctx is
// cancelled. Each tick builds a fresh pipeline so row counters restart per
// batch.
func RunScheduled(ctx context.Context, cfg *config.Config, options ...Option) error {
	if cfg.Run.Schedule == "" {
		return fmt.Errorf("run.schedule is required for scheduled mode")
	}
	c := cron.New()
	_, err := c.AddFunc(cfg.Run.Schedule, func() {
		if _, err := Run(ctx, cfg, options...); err != nil && ctx.Err() == nil {
			log.DefaultLogger.Error().Err(err).Msg("scheduled claim batch failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", cfg.Run.Schedule, err)
	}
	c.Start()
	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	return ctx.Err()
}
