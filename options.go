package edi

import (
	"github.com/oarkflow/log"

	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/utils"
)

type Option func(*Pipeline) error

// WithSource sets the interchange source.
func WithSource(source contracts.Source, opts ...contracts.Option) Option {
	return func(p *Pipeline) error {
		p.source = source
		p.sourceOpts = opts
		return nil
	}
}

// WithTransformers appends record transformers, applied in order.
func WithTransformers(list ...contracts.Transformer) Option {
	return func(p *Pipeline) error {
		p.transformers = append(p.transformers, list...)
		return nil
	}
}

// WithValidators appends record validators, run before transformation.
func WithValidators(list ...contracts.Validator) Option {
	return func(p *Pipeline) error {
		p.validators = append(p.validators, list...)
		return nil
	}
}

// WithLoaders appends destinations. Every loader receives every record.
func WithLoaders(loaders ...contracts.Loader) Option {
	return func(p *Pipeline) error {
		p.loaders = append(p.loaders, loaders...)
		return nil
	}
}

// WithCheckpoint enables resume support. cpFunc extracts the checkpoint
// value from a record, typically its source path.
func WithCheckpoint(store contracts.CheckpointStore, cpFunc func(rec utils.Record) string) Option {
	return func(p *Pipeline) error {
		p.checkpointStore = store
		p.checkpointFunc = cpFunc
		return nil
	}
}

// WithWorkerCount sets how many transform workers run concurrently.
func WithWorkerCount(count int) Option {
	return func(p *Pipeline) error {
		if count > 0 {
			p.workerCount = count
		}
		return nil
	}
}

// WithBuffer sets the channel buffer between pipeline stages.
func WithBuffer(buffer int) Option {
	return func(p *Pipeline) error {
		if buffer > 0 {
			p.buffer = buffer
		}
		return nil
	}
}

// WithLogger replaces the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) error {
		p.logger = logger
		return nil
	}
}
