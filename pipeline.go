package edi

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/oarkflow/log"
	"github.com/oarkflow/xid"

	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/utils"
)

type Event struct {
	Name    string
	Payload interface{}
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(eventName string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[eventName] = append(eb.handlers[eventName], handler)
}

func (eb *EventBus) Publish(eventName string, payload interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, h := range eb.handlers[eventName] {
		h(Event{Name: eventName, Payload: payload})
	}
}

// Metrics tracks pipeline throughput. All counters are cumulative for the
// lifetime of the pipeline.
type Metrics struct {
	Files   int64 `json:"files"`
	Parsed  int64 `json:"parsed"`
	Failed  int64 `json:"failed"`
	Claims  int64 `json:"claims"`
	Skipped int64 `json:"skipped"`
}

// Snapshot returns a consistent copy for reporting.
func (m *Metrics) Snapshot() Metrics {
	return Metrics{
		Files:   atomic.LoadInt64(&m.Files),
		Parsed:  atomic.LoadInt64(&m.Parsed),
		Failed:  atomic.LoadInt64(&m.Failed),
		Claims:  atomic.LoadInt64(&m.Claims),
		Skipped: atomic.LoadInt64(&m.Skipped),
	}
}

// Summary describes one completed batch run.
type Summary struct {
	BatchID     string    `json:"batch_id"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	DurationMs  int64     `json:"duration_ms"`
	Metrics     Metrics   `json:"metrics"`
}

// Shutdown cancels the run context on SIGINT or SIGTERM.
func Shutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("received signal: %v, initiating graceful shutdown", sig)
		cancel()
	}()
}

// Pipeline drives interchange files from a source through the claim
// transformer into one or more loaders.
type Pipeline struct {
	source          contracts.Source
	sourceOpts      []contracts.Option
	transformers    []contracts.Transformer
	validators      []contracts.Validator
	loaders         []contracts.Loader
	checkpointStore contracts.CheckpointStore
	checkpointFunc  func(rec utils.Record) string
	workerCount     int
	buffer          int
	logger          *log.Logger
	eventBus        *EventBus
	metrics         *Metrics
}

func defaultPipeline() *Pipeline {
	return &Pipeline{
		workerCount: 4,
		buffer:      64,
		logger:      &log.DefaultLogger,
		eventBus:    NewEventBus(),
		metrics:     &Metrics{},
	}
}

func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := defaultPipeline()
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.source == nil {
		return nil, fmt.Errorf("pipeline: source is required")
	}
	if len(p.loaders) == 0 {
		return nil, fmt.Errorf("pipeline: at least one loader is required")
	}
	return p, nil
}

// Metrics exposes the live counters.
func (p *Pipeline) Metrics() *Metrics {
	return p.metrics
}

// EventBus exposes the pipeline event bus for subscribers.
func (p *Pipeline) EventBus() *EventBus {
	return p.eventBus
}

type indexedRecord struct {
	index int
	rec   utils.Record
	err   error
}

// Run executes one batch: extract, transform in parallel, then load in
// source order so row numbering stays reproducible. A file that fails to
// transform is logged and skipped; the batch continues.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()
	batchID := xid.New().String()
	p.logger.Info().Str("batch_id", batchID).Msg("starting claim batch")

	if err := p.source.Setup(ctx); err != nil {
		return nil, fmt.Errorf("source setup: %w", err)
	}
	defer func() {
		_ = p.source.Close()
	}()
	for _, loader := range p.loaders {
		if err := loader.Setup(ctx); err != nil {
			return nil, fmt.Errorf("loader setup: %w", err)
		}
	}

	lastCheckpoint := ""
	if p.checkpointStore != nil {
		cp, err := p.checkpointStore.GetCheckpoint(ctx)
		if err != nil {
			return nil, fmt.Errorf("checkpoint read: %w", err)
		}
		lastCheckpoint = cp
	}

	in, err := p.source.Extract(ctx, p.sourceOpts...)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	jobs := make(chan indexedRecord, p.buffer)
	results := make(chan indexedRecord, p.buffer)

	var wg sync.WaitGroup
	for w := 0; w < p.workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				rec, err := p.transform(ctx, job.rec)
				select {
				case <-ctx.Done():
					return
				case results <- indexedRecord{index: job.index, rec: rec, err: err}:
				}
			}
		}()
	}

	go func() {
		index := 0
		for rec := range in {
			atomic.AddInt64(&p.metrics.Files, 1)
			if p.checkpointFunc != nil && lastCheckpoint != "" {
				if cp := p.checkpointFunc(rec); cp != "" && cp <= lastCheckpoint {
					atomic.AddInt64(&p.metrics.Skipped, 1)
					continue
				}
			}
			select {
			case <-ctx.Done():
				close(jobs)
				return
			case jobs <- indexedRecord{index: index, rec: rec}:
				index++
			}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var transformed []indexedRecord
	for res := range results {
		if res.err != nil {
			atomic.AddInt64(&p.metrics.Failed, 1)
			p.logger.Error().Err(res.err).Msg("interchange failed, skipping")
			p.eventBus.Publish("record_failed", res.err)
			continue
		}
		transformed = append(transformed, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Load in source order: downstream row counters depend on it.
	sort.Slice(transformed, func(i, j int) bool {
		return transformed[i].index < transformed[j].index
	})

	for _, res := range transformed {
		if err := p.load(ctx, res.rec); err != nil {
			atomic.AddInt64(&p.metrics.Failed, 1)
			p.logger.Error().Err(err).Msg("load failed, skipping")
			p.eventBus.Publish("record_failed", err)
			continue
		}
		atomic.AddInt64(&p.metrics.Parsed, 1)
		if count, ok := res.rec["edi_claim_count"].(int); ok {
			atomic.AddInt64(&p.metrics.Claims, int64(count))
		}
		p.eventBus.Publish("record_loaded", res.rec)
		if p.checkpointStore != nil && p.checkpointFunc != nil {
			if cp := p.checkpointFunc(res.rec); cp != "" {
				if err := p.checkpointStore.SaveCheckpoint(ctx, cp); err != nil {
					p.logger.Warn().Err(err).Msg("checkpoint save failed")
				}
			}
		}
	}

	for _, loader := range p.loaders {
		if err := loader.Close(); err != nil {
			return nil, fmt.Errorf("loader close: %w", err)
		}
	}

	completed := time.Now()
	summary := &Summary{
		BatchID:     batchID,
		StartedAt:   started,
		CompletedAt: completed,
		DurationMs:  completed.Sub(started).Milliseconds(),
		Metrics:     p.metrics.Snapshot(),
	}
	p.logger.Info().
		Str("batch_id", batchID).
		Int64("files", summary.Metrics.Files).
		Int64("parsed", summary.Metrics.Parsed).
		Int64("failed", summary.Metrics.Failed).
		Int64("claims", summary.Metrics.Claims).
		Msg("claim batch completed")
	p.eventBus.Publish("run_completed", summary)
	return summary, nil
}

func (p *Pipeline) transform(ctx context.Context, rec utils.Record) (utils.Record, error) {
	for _, v := range p.validators {
		if err := v.Validate(ctx, rec); err != nil {
			return rec, err
		}
	}
	// Transformers annotate a copy so a failed record can be reported as read.
	rec = utils.CloneRecord(rec)
	var err error
	for _, t := range p.transformers {
		rec, err = t.Transform(ctx, rec)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", t.Name(), err)
		}
	}
	return rec, nil
}

func (p *Pipeline) load(ctx context.Context, rec utils.Record) error {
	for _, loader := range p.loaders {
		if err := loader.StoreSingle(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
