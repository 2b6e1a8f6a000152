package contracts

import (
	"context"

	"github.com/oarkflow/edi/pkg/utils"
)

type SourceOption struct {
	Extensions []string
	MaxFiles   int
	Pattern    string
	Table      string
	Query      string
	Args       []any
}

// Option defines a function type for configuring a source adapter.
type Option func(*SourceOption)

// WithTable sets the table name for SQL-backed adapters.
func WithTable(table string) Option {
	return func(o *SourceOption) {
		o.Table = table
	}
}

// WithQuery sets a custom query for SQL-backed adapters.
func WithQuery(query string) Option {
	return func(o *SourceOption) {
		o.Query = query
	}
}

func WithArguments(args ...any) Option {
	return func(o *SourceOption) {
		o.Args = args
	}
}

// WithExtensions restricts a file source to the given extensions.
func WithExtensions(exts ...string) Option {
	return func(o *SourceOption) {
		o.Extensions = exts
	}
}

// WithMaxFiles caps how many files a directory source will emit.
func WithMaxFiles(n int) Option {
	return func(o *SourceOption) {
		o.MaxFiles = n
	}
}

// WithPattern applies a glob pattern to file names.
func WithPattern(pattern string) Option {
	return func(o *SourceOption) {
		o.Pattern = pattern
	}
}

type Source interface {
	Setup(ctx context.Context) error
	Extract(ctx context.Context, opts ...Option) (<-chan utils.Record, error)
	Close() error
}

type Loader interface {
	Setup(ctx context.Context) error
	StoreBatch(ctx context.Context, batch []utils.Record) error
	StoreSingle(ctx context.Context, rec utils.Record) error
	Close() error
}

type Transformer interface {
	Name() string
	Transform(ctx context.Context, rec utils.Record) (utils.Record, error)
}

type MultiTransformer interface {
	TransformMany(ctx context.Context, rec utils.Record) ([]utils.Record, error)
}

type Validator interface {
	Validate(ctx context.Context, rec utils.Record) error
}

type CheckpointStore interface {
	SaveCheckpoint(ctx context.Context, checkpoint string) error
	GetCheckpoint(context.Context) (string, error)
	Remove() error
}

type Flushable interface {
	Flush(ctx context.Context) ([]utils.Record, error)
}

type Appender[T any] interface {
	Append(record T) error
	AppendBatch(records []T) error
	Close() error
}
