package edi

import (
	"context"
	"fmt"

	"github.com/oarkflow/edi/pkg/adapters/fileadapter"
	"github.com/oarkflow/edi/pkg/adapters/sqladapter"
	"github.com/oarkflow/edi/pkg/config"
	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/utils"
)

// Export streams flattened rows back out of the destination database into a
// CSV or JSON file. Table defaults to the configured claims table; a query
// overrides the table entirely.
func Export(ctx context.Context, cfg *config.Config, table, query, outFile string, args ...any) (int, error) {
	if cfg.Database == nil {
		return 0, fmt.Errorf("export requires a database configuration")
	}
	if table == "" {
		table = cfg.Database.ClaimsTable
	}
	db, err := config.OpenDB(*cfg.Database)
	if err != nil {
		return 0, fmt.Errorf("open database: %w", err)
	}
	source := sqladapter.NewSource(db, cfg.Database.Driver, table, "")
	defer source.Close()

	opts := []contracts.Option{contracts.WithTable(table)}
	if query != "" {
		opts = append(opts, contracts.WithQuery(query))
	}
	if len(args) > 0 {
		opts = append(opts, contracts.WithArguments(args...))
	}
	ch, err := source.Extract(ctx, opts...)
	if err != nil {
		return 0, err
	}
	return writeRecords(ctx, ch, outFile)
}

// writeRecords drains ch into outFile, whose extension picks the format.
func writeRecords(ctx context.Context, ch <-chan utils.Record, outFile string) (int, error) {
	out := fileadapter.New(outFile, "loader", false)
	if err := out.Setup(ctx); err != nil {
		return 0, err
	}
	count := 0
	for rec := range ch {
		if err := out.StoreSingle(ctx, rec); err != nil {
			_ = out.Close()
			return count, err
		}
		count++
	}
	return count, out.Close()
}
