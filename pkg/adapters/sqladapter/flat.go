package sqladapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oarkflow/squealx"

	"github.com/oarkflow/edi/pkg/claims"
	"github.com/oarkflow/edi/pkg/flatten"
	"github.com/oarkflow/edi/pkg/utils"
)

// FlatTables names the destination tables for the three relational outputs.
type FlatTables struct {
	Claims    string
	Details   string
	Companies string
}

// FlatLoader flattens projected claims and inserts the rows into three
// relational tables. Each table gets its own Adapter so truncate and
// auto-create apply per table.
type FlatLoader struct {
	claimsField string
	flat        *flatten.Flattener

	claimsOut  *Adapter
	detailOut  *Adapter
	compOut    *Adapter

	claimIdx  int
	detailIdx int
	compIdx   int
}

// NewFlatLoader builds a loader inserting into the given tables.
func NewFlatLoader(db *squealx.DB, driver string, tables FlatTables, run flatten.RunInfo, truncate, autoCreate bool) *FlatLoader {
	return &FlatLoader{
		claimsField: "edi_claims",
		flat:        flatten.NewFlattener(run),
		claimsOut:   NewLoader(db, driver, tables.Claims, truncate, autoCreate, textSchema(flatten.ClaimColumns)),
		detailOut:   NewLoader(db, driver, tables.Details, truncate, autoCreate, textSchema(flatten.DetailColumns)),
		compOut:     NewLoader(db, driver, tables.Companies, truncate, autoCreate, textSchema(flatten.CompanyColumns)),
	}
}

// textSchema declares every column as TEXT. Rows are stringified before
// insert so the schema never fights the driver over types.
func textSchema(columns []string) map[string]string {
	schema := make(map[string]string, len(columns))
	for _, col := range columns {
		schema[col] = "TEXT"
	}
	return schema
}

func stringifyRows(rows []utils.Record) []utils.Record {
	out := make([]utils.Record, 0, len(rows))
	for _, row := range rows {
		rec := make(utils.Record, len(row))
		for k, v := range row {
			if v == nil {
				rec[k] = nil
				continue
			}
			switch val := v.(type) {
			case string:
				rec[k] = val
			case int:
				rec[k] = strconv.Itoa(val)
			case int64:
				rec[k] = strconv.FormatInt(val, 10)
			case float64:
				rec[k] = strconv.FormatFloat(val, 'f', -1, 64)
			default:
				rec[k] = fmt.Sprintf("%v", val)
			}
		}
		out = append(out, rec)
	}
	return out
}

func (fl *FlatLoader) Setup(ctx context.Context) error {
	for _, l := range []*Adapter{fl.claimsOut, fl.detailOut, fl.compOut} {
		if err := l.Setup(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (fl *FlatLoader) StoreSingle(ctx context.Context, rec utils.Record) error {
	value, ok := rec[fl.claimsField]
	if !ok {
		return fmt.Errorf("sql flat loader: record missing %s field", fl.claimsField)
	}
	projected, ok := value.([]*claims.CanonicalClaim)
	if !ok {
		return fmt.Errorf("sql flat loader: %s holds %T, want []*claims.CanonicalClaim", fl.claimsField, value)
	}
	fl.flat.AddAll(projected)

	claimRows := fl.flat.ClaimRows()
	if err := fl.claimsOut.StoreBatch(ctx, stringifyRows(claimRows[fl.claimIdx:])); err != nil {
		return err
	}
	fl.claimIdx = len(claimRows)

	detailRows := fl.flat.DetailRows()
	if err := fl.detailOut.StoreBatch(ctx, stringifyRows(detailRows[fl.detailIdx:])); err != nil {
		return err
	}
	fl.detailIdx = len(detailRows)

	compRows := fl.flat.CompanyRows()
	if err := fl.compOut.StoreBatch(ctx, stringifyRows(compRows[fl.compIdx:])); err != nil {
		return err
	}
	fl.compIdx = len(compRows)
	return nil
}

func (fl *FlatLoader) StoreBatch(ctx context.Context, batch []utils.Record) error {
	for _, rec := range batch {
		if err := fl.StoreSingle(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op: the shared DB connection is owned by the caller.
func (fl *FlatLoader) Close() error {
	return nil
}
