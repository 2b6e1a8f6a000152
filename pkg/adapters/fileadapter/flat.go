package fileadapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/oarkflow/edi/pkg/claims"
	"github.com/oarkflow/edi/pkg/flatten"
	"github.com/oarkflow/edi/pkg/utils"
	"github.com/oarkflow/edi/pkg/utils/fileutil"
)

// FlatOutputOption customizes a FlatOutput loader.
type FlatOutputOption func(*FlatOutput)

// WithClaimsField overrides the record field holding projected claims.
func WithClaimsField(field string) FlatOutputOption {
	return func(fo *FlatOutput) {
		fo.claimsField = field
	}
}

// WithBusinessJSON toggles writing the canonical claim JSON alongside the
// relational outputs.
func WithBusinessJSON(enabled bool) FlatOutputOption {
	return func(fo *FlatOutput) {
		fo.writeJSON = enabled
	}
}

// FlatOutput flattens projected claims into the three relational outputs
// (claims, claim details, companies) plus the canonical claim JSON. Column
// order is fixed by the schema, not by map iteration.
type FlatOutput struct {
	dir         string
	claimsField string
	writeJSON   bool

	flat      *flatten.Flattener
	claimsOut *fileutil.CSVAppender[utils.Record]
	detailOut *fileutil.CSVAppender[utils.Record]
	compOut   *fileutil.CSVAppender[utils.Record]
	jsonOut   *fileutil.JSONAppender[*claims.CanonicalClaim]

	claimIdx  int
	detailIdx int
	compIdx   int
}

// NewFlatOutput builds a loader writing into dir.
func NewFlatOutput(dir string, run flatten.RunInfo, opts ...FlatOutputOption) *FlatOutput {
	fo := &FlatOutput{
		dir:         dir,
		claimsField: "edi_claims",
		writeJSON:   true,
		flat:        flatten.NewFlattener(run),
	}
	for _, opt := range opts {
		opt(fo)
	}
	return fo
}

// Setup opens the output appenders.
func (fo *FlatOutput) Setup(_ context.Context) error {
	var err error
	fo.claimsOut, err = fileutil.NewCSVAppenderWithHeader[utils.Record](
		filepath.Join(fo.dir, "edi_claims.csv"), flatten.ClaimColumns, false)
	if err != nil {
		return err
	}
	fo.detailOut, err = fileutil.NewCSVAppenderWithHeader[utils.Record](
		filepath.Join(fo.dir, "edi_claim_details.csv"), flatten.DetailColumns, false)
	if err != nil {
		return err
	}
	fo.compOut, err = fileutil.NewCSVAppenderWithHeader[utils.Record](
		filepath.Join(fo.dir, "edi_companies.csv"), flatten.CompanyColumns, false)
	if err != nil {
		return err
	}
	if fo.writeJSON {
		fo.jsonOut, err = fileutil.NewJSONAppender[*claims.CanonicalClaim](
			filepath.Join(fo.dir, "edi_837_business_format.json"), false)
		if err != nil {
			return err
		}
	}
	return nil
}

// StoreSingle flattens the claims attached to one record and appends the
// newly produced rows.
func (fo *FlatOutput) StoreSingle(_ context.Context, rec utils.Record) error {
	value, ok := rec[fo.claimsField]
	if !ok {
		return fmt.Errorf("flat output: record missing %s field", fo.claimsField)
	}
	projected, ok := value.([]*claims.CanonicalClaim)
	if !ok {
		return fmt.Errorf("flat output: %s holds %T, want []*claims.CanonicalClaim", fo.claimsField, value)
	}
	fo.flat.AddAll(projected)

	claimRows := fo.flat.ClaimRows()
	if err := fo.claimsOut.AppendBatch(claimRows[fo.claimIdx:]); err != nil {
		return err
	}
	fo.claimIdx = len(claimRows)

	detailRows := fo.flat.DetailRows()
	if err := fo.detailOut.AppendBatch(detailRows[fo.detailIdx:]); err != nil {
		return err
	}
	fo.detailIdx = len(detailRows)

	compRows := fo.flat.CompanyRows()
	if err := fo.compOut.AppendBatch(compRows[fo.compIdx:]); err != nil {
		return err
	}
	fo.compIdx = len(compRows)

	if fo.jsonOut != nil && len(projected) > 0 {
		if err := fo.jsonOut.AppendBatch(projected); err != nil {
			return err
		}
	}
	return nil
}

// StoreBatch flattens a batch of records.
func (fo *FlatOutput) StoreBatch(ctx context.Context, batch []utils.Record) error {
	for _, rec := range batch {
		if err := fo.StoreSingle(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Counts reports how many rows of each kind have been written.
func (fo *FlatOutput) Counts() (claimRows, detailRows, companyRows int) {
	return fo.claimIdx, fo.detailIdx, fo.compIdx
}

// Close flushes and closes every appender.
func (fo *FlatOutput) Close() error {
	for _, c := range []*fileutil.CSVAppender[utils.Record]{fo.claimsOut, fo.detailOut, fo.compOut} {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			return err
		}
	}
	if fo.jsonOut != nil {
		return fo.jsonOut.Close()
	}
	return nil
}
