package transformers

import (
	"context"
	"fmt"
	"strings"

	"github.com/oarkflow/edi/pkg/claims"
	"github.com/oarkflow/edi/pkg/parsers"
	"github.com/oarkflow/edi/pkg/utils"
)

// EDI837TransformerOptions controls how claim transformations populate records.
type EDI837TransformerOptions struct {
	InputField          string
	SourcePathField     string
	OutputDocumentField string
	OutputClaimsField   string
	ControlNumberField  string
	ClaimCountField     string
	SegmentCountField   string
}

// EDI837Transformer parses raw 837 interchanges and attaches the assembled
// document and projected claims to the record.
type EDI837Transformer struct {
	parser *parsers.X12Parser
	opts   EDI837TransformerOptions
}

// NewEDI837Transformer builds a transformer with sane defaults.
func NewEDI837Transformer(opts EDI837TransformerOptions) *EDI837Transformer {
	if opts.InputField == "" {
		opts.InputField = "raw_message"
	}
	if opts.SourcePathField == "" {
		opts.SourcePathField = "source_path"
	}
	if opts.OutputDocumentField == "" {
		opts.OutputDocumentField = "edi_document"
	}
	if opts.OutputClaimsField == "" {
		opts.OutputClaimsField = "edi_claims"
	}
	if opts.ControlNumberField == "" {
		opts.ControlNumberField = "edi_control_number"
	}
	if opts.ClaimCountField == "" {
		opts.ClaimCountField = "edi_claim_count"
	}
	if opts.SegmentCountField == "" {
		opts.SegmentCountField = "edi_segment_count"
	}
	return &EDI837Transformer{
		parser: parsers.NewX12Parser(),
		opts:   opts,
	}
}

// Name returns the human friendly transformer name.
func (t *EDI837Transformer) Name() string {
	return "EDI837Transformer"
}

// Transform parses the interchange stored in InputField and enriches the
// record with the document, its canonical claims and envelope metadata.
func (t *EDI837Transformer) Transform(_ context.Context, rec utils.Record) (utils.Record, error) {
	rawValue, ok := rec[t.opts.InputField]
	if !ok {
		return rec, fmt.Errorf("edi transformer: missing input field %s", t.opts.InputField)
	}
	rawMessage, err := stringValue(rawValue)
	if err != nil {
		return rec, fmt.Errorf("edi transformer: %w", err)
	}
	if strings.TrimSpace(rawMessage) == "" {
		return rec, fmt.Errorf("edi transformer: input field %s is empty", t.opts.InputField)
	}

	doc, err := t.parser.Parse(rawMessage)
	if err != nil {
		return rec, fmt.Errorf("edi transformer: %w", err)
	}
	if path, ok := rec[t.opts.SourcePathField].(string); ok {
		doc.SourcePath = path
	}
	projected := claims.Project(doc)

	if t.opts.OutputDocumentField != "" {
		rec[t.opts.OutputDocumentField] = doc
	}
	if t.opts.OutputClaimsField != "" {
		rec[t.opts.OutputClaimsField] = projected
	}
	if t.opts.ControlNumberField != "" {
		rec[t.opts.ControlNumberField] = doc.Interchange.ControlNumber
	}
	if t.opts.ClaimCountField != "" {
		rec[t.opts.ClaimCountField] = len(projected)
	}
	if t.opts.SegmentCountField != "" {
		rec[t.opts.SegmentCountField] = doc.SegmentCount
	}
	return rec, nil
}

func stringValue(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
