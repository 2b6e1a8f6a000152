package sqladapter

import (
	"testing"

	"github.com/oarkflow/edi/pkg/flatten"
	"github.com/oarkflow/edi/pkg/utils"
)

func TestTextSchemaCoversAllColumns(t *testing.T) {
	schema := textSchema(flatten.ClaimColumns)
	if len(schema) != len(flatten.ClaimColumns) {
		t.Fatalf("schema size: got %d want %d", len(schema), len(flatten.ClaimColumns))
	}
	for col, typ := range schema {
		if typ != "TEXT" {
			t.Fatalf("column %s: got type %q", col, typ)
		}
	}
}

func TestStringifyRows(t *testing.T) {
	rows := stringifyRows([]utils.Record{{
		"ID":           3,
		"ChargeAmount": 150.5,
		"Name":         "ACME",
		"Missing":      nil,
	}})
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	rec := rows[0]
	if rec["ID"] != "3" {
		t.Fatalf("ID: got %v", rec["ID"])
	}
	if rec["ChargeAmount"] != "150.5" {
		t.Fatalf("ChargeAmount: got %v", rec["ChargeAmount"])
	}
	if rec["Name"] != "ACME" {
		t.Fatalf("Name: got %v", rec["Name"])
	}
	if rec["Missing"] != nil {
		t.Fatalf("Missing should stay nil, got %v", rec["Missing"])
	}
}
