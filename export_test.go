package edi

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/oarkflow/edi/pkg/adapters/fileadapter"
	"github.com/oarkflow/edi/pkg/utils"
)

func recordChannel(rows []utils.Record) <-chan utils.Record {
	ch := make(chan utils.Record, len(rows))
	for _, r := range rows {
		ch <- r
	}
	close(ch)
	return ch
}

func TestWriteRecordsCSVRoundTrip(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "export.csv")
	rows := []utils.Record{
		{"ClaimID": "abc123", "ChargeAmount": "150.00"},
		{"ClaimID": "def456", "ChargeAmount": "75.50"},
	}

	count, err := writeRecords(context.Background(), recordChannel(rows), outFile)
	if err != nil {
		t.Fatalf("writeRecords: %v", err)
	}
	if count != 2 {
		t.Fatalf("exported rows: got %d", count)
	}

	source := fileadapter.New(outFile, "source", false)
	if err := source.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	back, err := source.LoadData()
	if err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("round trip rows: got %d", len(back))
	}
	if back[0]["ClaimID"] != "abc123" || back[1]["ChargeAmount"] != "75.50" {
		t.Fatalf("round trip values: %v", back)
	}
}

func TestWriteRecordsJSON(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "export.json")
	rows := []utils.Record{{"ClaimID": "abc123"}}

	count, err := writeRecords(context.Background(), recordChannel(rows), outFile)
	if err != nil {
		t.Fatalf("writeRecords: %v", err)
	}
	if count != 1 {
		t.Fatalf("exported rows: got %d", count)
	}

	source := fileadapter.New(outFile, "source", false)
	if err := source.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	back, err := source.LoadData()
	if err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if len(back) != 1 || back[0]["ClaimID"] != "abc123" {
		t.Fatalf("round trip values: %v", back)
	}
}

func TestExportRequiresDatabase(t *testing.T) {
	cfg := batchConfig(t, t.TempDir(), t.TempDir())
	if _, err := Export(context.Background(), cfg, "", "", "out.csv"); err == nil {
		t.Fatalf("expected error without database config")
	}
}
