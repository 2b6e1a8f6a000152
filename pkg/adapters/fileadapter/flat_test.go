package fileadapter

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/oarkflow/json"

	"github.com/oarkflow/edi/pkg/claims"
	"github.com/oarkflow/edi/pkg/flatten"
	"github.com/oarkflow/edi/pkg/parsers"
	"github.com/oarkflow/edi/pkg/utils"
)

const flatSampleMessage = "ISA*00*          *00*          *ZZ*SUBMITTER      *ZZ*RECEIVER       *230101*1200*^*00501*000000042*0*P*:~" +
	"GS*HC*SUBMITTER*RECEIVER*20230101*1200*1*X*005010X222A1~" +
	"ST*837*0001~" +
	"BHT*0019*00*REF1*20230101*1200~" +
	"NM1*41*2*ACME BILLING SERVICE*****46*SUB01~" +
	"NM1*40*2*CLEARINGHOUSE*****46*RCV01~" +
	"HL*1**20*1~" +
	"NM1*85*2*ACME CLINIC*****XX*1234567890~" +
	"N3*100 MAIN ST~" +
	"N4*SPRINGFIELD*IL*62701~" +
	"REF*EI*123456789~" +
	"HL*2*1*22*0~" +
	"SBR*P*18*******CI~" +
	"NM1*IL*1*DOE*JANE****MI*MEMBER1~" +
	"CLM*CLAIM001*150***11:B:1*Y*A*Y*Y~" +
	"LX*1~" +
	"SV1*HC:99213*150*UN*1~" +
	"DTP*472*D8*20230116~" +
	"LX*2~" +
	"SV1*HC:99214*80*UN*1~" +
	"DTP*472*D8*20230117~"

func projectedRecord(t *testing.T) utils.Record {
	t.Helper()
	doc, err := parsers.Parse(flatSampleMessage)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return utils.Record{"edi_claims": claims.Project(doc)}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestFlatOutputWritesRelationalFiles(t *testing.T) {
	dir := t.TempDir()
	fo := NewFlatOutput(dir, flatten.RunInfo{ReceiveDate: "2023-01-02"})
	if err := fo.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := fo.StoreSingle(context.Background(), projectedRecord(t)); err != nil {
		t.Fatalf("StoreSingle: %v", err)
	}
	if err := fo.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	claimRows := readCSV(t, filepath.Join(dir, "edi_claims.csv"))
	if len(claimRows) != 2 {
		t.Fatalf("expected header plus 1 claim row, got %d rows", len(claimRows))
	}
	if len(claimRows[0]) != len(flatten.ClaimColumns) {
		t.Fatalf("claim header width: got %d want %d", len(claimRows[0]), len(flatten.ClaimColumns))
	}
	if claimRows[0][0] != flatten.ClaimColumns[0] {
		t.Fatalf("claim header starts with %q", claimRows[0][0])
	}

	detailRows := readCSV(t, filepath.Join(dir, "edi_claim_details.csv"))
	if len(detailRows) != 3 {
		t.Fatalf("expected header plus 2 detail rows, got %d rows", len(detailRows))
	}

	companyRows := readCSV(t, filepath.Join(dir, "edi_companies.csv"))
	if len(companyRows) != 2 {
		t.Fatalf("expected header plus 1 company row, got %d rows", len(companyRows))
	}

	c, d, co := fo.Counts()
	if c != 1 || d != 2 || co != 1 {
		t.Fatalf("Counts: got (%d,%d,%d)", c, d, co)
	}
}

func TestFlatOutputWritesBusinessJSON(t *testing.T) {
	dir := t.TempDir()
	fo := NewFlatOutput(dir, flatten.RunInfo{ReceiveDate: "2023-01-02"})
	if err := fo.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := fo.StoreSingle(context.Background(), projectedRecord(t)); err != nil {
		t.Fatalf("StoreSingle: %v", err)
	}
	if err := fo.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "edi_837_business_format.json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var out []claims.CanonicalClaim
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal business json: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 claim in json, got %d", len(out))
	}
	if out[0].PatientControlNumber != "CLAIM001" {
		t.Fatalf("patientControlNumber: got %q", out[0].PatientControlNumber)
	}
}

func TestFlatOutputRejectsMissingClaims(t *testing.T) {
	dir := t.TempDir()
	fo := NewFlatOutput(dir, flatten.RunInfo{ReceiveDate: "2023-01-02"}, WithBusinessJSON(false))
	if err := fo.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer fo.Close()
	if err := fo.StoreSingle(context.Background(), utils.Record{}); err == nil {
		t.Fatalf("expected error for record without claims")
	}
}
