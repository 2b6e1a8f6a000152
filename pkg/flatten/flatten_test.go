package flatten

import (
	"testing"

	"github.com/oarkflow/edi/pkg/claims"
	"github.com/oarkflow/edi/pkg/parsers"
)

const sampleMessage = "ST*837*0001~" +
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
	"NM1*PR*2*BLUE PAYER*****PI*PAYER01~" +
	"CLM*CLAIM001*150***11:B:1***Y~" +
	"HI*ABK:I10~" +
	"LX*1~" +
	"SV1*HC:99213*150*UN*1~" +
	"DTP*472*D8*20230115~" +
	"LX*2~" +
	"SV1*HC:80053*55*UN*2~" +
	"DTP*472*D8*20230115~" +
	"CLM*CLAIM002*90***11:B:1***Y~" +
	"HI*ABK:M545~" +
	"LX*1~" +
	"SV1*HC:99212*90*UN*1~" +
	"DTP*472*D8*20230120~"

func flattenSample(t *testing.T) *Flattener {
	t.Helper()
	doc, err := parsers.Parse(sampleMessage)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	f := NewFlattener(RunInfo{ReceiveDate: "2023-02-01"})
	f.AddAll(claims.Project(doc))
	return f
}

func TestClaimRows(t *testing.T) {
	f := flattenSample(t)
	rows := f.ClaimRows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 claim rows, got %d", len(rows))
	}

	first := rows[0]
	if len(first) != len(ClaimColumns) {
		t.Fatalf("claim row must carry the full schema: %d columns, want %d", len(first), len(ClaimColumns))
	}
	if first["ID"] != 1 {
		t.Fatalf("ID: got %v", first["ID"])
	}
	if first["Filename"] != "EDI-1.d" {
		t.Fatalf("Filename: got %v", first["Filename"])
	}
	if first["ClaimNo"] != "CLAIM001" {
		t.Fatalf("ClaimNo: got %v", first["ClaimNo"])
	}
	if first["Amount"] != 150.0 {
		t.Fatalf("Amount: got %v", first["Amount"])
	}
	if first["ReceiveDate"] != "2023-02-01" {
		t.Fatalf("ReceiveDate: got %v", first["ReceiveDate"])
	}
	if first["FedTaxIDQual"] != "EI" || first["FedTaxID"] != "123456789" {
		t.Fatalf("tax id columns: %v %v", first["FedTaxIDQual"], first["FedTaxID"])
	}
	if first["BillProvNPI"] != "1234567890" {
		t.Fatalf("BillProvNPI: got %v", first["BillProvNPI"])
	}
	if first["SubmitterName"] != "ACME BILLING SERVICE" || first["ReceiverName"] != "CLEARINGHOUSE" {
		t.Fatalf("envelope names: %v %v", first["SubmitterName"], first["ReceiverName"])
	}
	if first["PrincipalDiagnosis"] != "I10" {
		t.Fatalf("PrincipalDiagnosis: got %v", first["PrincipalDiagnosis"])
	}
	if first["Diag2"] != "" {
		t.Fatalf("unused diagnosis slots must be empty strings, got %v", first["Diag2"])
	}
	if first["ImageFilePath"] != nil {
		t.Fatalf("never-populated columns stay nil, got %v", first["ImageFilePath"])
	}

	second := rows[1]
	if second["ID"] != 2 || second["ClaimNo"] != "CLAIM002" {
		t.Fatalf("second row: %v %v", second["ID"], second["ClaimNo"])
	}
	if second["PrincipalDiagnosis"] != "M545" {
		t.Fatalf("second diagnosis: got %v", second["PrincipalDiagnosis"])
	}
}

func TestDetailRowsUseGlobalLineNumbers(t *testing.T) {
	f := flattenSample(t)
	rows := f.DetailRows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 detail rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row["ID"] != i+1 || row["LineNumber"] != i+1 {
			t.Fatalf("row %d: ID %v LineNumber %v", i, row["ID"], row["LineNumber"])
		}
		if len(row) != len(DetailColumns) {
			t.Fatalf("detail row %d missing columns: %d vs %d", i, len(row), len(DetailColumns))
		}
	}
	if rows[0]["ClaimID"] != 1 || rows[1]["ClaimID"] != 1 || rows[2]["ClaimID"] != 2 {
		t.Fatalf("claim linkage: %v %v %v", rows[0]["ClaimID"], rows[1]["ClaimID"], rows[2]["ClaimID"])
	}
	if rows[0]["ProcedureCode"] != "99213" || rows[1]["ProcedureCode"] != "80053" || rows[2]["ProcedureCode"] != "99212" {
		t.Fatalf("procedure codes: %v %v %v", rows[0]["ProcedureCode"], rows[1]["ProcedureCode"], rows[2]["ProcedureCode"])
	}
	if rows[1]["Quantity"] != 2 {
		t.Fatalf("Quantity: got %v", rows[1]["Quantity"])
	}
	if rows[0]["ProcedureQual"] != "CPT" {
		t.Fatalf("ProcedureQual: got %v", rows[0]["ProcedureQual"])
	}
	if rows[0]["DiagPointer1"] != 1 {
		t.Fatalf("DiagPointer1: got %v", rows[0]["DiagPointer1"])
	}
	if rows[0]["ServiceDateFrom"] != "2023-01-15" {
		t.Fatalf("ServiceDateFrom: got %v", rows[0]["ServiceDateFrom"])
	}
}

func TestCompanyRowsDeduplicate(t *testing.T) {
	f := flattenSample(t)
	rows := f.CompanyRows()
	if len(rows) != 1 {
		t.Fatalf("both claims share one company identity, got %d rows", len(rows))
	}
	company := rows[0]
	if len(company) != len(CompanyColumns) {
		t.Fatalf("company row missing columns: %d vs %d", len(company), len(CompanyColumns))
	}
	if company["ID"] != 1 {
		t.Fatalf("ID: got %v", company["ID"])
	}
	if company["Name"] != "ACME CLINIC" {
		t.Fatalf("Name: got %v", company["Name"])
	}
	if company["EIN"] != "123456789" {
		t.Fatalf("EIN: got %v", company["EIN"])
	}
	if company["SenderID"] != "SUB01" || company["SourceID"] != "RCV01" {
		t.Fatalf("sender/source ids: %v %v", company["SenderID"], company["SourceID"])
	}
	if company["EntityType"] != "BUSINESS" {
		t.Fatalf("EntityType: got %v", company["EntityType"])
	}
}

func TestCompanyRowsSplitOnDifferentBillingProvider(t *testing.T) {
	doc, err := parsers.Parse(sampleMessage)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	other := "ST*837*0002~" +
		"BHT*0019*00*REF2*20230102*1300~" +
		"NM1*41*2*ACME BILLING SERVICE*****46*SUB01~" +
		"NM1*40*2*CLEARINGHOUSE*****46*RCV01~" +
		"HL*1**20*1~" +
		"NM1*85*2*OTHER CLINIC*****XX*5550001111~" +
		"HL*2*1*22*0~" +
		"NM1*IL*1*ROE*RICHARD~" +
		"CLM*CLAIM003*40***11:B:1***Y~"
	otherDoc, err := parsers.Parse(other)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	f := NewFlattener(RunInfo{ReceiveDate: "2023-02-01"})
	f.AddAll(claims.Project(doc))
	f.AddAll(claims.Project(otherDoc))

	if len(f.CompanyRows()) != 2 {
		t.Fatalf("expected 2 company rows, got %d", len(f.CompanyRows()))
	}
	if f.CompanyRows()[1]["Name"] != "OTHER CLINIC" {
		t.Fatalf("second company: got %v", f.CompanyRows()[1]["Name"])
	}
}
