package claims

import (
	"testing"

	"github.com/oarkflow/edi/pkg/parsers"
)

const sampleClaimMessage = "ISA*00*          *00*          *ZZ*SUBMITTER      *ZZ*RECEIVER       *230101*1200*^*00501*000000001*0*P*:~" +
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
	"SBR*P*18***MA****CI~" +
	"NM1*IL*1*DOE*JANE****MI*MEMBER1~" +
	"N3*200 OAK AVE~" +
	"N4*SPRINGFIELD*IL*62702~" +
	"DMG*D8*19800101*F~" +
	"NM1*PR*2*BLUE PAYER*****PI*PAYER01~" +
	"CLM*CLAIM001*150***11:B:1*Y*A*Y*Y*P~" +
	"DTP*472*D8*20230115~" +
	"HI*ABK:I10*ABF:Z9999~" +
	"NM1*82*1*WELBY*MARCUS**JR*MD*XX*9998887776~" +
	"PRV*PE*PXC*207Q00000X~" +
	"REF*0B*LIC123~" +
	"LX*1~" +
	"SV1*HC:99213*150*UN*1~" +
	"DTP*472*D8*20230116~"

func projectSample(t *testing.T) []*CanonicalClaim {
	t.Helper()
	doc, err := parsers.Parse(sampleClaimMessage)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return Project(doc)
}

func TestProjectSingleClaim(t *testing.T) {
	projected := projectSample(t)
	if len(projected) != 1 {
		t.Fatalf("expected 1 canonical claim, got %d", len(projected))
	}
	claim := projected[0]

	if claim.ObjectType != "CLAIM" {
		t.Fatalf("objectType: got %q", claim.ObjectType)
	}
	if claim.PatientControlNumber != "CLAIM001" {
		t.Fatalf("patientControlNumber: got %q", claim.PatientControlNumber)
	}
	if claim.ChargeAmount != 150.0 {
		t.Fatalf("chargeAmount: got %v", claim.ChargeAmount)
	}
	if claim.FacilityCode.Code != "11" || claim.FacilityCode.SubType != "PLACE_OF_SERVICE" {
		t.Fatalf("facilityCode: got %+v", claim.FacilityCode)
	}
	if claim.PlaceOfServiceType != "OFFICE" {
		t.Fatalf("placeOfServiceType: got %q", claim.PlaceOfServiceType)
	}
	if claim.FrequencyCode.Code != "1" || claim.FrequencyCode.Desc != "Original" {
		t.Fatalf("frequencyCode: got %+v", claim.FrequencyCode)
	}
	if claim.ServiceDateFrom != "2023-01-15" || claim.ServiceDateTo != "2023-01-15" {
		t.Fatalf("service dates: %q .. %q", claim.ServiceDateFrom, claim.ServiceDateTo)
	}
	if claim.OriginalReferenceNumber != "CPREF1CLAIM001" {
		t.Fatalf("originalReferenceNumber: got %q", claim.OriginalReferenceNumber)
	}
	if claim.ProviderSignatureIndicator != "Y" {
		t.Fatalf("providerSignatureIndicator: got %q", claim.ProviderSignatureIndicator)
	}
	if claim.AssignmentParticipationCode != "A" {
		t.Fatalf("assignmentParticipationCode: got %q", claim.AssignmentParticipationCode)
	}
	if claim.AssignmentCertificationIndicator != "Y" {
		t.Fatalf("assignmentCertificationIndicator: got %q", claim.AssignmentCertificationIndicator)
	}
	if claim.ReleaseOfInformationCode != "Y" {
		t.Fatalf("releaseOfInformationCode: got %q", claim.ReleaseOfInformationCode)
	}
}

func TestProjectTransactionEnvelope(t *testing.T) {
	claim := projectSample(t)[0]
	tx := claim.Transaction

	if tx.ControlNumber != "0001" {
		t.Fatalf("controlNumber: got %q", tx.ControlNumber)
	}
	if tx.TransactionType != "PROF" {
		t.Fatalf("transactionType: got %q", tx.TransactionType)
	}
	if tx.ClaimOrEncounterIdentifierType != "CHARGEABLE" {
		t.Fatalf("claimOrEncounterIdentifierType: got %q", tx.ClaimOrEncounterIdentifierType)
	}
	if tx.FileInfo.FileType != "EDI" {
		t.Fatalf("fileType: got %q", tx.FileInfo.FileType)
	}
	if tx.CreationDate != "2023-01-01" || tx.CreationTime != "12:00:00" {
		t.Fatalf("creation date/time: %q %q", tx.CreationDate, tx.CreationTime)
	}
	if tx.CreationDateTime != "2023-01-01T12:00:00" {
		t.Fatalf("creationDateTime: got %q", tx.CreationDateTime)
	}
	if tx.Sender == nil || tx.Sender.EntityRole != "SUBMITTER" || tx.Sender.LastNameOrOrgName != "ACME BILLING SERVICE" {
		t.Fatalf("sender: got %+v", tx.Sender)
	}
	if tx.Receiver == nil || tx.Receiver.EntityRole != "RECEIVER" {
		t.Fatalf("receiver: got %+v", tx.Receiver)
	}
}

func TestProjectParties(t *testing.T) {
	claim := projectSample(t)[0]

	billing := claim.BillingProvider
	if billing == nil || billing.EntityRole != "BILLING_PROVIDER" {
		t.Fatalf("billing provider: got %+v", billing)
	}
	if billing.IdentificationType != "NPI" || billing.Identifier != "1234567890" {
		t.Fatalf("billing identification: %+v", billing)
	}
	if billing.TaxID != "123456789" {
		t.Fatalf("billing taxId: got %q", billing.TaxID)
	}
	if billing.Address == nil || billing.Address.Line != "100 MAIN ST" || billing.Address.ZipCode != "62701" {
		t.Fatalf("billing address: %+v", billing.Address)
	}

	sub := claim.Subscriber
	if sub.PayerResponsibilitySequence != "PRIMARY" {
		t.Fatalf("payerResponsibilitySequence: got %q", sub.PayerResponsibilitySequence)
	}
	if sub.RelationshipType != "SELF" {
		t.Fatalf("relationshipType: got %q", sub.RelationshipType)
	}
	if sub.InsurancePlanType != "MEDICARE" {
		t.Fatalf("insurancePlanType: got %q", sub.InsurancePlanType)
	}
	if sub.ClaimFilingIndicatorCode != "CI" {
		t.Fatalf("claimFilingIndicatorCode: got %q", sub.ClaimFilingIndicatorCode)
	}
	person := sub.Person
	if person.IdentificationType != "MEMBER_ID" || person.Identifier != "MEMBER1" {
		t.Fatalf("subscriber identification: %+v", person)
	}
	if person.BirthDate != "1980-01-01" || person.Gender != "FEMALE" {
		t.Fatalf("subscriber demographics: %+v", person)
	}

	payer := claim.Payer
	if payer == nil || payer.EntityRole != "PAYER" || payer.IdentificationType != "PAYOR_ID" {
		t.Fatalf("payer: got %+v", payer)
	}
}

func TestProjectClaimProviders(t *testing.T) {
	claim := projectSample(t)[0]
	if len(claim.Providers) != 1 {
		t.Fatalf("expected 1 claim provider, got %d", len(claim.Providers))
	}
	rendering := claim.Providers[0]
	if rendering.EntityRole != "RENDERING" {
		t.Fatalf("entityRole: got %q", rendering.EntityRole)
	}
	if rendering.IdentificationType != "NPI" || rendering.Identifier != "9998887776" {
		t.Fatalf("rendering identification: %+v", rendering)
	}
	if rendering.MiddleName != "" {
		t.Fatalf("MD suffix must not become a middle name, got %q", rendering.MiddleName)
	}
	if rendering.ProviderTaxonomy == nil || rendering.ProviderTaxonomy.Code != "207Q00000X" || rendering.ProviderTaxonomy.Desc != "Family Medicine" {
		t.Fatalf("taxonomy: %+v", rendering.ProviderTaxonomy)
	}
	if len(rendering.AdditionalIDs) != 1 {
		t.Fatalf("additionalIds: %+v", rendering.AdditionalIDs)
	}
	extra := rendering.AdditionalIDs[0]
	if extra.QualifierCode != "0B" || extra.Type != "STATE_LICENSE_NUMBER" || extra.Identification != "LIC123" {
		t.Fatalf("additional id: %+v", extra)
	}
}

func TestProjectDiagnosesAndLines(t *testing.T) {
	claim := projectSample(t)[0]

	if len(claim.Diags) != 2 {
		t.Fatalf("expected 2 diagnoses, got %d", len(claim.Diags))
	}
	first := claim.Diags[0]
	if first.Code != "I10" || first.Desc != "Essential (primary) hypertension" || first.FormattedCode != "I10" {
		t.Fatalf("first diagnosis: %+v", first)
	}
	second := claim.Diags[1]
	if second.Code != "Z9999" || second.Desc != "" || second.FormattedCode != "Z99.99" {
		t.Fatalf("unknown diagnosis must keep its code with empty description: %+v", second)
	}

	if len(claim.ServiceLines) != 1 {
		t.Fatalf("expected 1 service line, got %d", len(claim.ServiceLines))
	}
	line := claim.ServiceLines[0]
	if line.Procedure.Code != "99213" || line.Procedure.SubType != "CPT" {
		t.Fatalf("procedure: %+v", line.Procedure)
	}
	if line.Procedure.Desc == "" {
		t.Fatalf("expected procedure description for 99213")
	}
	if line.ChargeAmount != 150.0 || line.UnitCount != 1 || line.UnitType != "UNIT" {
		t.Fatalf("line pricing: %+v", line)
	}
	if line.ServiceDateFrom != "2023-01-16" {
		t.Fatalf("line service date: got %q", line.ServiceDateFrom)
	}
	if len(line.DiagPointers) != 1 || line.DiagPointers[0] != 1 {
		t.Fatalf("diagPointers: %+v", line.DiagPointers)
	}
	if len(line.SourceLineID) != 10 {
		t.Fatalf("sourceLineId must be 10 characters, got %q", line.SourceLineID)
	}
}

func TestLineDiagnosesAreIndependentCopies(t *testing.T) {
	claim := projectSample(t)[0]
	line := claim.ServiceLines[0]
	if len(line.Diags) != 2 {
		t.Fatalf("expected line to carry the claim diagnoses, got %d", len(line.Diags))
	}
	claim.Diags = append(claim.Diags, DiagnosisInfo{Code: "LATE"})
	claim.Diags[0].Code = "MUTATED"
	if len(line.Diags) != 2 || line.Diags[0].Code != "I10" {
		t.Fatalf("line diagnoses must be an independent snapshot: %+v", line.Diags)
	}
}

func TestProjectionIsDeterministic(t *testing.T) {
	first := projectSample(t)[0]
	second := projectSample(t)[0]
	if first.ID != second.ID {
		t.Fatalf("claim ids differ across runs: %q vs %q", first.ID, second.ID)
	}
	if first.Transaction.ID != second.Transaction.ID {
		t.Fatalf("transaction ids differ across runs")
	}
	if first.ServiceLines[0].SourceLineID != second.ServiceLines[0].SourceLineID {
		t.Fatalf("source line ids differ across runs")
	}
	if len(first.ID) != 32 {
		t.Fatalf("claim id must be 32 characters, got %q", first.ID)
	}
}

func TestLineWithoutProcedureIsDropped(t *testing.T) {
	content := "ST*837*0001~" +
		"BHT*0019*00*R2*20230101*1200~" +
		"HL*1**20*1~" +
		"NM1*85*2*CLINIC~" +
		"HL*2*1*22*0~" +
		"NM1*IL*1*DOE*JANE~" +
		"CLM*C9*80~" +
		"LX*1~" +
		"SV1**80*UN*1~" +
		"LX*2~" +
		"SV1*HC:80053*80*UN*1~"
	doc, err := parsers.Parse(content)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	projected := Project(doc)
	if len(projected) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(projected))
	}
	lines := projected[0].ServiceLines
	if len(lines) != 1 {
		t.Fatalf("line without a procedure code must be dropped, got %d lines", len(lines))
	}
	if lines[0].Procedure.Code != "80053" {
		t.Fatalf("surviving line: %+v", lines[0].Procedure)
	}
}

func TestTruncatedClaimDefaults(t *testing.T) {
	content := "ST*837*0001~" +
		"BHT*0019*00*R3*20230101*1200~" +
		"HL*1**20*1~" +
		"NM1*85*2*CLINIC~" +
		"HL*2*1*22*0~" +
		"NM1*IL*1*DOE*JANE~" +
		"CLM*SHORT*75~"
	doc, err := parsers.Parse(content)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	claim := Project(doc)[0]
	if claim.FacilityCode.Code != "" {
		t.Fatalf("expected empty facility code, got %q", claim.FacilityCode.Code)
	}
	if claim.PlaceOfServiceType != "OFFICE" {
		t.Fatalf("expected OFFICE fallback, got %q", claim.PlaceOfServiceType)
	}
	if claim.FrequencyCode.Code != "1" {
		t.Fatalf("expected default frequency, got %q", claim.FrequencyCode.Code)
	}
	if claim.ChargeAmount != 75.0 {
		t.Fatalf("chargeAmount: got %v", claim.ChargeAmount)
	}
	if claim.ProviderSignatureIndicator != "N" {
		t.Fatalf("expected N signature indicator, got %q", claim.ProviderSignatureIndicator)
	}
}
