package codes

import "testing"

func TestPlaceOfServiceType(t *testing.T) {
	if got := PlaceOfServiceType("11"); got != "OFFICE" {
		t.Fatalf("code 11: got %q", got)
	}
	if got := PlaceOfServiceType("23"); got != "EMERGENCY_ROOM" {
		t.Fatalf("code 23: got %q", got)
	}
	if got := PlaceOfServiceType("XX"); got != "OFFICE" {
		t.Fatalf("unknown code must default to OFFICE, got %q", got)
	}
}

func TestDiagnosisDescription(t *testing.T) {
	if got := DiagnosisDescription("I10"); got != "Essential (primary) hypertension" {
		t.Fatalf("I10: got %q", got)
	}
	if got := DiagnosisDescription("Z9999"); got != "" {
		t.Fatalf("unknown diagnosis must resolve to empty description, got %q", got)
	}
}

func TestProcedureDescription(t *testing.T) {
	if got := ProcedureDescription("99213"); got != "Office/outpatient visit, established patient, low complexity" {
		t.Fatalf("99213: got %q", got)
	}
	if got := ProcedureDescription("00000"); got != "" {
		t.Fatalf("unknown procedure must resolve to empty description, got %q", got)
	}
}

func TestIdentificationType(t *testing.T) {
	cases := map[string]string{
		"XX": "NPI",
		"EI": "ETIN",
		"MI": "MEMBER_ID",
		"PI": "PAYOR_ID",
		"SY": "SSN",
		"ZQ": "ZQ",
	}
	for qualifier, want := range cases {
		if got := IdentificationType(qualifier); got != want {
			t.Fatalf("qualifier %s: got %q, want %q", qualifier, got, want)
		}
	}
}

func TestPayerSequence(t *testing.T) {
	if got := PayerSequence("S"); got != "SECONDARY" {
		t.Fatalf("S: got %q", got)
	}
	if got := PayerSequence(""); got != "PRIMARY" {
		t.Fatalf("empty code must default to PRIMARY, got %q", got)
	}
}

func TestRelationshipType(t *testing.T) {
	if got := RelationshipType("01"); got != "SPOUSE" {
		t.Fatalf("01: got %q", got)
	}
	if got := RelationshipType("ZZ"); got != "SELF" {
		t.Fatalf("unknown code must default to SELF, got %q", got)
	}
}

func TestInsuranceType(t *testing.T) {
	for _, code := range []string{"CI", "12", "13", "", "??"} {
		want := "COMMERCIAL"
		if got := InsuranceType(code); got != want {
			t.Fatalf("code %q: got %q, want %q", code, got, want)
		}
	}
	if got := InsuranceType("MA"); got != "MEDICARE" {
		t.Fatalf("MA: got %q", got)
	}
	if got := InsuranceType("MC"); got != "MEDICAID" {
		t.Fatalf("MC: got %q", got)
	}
}

func TestReferenceType(t *testing.T) {
	if got := ReferenceType("0B"); got != "STATE_LICENSE_NUMBER" {
		t.Fatalf("0B: got %q", got)
	}
	if got := ReferenceType("EI"); got != "EI" {
		t.Fatalf("unmapped qualifier must pass through, got %q", got)
	}
}

func TestFormatDateISO(t *testing.T) {
	if got := FormatDateISO("20230115"); got != "2023-01-15" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDateISO("2023"); got != "" {
		t.Fatalf("short date must format to empty, got %q", got)
	}
	if got := FormatDateISO(""); got != "" {
		t.Fatalf("empty date must format to empty, got %q", got)
	}
}

func TestFormatTimeISO(t *testing.T) {
	if got := FormatTimeISO("1200"); got != "12:00:00" {
		t.Fatalf("got %q", got)
	}
	if got := FormatTimeISO("123456"); got != "12:34:56" {
		t.Fatalf("got %q", got)
	}
	if got := FormatTimeISO(""); got != "00:00:00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatICDCode(t *testing.T) {
	if got := FormatICDCode("Z00121"); got != "Z00.121" {
		t.Fatalf("got %q", got)
	}
	if got := FormatICDCode("I10"); got != "I10" {
		t.Fatalf("three character codes stay unchanged, got %q", got)
	}
}
