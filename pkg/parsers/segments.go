package parsers

import "strings"

// Common composite and segment data types for the 837 professional claim.

// ISA - Interchange Control Header
type ISA struct {
	AuthorizationInfoQualifier    string `json:"authorization_info_qualifier"`     // ISA.1
	AuthorizationInfo             string `json:"authorization_info"`               // ISA.2
	SecurityInfoQualifier         string `json:"security_info_qualifier"`          // ISA.3
	SecurityInfo                  string `json:"security_info"`                    // ISA.4
	SenderIDQualifier             string `json:"interchange_id_qualifier_sender"`  // ISA.5
	SenderID                      string `json:"interchange_sender_id"`            // ISA.6
	ReceiverIDQualifier           string `json:"interchange_id_qualifier_receiver"` // ISA.7
	ReceiverID                    string `json:"interchange_receiver_id"`          // ISA.8
	Date                          string `json:"interchange_date"`                 // ISA.9
	Time                          string `json:"interchange_time"`                 // ISA.10
	ControlStandardsID            string `json:"interchange_control_standards_id"` // ISA.11
	ControlVersionNumber          string `json:"interchange_control_version"`      // ISA.12
	ControlNumber                 string `json:"interchange_control_number"`       // ISA.13
	AcknowledgmentRequested       string `json:"acknowledgment_requested"`         // ISA.14
	UsageIndicator                string `json:"usage_indicator"`                  // ISA.15
}

// GS - Functional Group Header
type GS struct {
	FunctionalIdentifierCode string `json:"functional_identifier_code"` // GS.1
	ApplicationSenderCode    string `json:"application_sender_code"`    // GS.2
	ApplicationReceiverCode  string `json:"application_receiver_code"`  // GS.3
	Date                     string `json:"date"`                       // GS.4
	Time                     string `json:"time"`                       // GS.5
	GroupControlNumber       string `json:"group_control_number"`       // GS.6
	ResponsibleAgencyCode    string `json:"responsible_agency_code"`    // GS.7
	VersionReleaseIdentifier string `json:"version_release_identifier"` // GS.8
}

// ST - Transaction Set Header
type ST struct {
	IdentifierCode                    string `json:"transaction_set_identifier_code"`     // ST.1
	ControlNumber                     string `json:"transaction_set_control_number"`      // ST.2
	ImplementationConventionReference string `json:"implementation_convention_reference"` // ST.3
}

// BHT - Beginning of Hierarchical Transaction
type BHT struct {
	HierarchicalStructureCode string `json:"hierarchical_structure_code"` // BHT.1
	PurposeCode               string `json:"transaction_set_purpose_code"` // BHT.2
	ReferenceIdentification   string `json:"reference_identification"`    // BHT.3
	Date                      string `json:"date"`                        // BHT.4
	Time                      string `json:"time"`                        // BHT.5
	TransactionTypeCode       string `json:"transaction_type_code"`       // BHT.6
}

// HL - Hierarchical Level
type HL struct {
	ID        string `json:"hierarchical_id_number"`        // HL.1
	ParentID  string `json:"hierarchical_parent_id_number"` // HL.2
	LevelCode string `json:"hierarchical_level_code"`       // HL.3
	ChildCode string `json:"hierarchical_child_code"`       // HL.4
}

// NM1 - Individual or Organizational Name
type NM1 struct {
	EntityIdentifierCode       string `json:"entity_identifier_code"`       // NM1.1
	EntityTypeQualifier        string `json:"entity_type_qualifier"`        // NM1.2
	LastOrOrganizationName     string `json:"name_last_or_organization"`    // NM1.3
	FirstName                  string `json:"name_first"`                   // NM1.4
	MiddleName                 string `json:"name_middle"`                  // NM1.5
	NamePrefix                 string `json:"name_prefix"`                  // NM1.6
	NameSuffix                 string `json:"name_suffix"`                  // NM1.7
	IdentificationQualifier    string `json:"identification_code_qualifier"` // NM1.8
	IdentificationCode         string `json:"identification_code"`          // NM1.9
}

// N3 - Party Location
type N3 struct {
	AddressLine1 string `json:"address_line_1"` // N3.1
	AddressLine2 string `json:"address_line_2"` // N3.2
}

// N4 - Geographic Location
type N4 struct {
	City        string `json:"city"`         // N4.1
	StateCode   string `json:"state_code"`   // N4.2
	PostalCode  string `json:"postal_code"`  // N4.3
	CountryCode string `json:"country_code"` // N4.4
}

// REF - Reference Information
type REF struct {
	Qualifier      string `json:"reference_identification_qualifier"` // REF.1
	Identification string `json:"reference_identification"`           // REF.2
	Description    string `json:"description"`                        // REF.3
}

// DMG - Demographic Information
type DMG struct {
	DateFormatQualifier string `json:"date_time_period_format_qualifier"` // DMG.1
	DateTimePeriod      string `json:"date_time_period"`                  // DMG.2
	GenderCode          string `json:"gender_code"`                       // DMG.3
	MaritalStatusCode   string `json:"marital_status_code"`               // DMG.4
}

// DTP - Date or Time or Period
type DTP struct {
	Qualifier       string `json:"date_time_qualifier"`                // DTP.1
	FormatQualifier string `json:"date_time_period_format_qualifier"`  // DTP.2
	DateTimePeriod  string `json:"date_time_period"`                   // DTP.3
}

// CLM - Claim Information. Element 5 is a composite of the form
/// PlaceOfService:FacilityQualifier:FrequencyCode.
type CLM struct {
	SubmitterIdentifier       string `json:"claim_submitter_identifier"`         // CLM.1
	MonetaryAmount            string `json:"monetary_amount"`                    // CLM.2
	FrequencyTypeCode         string `json:"claim_frequency_type_code"`          // CLM.5-3
	NonInstitutionalClaimType string `json:"non_institutional_claim_type_code"`  // CLM.4
	FacilityCodeComposite     string `json:"claim_filing_indicator_code"`        // CLM.5
	PlaceOfServiceCode        string `json:"place_of_service_code"`              // CLM.5-1
	ResponseCode              string `json:"yes_no_condition_response_code"`     // CLM.6
	AcceptAssignmentCode      string `json:"provider_accept_assignment_code"`    // CLM.7
	ResponseCode2             string `json:"yes_no_condition_response_code_2"`   // CLM.8
	ReleaseOfInformationCode  string `json:"release_of_information_code"`        // CLM.9
	SignatureSourceCode       string `json:"patient_signature_source_code"`      // CLM.10
}

// ProcedureIdentifier is the composite medical procedure identifier carried
// in SV1.1 and SV3.1 (Qualifier:Code:Mod1:Mod2:Mod3:Mod4).
type ProcedureIdentifier struct {
	Qualifier string `json:"product_service_id_qualifier"`
	Code      string `json:"procedure_code"`
	Modifier1 string `json:"procedure_modifier_1"`
	Modifier2 string `json:"procedure_modifier_2"`
	Modifier3 string `json:"procedure_modifier_3"`
	Modifier4 string `json:"procedure_modifier_4"`
}

// SV1 - Professional Service
type SV1 struct {
	Procedure          ProcedureIdentifier `json:"composite_medical_procedure_identifier"` // SV1.1
	MonetaryAmount     string              `json:"monetary_amount"`                        // SV1.2
	UnitCode           string              `json:"unit_or_basis_for_measurement_code"`     // SV1.3
	UnitCount          string              `json:"service_unit_count"`                     // SV1.4
	PlaceOfServiceCode string              `json:"place_of_service_code"`                  // SV1.5-7 scan
	ServiceTypeCode    string              `json:"service_type_code"`                      // SV1.6
}

// SV2 - Institutional Service Line
type SV2 struct {
	RevenueCode    string `json:"revenue_code"`                       // SV2.1
	MonetaryAmount string `json:"monetary_amount"`                    // SV2.2
	UnitCode       string `json:"unit_or_basis_for_measurement_code"` // SV2.3
	UnitCount      string `json:"service_unit_count"`                 // SV2.4
}

// SV3 - Dental Service
type SV3 struct {
	Procedure          ProcedureIdentifier `json:"composite_medical_procedure_identifier"` // SV3.1
	MonetaryAmount     string              `json:"monetary_amount"`                        // SV3.2
	PlaceOfServiceCode string              `json:"place_of_service_code"`                  // SV3.3
	OralCavity         string              `json:"oral_cavity_designation"`                // SV3.4
	ProsthesisCode     string              `json:"prosthesis_crown_or_inlay_code"`         // SV3.5
	Quantity           string              `json:"quantity"`                               // SV3.6
}

// PER - Administrative Communications Contact
type PER struct {
	FunctionCode string `json:"contact_function_code"`              // PER.1
	Name         string `json:"name"`                               // PER.2
	Qualifier1   string `json:"communication_number_qualifier_1"`   // PER.3
	Number1      string `json:"communication_number_1"`             // PER.4
	Qualifier2   string `json:"communication_number_qualifier_2"`   // PER.5
	Number2      string `json:"communication_number_2"`             // PER.6
}

// SBR - Subscriber Information
type SBR struct {
	PayerResponsibilityCode string `json:"payer_responsibility_sequence_number_code"` // SBR.1
	RelationshipCode        string `json:"individual_relationship_code"`              // SBR.2
	ReferenceIdentification string `json:"reference_identification"`                  // SBR.3
	Name                    string `json:"name"`                                      // SBR.4
	InsuranceTypeCode       string `json:"insurance_type_code"`                       // SBR.5
	COBCode                 string `json:"coordination_of_benefits_code"`             // SBR.6
	ResponseCode            string `json:"yes_no_condition_response_code"`            // SBR.7
	EmploymentStatusCode    string `json:"employment_status_code"`                    // SBR.8
	FilingIndicatorCode     string `json:"claim_filing_indicator_code"`               // SBR.9
}

/// Diagnosis is one Qualifier:Code pair from an HI segment.
type Diagnosis struct {
	Qualifier string `json:"code_list_qualifier_code"`
	Code      string `json:"diagnosis_code"`
}

// PRV - Provider Information
type PRV struct {
	ProviderCode   string `json:"provider_code"`                      // PRV.1
	Qualifier      string `json:"reference_identification_qualifier"` // PRV.2
	Identification string `json:"reference_identification"`           // PRV.3
}

// LX - Service Line Number
type LX struct {
	AssignedNumber string `json:"assigned_number"` // LX.1
}

// Adjustment is one group/reason/amount/quantity tuple from a CAS segment.
type Adjustment struct {
	GroupCode      string `json:"claim_adjustment_group_code"`
	ReasonCode     string `json:"claim_adjustment_reason_code"`
	MonetaryAmount string `json:"monetary_amount"`
	Quantity       string `json:"quantity"`
}

// AMT - Monetary Amount Information
type AMT struct {
	QualifierCode  string `json:"amount_qualifier_code"` // AMT.1
	MonetaryAmount string `json:"monetary_amount"`       // AMT.2
}

// QTY - Quantity Information
type QTY struct {
	Qualifier string `json:"quantity_qualifier"` // QTY.1
	Quantity  string `json:"quantity"`           // QTY.2
}

// NTE - Note/Special Instruction
type NTE struct {
	ReferenceCode string `json:"note_reference_code"` // NTE.1
	Description   string `json:"description"`         // NTE.2
}

func elementAt(elements []string, i int) string {
	if i < len(elements) {
		return elements[i]
	}
	return ""
}

func decodeISA(elements []string) ISA {
	return ISA{
		AuthorizationInfoQualifier: elementAt(elements, 1),
		AuthorizationInfo:          elementAt(elements, 2),
		SecurityInfoQualifier:      elementAt(elements, 3),
		SecurityInfo:               elementAt(elements, 4),
		SenderIDQualifier:          elementAt(elements, 5),
		SenderID:                   elementAt(elements, 6),
		ReceiverIDQualifier:        elementAt(elements, 7),
		ReceiverID:                 elementAt(elements, 8),
		Date:                       elementAt(elements, 9),
		Time:                       elementAt(elements, 10),
		ControlStandardsID:         elementAt(elements, 11),
		ControlVersionNumber:       elementAt(elements, 12),
		ControlNumber:              elementAt(elements, 13),
		AcknowledgmentRequested:    elementAt(elements, 14),
		UsageIndicator:             elementAt(elements, 15),
	}
}

func decodeGS(elements []string) GS {
	return GS{
		FunctionalIdentifierCode: elementAt(elements, 1),
		ApplicationSenderCode:    elementAt(elements, 2),
		ApplicationReceiverCode:  elementAt(elements, 3),
		Date:                     elementAt(elements, 4),
		Time:                     elementAt(elements, 5),
		GroupControlNumber:       elementAt(elements, 6),
		ResponsibleAgencyCode:    elementAt(elements, 7),
		VersionReleaseIdentifier: elementAt(elements, 8),
	}
}

func decodeST(elements []string) ST {
	return ST{
		IdentifierCode:                    elementAt(elements, 1),
		ControlNumber:                     elementAt(elements, 2),
		ImplementationConventionReference: elementAt(elements, 3),
	}
}

func decodeBHT(elements []string) BHT {
	return BHT{
		HierarchicalStructureCode: elementAt(elements, 1),
		PurposeCode:               elementAt(elements, 2),
		ReferenceIdentification:   elementAt(elements, 3),
		Date:                      elementAt(elements, 4),
		Time:                      elementAt(elements, 5),
		TransactionTypeCode:       elementAt(elements, 6),
	}
}

func decodeHL(elements []string) HL {
	return HL{
		ID:        elementAt(elements, 1),
		ParentID:  elementAt(elements, 2),
		LevelCode: elementAt(elements, 3),
		ChildCode: elementAt(elements, 4),
	}
}

func decodeNM1(elements []string) NM1 {
	return NM1{
		EntityIdentifierCode:    elementAt(elements, 1),
		EntityTypeQualifier:     elementAt(elements, 2),
		LastOrOrganizationName:  elementAt(elements, 3),
		FirstName:               elementAt(elements, 4),
		MiddleName:              elementAt(elements, 5),
		NamePrefix:              elementAt(elements, 6),
		NameSuffix:              elementAt(elements, 7),
		IdentificationQualifier: elementAt(elements, 8),
		IdentificationCode:      elementAt(elements, 9),
	}
}

func decodeN3(elements []string) N3 {
	return N3{
		AddressLine1: elementAt(elements, 1),
		AddressLine2: elementAt(elements, 2),
	}
}

func decodeN4(elements []string) N4 {
	return N4{
		City:        elementAt(elements, 1),
		StateCode:   elementAt(elements, 2),
		PostalCode:  elementAt(elements, 3),
		CountryCode: elementAt(elements, 4),
	}
}

func decodeREF(elements []string) REF {
	return REF{
		Qualifier:      elementAt(elements, 1),
		Identification: elementAt(elements, 2),
		Description:    elementAt(elements, 3),
	}
}

func decodeDMG(elements []string) DMG {
	return DMG{
		DateFormatQualifier: elementAt(elements, 1),
		DateTimePeriod:      elementAt(elements, 2),
		GenderCode:          elementAt(elements, 3),
		MaritalStatusCode:   elementAt(elements, 4),
	}
}

func decodeDTP(elements []string) DTP {
	return DTP{
		Qualifier:       elementAt(elements, 1),
		FormatQualifier: elementAt(elements, 2),
		DateTimePeriod:  elementAt(elements, 3),
	}
}

// decodeCLM splits the CLM.5 facility composite: position 1 is the place of
// service, position 3 the claim frequency. Frequency defaults to "1".
func decodeCLM(elements []string) CLM {
	composite := elementAt(elements, 5)
	var parts []string
	if composite != "" {
		parts = strings.Split(composite, ":")
	}
	placeOfService := ""
	if len(parts) > 0 {
		placeOfService = parts[0]
	}
	frequency := "1"
	if len(parts) > 2 {
		frequency = parts[2]
	}
	return CLM{
		SubmitterIdentifier:       elementAt(elements, 1),
		MonetaryAmount:            elementAt(elements, 2),
		FrequencyTypeCode:         frequency,
		NonInstitutionalClaimType: elementAt(elements, 4),
		FacilityCodeComposite:     composite,
		PlaceOfServiceCode:        placeOfService,
		ResponseCode:              elementAt(elements, 6),
		AcceptAssignmentCode:      elementAt(elements, 7),
		ResponseCode2:             elementAt(elements, 8),
		ReleaseOfInformationCode:  elementAt(elements, 9),
		SignatureSourceCode:       elementAt(elements, 10),
	}
}

func decodeProcedure(composite string) ProcedureIdentifier {
	if composite == "" {
		return ProcedureIdentifier{}
	}
	if !strings.Contains(composite, ":") {
		return ProcedureIdentifier{Code: composite}
	}
	parts := strings.Split(composite, ":")
	return ProcedureIdentifier{
		Qualifier: partAt(parts, 0),
		Code:      partAt(parts, 1),
		Modifier1: partAt(parts, 2),
		Modifier2: partAt(parts, 3),
		Modifier3: partAt(parts, 4),
		Modifier4: partAt(parts, 5),
	}
}

func partAt(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// decodeSV1 scans elements 5, 6 and 7 for an all-digit place of service;
// transmitters disagree about which position carries it.
func decodeSV1(elements []string) SV1 {
	placeOfService := ""
	for _, i := range []int{5, 6, 7} {
		if v := elementAt(elements, i); v != "" && isDigits(v) {
			placeOfService = v
			break
		}
	}
	return SV1{
		Procedure:          decodeProcedure(elementAt(elements, 1)),
		MonetaryAmount:     elementAt(elements, 2),
		UnitCode:           elementAt(elements, 3),
		UnitCount:          elementAt(elements, 4),
		PlaceOfServiceCode: placeOfService,
		ServiceTypeCode:    elementAt(elements, 6),
	}
}

func decodeSV2(elements []string) SV2 {
	return SV2{
		RevenueCode:    elementAt(elements, 1),
		MonetaryAmount: elementAt(elements, 2),
		UnitCode:       elementAt(elements, 3),
		UnitCount:      elementAt(elements, 4),
	}
}

func decodeSV3(elements []string) SV3 {
	proc := ProcedureIdentifier{}
	if composite := elementAt(elements, 1); composite != "" {
		if strings.Contains(composite, ":") {
			parts := strings.Split(composite, ":")
			proc.Qualifier = partAt(parts, 0)
			proc.Code = partAt(parts, 1)
		} else {
			proc.Code = composite
		}
	}
	return SV3{
		Procedure:          proc,
		MonetaryAmount:     elementAt(elements, 2),
		PlaceOfServiceCode: elementAt(elements, 3),
		OralCavity:         elementAt(elements, 4),
		ProsthesisCode:     elementAt(elements, 5),
		Quantity:           elementAt(elements, 6),
	}
}

func decodePER(elements []string) PER {
	return PER{
		FunctionCode: elementAt(elements, 1),
		Name:         elementAt(elements, 2),
		Qualifier1:   elementAt(elements, 3),
		Number1:      elementAt(elements, 4),
		Qualifier2:   elementAt(elements, 5),
		Number2:      elementAt(elements, 6),
	}
}

func decodeSBR(elements []string) SBR {
	return SBR{
		PayerResponsibilityCode: elementAt(elements, 1),
		RelationshipCode:        elementAt(elements, 2),
		ReferenceIdentification: elementAt(elements, 3),
		Name:                    elementAt(elements, 4),
		InsuranceTypeCode:       elementAt(elements, 5),
		COBCode:                 elementAt(elements, 6),
		ResponseCode:            elementAt(elements, 7),
		EmploymentStatusCode:    elementAt(elements, 8),
		FilingIndicatorCode:     elementAt(elements, 9),
	}
}

// decodeHI keeps only elements carrying a Qualifier:Code composite.
func decodeHI(elements []string) []Diagnosis {
	var codes []Diagnosis
	for i := 1; i < len(elements); i++ {
		el := elements[i]
		if el == "" || !strings.Contains(el, ":") {
			continue
		}
		qualifier, code, _ := strings.Cut(el, ":")
		codes = append(codes, Diagnosis{Qualifier: qualifier, Code: code})
	}
	return codes
}

func decodePRV(elements []string) PRV {
	return PRV{
		ProviderCode:   elementAt(elements, 1),
		Qualifier:      elementAt(elements, 2),
		Identification: elementAt(elements, 3),
	}
}

func decodeLX(elements []string) LX {
	return LX{AssignedNumber: elementAt(elements, 1)}
}

// decodeCAS walks groups of four; a trailing partial group is dropped.
func decodeCAS(elements []string) []Adjustment {
	var adjustments []Adjustment
	for i := 1; i+2 < len(elements); i += 4 {
		adjustments = append(adjustments, Adjustment{
			GroupCode:      elementAt(elements, i),
			ReasonCode:     elementAt(elements, i+1),
			MonetaryAmount: elementAt(elements, i+2),
			Quantity:       elementAt(elements, i+3),
		})
	}
	return adjustments
}

func decodeAMT(elements []string) AMT {
	return AMT{
		QualifierCode:  elementAt(elements, 1),
		MonetaryAmount: elementAt(elements, 2),
	}
}

func decodeQTY(elements []string) QTY {
	return QTY{
		Qualifier: elementAt(elements, 1),
		Quantity:  elementAt(elements, 2),
	}
}

func decodeNTE(elements []string) NTE {
	return NTE{
		ReferenceCode: elementAt(elements, 1),
		Description:   elementAt(elements, 2),
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
