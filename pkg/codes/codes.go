// Package codes carries the static X12 837 code tables and the translation
// helpers used when projecting parsed claims into business records. All
// tables are read-only after package init.
package codes

// placeOfService maps CLM/SV1 place-of-service codes to business names.
var placeOfService = map[string]string{
	"11": "OFFICE",
	"12": "HOME",
	"21": "INPATIENT_HOSPITAL",
	"22": "OUTPATIENT_HOSPITAL",
	"23": "EMERGENCY_ROOM",
	"24": "AMBULATORY_SURGICAL_CENTER",
	"25": "BIRTHING_CENTER",
	"26": "MILITARY_TREATMENT_FACILITY",
	"31": "SKILLED_NURSING_FACILITY",
	"32": "NURSING_FACILITY",
	"33": "CUSTODIAL_CARE_FACILITY",
	"34": "HOSPICE",
	"41": "AMBULANCE_LAND",
	"42": "AMBULANCE_AIR_OR_WATER",
	"49": "INDEPENDENT_CLINIC",
	"50": "FEDERALLY_QUALIFIED_HEALTH_CENTER",
	"51": "INPATIENT_PSYCHIATRIC_FACILITY",
	"52": "PSYCHIATRIC_FACILITY_PARTIAL_HOSPITALIZATION",
	"53": "COMMUNITY_MENTAL_HEALTH_CENTER",
	"54": "INTERMEDIATE_CARE_FACILITY_MENTALLY_RETARDED",
	"55": "RESIDENTIAL_SUBSTANCE_ABUSE_TREATMENT_FACILITY",
	"56": "PSYCHIATRIC_RESIDENTIAL_TREATMENT_CENTER",
	"57": "NON_RESIDENTIAL_SUBSTANCE_ABUSE_TREATMENT_FACILITY",
	"60": "MASS_IMMUNIZATION_CENTER",
	"61": "COMPREHENSIVE_INPATIENT_REHABILITATION_FACILITY",
	"62": "COMPREHENSIVE_OUTPATIENT_REHABILITATION_FACILITY",
	"65": "END_STAGE_RENAL_DISEASE_TREATMENT_FACILITY",
	"71": "PUBLIC_HEALTH_CLINIC",
	"72": "RURAL_HEALTH_CLINIC",
	"81": "INDEPENDENT_LABORATORY",
	"99": "OTHER_PLACE_OF_SERVICE",
}

var frequencyDescriptions = map[string]string{
	"1": "Original",
	"6": "Corrected",
	"7": "Replacement",
	"8": "Void",
}

var diagnosisDescriptions = map[string]string{
	"E1165":  "Type 2 diabetes mellitus with hyperglycemia",
	"E119":   "Type 2 diabetes mellitus without complications",
	"I10":    "Essential (primary) hypertension",
	"Z00121": "Encounter for routine child health examination with abnormal findings",
	"Z0000":  "Encounter for general adult medical examination without abnormal findings",
	"M545":   "Low back pain",
	"J069":   "Acute upper respiratory infection, unspecified",
	"R50":    "Fever, unspecified",
	"K219":   "Gastro-esophageal reflux disease without esophagitis",
	"F329":   "Major depressive disorder, single episode, unspecified",
	"G43909": "Migraine, unspecified, not intractable, without status migrainosus",
	"M25551": "Pain in right hip",
	"M25552": "Pain in left hip",
	"N390":   "Urinary tract infection, site not specified",
	"R05":    "Cough",
	"R51":    "Headache",
	"R060":   "Dyspnea",
	"Z1231":  "Encounter for screening mammogram for malignant neoplasm of breast",

	"D500": "Iron deficiency anemia, unspecified",
	"D501": "Iron deficiency anemia secondary to blood loss (chronic)",
	"D509": "Iron deficiency anemia, unspecified",
	"D510": "Vitamin B12 deficiency anemia due to intrinsic factor deficiency",
	"D519": "Vitamin B12 deficiency anemia, unspecified",
	"D520": "Dietary folate deficiency anemia",
	"D529": "Folate deficiency anemia, unspecified",

	"C3411": "Malignant neoplasm of upper lobe, right bronchus or lung",
	"C3412": "Malignant neoplasm of upper lobe, left bronchus or lung",
	"C3431": "Malignant neoplasm of lower lobe, right bronchus or lung",
	"C3432": "Malignant neoplasm of lower lobe, left bronchus or lung",
	"C500":  "Malignant neoplasm of nipple and areola",
	"C5011": "Malignant neoplasm of central portion of right female breast",
	"C5012": "Malignant neoplasm of central portion of left female breast",

	"E10":   "Type 1 diabetes mellitus",
	"E1010": "Type 1 diabetes mellitus with ketoacidosis without coma",
	"E1011": "Type 1 diabetes mellitus with ketoacidosis with coma",
	"E1021": "Type 1 diabetes mellitus with diabetic nephropathy",
	"E1022": "Type 1 diabetes mellitus with diabetic chronic kidney disease",

	"F4321": "Adjustment disorder with mixed anxiety and depressed mood",
	"F411":  "Generalized anxiety disorder",

	"M7960":  "Pain in limb, unspecified",
	"M25561": "Pain in right knee",
	"M25562": "Pain in left knee",
}

var procedureDescriptions = map[string]string{
	"99213": "Office/outpatient visit, established patient, low complexity",
	"99214": "Office/outpatient visit, established patient, moderate complexity",
	"99215": "Office/outpatient visit, established patient, high complexity",
	"99203": "Office/outpatient visit, new patient, low complexity",
	"99204": "Office or other outpatient visit for the evaluation and management of a new patient, which requires a medically appropriate history and/or examination and moderate level of medical decision making. When using total time on the date of the encounter for code selection, 45 minutes must be met or exceeded.",
	"99205": "Office/outpatient visit, new patient, high complexity",
	"99212": "Office/outpatient visit, established patient, straightforward",
	"99202": "Office/outpatient visit, new patient, straightforward",
	"99211": "Office/outpatient visit, established patient, minimal",
	"99201": "Office/outpatient visit, new patient, minimal",

	"99395": "Periodic comprehensive preventive medicine reevaluation, 18-39 years",
	"99396": "Periodic comprehensive preventive medicine reevaluation, 40-64 years",
	"99397": "Periodic comprehensive preventive medicine reevaluation, 65+ years",
	"99385": "Initial comprehensive preventive medicine evaluation, 18-39 years",
	"99386": "Initial comprehensive preventive medicine evaluation, 40-64 years",
	"99387": "Initial comprehensive preventive medicine evaluation, 65+ years",

	"80053": "Comprehensive metabolic panel",
	"85025": "Blood count; complete (CBC), automated",
	"80061": "Lipid panel",
	"83036": "Hemoglobin; glycosylated (A1C)",
	"84443": "Thyroid stimulating hormone (TSH)",
	"87086": "Culture, bacterial; quantitative colony count, urine",

	"71020": "Radiologic examination, chest, 2 views, frontal and lateral",
	"73060": "Radiologic examination; knee, 1 or 2 views",
	"73030": "Radiologic examination, shoulder; complete, minimum of 2 views",
	"77067": "Screening mammography, bilateral (2-view study of each breast)",

	"96365": "Intravenous infusion, for therapy, prophylaxis, or diagnosis (specify substance or drug); initial, up to 1 hour",
	"96366": "Intravenous infusion, for therapy, prophylaxis, or diagnosis (specify substance or drug); each additional hour (List separately in addition to code for primary procedure)",
	"96367": "Intravenous infusion, for therapy, prophylaxis, or diagnosis (specify substance or drug); additional sequential infusion of a new drug/substance, up to 1 hour (List separately in addition to code for primary procedure)",
	"96368": "Intravenous infusion, for therapy, prophylaxis, or diagnosis (specify substance or drug); concurrent infusion (List separately in addition to code for primary procedure)",
	"96372": "Therapeutic, prophylactic, or diagnostic injection (specify substance or drug); subcutaneous or intramuscular",
	"96373": "Therapeutic, prophylactic, or diagnostic injection (specify substance or drug); intra-arterial",
	"96374": "Therapeutic, prophylactic, or diagnostic injection (specify substance or drug); intravenous push, single or initial substance/drug",
	"96375": "Therapeutic, prophylactic, or diagnostic injection (specify substance or drug); each additional sequential intravenous push of a new substance/drug (List separately in addition to code for primary procedure)",
	"96376": "Therapeutic, prophylactic, or diagnostic injection (specify substance or drug); each additional sequential intravenous push of the same substance/drug provided in a facility (List separately in addition to code for primary procedure)",
	"96377": "Application of on-body injector (includes cannula insertion) for timed subcutaneous injection",

	"12001": "Simple repair of superficial wounds of scalp, neck, axillae, external genitalia, trunk and/or extremities (including hands and feet); 2.5 cm or less",
	"11042": "Debridement, subcutaneous tissue (includes epidermis and dermis, if performed); first 20 sq cm or less",
	"90471": "Immunization administration (includes percutaneous, intradermal, subcutaneous, or intramuscular injections); 1 vaccine (single or combination vaccine/toxoid)",
	"90715": "Tetanus, diphtheria toxoids and acellular pertussis vaccine (Tdap), when administered to individuals 7 years or older, for intramuscular use",

	"96413": "Chemotherapy administration, intravenous infusion technique; up to 1 hour, single or initial substance/drug",
	"96415": "Chemotherapy administration, intravenous infusion technique; each additional hour (List separately in addition to code for primary procedure)",
	"96417": "Chemotherapy administration, intravenous infusion technique; each additional sequential infusion (different substance/drug), up to 1 hour (List separately in addition to code for primary procedure)",
}

var providerTaxonomy = map[string]string{
	"207Q00000X": "Family Medicine",
	"208D00000X": "General Practice",
	"207R00000X": "Internal Medicine",
	"207T00000X": "Neurological Surgery",
	"208600000X": "Surgery",
	"207X00000X": "Orthopaedic Surgery",
	"207Y00000X": "Otolaryngology",
	"208800000X": "Urology",
	"207W00000X": "Ophthalmology",
	"207N00000X": "Dermatology",
	"207P00000X": "Emergency Medicine",
	"207V00000X": "Obstetrics & Gynecology",
	"208000000X": "Pediatrics",
	"207RC0000X": "Cardiovascular Disease",
	"207RE0101X": "Endocrinology, Diabetes & Metabolism",
	"207RG0100X": "Gastroenterology",
	"207RI0200X": "Infectious Disease",
	"207RN0300X": "Nephrology",
	"207RP1001X": "Pulmonary Disease",
	"207RR0500X": "Rheumatology",
}

var entityIdentifiers = map[string]string{
	"40": "Receiver",
	"41": "Submitter",
	"85": "Billing Provider",
	"IL": "Insured or Subscriber",
	"PR": "Payer",
	"DN": "Referring Provider",
	"82": "Rendering Provider",
	"77": "Service Facility Location",
	"DQ": "Supervising Provider",
	"PW": "Pickup Address",
	"71": "Attending Provider",
	"72": "Operating Provider",
	"ZZ": "Mutually Defined",
}

var referenceQualifiers = map[string]string{
	"0B":  "State License Number",
	"1G":  "Provider UPIN Number",
	"G2":  "Provider Commercial Number",
	"LU":  "Location Number",
	"SY":  "Social Security Number",
	"TJ":  "Federal Tax Identification Number",
	"EI":  "Employer Identification Number",
	"HPI": "Health Care Provider Taxonomy",
	"XX":  "Health Care Financing Administration National Provider Identifier",
	"ZZ":  "Mutually Defined",
}

var dateQualifierDescriptions = map[string]string{
	"472": "Service Date",
	"454": "Initial Treatment Date",
	"304": "Latest Visit or Consultation",
	"453": "Acute Manifestation Date",
	"439": "Accident Date",
	"484": "Last Seen Date",
	"455": "Last X-ray Date",
	"471": "Prescription Date",
	"314": "Disability Begin Date",
	"315": "Disability End Date",
	"150": "Service Period Start",
	"151": "Service Period End",
}

// PlaceOfServiceType resolves a place-of-service code to its business name.
// Unknown codes resolve to OFFICE.
func PlaceOfServiceType(code string) string {
	if name, ok := placeOfService[code]; ok {
		return name
	}
	return "OFFICE"
}

// FrequencyDescription resolves a claim frequency code; unknown codes
// resolve to an empty description.
func FrequencyDescription(code string) string {
	return frequencyDescriptions[code]
}

// DiagnosisDescription resolves an ICD-10 code to its description, or ""
// when the code is not in the table. The code itself is never altered.
func DiagnosisDescription(code string) string {
	return diagnosisDescriptions[code]
}

// ProcedureDescription resolves a CPT/HCPCS code to its description, or "".
func ProcedureDescription(code string) string {
	return procedureDescriptions[code]
}

// TaxonomyDescription resolves a provider taxonomy code to its specialty, or "".
func TaxonomyDescription(code string) string {
	return providerTaxonomy[code]
}

// EntityIdentifierName resolves an NM1 entity identifier code; unknown
// codes pass through unchanged.
func EntityIdentifierName(code string) string {
	if name, ok := entityIdentifiers[code]; ok {
		return name
	}
	return code
}

// ReferenceQualifierName resolves a REF qualifier; unknown qualifiers pass
// through unchanged.
func ReferenceQualifierName(code string) string {
	if name, ok := referenceQualifiers[code]; ok {
		return name
	}
	return code
}

// DateQualifierDescription resolves a DTP qualifier to its description, or "".
func DateQualifierDescription(code string) string {
	return dateQualifierDescriptions[code]
}

// IdentificationType maps an NM1 identification qualifier to the business
// identification type; unknown qualifiers pass through unchanged.
func IdentificationType(qualifier string) string {
	switch qualifier {
	case "XX":
		return "NPI"
	case "EI":
		return "ETIN"
	case "MI":
		return "MEMBER_ID"
	case "PI":
		return "PAYOR_ID"
	case "SY":
		return "SSN"
	}
	return qualifier
}

// CommunicationType maps a PER communication qualifier to PHONE or EMAIL.
func CommunicationType(qualifier string) string {
	if qualifier == "EM" {
		return "EMAIL"
	}
	return "PHONE"
}

// PayerSequence maps an SBR responsibility code to the business sequence
// name; unknown codes resolve to PRIMARY.
func PayerSequence(code string) string {
	switch code {
	case "P":
		return "PRIMARY"
	case "S":
		return "SECONDARY"
	case "T":
		return "TERTIARY"
	case "A":
		return "WORKERS_COMPENSATION"
	case "B":
		return "AUTO_NO_FAULT"
	case "C":
		return "AUTO_LIABILITY"
	}
	return "PRIMARY"
}

// RelationshipType maps an SBR relationship code; unknown codes resolve
// to SELF.
func RelationshipType(code string) string {
	switch code {
	case "18":
		return "SELF"
	case "01":
		return "SPOUSE"
	case "19":
		return "CHILD"
	case "20":
		return "EMPLOYEE"
	case "21":
		return "UNKNOWN"
	case "39":
		return "ORGAN_DONOR"
	case "40":
		return "CADAVER_DONOR"
	case "53":
		return "LIFE_PARTNER"
	case "G8":
		return "OTHER_RELATIONSHIP"
	}
	return "SELF"
}

// InsuranceType maps an SBR claim filing indicator; unknown codes resolve
// to COMMERCIAL.
func InsuranceType(code string) string {
	switch code {
	case "CI", "12", "13":
		return "COMMERCIAL"
	case "MA":
		return "MEDICARE"
	case "MC":
		return "MEDICAID"
	}
	return "COMMERCIAL"
}

// ReferenceType maps a REF qualifier to the business reference type;
// unknown qualifiers pass through unchanged.
func ReferenceType(qualifier string) string {
	switch qualifier {
	case "0B":
		return "STATE_LICENSE_NUMBER"
	case "1G":
		return "UPIN"
	case "G2":
		return "PROVIDER_COMMERCIAL_NUMBER"
	}
	return qualifier
}
