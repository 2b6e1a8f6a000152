// Package claims projects a parsed 837 document into canonical business
// claims: code values translated to business names, dates in ISO form, one
// claim object per CLM segment.
package claims

// PostalAddress is a business-form mailing address.
type PostalAddress struct {
	Line      string `json:"line"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city"`
	StateCode string `json:"stateCode"`
	ZipCode   string `json:"zipCode"`
}

// CodedValue is a translated code with its business description.
type CodedValue struct {
	SubType string `json:"subType"`
	Code    string `json:"code"`
	Desc    string `json:"desc"`
}

// FacilityCode is the claim's place-of-service code slot.
type FacilityCode struct {
	SubType string `json:"subType"`
	Code    string `json:"code"`
}

// DiagnosisInfo is one translated diagnosis code.
type DiagnosisInfo struct {
	SubType       string `json:"subType"`
	Code          string `json:"code"`
	Desc          string `json:"desc"`
	FormattedCode string `json:"formattedCode"`
}

// ContactNumber is one communication entry on a contact.
type ContactNumber struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// Contact carries an administrative communications contact.
type Contact struct {
	FunctionCode   string          `json:"functionCode"`
	Name           string          `json:"name"`
	ContactNumbers []ContactNumber `json:"contactNumbers"`
}

// AdditionalID is a secondary identification on a provider.
type AdditionalID struct {
	QualifierCode  string `json:"qualifierCode"`
	Type           string `json:"type"`
	Identification string `json:"identification"`
}

// Party is any identified participant: submitter, receiver, billing
// provider, payer, subscriber person or claim-level provider.
type Party struct {
	EntityRole         string         `json:"entityRole"`
	EntityType         string         `json:"entityType"`
	IdentificationType string         `json:"identificationType"`
	Identifier         string         `json:"identifier"`
	LastNameOrOrgName  string         `json:"lastNameOrOrgName"`
	FirstName          string         `json:"firstName,omitempty"`
	MiddleName         string         `json:"middleName,omitempty"`
	BirthDate          string         `json:"birthDate,omitempty"`
	Gender             string         `json:"gender,omitempty"`
	TaxID              string         `json:"taxId,omitempty"`
	Address            *PostalAddress `json:"address,omitempty"`
	Contacts           []Contact      `json:"contacts,omitempty"`
	ProviderTaxonomy   *CodedValue    `json:"providerTaxonomy,omitempty"`
	AdditionalIDs      []AdditionalID `json:"additionalIds,omitempty"`
}

// FileInfo describes the originating file class.
type FileInfo struct {
	FileType string `json:"fileType"`
}

// TransactionInfo is the transaction-set envelope shared by every claim
// of one ST loop.
type TransactionInfo struct {
	ID                                string   `json:"id"`
	ControlNumber                     string   `json:"controlNumber"`
	TransactionType                   string   `json:"transactionType"`
	HierarchicalStructureCode         string   `json:"hierarchicalStructureCode"`
	PurposeCode                       string   `json:"purposeCode"`
	OriginatorApplicationTransactionID string  `json:"originatorApplicationTransactionId"`
	CreationDate                      string   `json:"creationDate"`
	CreationTime                      string   `json:"creationTime"`
	ClaimOrEncounterIdentifierType    string   `json:"claimOrEncounterIdentifierType"`
	TransactionSetIdentifierCode      string   `json:"transactionSetIdentifierCode"`
	ImplementationConventionReference string   `json:"implementationConventionReference"`
	FileInfo                          FileInfo `json:"fileInfo"`
	Sender                            *Party   `json:"sender,omitempty"`
	Receiver                          *Party   `json:"receiver,omitempty"`
	CreationDateTime                  string   `json:"creationDateTime"`
}

// CoverageInfo is the subscriber's coverage position on one claim.
type CoverageInfo struct {
	PayerResponsibilitySequence string `json:"payerResponsibilitySequence"`
	RelationshipType            string `json:"relationshipType"`
	ClaimFilingIndicatorCode    string `json:"claimFilingIndicatorCode"`
	InsurancePlanType           string `json:"insurancePlanType"`
	Person                      Party  `json:"person"`
}

// ServiceLine is one priced service on a claim.
type ServiceLine struct {
	SourceLineID    string          `json:"sourceLineId"`
	ChargeAmount    float64         `json:"chargeAmount"`
	ServiceDateFrom string          `json:"serviceDateFrom"`
	ServiceDateTo   string          `json:"serviceDateTo,omitempty"`
	UnitType        string          `json:"unitType"`
	UnitCount       int             `json:"unitCount"`
	Procedure       CodedValue      `json:"procedure"`
	DiagPointers    []int           `json:"diagPointers"`
	Diags           []DiagnosisInfo `json:"diags"`
}

// CanonicalClaim is the denormalized business claim, one per CLM segment.
type CanonicalClaim struct {
	ID                               string          `json:"id"`
	ObjectType                       string          `json:"objectType"`
	PatientControlNumber             string          `json:"patientControlNumber"`
	ChargeAmount                     float64         `json:"chargeAmount"`
	FacilityCode                     FacilityCode    `json:"facilityCode"`
	PlaceOfServiceType               string          `json:"placeOfServiceType"`
	FrequencyCode                    CodedValue      `json:"frequencyCode"`
	ServiceDateFrom                  string          `json:"serviceDateFrom"`
	ServiceDateTo                    string          `json:"serviceDateTo"`
	Subscriber                       CoverageInfo    `json:"subscriber"`
	Payer                            *Party          `json:"payer,omitempty"`
	ProviderSignatureIndicator       string          `json:"providerSignatureIndicator"`
	AssignmentParticipationCode      string          `json:"assignmentParticipationCode"`
	AssignmentCertificationIndicator string          `json:"assignmentCertificationIndicator"`
	ReleaseOfInformationCode         string          `json:"releaseOfInformationCode"`
	OriginalReferenceNumber          string          `json:"originalReferenceNumber"`
	BillingProvider                  *Party          `json:"billingProvider,omitempty"`
	Providers                        []*Party        `json:"providers"`
	Diags                            []DiagnosisInfo `json:"diags"`
	ServiceLines                     []*ServiceLine  `json:"serviceLines"`
	Transaction                      TransactionInfo `json:"transaction"`
}
