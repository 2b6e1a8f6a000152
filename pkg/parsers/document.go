package parsers

// Address is the merged N3/N4 party location for any named entity.
type Address struct {
	Line1       string `json:"address_line_1"`
	Line2       string `json:"address_line_2"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
}

// Entity is a named party (submitter, receiver, billing provider, pay-to
// provider or payer) with whatever location, contact and reference segments
// followed its NM1.
type Entity struct {
	Name     NM1      `json:"name"`
	Address  *Address `json:"address,omitempty"`
	Contact  *PER     `json:"contact_info,omitempty"`
	TaxID    string   `json:"tax_identification_number,omitempty"`
	Taxonomy string   `json:"provider_taxonomy,omitempty"`
}

// ProviderRole values for claim-scoped providers.
const (
	RoleReferring       = "REFERRING"
	RoleRendering       = "RENDERING"
	RoleServiceFacility = "SERVICE_FACILITY"
	RoleSupervising     = "SUPERVISING"
	RoleBilling         = "BILLING"
)

// ClaimProvider is a provider attached to a claim (loop 2310) or to a
// service line.
type ClaimProvider struct {
	Role       string   `json:"provider_role"`
	Name       NM1      `json:"provider_data"`
	Taxonomy   string   `json:"provider_taxonomy,omitempty"`
	Address    *Address `json:"address,omitempty"`
	References []REF    `json:"references,omitempty"`
}

// SubscriberInfo combines the subscriber's NM1 identity with the SBR
// coverage fields and any demographics, location and references that
// followed.
type SubscriberInfo struct {
	Name         NM1      `json:"name"`
	Coverage     SBR      `json:"coverage"`
	Demographics *DMG     `json:"demographics,omitempty"`
	Address      *Address `json:"address,omitempty"`
	References   []REF    `json:"references,omitempty"`
}

// SecondaryPayer holds a non-primary SBR and the NM1 segments that target it.
type SecondaryPayer struct {
	Sequence   string         `json:"payer_sequence"`
	Subscriber SubscriberInfo `json:"subscriber_info"`
	Payer      *Entity        `json:"payer_info,omitempty"`
}

// Patient is the optional distinct patient record (hierarchy level 23).
type Patient struct {
	Level HL   `json:"hierarchical_level"`
	Name  *NM1 `json:"patient_data,omitempty"`
}

// ServiceLine is one loop 2400 service line.
type ServiceLine struct {
	LineNumber    string           `json:"line_number"`
	Service       SV1              `json:"service_info"`
	Institutional *SV2             `json:"institutional_service_info,omitempty"`
	Dental        *SV3             `json:"dental_service_info,omitempty"`
	Dates         []DTP            `json:"dates"`
	References    []REF            `json:"references"`
	Amounts       []AMT            `json:"amounts"`
	Quantities    []QTY            `json:"quantities"`
	Adjustments   []Adjustment     `json:"adjustments"`
	Notes         []NTE            `json:"notes"`
	Providers     []*ClaimProvider `json:"providers"`
}

// Claim is one loop 2300 claim with everything attached below it.
type Claim struct {
	Info            CLM              `json:"claim_info"`
	Dates           []DTP            `json:"dates"`
	DiagnosisGroups [][]Diagnosis    `json:"diagnosis_codes"`
	ServiceLines    []*ServiceLine   `json:"service_lines"`
	Providers       []*ClaimProvider `json:"providers"`
	References      []REF            `json:"references"`
	Amounts         []AMT            `json:"amounts"`
	Quantities      []QTY            `json:"quantities,omitempty"`
	Notes           []NTE            `json:"notes"`
	Adjustments     []Adjustment     `json:"adjustments"`
}

// Subscriber is one hierarchy level 22 loop under a billing provider.
type Subscriber struct {
	Level           HL                `json:"hierarchical_level"`
	Info            SubscriberInfo    `json:"subscriber_info"`
	Payer           *Entity           `json:"payer_info,omitempty"`
	SecondaryPayers []*SecondaryPayer `json:"secondary_payers"`
	Patient         *Patient          `json:"patient_info,omitempty"`
	Dates           []DTP             `json:"dates,omitempty"`
	Claims          []*Claim          `json:"claims"`
}

// BillingProvider is one hierarchy level 20 loop.
type BillingProvider struct {
	Level       HL            `json:"hierarchical_level"`
	Provider    Entity        `json:"provider_info"`
	PayTo       *NM1          `json:"pay_to_provider,omitempty"`
	Subscribers []*Subscriber `json:"subscribers"`
}

// TransactionSet is one ST..SE envelope.
type TransactionSet struct {
	Header           ST                 `json:"transaction_set_header"`
	Beginning        BHT                `json:"beginning_hierarchical_transaction"`
	Submitter        *Entity            `json:"submitter,omitempty"`
	Receiver         *Entity            `json:"receiver,omitempty"`
	BillingProviders []*BillingProvider `json:"billing_providers"`
}

// Document is a fully assembled 837 interchange.
type Document struct {
	SourcePath      string            `json:"source_path,omitempty"`
	Interchange     ISA               `json:"interchange_header"`
	FunctionalGroup GS                `json:"functional_group"`
	TransactionSets []*TransactionSet `json:"transaction_sets"`
	SegmentCount    int               `json:"-"`
}

// Diagnoses flattens the claim's HI groups in file order.
func (c *Claim) Diagnoses() []Diagnosis {
	var out []Diagnosis
	for _, group := range c.DiagnosisGroups {
		out = append(out, group...)
	}
	return out
}

// ProviderByRole returns the first claim provider with the given role.
func (c *Claim) ProviderByRole(role string) *ClaimProvider {
	for _, p := range c.Providers {
		if p.Role == role {
			return p
		}
	}
	return nil
}
