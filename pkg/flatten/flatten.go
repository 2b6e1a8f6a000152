// Package flatten maps canonical claims onto the three fixed-schema
// relational outputs: one claim header row per claim, one detail row per
// service line and one deduplicated company row per
// sender/receiver/billing-provider identity.
package flatten

import (
	"strconv"

	"github.com/oarkflow/edi/pkg/claims"
	"github.com/oarkflow/edi/pkg/utils"
)

// RunInfo carries run-scoped provenance stamped onto every claim row.
// Injecting it keeps row building itself free of clock reads.
type RunInfo struct {
	ReceiveDate string
}

// Flattener accumulates rows across files. Claim and detail identifiers
// are global 1-based counters in emission order; companies deduplicate on
// the sender-receiver-billing key.
type Flattener struct {
	run         RunInfo
	claimID     int
	detailID    int
	companyID   int
	companyKeys map[string]bool

	claimRows   []utils.Record
	detailRows  []utils.Record
	companyRows []utils.Record
}

func NewFlattener(run RunInfo) *Flattener {
	return &Flattener{run: run, companyKeys: make(map[string]bool)}
}

// Add flattens one canonical claim into its header, detail and (when first
// seen) company rows.
func (f *Flattener) Add(claim *claims.CanonicalClaim) {
	f.claimID++
	f.claimRows = append(f.claimRows, f.claimRow(claim))
	for _, line := range claim.ServiceLines {
		f.detailID++
		f.detailRows = append(f.detailRows, f.detailRow(claim, line))
	}
	f.addCompany(claim)
}

// AddAll flattens claims in order.
func (f *Flattener) AddAll(list []*claims.CanonicalClaim) {
	for _, claim := range list {
		f.Add(claim)
	}
}

func (f *Flattener) ClaimRows() []utils.Record   { return f.claimRows }
func (f *Flattener) DetailRows() []utils.Record  { return f.detailRows }
func (f *Flattener) CompanyRows() []utils.Record { return f.companyRows }

// emptyRow seeds every column with nil so each output row always carries
// the full schema.
func emptyRow(columns []string) utils.Record {
	row := make(utils.Record, len(columns))
	for _, col := range columns {
		row[col] = nil
	}
	return row
}

func partyOrEmpty(p *claims.Party) claims.Party {
	if p == nil {
		return claims.Party{}
	}
	return *p
}

func addressOrEmpty(a *claims.PostalAddress) claims.PostalAddress {
	if a == nil {
		return claims.PostalAddress{}
	}
	return *a
}

func npiOf(p claims.Party) string {
	if p.IdentificationType == "NPI" {
		return p.Identifier
	}
	return ""
}

func contactName(p claims.Party) string {
	if len(p.Contacts) == 0 {
		return ""
	}
	return p.Contacts[0].Name
}

func contactNumber(p claims.Party) string {
	if len(p.Contacts) == 0 || len(p.Contacts[0].ContactNumbers) == 0 {
		return ""
	}
	return p.Contacts[0].ContactNumbers[0].Number
}

func additionalID(p claims.Party, index int) (string, string) {
	if index >= len(p.AdditionalIDs) {
		return "", ""
	}
	return p.AdditionalIDs[index].QualifierCode, p.AdditionalIDs[index].Identification
}

func taxonomyCode(p claims.Party) string {
	if p.ProviderTaxonomy == nil {
		return ""
	}
	return p.ProviderTaxonomy.Code
}

func (f *Flattener) claimRow(claim *claims.CanonicalClaim) utils.Record {
	tx := claim.Transaction
	sender := partyOrEmpty(tx.Sender)
	receiver := partyOrEmpty(tx.Receiver)
	billing := partyOrEmpty(claim.BillingProvider)
	billingAddr := addressOrEmpty(billing.Address)
	payer := partyOrEmpty(claim.Payer)
	payerAddr := addressOrEmpty(payer.Address)
	person := claim.Subscriber.Person
	personAddr := addressOrEmpty(person.Address)

	var referring, rendering, facility claims.Party
	for _, provider := range claim.Providers {
		switch provider.EntityRole {
		case "REFERRING":
			referring = *provider
		case "RENDERING":
			rendering = *provider
		case "SERVICE_FACILITY":
			facility = *provider
		}
	}
	facilityAddr := addressOrEmpty(facility.Address)

	row := emptyRow(ClaimColumns)
	row["ID"] = f.claimID
	row["Filename"] = tx.FileInfo.FileType + "-" + strconv.Itoa(f.claimID) + ".d"
	row["Version"] = tx.ImplementationConventionReference
	row["TradingPartnerIDType"] = receiver.IdentificationType
	row["TradingPartnerID"] = receiver.Identifier
	row["TransactionDate"] = tx.CreationDate
	row["TransactionTime"] = tx.CreationTime
	row["ReceiveDate"] = f.run.ReceiveDate
	row["SubmitterName"] = sender.LastNameOrOrgName
	row["SubmitterID"] = sender.Identifier
	row["SubmitterContact"] = contactName(sender)
	row["SubmitterTel"] = contactNumber(sender)
	row["ReceiverName"] = receiver.LastNameOrOrgName
	row["ReceiverID"] = receiver.Identifier
	row["TransactionType"] = tx.TransactionType
	row["OrigAppTransactionID"] = tx.OriginatorApplicationTransactionID
	row["FedTaxIDQual"] = "EI"
	row["FedTaxID"] = billing.TaxID
	row["BillProvIDType"] = billing.IdentificationType
	row["BillProvID"] = billing.Identifier
	row["BillProvNPI"] = npiOf(billing)
	row["BillProvLast"] = billing.LastNameOrOrgName
	row["BillProvFirst"] = billing.FirstName
	row["BillProvMiddle"] = billing.MiddleName
	row["BillProvAddress"] = billingAddr.Line
	row["BillProvAddress2"] = billingAddr.Line2
	row["BillProvCity"] = billingAddr.City
	row["BillProvState"] = billingAddr.StateCode
	row["BillProvZip"] = billingAddr.ZipCode

	row["SubscriberLast"] = person.LastNameOrOrgName
	row["SubscriberFirst"] = person.FirstName
	row["SubscriberIDType"] = person.IdentificationType
	row["SubscriberID"] = person.Identifier
	row["SubscriberAddress"] = personAddr.Line
	row["SubscriberCity"] = personAddr.City
	row["SubscriberState"] = personAddr.StateCode
	row["SubscriberZip"] = personAddr.ZipCode
	row["SubscriberDOB"] = person.BirthDate
	row["SubscriberSex"] = person.Gender
	row["SubscriberMemberID"] = person.Identifier

	row["PayerName"] = payer.LastNameOrOrgName
	row["PayerIDType"] = payer.IdentificationType
	row["PayerID"] = payer.Identifier
	row["PayerAddress"] = payerAddr.Line
	row["PayerCity"] = payerAddr.City
	row["PayerState"] = payerAddr.StateCode
	row["PayerZip"] = payerAddr.ZipCode
	row["PayerResponsibility"] = claim.Subscriber.PayerResponsibilitySequence
	row["InsuranceType"] = claim.Subscriber.InsurancePlanType
	row["FilingIndicator"] = claim.Subscriber.ClaimFilingIndicatorCode

	row["RendProvIDType"] = rendering.IdentificationType
	row["RendProvID"] = rendering.Identifier
	row["RendProvNPI"] = npiOf(rendering)
	row["RendProvLast"] = rendering.LastNameOrOrgName
	row["RendProvFirst"] = rendering.FirstName
	row["RendProvMiddle"] = rendering.MiddleName
	row["RendProvSpecialty"] = taxonomyCode(rendering)
	qual, id := additionalID(rendering, 0)
	row["RendProvOtherIDQual1"] = qual
	row["RendProvOtherID1"] = id

	row["FacilityType"] = facility.EntityType
	row["FacilityIDType"] = facility.IdentificationType
	row["FacilityID"] = facility.Identifier
	row["FacilityNPI"] = npiOf(facility)
	qual, id = additionalID(facility, 0)
	row["FacilityOtherIDQual1"] = qual
	row["FacilityOtherID1"] = id
	qual, id = additionalID(facility, 1)
	row["FacilityOtherIDQual2"] = qual
	row["FacilityOtherID2"] = id
	row["FacilityName"] = facility.LastNameOrOrgName
	row["FacilityAddress"] = facilityAddr.Line
	row["FacilityAddress2"] = facilityAddr.Line2
	row["FacilityCity"] = facilityAddr.City
	row["FacilityState"] = facilityAddr.StateCode
	row["FacilityZip"] = facilityAddr.ZipCode

	row["RefProvLast"] = referring.LastNameOrOrgName
	row["RefProvFirst"] = referring.FirstName
	row["RefProvMiddle"] = referring.MiddleName
	row["RefProvIDType"] = referring.IdentificationType
	row["RefProvID"] = referring.Identifier
	row["RefProvNPI"] = npiOf(referring)

	row["ClaimNo"] = claim.PatientControlNumber
	row["Amount"] = claim.ChargeAmount
	row["PlaceOfService"] = claim.FacilityCode.Code
	row["ClaimFrequency"] = claim.FrequencyCode.Code
	row["ProviderSignature"] = claim.ProviderSignatureIndicator
	row["ProviderAcceptsAssignment"] = claim.AssignmentParticipationCode
	row["BenefitAssignment"] = claim.AssignmentCertificationIndicator
	row["InfoReleaseCode"] = claim.ReleaseOfInformationCode
	row["ServiceDateFrom"] = claim.ServiceDateFrom
	row["ServiceDateTo"] = claim.ServiceDateTo

	diagColumns := []string{"PrincipalDiagnosis", "Diag2", "Diag3", "Diag4", "Diag5", "Diag6", "Diag7", "Diag8", "Diag9", "Diag10"}
	for i, col := range diagColumns {
		if i < len(claim.Diags) {
			row[col] = claim.Diags[i].Code
		} else {
			row[col] = ""
		}
	}
	return row
}

func (f *Flattener) detailRow(claim *claims.CanonicalClaim, line *claims.ServiceLine) utils.Record {
	row := emptyRow(DetailColumns)
	row["ID"] = f.detailID
	row["ClaimID"] = f.claimID
	row["LineNumber"] = f.detailID
	row["ServiceDateFrom"] = line.ServiceDateFrom
	row["ProcedureQual"] = line.Procedure.SubType
	row["ProcedureCode"] = line.Procedure.Code
	row["Amount"] = line.ChargeAmount
	row["Unit"] = line.UnitType
	row["Quantity"] = line.UnitCount
	row["PlaceOfService"] = claim.FacilityCode.Code
	row["ProcedureDescription"] = line.Procedure.Desc
	if len(line.DiagPointers) > 0 {
		row["DiagPointer1"] = line.DiagPointers[0]
	}
	row["LineID"] = line.SourceLineID
	return row
}

func (f *Flattener) addCompany(claim *claims.CanonicalClaim) {
	tx := claim.Transaction
	sender := partyOrEmpty(tx.Sender)
	receiver := partyOrEmpty(tx.Receiver)
	billing := partyOrEmpty(claim.BillingProvider)
	billingAddr := addressOrEmpty(billing.Address)

	key := sender.Identifier + "-" + receiver.Identifier + "-" + billing.Identifier
	if f.companyKeys[key] {
		return
	}
	f.companyKeys[key] = true
	f.companyID++

	row := emptyRow(CompanyColumns)
	row["ID"] = f.companyID
	row["Name"] = billing.LastNameOrOrgName
	row["Address1"] = billingAddr.Line
	row["Address2"] = billingAddr.Line2
	row["City"] = billingAddr.City
	row["State"] = billingAddr.StateCode
	row["Zip"] = billingAddr.ZipCode
	row["SenderID"] = sender.Identifier
	row["SenderIDQualifier"] = sender.IdentificationType
	row["EIN"] = billing.TaxID
	row["Contact"] = contactName(sender)
	row["Tel"] = contactNumber(sender)
	row["EntityType"] = billing.EntityType
	row["EDIVersion"] = tx.ImplementationConventionReference
	row["SourceEntityID"] = receiver.Identifier
	row["SourceName"] = receiver.LastNameOrOrgName
	row["SourceIDQual"] = receiver.IdentificationType
	row["SourceID"] = receiver.Identifier
	f.companyRows = append(f.companyRows, row)
}
