package claims

import (
	"strconv"
	"strings"

	"github.com/oarkflow/convert"

	"github.com/oarkflow/edi/pkg/codes"
	"github.com/oarkflow/edi/pkg/parsers"
)

// Project walks the document tree and emits one CanonicalClaim per CLM
// segment, translating codes on the way. Output order follows file order,
// so identical inputs produce identical output.
func Project(doc *parsers.Document) []*CanonicalClaim {
	var out []*CanonicalClaim
	for _, ts := range doc.TransactionSets {
		tx := projectTransaction(ts)
		for _, bp := range ts.BillingProviders {
			billing := projectBillingProvider(bp)
			for _, sub := range bp.Subscribers {
				coverage := projectSubscriber(&sub.Info)
				payer := projectPayer(sub.Payer)
				for _, claim := range sub.Claims {
					seq := len(out)
					out = append(out, projectClaim(claim, coverage, payer, billing, tx, seq))
				}
			}
		}
	}
	return out
}

func projectTransaction(ts *parsers.TransactionSet) TransactionInfo {
	date := codes.FormatDateISO(ts.Beginning.Date)
	clock := codes.FormatTimeISO(ts.Beginning.Time)
	return TransactionInfo{
		ID:                                deterministicID("transaction", ts.Header.ControlNumber, ts.Beginning.ReferenceIdentification),
		ControlNumber:                     ts.Header.ControlNumber,
		TransactionType:                   "PROF",
		HierarchicalStructureCode:         ts.Beginning.HierarchicalStructureCode,
		PurposeCode:                       ts.Beginning.PurposeCode,
		OriginatorApplicationTransactionID: ts.Beginning.ReferenceIdentification,
		CreationDate:                      date,
		CreationTime:                      clock,
		ClaimOrEncounterIdentifierType:    "CHARGEABLE",
		TransactionSetIdentifierCode:      ts.Header.IdentifierCode,
		ImplementationConventionReference: ts.Header.ImplementationConventionReference,
		FileInfo:                          FileInfo{FileType: "EDI"},
		Sender:                            projectEntity(ts.Submitter, "SUBMITTER"),
		Receiver:                          projectEntity(ts.Receiver, "RECEIVER"),
		CreationDateTime:                  date + "T" + clock,
	}
}

func entityType(qualifier string) string {
	if qualifier == "1" {
		return "INDIVIDUAL"
	}
	return "BUSINESS"
}

func projectEntity(e *parsers.Entity, role string) *Party {
	if e == nil {
		return nil
	}
	party := &Party{
		EntityRole:         role,
		EntityType:         entityType(e.Name.EntityTypeQualifier),
		IdentificationType: codes.IdentificationType(e.Name.IdentificationQualifier),
		Identifier:         e.Name.IdentificationCode,
		LastNameOrOrgName:  e.Name.LastOrOrganizationName,
		FirstName:          e.Name.FirstName,
		MiddleName:         e.Name.MiddleName,
	}
	if e.Contact != nil {
		contact := Contact{
			FunctionCode:   e.Contact.FunctionCode,
			Name:           e.Contact.Name,
			ContactNumbers: []ContactNumber{},
		}
		if e.Contact.Number1 != "" {
			contact.ContactNumbers = append(contact.ContactNumbers, ContactNumber{
				Type:   codes.CommunicationType(e.Contact.Qualifier1),
				Number: e.Contact.Number1,
			})
		}
		party.Contacts = []Contact{contact}
	}
	return party
}

func projectBillingProvider(bp *parsers.BillingProvider) *Party {
	party := &Party{
		EntityRole:         "BILLING_PROVIDER",
		EntityType:         entityType(bp.Provider.Name.EntityTypeQualifier),
		IdentificationType: codes.IdentificationType(bp.Provider.Name.IdentificationQualifier),
		Identifier:         bp.Provider.Name.IdentificationCode,
		LastNameOrOrgName:  bp.Provider.Name.LastOrOrganizationName,
		TaxID:              bp.Provider.TaxID,
		Address:            postalAddress(bp.Provider.Address),
	}
	if bp.Provider.Taxonomy != "" {
		party.ProviderTaxonomy = &CodedValue{
			SubType: "PROVIDER_TAXONOMY",
			Code:    bp.Provider.Taxonomy,
			Desc:    codes.TaxonomyDescription(bp.Provider.Taxonomy),
		}
	}
	return party
}

func projectSubscriber(info *parsers.SubscriberInfo) CoverageInfo {
	filing := info.Coverage.FilingIndicatorCode
	if filing == "" {
		filing = "CI"
	}
	person := Party{
		EntityRole:         "INSURED_SUBSCRIBER",
		EntityType:         "INDIVIDUAL",
		IdentificationType: codes.IdentificationType(info.Name.IdentificationQualifier),
		Identifier:         info.Name.IdentificationCode,
		LastNameOrOrgName:  info.Name.LastOrOrganizationName,
		FirstName:          info.Name.FirstName,
		Address:            postalAddress(info.Address),
	}
	if info.Demographics != nil {
		if info.Demographics.DateTimePeriod != "" {
			person.BirthDate = codes.FormatDateISO(info.Demographics.DateTimePeriod)
		}
		switch info.Demographics.GenderCode {
		case "M":
			person.Gender = "MALE"
		case "":
		default:
			person.Gender = "FEMALE"
		}
	}
	return CoverageInfo{
		PayerResponsibilitySequence: codes.PayerSequence(info.Coverage.PayerResponsibilityCode),
		RelationshipType:            codes.RelationshipType(info.Coverage.RelationshipCode),
		ClaimFilingIndicatorCode:    filing,
		InsurancePlanType:           codes.InsuranceType(info.Coverage.InsuranceTypeCode),
		Person:                      person,
	}
}

func projectPayer(e *parsers.Entity) *Party {
	if e == nil {
		return nil
	}
	return &Party{
		EntityRole:         "PAYER",
		EntityType:         "BUSINESS",
		IdentificationType: codes.IdentificationType(e.Name.IdentificationQualifier),
		Identifier:         e.Name.IdentificationCode,
		LastNameOrOrgName:  e.Name.LastOrOrganizationName,
		Address:            postalAddress(e.Address),
	}
}

func projectClaim(claim *parsers.Claim, coverage CoverageInfo, payer, billing *Party, tx TransactionInfo, seq int) *CanonicalClaim {
	info := claim.Info

	dateFrom, dateTo := claimServiceDates(claim)

	pos := info.PlaceOfServiceCode
	if pos == "" && len(claim.ServiceLines) > 0 {
		pos = claim.ServiceLines[0].Service.PlaceOfServiceCode
	}

	freq := info.FrequencyTypeCode
	if freq == "" {
		freq = "1"
	}
	freqDesc := codes.FrequencyDescription(freq)
	if freqDesc == "" {
		freqDesc = "Original"
	}

	charge, _ := convert.ToFloat64(info.MonetaryAmount)

	out := &CanonicalClaim{
		ID:                   deterministicID("claim", tx.ControlNumber, tx.OriginatorApplicationTransactionID, info.SubmitterIdentifier, strconv.Itoa(seq)),
		ObjectType:           "CLAIM",
		PatientControlNumber: info.SubmitterIdentifier,
		ChargeAmount:         charge,
		FacilityCode:         FacilityCode{SubType: "PLACE_OF_SERVICE", Code: pos},
		PlaceOfServiceType:   codes.PlaceOfServiceType(pos),
		FrequencyCode:        CodedValue{SubType: "FREQUENCY_CODE", Code: freq, Desc: freqDesc},
		ServiceDateFrom:      dateFrom,
		ServiceDateTo:        dateTo,
		Subscriber:           coverage,
		Payer:                payer,
		ProviderSignatureIndicator:       yesNo(info.SignatureSourceCode != ""),
		AssignmentParticipationCode:      info.AcceptAssignmentCode,
		AssignmentCertificationIndicator: yesNo(info.ResponseCode == "Y"),
		ReleaseOfInformationCode:         yesNo(info.ReleaseOfInformationCode == "Y"),
		OriginalReferenceNumber:          "CP" + tx.OriginatorApplicationTransactionID + info.SubmitterIdentifier,
		BillingProvider:                  billing,
		Providers:                        []*Party{},
		Diags:                            []DiagnosisInfo{},
		ServiceLines:                     []*ServiceLine{},
		Transaction:                      tx,
	}

	for _, provider := range claim.Providers {
		out.Providers = append(out.Providers, projectClaimProvider(provider))
	}
	for _, diag := range claim.Diagnoses() {
		if diag.Code == "" {
			continue
		}
		out.Diags = append(out.Diags, DiagnosisInfo{
			SubType:       "ICD_10_PRINCIPAL",
			Code:          diag.Code,
			Desc:          codes.DiagnosisDescription(diag.Code),
			FormattedCode: codes.FormatICDCode(diag.Code),
		})
	}
	for i, line := range claim.ServiceLines {
		projected := projectServiceLine(line, out, i+1)
		if projected != nil {
			out.ServiceLines = append(out.ServiceLines, projected)
		}
	}
	return out
}

// claimServiceDates derives the claim service period: a 472 date wins, a
// 454 date fills in when no 472 is present, and the first service line's
// 472 is the final fallback.
func claimServiceDates(claim *parsers.Claim) (string, string) {
	var from string
	for _, dtp := range claim.Dates {
		switch dtp.Qualifier {
		case "472":
			iso := codes.FormatDateISO(dtp.DateTimePeriod)
			return iso, iso
		case "454":
			if from == "" {
				from = codes.FormatDateISO(dtp.DateTimePeriod)
			}
		}
	}
	if from != "" {
		return from, from
	}
	if len(claim.ServiceLines) > 0 {
		for _, dtp := range claim.ServiceLines[0].Dates {
			if dtp.Qualifier == "472" {
				iso := codes.FormatDateISO(dtp.DateTimePeriod)
				return iso, iso
			}
		}
	}
	return "", ""
}

func projectClaimProvider(provider *parsers.ClaimProvider) *Party {
	name := provider.Name
	party := &Party{
		EntityRole:         provider.Role,
		EntityType:         entityType(name.EntityTypeQualifier),
		IdentificationType: codes.IdentificationType(name.IdentificationQualifier),
		Identifier:         name.IdentificationCode,
		LastNameOrOrgName:  name.LastOrOrganizationName,
		FirstName:          name.FirstName,
		MiddleName:         name.MiddleName,
		Address:            postalAddress(provider.Address),
	}
	if party.MiddleName == "" && name.NameSuffix != "" {
		if middle, ok := middleNameFromSuffix(name.NameSuffix); ok {
			party.MiddleName = middle
		}
	}
	if provider.Taxonomy != "" {
		party.ProviderTaxonomy = &CodedValue{
			SubType: "PROVIDER_TAXONOMY",
			Code:    provider.Taxonomy,
			Desc:    codes.TaxonomyDescription(provider.Taxonomy),
		}
	}
	for _, ref := range provider.References {
		if ref.Qualifier == "" || ref.Identification == "" {
			continue
		}
		party.AdditionalIDs = append(party.AdditionalIDs, AdditionalID{
			QualifierCode:  ref.Qualifier,
			Type:           codes.ReferenceType(ref.Qualifier),
			Identification: ref.Identification,
		})
	}
	return party
}

// middleNameFromSuffix recovers a middle initial misplaced into the suffix
// element. Generational and credential suffixes are left alone.
func middleNameFromSuffix(suffix string) (string, bool) {
	if len(suffix) == 1 {
		return suffix, true
	}
	if len(suffix) > 3 {
		return "", false
	}
	switch strings.ToUpper(suffix) {
	case "JR", "SR", "III", "IV", "MD", "DO", "RN":
		return "", false
	}
	return suffix, true
}

// projectServiceLine returns nil when the line carries no procedure code;
// such lines are dropped from the canonical claim. The claim's diagnosis
// list is copied so the line owns an independent snapshot.
func projectServiceLine(line *parsers.ServiceLine, claim *CanonicalClaim, ordinal int) *ServiceLine {
	procedure := line.Service.Procedure.Code
	if procedure == "" {
		return nil
	}

	charge, _ := convert.ToFloat64(line.Service.MonetaryAmount)
	units, ok := convert.ToInt(line.Service.UnitCount)
	if !ok || line.Service.UnitCount == "" {
		units = 1
	}

	out := &ServiceLine{
		SourceLineID: shortID("line", claim.ID, line.LineNumber, strconv.Itoa(ordinal)),
		ChargeAmount: charge,
		UnitType:     "UNIT",
		UnitCount:    units,
		Procedure: CodedValue{
			SubType: "CPT",
			Code:    procedure,
			Desc:    codes.ProcedureDescription(procedure),
		},
		DiagPointers: []int{1},
		Diags:        append([]DiagnosisInfo(nil), claim.Diags...),
	}

loop:
	for _, dtp := range line.Dates {
		switch dtp.Qualifier {
		case "472":
			out.ServiceDateFrom = codes.FormatDateISO(dtp.DateTimePeriod)
			break loop
		case "150":
			out.ServiceDateFrom = codes.FormatDateISO(dtp.DateTimePeriod)
		case "151":
			out.ServiceDateTo = codes.FormatDateISO(dtp.DateTimePeriod)
		}
	}
	if out.ServiceDateFrom == "" {
		out.ServiceDateFrom = claim.ServiceDateFrom
	}
	return out
}

func postalAddress(a *parsers.Address) *PostalAddress {
	if a == nil {
		return nil
	}
	return &PostalAddress{
		Line:      a.Line1,
		Line2:     a.Line2,
		City:      a.City,
		StateCode: a.StateCode,
		ZipCode:   a.PostalCode,
	}
}

func yesNo(ok bool) string {
	if ok {
		return "Y"
	}
	return "N"
}

