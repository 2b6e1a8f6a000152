package parsers

// assembler folds decoded segments into a Document. It keeps five cursors,
// one per hierarchy level; every cursor is either nil or points into the
// tree being built. Attachment precedence when several cursors are live:
// service line, then the claim's most recent provider, then claim, then
// subscriber, then billing provider.
type assembler struct {
	doc             *Document
	transaction     *TransactionSet
	billingProvider *BillingProvider
	subscriber      *Subscriber
	claim           *Claim
	serviceLine     *ServiceLine
}

func newAssembler() *assembler {
	return &assembler{doc: &Document{}}
}

// consume dispatches one segment. Segments whose required cursor is empty
// and unknown tags are dropped without touching cursor state.
func (a *assembler) consume(elements []string) {
	if len(elements) == 0 {
		return
	}
	a.doc.SegmentCount++
	switch elements[0] {
	case "ISA":
		a.doc.Interchange = decodeISA(elements)
	case "GS":
		a.doc.FunctionalGroup = decodeGS(elements)
	case "ST":
		a.transaction = &TransactionSet{Header: decodeST(elements)}
		a.doc.TransactionSets = append(a.doc.TransactionSets, a.transaction)
		a.billingProvider = nil
		a.subscriber = nil
		a.claim = nil
		a.serviceLine = nil
	case "BHT":
		if a.transaction != nil {
			a.transaction.Beginning = decodeBHT(elements)
		}
	case "HL":
		a.consumeHL(decodeHL(elements))
	case "NM1":
		a.consumeNM1(decodeNM1(elements))
	case "N3":
		a.consumeN3(decodeN3(elements))
	case "N4":
		a.consumeN4(decodeN4(elements))
	case "REF":
		a.consumeREF(decodeREF(elements))
	case "DMG":
		if a.subscriber != nil {
			dmg := decodeDMG(elements)
			a.subscriber.Info.Demographics = &dmg
		}
	case "DTP":
		a.consumeDTP(decodeDTP(elements))
	case "CLM":
		if a.subscriber != nil {
			a.claim = &Claim{Info: decodeCLM(elements)}
			a.subscriber.Claims = append(a.subscriber.Claims, a.claim)
			a.serviceLine = nil
		}
	case "HI":
		if a.claim != nil {
			a.claim.DiagnosisGroups = append(a.claim.DiagnosisGroups, decodeHI(elements))
		}
	case "PRV":
		a.consumePRV(decodePRV(elements))
	case "LX":
		if a.claim != nil {
			lx := decodeLX(elements)
			a.serviceLine = &ServiceLine{LineNumber: lx.AssignedNumber}
			a.claim.ServiceLines = append(a.claim.ServiceLines, a.serviceLine)
		}
	case "SV1":
		if a.serviceLine != nil {
			a.serviceLine.Service = decodeSV1(elements)
		}
	case "SV2":
		if a.serviceLine != nil {
			sv2 := decodeSV2(elements)
			a.serviceLine.Institutional = &sv2
		}
	case "SV3":
		if a.serviceLine != nil {
			sv3 := decodeSV3(elements)
			a.serviceLine.Dental = &sv3
		}
	case "PER":
		a.consumePER(decodePER(elements))
	case "SBR":
		a.consumeSBR(decodeSBR(elements))
	case "CAS":
		adjustments := decodeCAS(elements)
		if a.serviceLine != nil {
			a.serviceLine.Adjustments = append(a.serviceLine.Adjustments, adjustments...)
		} else if a.claim != nil {
			a.claim.Adjustments = append(a.claim.Adjustments, adjustments...)
		}
	case "AMT":
		amt := decodeAMT(elements)
		if a.serviceLine != nil {
			a.serviceLine.Amounts = append(a.serviceLine.Amounts, amt)
		} else if a.claim != nil {
			a.claim.Amounts = append(a.claim.Amounts, amt)
		}
	case "QTY":
		qty := decodeQTY(elements)
		if a.serviceLine != nil {
			a.serviceLine.Quantities = append(a.serviceLine.Quantities, qty)
		} else if a.claim != nil {
			a.claim.Quantities = append(a.claim.Quantities, qty)
		}
	case "NTE":
		nte := decodeNTE(elements)
		if a.serviceLine != nil {
			a.serviceLine.Notes = append(a.serviceLine.Notes, nte)
		} else if a.claim != nil {
			a.claim.Notes = append(a.claim.Notes, nte)
		}
	}
}

// consumeHL opens a billing provider (level 20) or subscriber (level 22)
// loop, or attaches a patient record (level 23). A level with no legal
// parent cursor is ignored.
func (a *assembler) consumeHL(hl HL) {
	if a.transaction == nil {
		return
	}
	switch hl.LevelCode {
	case "20":
		a.billingProvider = &BillingProvider{Level: hl}
		a.transaction.BillingProviders = append(a.transaction.BillingProviders, a.billingProvider)
		a.subscriber = nil
		a.claim = nil
		a.serviceLine = nil
	case "22":
		if a.billingProvider == nil {
			return
		}
		a.subscriber = &Subscriber{Level: hl}
		a.billingProvider.Subscribers = append(a.billingProvider.Subscribers, a.subscriber)
		a.claim = nil
		a.serviceLine = nil
	case "23":
		if a.subscriber != nil {
			a.subscriber.Patient = &Patient{Level: hl}
		}
	}
}

var claimProviderRoles = map[string]string{
	"DN": RoleReferring,
	"82": RoleRendering,
	"77": RoleServiceFacility,
	"DQ": RoleSupervising,
	"85": RoleBilling,
}

func (a *assembler) consumeNM1(nm1 NM1) {
	if a.transaction == nil {
		return
	}
	code := nm1.EntityIdentifierCode

	// Claim-scoped provider roles take precedence once a claim is open;
	// an NM1*85 after CLM is the billing-override provider of loop 2310.
	if role, ok := claimProviderRoles[code]; ok && a.claim != nil {
		a.claim.Providers = append(a.claim.Providers, &ClaimProvider{Role: role, Name: nm1})
		return
	}

	switch code {
	case "41":
		a.transaction.Submitter = &Entity{Name: nm1}
	case "40":
		a.transaction.Receiver = &Entity{Name: nm1}
	case "85":
		if a.billingProvider != nil {
			a.billingProvider.Provider.Name = nm1
		}
	case "87":
		if a.billingProvider != nil {
			a.billingProvider.PayTo = &nm1
		}
	case "IL":
		if a.subscriber == nil {
			return
		}
		if n := len(a.subscriber.SecondaryPayers); n > 0 {
			a.subscriber.SecondaryPayers[n-1].Subscriber.Name = nm1
		} else {
			a.subscriber.Info.Name = nm1
		}
	case "PR":
		if a.subscriber == nil {
			return
		}
		if n := len(a.subscriber.SecondaryPayers); n > 0 {
			a.subscriber.SecondaryPayers[n-1].Payer = &Entity{Name: nm1}
		} else {
			a.subscriber.Payer = &Entity{Name: nm1}
		}
	case "QC":
		if a.subscriber == nil {
			return
		}
		if a.subscriber.Patient == nil {
			a.subscriber.Patient = &Patient{}
		}
		a.subscriber.Patient.Name = &nm1
	}
}

// lastClaimProvider is the attachment target for trailing location,
// reference and taxonomy segments inside loop 2310.
func (a *assembler) lastClaimProvider() *ClaimProvider {
	if a.claim == nil || len(a.claim.Providers) == 0 {
		return nil
	}
	return a.claim.Providers[len(a.claim.Providers)-1]
}

func (a *assembler) consumeN3(n3 N3) {
	addr := &Address{Line1: n3.AddressLine1, Line2: n3.AddressLine2}
	if p := a.lastClaimProvider(); p != nil {
		if p.Address == nil {
			p.Address = addr
		} else {
			p.Address.Line1 = n3.AddressLine1
			p.Address.Line2 = n3.AddressLine2
		}
		return
	}
	if a.subscriber != nil && a.subscriber.Payer != nil && a.subscriber.Payer.Address == nil {
		a.subscriber.Payer.Address = addr
		return
	}
	if a.subscriber != nil && a.subscriber.Info.Address == nil {
		a.subscriber.Info.Address = addr
		return
	}
	if a.billingProvider != nil && a.billingProvider.Provider.Address == nil {
		a.billingProvider.Provider.Address = addr
	}
}

// consumeN4 completes an address opened by a preceding N3; it never creates
// one except on a claim provider.
func (a *assembler) consumeN4(n4 N4) {
	apply := func(addr *Address) {
		addr.City = n4.City
		addr.StateCode = n4.StateCode
		addr.PostalCode = n4.PostalCode
		addr.CountryCode = n4.CountryCode
	}
	if p := a.lastClaimProvider(); p != nil {
		if p.Address == nil {
			p.Address = &Address{}
		}
		apply(p.Address)
		return
	}
	if a.subscriber != nil && a.subscriber.Payer != nil && a.subscriber.Payer.Address != nil {
		apply(a.subscriber.Payer.Address)
		return
	}
	if a.subscriber != nil && a.subscriber.Info.Address != nil {
		apply(a.subscriber.Info.Address)
		return
	}
	if a.billingProvider != nil && a.billingProvider.Provider.Address != nil {
		apply(a.billingProvider.Provider.Address)
	}
}

func (a *assembler) consumeREF(ref REF) {
	if p := a.lastClaimProvider(); p != nil {
		p.References = append(p.References, ref)
		return
	}
	if a.billingProvider != nil && ref.Qualifier == "EI" {
		a.billingProvider.Provider.TaxID = ref.Identification
		return
	}
	if a.subscriber != nil {
		a.subscriber.Info.References = append(a.subscriber.Info.References, ref)
	}
}

func (a *assembler) consumeDTP(dtp DTP) {
	if a.serviceLine != nil {
		a.serviceLine.Dates = append(a.serviceLine.Dates, dtp)
		return
	}
	if a.claim != nil {
		a.claim.Dates = append(a.claim.Dates, dtp)
		return
	}
	if a.subscriber != nil {
		a.subscriber.Dates = append(a.subscriber.Dates, dtp)
	}
}

// consumePRV records the taxonomy on the most recent provider, preferring a
// line-level provider, then the claim's, then the billing provider.
func (a *assembler) consumePRV(prv PRV) {
	if a.serviceLine != nil && len(a.serviceLine.Providers) > 0 {
		a.serviceLine.Providers[len(a.serviceLine.Providers)-1].Taxonomy = prv.Identification
		return
	}
	if p := a.lastClaimProvider(); p != nil {
		p.Taxonomy = prv.Identification
		return
	}
	if a.billingProvider != nil {
		a.billingProvider.Provider.Taxonomy = prv.Identification
	}
}

func (a *assembler) consumePER(per PER) {
	if a.billingProvider != nil {
		a.billingProvider.Provider.Contact = &per
		return
	}
	// Contact info attaches to an already-identified submitter; a PER with
	// no preceding NM1*41 is dropped.
	if a.transaction != nil && a.transaction.Submitter != nil {
		a.transaction.Submitter.Contact = &per
	}
}

// consumeSBR merges a primary coverage into the subscriber and opens a
// secondary-payer entry for any other responsibility sequence.
func (a *assembler) consumeSBR(sbr SBR) {
	if a.subscriber == nil {
		return
	}
	if sbr.PayerResponsibilityCode == "P" {
		a.subscriber.Info.Coverage = sbr
		return
	}
	a.subscriber.SecondaryPayers = append(a.subscriber.SecondaryPayers, &SecondaryPayer{
		Sequence:   sbr.PayerResponsibilityCode,
		Subscriber: SubscriberInfo{Coverage: sbr},
	})
}
