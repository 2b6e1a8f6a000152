package flatten

// Fixed CSV schemas for the three relational outputs. Column order is part
// of the contract and must not change between runs.

var ClaimColumns = []string{
	"ID", "Filename", "Version", "ImageFilePath", "ImageFilename", "TradingPartnerIDType",
	"TradingPartnerID", "TransactionDate", "TransactionTime", "ReceiveDate", "SubmitterName", "SubmitterID",
	"SubmitterContact", "SubmitterTel", "SubmitterTelExt", "SubmitterFax", "SubmitterEmail", "ReceiverName",
	"ReceiverID", "TransactionType", "OrigAppTransactionID", "FedTaxIDQual", "FedTaxID", "BillProvIDType",
	"BillProvID", "BillProvNPI", "BillProvLast", "BillProvFirst", "BillProvMiddle", "BillProvSuffix",
	"BillProvSpecialty", "BillProvAddress", "BillProvAddress2", "BillProvCity", "BillProvState", "BillProvZip",
	"BillProvCountry", "BillProvSubdivision", "BillProvContact", "BillProvTel", "BillProvTelExt", "BillProvFax",
	"BillProvEmail", "BillProvOtherIDQual1", "BillProvOtherID1", "BillProvOtherIDQual2", "BillProvOtherID2", "BillProvOtherIDQual3",
	"BillProvOtherID3", "BillProvOtherIDQual4", "BillProvOtherID4", "BillProvOtherIDQual5", "BillProvOtherID5", "SubscriberLast",
	"SubscriberFirst", "SubscriberMiddle", "SubscriberSuffix", "SubscriberIDType", "SubscriberID", "SubscriberAddress",
	"SubscriberAddress2", "SubscriberCity", "SubscriberState", "SubscriberZip", "SubscriberCountry", "SubscriberLocation",
	"SubscriberSubdivision", "SubscriberDOB", "SubscriberSex", "SubscriberEthnicity", "SubscriberMaritalStatus", "SubscriberCollectionMethod",
	"SubscriberSSN", "SubscriberAgencyClaimNo", "SubscriberMemberID", "SubscriberPersonalID", "SubscriberContact", "SubscriberTel",
	"SubscriberTelExt", "SubscriberEmail", "PayerName", "PayerIDType", "PayerID", "PayerAddress",
	"PayerAddress2", "PayerCity", "PayerState", "PayerZip", "PayerResponsibility", "PayerOtherIDQual1",
	"PayerOtherID1", "PayerOtherIDQual2", "PayerOtherID2", "PayerOtherIDQual3", "PayerOtherID3", "GroupNo",
	"GroupName", "InsuranceType", "FilingIndicator", "COBIndicator", "DataReceiverName", "RendProvIDType",
	"RendProvID", "RendProvNPI", "RendProvTaxID", "RendProvLast", "RendProvFirst", "RendProvMiddle",
	"RendProvSuffix", "RendProvSpecialty", "RendProvOtherIDQual1", "RendProvOtherID1", "RendProvOtherIDQual2", "RendProvOtherID2",
	"RendProvOtherIDQual3", "RendProvOtherID3", "FacilityType", "FacilityIDType", "FacilityID", "FacilityNPI",
	"FacilityTaxID", "FacilityOtherIDQual1", "FacilityOtherID1", "FacilityOtherIDQual2", "FacilityOtherID2", "FacilityOtherIDQual3",
	"FacilityOtherID3", "FacilityName", "FacilityAddress", "FacilityAddress2", "FacilityCity", "FacilitySpecialty",
	"FacilityState", "FacilityZip", "FacilityContact", "FacilityTel", "FacilityTelExt", "RefProvLast",
	"RefProvFirst", "RefProvMiddle", "RefProvSuffix", "RefProvIDType", "RefProvID", "RefProvTaxID",
	"RefProvNPI", "RefProvOtherIDQual1", "RefProvOtherID1", "RefProvOtherIDQual2", "RefProvOtherID2", "RefProvOtherIDQual3",
	"RefProvOtherID3", "RefProvSpecialty", "ClaimNo", "Amount", "EstimatedAmountDue", "PatientEstimatedAmountDue",
	"PlaceOfService", "ClaimFrequency", "SubmitReason", "ProviderSignature", "ProviderAcceptsAssignment", "BenefitAssignment",
	"InfoReleaseCode", "PatientSignatureCode", "RelatedCauses", "RelatedCauses2", "RelatedCausesState", "RelatedCausesCountry",
	"SpecialProgramCode", "ProviderParticipation", "EOBIndicator", "DelayReasonCode", "ServiceDateFrom", "ServiceDateTo",
	"OnsetDate", "InitialTreatmentDate", "LastSeenDate", "AcuteManifestationDate", "LastDateWorked", "ReturnToWorkDate",
	"SimilarSymptomsDate", "DisabilityBegin", "DisabilityEnd", "HospitalizationBegin", "HospitalizationEnd", "AccidentDate",
	"LastMenstrualPeriod", "LastXRayDate", "PrescriptionDate", "AssumedCareDate", "RelinquishedCareDate", "FirstVisitDate",
	"RepricerReceivedDate", "AdmissionDate", "AdmissionHour", "AdmissionType", "AdmissionSource", "DischargeHour",
	"PatientStatus", "CoveredDays", "NonCoveredDays", "COBDays", "LifeTimeReserveDays", "PriorAuthorization",
	"ClearingHouseID", "MedicalRecordNumber", "MothersMedicalRecordNumber", "ServiceAuthorizationException", "ReferralNumber", "PayerClaimControlNumber",
	"AdjustedRepricedClaimNumber", "AutoAccidentState", "MedicareCrossoverIndicator", "MammographyCertID", "CLIA", "InvestDeviceExemptionNo",
	"DemonstrationProjectID", "CarePlanOversight", "PROApprovalNo", "PredeterminationID", "ClaimType", "TypeOfBill",
	"Remark1", "Remark2", "Remark3", "Remark4", "K3_1", "K3_2",
	"OutsideLab", "LabCharge", "Test_Prod", "ReportTypeCode1", "ReportTransmissionCode1", "AttachmentControlNumber1",
	"ReportTypeCode2", "ReportTransmissionCode2", "AttachmentControlNumber2", "ReportTypeCode3", "ReportTransmissionCode3", "AttachmentControlNumber3",
	"ContractType", "ContractAmount", "ContractPercentage", "ContractCode", "TermsDiscountPercentage", "ContractVersionID",
	"Predetermination", "OrthodonticTotal", "OrthodonticRemaining", "OrthodonticYesNo", "ToothStatus", "AppliancePlacementDate",
	"AdmitDiagnosis", "ECode", "ECode2", "ECode3", "ECode4", "ECode5",
	"ECode6", "ECode7", "ECode8", "ReasonForVisit", "ReasonForVisit2", "ReasonForVisit3",
	"PrincipalDiagnosis", "Diag2", "Diag3", "Diag4", "Diag5", "Diag6",
	"Diag7", "Diag8", "Diag9", "Diag10", "DRG", "PrincipalProcedure",
	"PrincipalProcedureDate", "Proc2", "Proc2Date", "Proc3", "Proc3Date", "Proc4",
	"Proc4Date", "Proc5", "Proc5Date", "Proc6", "Proc6Date", "Proc7",
	"Proc7Date", "Proc8", "Proc8Date", "Proc9", "Proc9Date", "Proc10",
	"Proc10Date", "ValueCode1", "ValueAmount1", "ValueCode2", "ValueAmount2", "ValueCode3",
	"ValueAmount3", "ValueCode4", "ValueAmount4", "ValueCode5", "ValueAmount5", "ValueCode6",
	"ValueAmount6", "ValueCode7", "ValueAmount7", "ValueCode8", "ValueAmount8", "ValueCode9",
	"ValueAmount9", "ValueCode10", "ValueAmount10", "ValueCode11", "ValueAmount11", "ValueCode12",
	"ValueAmount12", "ConditionCode1", "ConditionCode2", "ConditionCode3", "ConditionCode4", "ConditionCode5",
	"ConditionCode6", "ConditionCode7", "ConditionCode8", "ConditionCode9", "ConditionCode10", "OccurranceCode1",
	"OccurranceDate1", "OccurranceCode2", "OccurranceDate2", "OccurranceCode3", "OccurranceDate3", "OccurranceCode4",
	"OccurranceDate4", "OccurranceCode5", "OccurranceDate5", "OccurranceCode6", "OccurranceDate6", "OccurranceCode7",
	"OccurranceDate7", "OccurranceCode8", "OccurranceDate8", "OccurranceSpanCode1", "OccurranceSpanFrom1", "OccurranceSpanTo1",
	"OccurranceSpanCode2", "OccurranceSpanFrom2", "OccurranceSpanTo2", "OccurranceSpanCode3", "OccurranceSpanFrom3", "OccurranceSpanTo3",
	"OccurranceSpanCode4", "OccurranceSpanFrom4", "OccurranceSpanTo4", "PatientWeight", "AmbulanceTransportCode", "AmbulanceTransportReasonCode",
	"TransportDistance", "RoundTripPurposeDescription", "StretcherPurposeDescription", "SpinalManipulationPatCondCode", "SpinalManipulationPatCondDesc1", "SpinalManipulationPatCondDesc2",
	"AmbulanceConditionIndicator", "AmbulanceConditionCode1", "AmbulanceConditionCode2", "AmbulanceConditionCode3", "AmbulanceConditionCode4", "AmbulanceConditionCode5",
	"SpectacleLensesCondIndicator", "SpectacleLensesCondCode1", "SpectacleLensesCondCode2", "SpectacleLensesCondCode3", "SpectacleLensesCondCode4", "SpectacleLensesCondCode5",
	"ContactLensesCondIndicator", "ContactLensesCondCode1", "ContactLensesCondCode2", "ContactLensesCondCode3", "ContactLensesCondCode4", "ContactLensesCondCode5",
	"SpectacleFramesCondIndicator", "SpectacleFramesCondCode1", "SpectacleFramesCondCode2", "SpectacleFramesCondCode3", "SpectacleFramesCondCode4", "SpectacleFramesCondCode5",
	"HomeboundConditionIndicator", "EPSDTReferralCondIndicator", "EPSDTReferralCondCode1", "EPSDTReferralCondCode2", "EPSDTReferralCondCode3", "RepricedClaimNumber",
	"RepricingMethodology", "RepricedAmount", "SavingsAmount", "RepricerID", "RepricingRate", "APG_Code",
	"APG_Amount", "ApprovedRevenueCode", "ApprovedProcedureCode", "ApprovedUnitCode", "ApprovedUnits", "RejectReason",
	"ComplianceCode", "ExceptionCode",
}

var DetailColumns = []string{
	"ID", "ClaimID", "LineNumber", "ServiceDateFrom", "ServiceDateTo", "AssessmentDate",
	"PrescriptionDate", "RecertificationDate", "BeginTherapyDate", "LastCertificationDate", "LastSeenDate", "TestDateHemo",
	"TestDateCreatine", "ShippedDate", "LastXrayDate", "InitialTreatmentDate", "FacilityCode", "RevenueCode",
	"ProcedureQual", "ProcedureCode", "Amount", "Unit", "Quantity", "UnitRate",
	"NonCovered", "MEA", "PlaceOfService", "Modifier1", "Modifier2", "Modifier3",
	"Modifier4", "ProcedureDescription", "OralCavityDesignation1", "OralCavityDesignation2", "OralCavityDesignation3", "OralCavityDesignation4",
	"OralCavityDesignation5", "ProsthesisPlacementStatus", "DiagPointer1", "DiagPointer2", "DiagPointer3", "DiagPointer4",
	"EmergencyIndicator", "EPSDTIndicator", "FamilyPlanningIndicator", "CoPayStatus", "DME_Days", "DME_RentalPrice",
	"DME_PurchasePrice", "DME_FrequencyCode", "ToothNumber", "Surface", "EstimatedPlacementDate", "PriorPlacementDate",
	"AppliancePlacementDate", "ReplacementDate", "TreatmentStartDate", "TreatmentCompletionDate", "ServiceTax", "FacilityTax",
	"SalesTax", "Postage", "ApprovedAmount", "LineK3_01", "LineK3_02", "LineK3_03",
	"LineK3_04", "LineK3_05", "LineK3_06", "LineK3_07", "LineK3_08", "LineK3_09",
	"LineK3_10", "Remark", "AmbulancePatientCount", "LineID", "PredeterminationOfBenefitsID", "POB_OtherPayerID",
	"PriorAuthNo", "PriorAuthOtherPayerID", "RepricedClaimNo", "AdjustedRepricedClaimNo", "ReferralNo", "ReferralNoOtherPayerID",
	"RepricedLineNo", "AdjustedRepricedLineNo", "MammographyCertNo", "CLIANo", "CLIAFacilityID", "ImmunizationBatchNo",
	"ContractType", "CN1_RepricedAmount", "ContractPercentage", "ContractCode", "TermsDiscountPercentage", "ContractVersionID",
	"ReportType", "ReportTransmission", "AttachmentControlNumber", "ReportType2", "ReportTransmission2", "AttachmentControlNumber2",
	"ReportType3", "ReportTransmission3", "AttachmentControlNumber3", "RepricingMethodology", "RepricedAmount", "SavingsAmount",
	"RepricerID", "RepricingRate", "APG_Code", "APG_Amount", "ApprovedRevenueCode", "ApprovedProcedureCodeQual",
	"ApprovedProcedureCode", "ApprovedUnitCode", "ApprovedUnits", "RejectReason", "ComplianceCode", "ExceptionCode",
	"DrugCodeQual", "DrugCode", "DrugUnitPrice", "DrugUnitCode", "DrugUnits", "LinkSequenceNumber",
	"PrescriptionNumber", "PatientWeight", "AmbulanceTransportCode", "AmbulanceTransportReasonCode", "TransportDistance", "RoundTripPurposeDescription",
	"StretcherPurposeDescription", "DMECertificationType", "DMEDuration", "AmbulanceConditionIndicator", "AmbulanceConditionCode1", "AmbulanceConditionCode2",
	"AmbulanceConditionCode3", "AmbulanceConditionCode4", "AmbulanceConditionCode5", "HospiceEmployerCondIndicator", "HospiceEmployerCondCode", "DMERCConditionIndicator",
	"DMERCConditionCode1", "DMERCConditionCode2", "AttendingProviderLast", "AttendingProviderFirst", "AttendingProviderMiddle", "AttendingProviderSuffix",
	"AttendingProviderIDQual", "AttendingProviderID", "AttendingProviderOtherIDQual", "AttendingProviderOtherID", "OperatingProviderLast", "OperatingProviderFirst",
	"OperatingProviderMiddle", "OperatingProviderSuffix", "OperatingProviderIDQual", "OperatingProviderID", "OperatingProviderOtherIDQual", "OperatingProviderOtherID",
	"OtherProviderLast", "OtherProviderFirst", "OtherProviderMiddle", "OtherProviderSuffix", "OtherProviderIDQual", "OtherProviderID",
	"OtherProviderOtherIDQual", "OtherProviderOtherID", "RenderingProviderLast", "RenderingProviderFirst", "RenderingProviderMiddle", "RenderingProviderSuffix",
	"RenderingProviderIDQual", "RenderingProviderID", "RenderingProviderOtherIDQual", "RenderingProviderOtherID", "RenderingProviderSpecialty", "PurchasedServiceProviderLast",
	"PurchasedServiceProviderFirst", "PurchasedServiceProviderMiddle", "PurchasedServiceProviderSuffix", "PurchasedServiceProviderIDQual", "PurchasedServiceProviderID", "PurchasedServiceProviderOtherIDQual",
	"PurchasedServiceProviderOtherID", "PurchasedServiceProviderAmount", "FacilityName", "FacilityIDQual", "FacilityID", "FacilityAddress1",
	"FacilityAddress2", "FacilityCity", "FacilityState", "FacilityZip", "FacilityOtherIDQual", "FacilityOtherID",
	"SupervisingProviderLast", "SupervisingProviderFirst", "SupervisingProviderMiddle", "SupervisingProviderSuffix", "SupervisingProviderIDQual", "SupervisingProviderID",
	"SupervisingProviderOtherIDQual", "SupervisingProviderOtherID", "OrderingProviderLast", "OrderingProviderFirst", "OrderingProviderMiddle", "OrderingProviderSuffix",
	"OrderingProviderIDQual", "OrderingProviderID", "OrderingProviderOtherIDQual", "OrderingProviderOtherID", "ReferringProviderLast", "ReferringProviderFirst",
	"ReferringProviderMiddle", "ReferringProviderSuffix", "ReferringProviderIDQual", "ReferringProviderID", "ReferringProviderOtherIDQual", "ReferringProviderOtherID",
	"OtherPayer1ID", "OtherPayer1Paid", "OtherPayer1PaidProcedure", "OtherPayer1PaidRevenueCode", "OtherPayer1PaidQuantity", "OtherPayer1BundledLine",
	"OtherPayer1AdjustmentReasonGroup1", "OtherPayer1AdjustmentReason1", "OtherPayer1AdjustmentAmount1", "OtherPayer1AdjustmentQuantity1", "OtherPayer1AdjustmentReasonGroup2", "OtherPayer1AdjustmentReason2",
	"OtherPayer1AdjustmentAmount2", "OtherPayer1AdjustmentQuantity2", "OtherPayer1AdjustmentReasonGroup3", "OtherPayer1AdjustmentReason3", "OtherPayer1AdjustmentAmount3", "OtherPayer1AdjustmentQuantity3",
	"OtherPayer1AdjustmentReasonGroup4", "OtherPayer1AdjustmentReason4", "OtherPayer1AdjustmentAmount4", "OtherPayer1AdjustmentQuantity4", "OtherPayer1PaidDate", "OtherPayer1AmountOwed",
	"OtherPayer2ID", "OtherPayer2Paid", "OtherPayer2PaidProcedure", "OtherPayer2PaidRevenueCode", "OtherPayer2PaidQuantity", "OtherPayer2BundledLine",
	"OtherPayer2AdjustmentReasonGroup1", "OtherPayer2AdjustmentReason1", "OtherPayer2AdjustmentAmount1", "OtherPayer2AdjustmentQuantity1", "OtherPayer2AdjustmentReasonGroup2", "OtherPayer2AdjustmentReason2",
	"OtherPayer2AdjustmentAmount2", "OtherPayer2AdjustmentQuantity2", "OtherPayer2AdjustmentReasonGroup3", "OtherPayer2AdjustmentReason3", "OtherPayer2AdjustmentAmount3", "OtherPayer2AdjustmentQuantity3",
	"OtherPayer2AdjustmentReasonGroup4", "OtherPayer2AdjustmentReason4", "OtherPayer2AdjustmentAmount4", "OtherPayer2AdjustmentQuantity4", "OtherPayer2PaidDate", "OtherPayer2AmountOwed",
}

var CompanyColumns = []string{
	"ID", "Name", "Address1", "Address2", "City", "State",
	"Zip", "Zip_4", "SenderID", "SenderIDQualifier", "EdiNo", "EIN",
	"FileID", "Contact", "Tel", "Ext", "Fax", "Email",
	"Ack", "TP", "PayorID", "PlanID", "EntityType", "EDIVersion",
	"SourceEntityID", "SourceName", "SourceIDQual", "SourceID", "InsuranceType", "BankName",
	"RoutingNo", "AccountNo",
}

