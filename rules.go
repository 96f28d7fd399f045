package mitsvalidator

// Rule identifiers, grouped by the phase that reports them.
// The declaration order here is the order messages are reported in
// within a phase.
const (
	// Engine
	RuleValidationCancelled RuleID = "validation_cancelled"

	// Structure (critical)
	RuleDocParseFailed         RuleID = "doc_parse_failed"
	RuleRootIsPhysicalProperty RuleID = "root_is_physical_property"
	RulePropertyExists         RuleID = "property_exists"
	RulePropertyHasID          RuleID = "property_has_id"
	RulePropertyIDUnique       RuleID = "property_id_unique"

	// Identity (critical)
	RuleIDNoWhitespace     RuleID = "id_no_whitespace"
	RuleBuildingIDUnique   RuleID = "building_id_unique"
	RuleFloorplanIDUnique  RuleID = "floorplan_id_unique"
	RuleUnitIDUnique       RuleID = "unit_id_unique"

	// Placement (critical)
	RuleClassInSupportedParent RuleID = "class_in_supported_parent"
	RuleClassItemAmountChain   RuleID = "class_item_amount_chain"

	// Class structure
	RuleClassHasCode            RuleID = "class_has_code"
	RuleClassCodeUniqueInParent RuleID = "class_code_unique_in_parent"
	RuleClassHasItems           RuleID = "class_has_items"
	RuleClassNoEmptyChildren    RuleID = "class_no_empty_children"

	// Class limits
	RuleLimitMaxOccurrencesValid    RuleID = "limit_max_occurrences_valid"
	RuleLimitMaxAmountValid         RuleID = "limit_max_amount_valid"
	RuleLimitAppliesToCodesNonempty RuleID = "limit_applies_to_codes_nonempty"
	RuleLimitAppliesToSameClass     RuleID = "limit_applies_to_same_class"
	RuleLimitOccurrenceCapRuntime   RuleID = "limit_occurrence_cap_runtime"
	RuleLimitAmountCapRuntime       RuleID = "limit_amount_cap_runtime"

	// Item structure
	RuleItemHasInternalCode          RuleID = "item_has_internal_code"
	RuleItemInternalCodeUnique       RuleID = "item_internal_code_unique"
	RuleItemHasName                  RuleID = "item_has_name"
	RuleItemHasDescription           RuleID = "item_has_description"
	RuleItemHasOneCharacteristics    RuleID = "item_has_one_characteristics"
	RuleItemHasAmountBlocks          RuleID = "item_has_amount_blocks"
	RuleItemMinOccurrenceValid       RuleID = "item_min_occurrence_valid"
	RuleItemMaxOccurrenceValid       RuleID = "item_max_occurrence_valid"
	RuleItemOccurrenceRangeValid     RuleID = "item_occurrence_range_valid"
	RuleItemAmountBasisRequired      RuleID = "item_amount_basis_required"
	RuleItemPercentageCodeWhenNeeded RuleID = "item_percentage_code_when_needed"

	// Characteristics
	RuleCharRequirementRequired    RuleID = "char_requirement_required"
	RuleCharConditionalHasCodes    RuleID = "char_conditional_has_codes"
	RuleCharNoSelfReference        RuleID = "char_no_self_reference"
	RuleCharConditionalCodeExists  RuleID = "char_conditional_code_exists"
	RuleCharLifecycleRequired      RuleID = "char_lifecycle_required"
	RuleCharFrequencyValid         RuleID = "char_frequency_valid"
	RuleCharRefundabilityValid     RuleID = "char_refundability_valid"
	RuleCharRefundDetailsRequired  RuleID = "char_refund_details_required"
	RuleCharRefundMaxTypeRequired  RuleID = "char_refund_max_type_required"
	RuleCharRefundMaxRequired      RuleID = "char_refund_max_required"
	RuleCharRefundPerTypeValid     RuleID = "char_refund_per_type_valid"
	RuleCharRequirementDescNonempty RuleID = "char_requirement_desc_nonempty"

	// Amount basis
	RuleBasisEnumValid               RuleID = "basis_enum_valid"
	RuleBasisExplicitAmountsNonempty RuleID = "basis_explicit_amounts_nonempty"
	RuleBasisExplicitPercentageEmpty RuleID = "basis_explicit_percentage_empty"
	RuleBasisPercentageHasValue      RuleID = "basis_percentage_has_value"
	RuleBasisPercentageAmountsEmpty  RuleID = "basis_percentage_amounts_empty"
	RuleBasisPercentageHasCode       RuleID = "basis_percentage_has_code"
	RuleBasisPercentageNoCircular    RuleID = "basis_percentage_no_circular"
	RuleBasisRangeOneAmount          RuleID = "basis_range_one_amount"
	RuleBasisSteppedMinTwo           RuleID = "basis_stepped_min_two"
	RuleBasisSteppedOrder            RuleID = "basis_stepped_order"
	RuleBasisVariableExactlyOne      RuleID = "basis_variable_exactly_one"
	RuleBasisIncludedEmpty           RuleID = "basis_included_empty"
	RuleBasisIncludedAmountsEmpty    RuleID = "basis_included_amounts_empty"
	RuleBasisIncludedPercentageEmpty RuleID = "basis_included_percentage_empty"

	// Amount format
	RuleAmountBlockHasValue    RuleID = "amount_block_has_value"
	RuleAmountDecimalValid     RuleID = "amount_decimal_valid"
	RuleAmountNonnegative      RuleID = "amount_nonnegative"
	RulePercentageDecimalValid RuleID = "percentage_decimal_valid"
	RulePercentageNonnegative  RuleID = "percentage_nonnegative"
	RulePercentageOver100      RuleID = "percentage_over_100"
	RuleTermBasisValid         RuleID = "term_basis_valid"
	RuleStartTermOrder         RuleID = "start_term_order"
	RuleScheduleStartRequired  RuleID = "schedule_start_required"
	RuleScheduleDateParseable  RuleID = "schedule_date_parseable"
	RuleDurationIntegerValid   RuleID = "duration_integer_valid"

	// Frequency alignment
	RuleAmountPerTypeEnum        RuleID = "amount_per_type_enum"
	RuleAmountPerApplicantNote   RuleID = "amount_per_applicant_note"
	RuleFrequencyBasisCoherent   RuleID = "frequency_basis_coherent"
	RuleOnetimeWithTermBasis     RuleID = "onetime_with_term_basis"
	RuleFreqPeriodConflict       RuleID = "freq_period_conflict"
	RuleMonthlyRangeWarning      RuleID = "monthly_range_warning"
	RuleDuringTermNeedsFrequency RuleID = "during_term_needs_frequency"

	// Pet items
	RulePetAllowedEnum           RuleID = "pet_allowed_enum"
	RulePetNotAllowedAmountsEmpty RuleID = "pet_not_allowed_amounts_empty"
	RulePetWeightFormat          RuleID = "pet_weight_format"
	RulePetDepositRefundFields   RuleID = "pet_deposit_refund_fields"

	// Parking items
	RuleParkingElectricEnum RuleID = "parking_electric_enum"
	RuleParkingSpaceEnum    RuleID = "parking_space_enum"

	// Storage items
	RuleStorageDimensionValid RuleID = "storage_dimension_valid"
	RuleStorageUoMValid       RuleID = "storage_uom_valid"

	// Cross-validation
	RuleClassCodeUniqueInScope   RuleID = "class_code_unique_in_scope"
	RuleItemCodeUniqueInProperty RuleID = "item_code_unique_in_property"
	RuleReferenceCodeExists      RuleID = "reference_code_exists"
	RuleReferenceNoSelf          RuleID = "reference_no_self"
	RuleReferenceNoCircular      RuleID = "reference_no_circular"
	RuleReferenceNotIncluded     RuleID = "reference_not_included"
	RuleIncludedNoRecurring      RuleID = "included_no_recurring"

	// Data quality
	RuleTextRequiredNonempty    RuleID = "text_required_nonempty"
	RuleNumericNoSymbols        RuleID = "numeric_no_symbols"
	RuleNumericNoPlus           RuleID = "numeric_no_plus"
	RuleTextNoControlChars      RuleID = "text_no_control_chars"
	RuleDateWindowOverlapItem   RuleID = "date_window_overlap_item"
	RuleDateWindowTouching      RuleID = "date_window_touching"
	RuleItemNameUniqueInClass   RuleID = "item_name_unique_in_class"
	RuleItemDuplicateDefinition RuleID = "item_duplicate_definition"
)

// ruleTable is the closed set of rules the engine can report.
// The set is fixed at compile time; there is no runtime registration.
var ruleTable = []Rule{
	{RuleValidationCancelled, SeverityWarning, "validation stopped before all phases ran"},

	{RuleDocParseFailed, SeverityError, "document could not be parsed into a well-formed tree"},
	{RuleRootIsPhysicalProperty, SeverityError, "root element must be PhysicalProperty"},
	{RulePropertyExists, SeverityError, "PhysicalProperty must contain at least one Property"},
	{RulePropertyHasID, SeverityError, "every Property needs a non-empty IDValue attribute"},
	{RulePropertyIDUnique, SeverityError, "Property IDValue values must be unique document-wide"},

	{RuleIDNoWhitespace, SeverityError, "identifiers must be non-empty and free of stray whitespace"},
	{RuleBuildingIDUnique, SeverityError, "Building IDValue values must be unique within a Property"},
	{RuleFloorplanIDUnique, SeverityError, "Floorplan IDValue values must be unique within a Property"},
	{RuleUnitIDUnique, SeverityError, "ILS_Unit IDValue values must be unique within a Property"},

	{RuleClassInSupportedParent, SeverityError, "ChargeOfferClass only allowed under Property, Building, Floorplan or ILS_Unit"},
	{RuleClassItemAmountChain, SeverityError, "offer items must sit inside a class and amounts inside an item"},

	{RuleClassHasCode, SeverityError, "ChargeOfferClass needs a non-empty Code attribute"},
	{RuleClassCodeUniqueInParent, SeverityError, "class Code values must be unique among siblings"},
	{RuleClassHasItems, SeverityError, "a class must contain at least one offer item"},
	{RuleClassNoEmptyChildren, SeverityWarning, "class children must not hold whitespace-only text"},

	{RuleLimitMaxOccurrencesValid, SeverityError, "Limits/MaximumOccurences must be an integer >= 1"},
	{RuleLimitMaxAmountValid, SeverityError, "Limits/MaximumAmount must be a plain decimal >= 0"},
	{RuleLimitAppliesToCodesNonempty, SeverityError, "AppliesTo/InternalCode entries must be non-empty"},
	{RuleLimitAppliesToSameClass, SeverityWarning, "AppliesTo codes should resolve within the same class"},
	{RuleLimitOccurrenceCapRuntime, SeverityInfo, "class declares an occurrence cap enforced at runtime"},
	{RuleLimitAmountCapRuntime, SeverityInfo, "class declares an amount cap enforced at runtime"},

	{RuleItemHasInternalCode, SeverityError, "offer items need a non-empty InternalCode attribute"},
	{RuleItemInternalCodeUnique, SeverityError, "InternalCode values must be unique within a class"},
	{RuleItemHasName, SeverityError, "offer items need a non-empty Name"},
	{RuleItemHasDescription, SeverityError, "offer items need a non-empty Description"},
	{RuleItemHasOneCharacteristics, SeverityError, "offer items need exactly one Characteristics block"},
	{RuleItemHasAmountBlocks, SeverityError, "offer items need at least one ChargeOfferAmount"},
	{RuleItemMinOccurrenceValid, SeverityError, "ItemMinimumOccurrences must be an integer >= 0"},
	{RuleItemMaxOccurrenceValid, SeverityError, "ItemMaximumOccurrences must be an integer >= 1"},
	{RuleItemOccurrenceRangeValid, SeverityError, "minimum occurrences must not exceed maximum"},
	{RuleItemAmountBasisRequired, SeverityError, "AmountBasis may be empty only for Included items"},
	{RuleItemPercentageCodeWhenNeeded, SeverityError, "PercentageOfCode only belongs with a Percentage Of basis"},

	{RuleCharRequirementRequired, SeverityError, "Characteristics needs a valid ChargeRequirement"},
	{RuleCharConditionalHasCodes, SeverityError, "Conditional items must list conditional scope codes"},
	{RuleCharNoSelfReference, SeverityError, "an item cannot be conditional on itself"},
	{RuleCharConditionalCodeExists, SeverityError, "conditional scope codes must reference existing items"},
	{RuleCharLifecycleRequired, SeverityError, "Characteristics needs a valid Lifecycle"},
	{RuleCharFrequencyValid, SeverityError, "PaymentFrequency must use the closed enumeration"},
	{RuleCharRefundabilityValid, SeverityError, "Refundability must use the closed enumeration"},
	{RuleCharRefundDetailsRequired, SeverityError, "refundable items need a RefundDetails block"},
	{RuleCharRefundMaxTypeRequired, SeverityError, "refundable items need a valid RefundMaxType"},
	{RuleCharRefundMaxRequired, SeverityError, "refundable items need a RefundMax decimal >= 0"},
	{RuleCharRefundPerTypeValid, SeverityError, "RefundPerType must use the closed enumeration"},
	{RuleCharRequirementDescNonempty, SeverityError, "RequirementDescription must not be whitespace-only"},

	{RuleBasisEnumValid, SeverityError, "AmountBasis must use the closed enumeration"},
	{RuleBasisExplicitAmountsNonempty, SeverityError, "Explicit basis requires at least one amount value"},
	{RuleBasisExplicitPercentageEmpty, SeverityError, "Explicit basis forbids a percentage value"},
	{RuleBasisPercentageHasValue, SeverityError, "Percentage Of basis requires a percentage value"},
	{RuleBasisPercentageAmountsEmpty, SeverityError, "Percentage Of basis forbids amount values"},
	{RuleBasisPercentageHasCode, SeverityError, "Percentage Of basis requires a PercentageOfCode"},
	{RuleBasisPercentageNoCircular, SeverityError, "percentage-of references must not form a cycle"},
	{RuleBasisRangeOneAmount, SeverityError, "Within Range basis permits exactly one amount value"},
	{RuleBasisSteppedMinTwo, SeverityError, "Stepped basis requires at least two amount values"},
	{RuleBasisSteppedOrder, SeverityError, "Stepped amounts must be non-decreasing in declaration order"},
	{RuleBasisVariableExactlyOne, SeverityError, "Variable basis requires exactly one of amounts or percentage"},
	{RuleBasisIncludedEmpty, SeverityError, "Included items must not declare an AmountBasis"},
	{RuleBasisIncludedAmountsEmpty, SeverityError, "Included items must not carry amount values"},
	{RuleBasisIncludedPercentageEmpty, SeverityError, "Included items must not carry a percentage"},

	{RuleAmountBlockHasValue, SeverityError, "amount blocks need at least one of Amounts or Percentage"},
	{RuleAmountDecimalValid, SeverityError, "amounts must be decimals with at most two fraction digits"},
	{RuleAmountNonnegative, SeverityError, "amounts must be >= 0"},
	{RulePercentageDecimalValid, SeverityError, "percentages must be valid decimals"},
	{RulePercentageNonnegative, SeverityError, "percentages must be >= 0"},
	{RulePercentageOver100, SeverityInfo, "percentages above 100 are allowed"},
	{RuleTermBasisValid, SeverityError, "TermBasis must be Whole Lease or Whole Term"},
	{RuleStartTermOrder, SeverityError, "StartTermEarliest must not follow StartTermLatest"},
	{RuleScheduleStartRequired, SeverityError, "scheduled pricing requires StartTermEarliest"},
	{RuleScheduleDateParseable, SeverityError, "schedule dates must be in a recognized format"},
	{RuleDurationIntegerValid, SeverityError, "Duration must be an integer >= 0"},

	{RuleAmountPerTypeEnum, SeverityError, "AmountPerType must use the closed enumeration"},
	{RuleAmountPerApplicantNote, SeverityInfo, "per-applicant amounts multiply by applicant count"},
	{RuleFrequencyBasisCoherent, SeverityError, "recurring items cannot take a percentage of one-time items"},
	{RuleOnetimeWithTermBasis, SeverityInfo, "one-time charges may carry a TermBasis"},
	{RuleFreqPeriodConflict, SeverityError, "Hourly/Per-occurrence frequency conflicts with per-period amounts"},
	{RuleMonthlyRangeWarning, SeverityWarning, "monthly frequency with a range basis is suspect"},
	{RuleDuringTermNeedsFrequency, SeverityError, "During Term charges need a PaymentFrequency"},

	{RulePetAllowedEnum, SeverityError, "pet Allowed must be Yes or No"},
	{RulePetNotAllowedAmountsEmpty, SeverityError, "disallowed pets cannot carry amounts"},
	{RulePetWeightFormat, SeverityError, "MaximumWeight must be a number with an optional unit"},
	{RulePetDepositRefundFields, SeverityError, "pet deposits need refund max type and value"},

	{RuleParkingElectricEnum, SeverityError, "parking Electric must be None or Available"},
	{RuleParkingSpaceEnum, SeverityError, "parking space fields must be Available or None"},

	{RuleStorageDimensionValid, SeverityError, "storage dimensions must be decimals >= 0"},
	{RuleStorageUoMValid, SeverityError, "StorageUoM must be a recognized unit token"},

	{RuleClassCodeUniqueInScope, SeverityError, "class Code values must be unique anywhere within a parent"},
	{RuleItemCodeUniqueInProperty, SeverityWarning, "InternalCode values should be unique within a Property"},
	{RuleReferenceCodeExists, SeverityError, "referenced internal codes must exist"},
	{RuleReferenceNoSelf, SeverityError, "an item cannot reference itself"},
	{RuleReferenceNoCircular, SeverityError, "reference chains must not form cycles"},
	{RuleReferenceNotIncluded, SeverityError, "cannot take a percentage of an Included item"},
	{RuleIncludedNoRecurring, SeverityError, "Included items cannot have recurring billing"},

	{RuleTextRequiredNonempty, SeverityError, "required text fields must be non-empty after trimming"},
	{RuleNumericNoSymbols, SeverityError, "numeric fields must not carry currency symbols or separators"},
	{RuleNumericNoPlus, SeverityError, "numeric fields must not carry a leading plus sign"},
	{RuleTextNoControlChars, SeverityError, "text fields must not contain control characters"},
	{RuleDateWindowOverlapItem, SeverityError, "scheduled windows within an item must not overlap"},
	{RuleDateWindowTouching, SeverityWarning, "scheduled windows within an item touch on a boundary date"},
	{RuleItemNameUniqueInClass, SeverityError, "item names must be unique within a class"},
	{RuleItemDuplicateDefinition, SeverityError, "items with identical definitions must not be duplicated"},
}

var ruleIndex = func() map[RuleID]Rule {
	idx := make(map[RuleID]Rule, len(ruleTable))
	for _, r := range ruleTable {
		idx[r.ID] = r
	}
	return idx
}()

// Rules returns the full rule table in declaration order.
// The returned slice is shared; callers must not modify it.
func Rules() []Rule {
	return ruleTable
}

// LookupRule returns the rule for an identifier.
func LookupRule(id RuleID) (Rule, bool) {
	r, ok := ruleIndex[id]
	return r, ok
}
