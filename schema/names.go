// Package schema holds the closed vocabulary of the MITS 5.0 fee schema:
// element and attribute names, enumerated value sets, and the numeric and
// date formats amount fields must satisfy.
package schema

// Element names.
const (
	ElemPhysicalProperty = "PhysicalProperty"
	ElemProperty         = "Property"
	ElemBuilding         = "Building"
	ElemFloorplan        = "Floorplan"
	ElemUnit             = "ILS_Unit"

	ElemChargeOfferClass = "ChargeOfferClass"
	ElemChargeOfferItem  = "ChargeOfferItem"
	ElemPetOfferItem     = "PetOfferItem"
	ElemParkingOfferItem = "ParkingOfferItem"
	ElemStorageOfferItem = "StorageOfferItem"

	ElemChargeOfferAmount = "ChargeOfferAmount"
	ElemAmounts           = "Amounts"
	ElemPercentage        = "Percentage"
	ElemPercentageOfCode  = "PercentageOfCode"
	ElemTermBasis         = "TermBasis"
	ElemStartTermEarliest = "StartTermEarliest"
	ElemStartTermLatest   = "StartTermLatest"
	ElemDuration          = "Duration"

	ElemName        = "Name"
	ElemDescription = "Description"

	ElemCharacteristics        = "Characteristics"
	ElemChargeRequirement      = "ChargeRequirement"
	ElemRequirementDescription = "RequirementDescription"
	ElemLifecycle              = "Lifecycle"
	ElemPaymentFrequency       = "PaymentFrequency"
	ElemRefundability          = "Refundability"
	ElemRefundDetails          = "RefundDetails"
	ElemRefundMax              = "RefundMax"
	ElemRefundMaxType          = "RefundMaxType"
	ElemRefundPerType          = "RefundPerType"
	ElemConditionalInternal    = "ConditionalInternalCode"
	ElemConditionalScope       = "ConditionalScope"
	ElemInternalCode           = "InternalCode"

	ElemItemMinOccurrences = "ItemMinimumOccurrences"
	ElemItemMaxOccurrences = "ItemMaximumOccurrences"
	ElemAmountBasis        = "AmountBasis"
	ElemAmountPerType      = "AmountPerType"

	ElemLimits             = "Limits"
	ElemMaximumOccurences  = "MaximumOccurences" // schema spelling
	ElemMaximumAmount      = "MaximumAmount"
	ElemAppliesTo          = "AppliesTo"

	ElemPetAllowed    = "Allowed"
	ElemMaximumWeight = "MaximumWeight"

	ElemElectric     = "Electric"
	ElemRegularSpace = "RegularSpace"
	ElemHandicapped  = "Handicapped"

	ElemStorageUoM = "StorageUoM"
	ElemHeight     = "Height"
	ElemWidth      = "Width"
	ElemLength     = "Length"
)

// Attribute names.
const (
	AttrIDValue      = "IDValue"
	AttrCode         = "Code"
	AttrInternalCode = "InternalCode"
)

// feeParents is the whitelisted set of ancestors a ChargeOfferClass may
// appear under.
var feeParents = map[string]bool{
	ElemProperty:  true,
	ElemBuilding:  true,
	ElemFloorplan: true,
	ElemUnit:      true,
}

// IsFeeParent reports whether the tag is a supported fee ancestor context.
func IsFeeParent(tag string) bool {
	return feeParents[tag]
}

// FeeParents returns the supported fee ancestor tags in a stable order.
func FeeParents() []string {
	return []string{ElemProperty, ElemBuilding, ElemFloorplan, ElemUnit}
}

// itemTags is the closed set of offer item element names.
var itemTags = map[string]bool{
	ElemChargeOfferItem:  true,
	ElemPetOfferItem:     true,
	ElemParkingOfferItem: true,
	ElemStorageOfferItem: true,
}

// IsItemTag reports whether the tag names an offer item element.
func IsItemTag(tag string) bool {
	return itemTags[tag]
}

// ItemTags returns the offer item element names in a stable order.
func ItemTags() []string {
	return []string{ElemChargeOfferItem, ElemParkingOfferItem, ElemPetOfferItem, ElemStorageOfferItem}
}
