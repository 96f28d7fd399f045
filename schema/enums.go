package schema

import "strings"

// ChargeRequirement classifies whether a fee applies unconditionally,
// optionally, or under conditions tied to other items.
type ChargeRequirement string

const (
	RequirementIncluded    ChargeRequirement = "Included"
	RequirementMandatory   ChargeRequirement = "Mandatory"
	RequirementOptional    ChargeRequirement = "Optional"
	RequirementSituational ChargeRequirement = "Situational"
	RequirementConditional ChargeRequirement = "Conditional"
)

var chargeRequirements = map[string]ChargeRequirement{
	"Included":    RequirementIncluded,
	"Mandatory":   RequirementMandatory,
	"Optional":    RequirementOptional,
	"Situational": RequirementSituational,
	"Conditional": RequirementConditional,
}

// ParseChargeRequirement maps a raw value onto the closed requirement set.
func ParseChargeRequirement(s string) (ChargeRequirement, bool) {
	v, ok := chargeRequirements[s]
	return v, ok
}

// ChargeRequirements returns the allowed values in schema order.
func ChargeRequirements() []string {
	return []string{"Included", "Mandatory", "Optional", "Situational", "Conditional"}
}

// Lifecycle names the lease stage at which a fee is assessed.
type Lifecycle string

const (
	LifecycleAtApplication Lifecycle = "At Application"
	LifecycleMoveIn        Lifecycle = "Move-in"
	LifecycleDuringTerm    Lifecycle = "During Term"
	LifecycleMoveOut       Lifecycle = "Move-out"
)

var lifecycles = map[string]Lifecycle{
	"At Application": LifecycleAtApplication,
	"Move-in":        LifecycleMoveIn,
	"During Term":    LifecycleDuringTerm,
	"Move-out":       LifecycleMoveOut,
}

// ParseLifecycle maps a raw value onto the closed lifecycle set.
func ParseLifecycle(s string) (Lifecycle, bool) {
	v, ok := lifecycles[s]
	return v, ok
}

// Lifecycles returns the allowed values in schema order.
func Lifecycles() []string {
	return []string{"At Application", "Move-in", "During Term", "Move-out"}
}

// PaymentFrequency names how often a fee recurs.
type PaymentFrequency string

const (
	FrequencyOneTime       PaymentFrequency = "One-time"
	FrequencyMonthly       PaymentFrequency = "Monthly"
	FrequencyQuarterly     PaymentFrequency = "Quarterly"
	FrequencyAnnually      PaymentFrequency = "Annually"
	FrequencyHourly        PaymentFrequency = "Hourly"
	FrequencyPerOccurrence PaymentFrequency = "Per-occurrence"
)

var paymentFrequencies = map[string]PaymentFrequency{
	"One-time":       FrequencyOneTime,
	"Monthly":        FrequencyMonthly,
	"Quarterly":      FrequencyQuarterly,
	"Annually":       FrequencyAnnually,
	"Hourly":         FrequencyHourly,
	"Per-occurrence": FrequencyPerOccurrence,
}

// ParsePaymentFrequency maps a raw value onto the closed frequency set.
func ParsePaymentFrequency(s string) (PaymentFrequency, bool) {
	v, ok := paymentFrequencies[s]
	return v, ok
}

// PaymentFrequencies returns the allowed values in schema order.
func PaymentFrequencies() []string {
	return []string{"One-time", "Monthly", "Quarterly", "Annually", "Hourly", "Per-occurrence"}
}

// IsRecurring reports whether the frequency repeats on a calendar cadence.
func (f PaymentFrequency) IsRecurring() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}
	return false
}

// IsOneTime reports whether the frequency names a single assessment.
func (f PaymentFrequency) IsOneTime() bool {
	return f == FrequencyOneTime
}

// Refundability classifies whether a paid fee can come back.
type Refundability string

const (
	NonRefundable Refundability = "Non-refundable"
	Refundable    Refundability = "Refundable"
	Deposit       Refundability = "Deposit"
)

var refundabilities = map[string]Refundability{
	"Non-refundable": NonRefundable,
	"Refundable":     Refundable,
	"Deposit":        Deposit,
}

// ParseRefundability maps a raw value onto the closed refundability set.
func ParseRefundability(s string) (Refundability, bool) {
	v, ok := refundabilities[s]
	return v, ok
}

// Refundabilities returns the allowed values in schema order.
func Refundabilities() []string {
	return []string{"Non-refundable", "Refundable", "Deposit"}
}

// RequiresDetails reports whether the value obliges the refund detail block.
func (r Refundability) RequiresDetails() bool {
	return r == Refundable || r == Deposit
}

// RefundMaxType qualifies how a RefundMax value is expressed.
type RefundMaxType string

const (
	RefundMaxAmount     RefundMaxType = "Amount"
	RefundMaxPercentage RefundMaxType = "Percentage"
)

// ParseRefundMaxType maps a raw value onto the closed refund max type set.
func ParseRefundMaxType(s string) (RefundMaxType, bool) {
	switch s {
	case "Amount":
		return RefundMaxAmount, true
	case "Percentage":
		return RefundMaxPercentage, true
	}
	return "", false
}

// RefundMaxTypes returns the allowed values in schema order.
func RefundMaxTypes() []string {
	return []string{"Amount", "Percentage"}
}

// RefundPerType names the unit a refund applies per.
type RefundPerType string

const (
	RefundPerUnit     RefundPerType = "Per Unit"
	RefundPerProperty RefundPerType = "Per Property"
	RefundPerBuilding RefundPerType = "Per Building"
)

var refundPerTypes = map[string]RefundPerType{
	"Per Unit":     RefundPerUnit,
	"Per Property": RefundPerProperty,
	"Per Building": RefundPerBuilding,
}

// ParseRefundPerType maps a raw value onto the closed refund per type set.
func ParseRefundPerType(s string) (RefundPerType, bool) {
	v, ok := refundPerTypes[s]
	return v, ok
}

// RefundPerTypes returns the allowed values in schema order.
func RefundPerTypes() []string {
	return []string{"Per Unit", "Per Property", "Per Building"}
}

// AmountBasis names how an item's amount is expressed.
type AmountBasis string

const (
	BasisExplicit     AmountBasis = "Explicit"
	BasisPercentageOf AmountBasis = "Percentage Of"
	BasisWithinRange  AmountBasis = "Within Range"
	BasisStepped      AmountBasis = "Stepped"
	BasisVariable     AmountBasis = "Variable"
	BasisIncluded     AmountBasis = "Included"
)

var amountBases = map[string]AmountBasis{
	"Explicit":      BasisExplicit,
	"Percentage Of": BasisPercentageOf,
	"Within Range":  BasisWithinRange,
	// Legacy feeds still emit the 4.x label for ranged amounts.
	"Range or Variable": BasisWithinRange,
	"Stepped":           BasisStepped,
	"Variable":          BasisVariable,
	"Included":          BasisIncluded,
}

// ParseAmountBasis maps a raw value onto the closed basis set, folding
// the legacy "Range or Variable" label into Within Range.
func ParseAmountBasis(s string) (AmountBasis, bool) {
	v, ok := amountBases[s]
	return v, ok
}

// AmountBases returns the canonical values in schema order.
func AmountBases() []string {
	return []string{"Explicit", "Percentage Of", "Within Range", "Stepped", "Variable", "Included"}
}

// PricingBases returns the bases an item may declare when it is not
// priced into the rent. "Included" belongs to the requirement, so it is
// excluded here.
func PricingBases() []string {
	return []string{"Explicit", "Percentage Of", "Within Range", "Stepped", "Variable"}
}

// TermBasis names the lease span a percentage amount is computed over.
type TermBasis string

const (
	TermWholeLease TermBasis = "Whole Lease"
	TermWholeTerm  TermBasis = "Whole Term"
)

// ParseTermBasis maps a raw value onto the closed term basis set.
func ParseTermBasis(s string) (TermBasis, bool) {
	switch s {
	case "Whole Lease":
		return TermWholeLease, true
	case "Whole Term":
		return TermWholeTerm, true
	}
	return "", false
}

// TermBases returns the allowed values in schema order.
func TermBases() []string {
	return []string{"Whole Lease", "Whole Term"}
}

// AmountPerType names the unit an amount is charged per.
type AmountPerType string

const (
	PerItem        AmountPerType = "Item"
	PerApplicant   AmountPerType = "Applicant"
	PerLeaseholder AmountPerType = "Leaseholder"
	PerPerson      AmountPerType = "Person"
	PerPeriod      AmountPerType = "Period"
)

var amountPerTypes = map[string]AmountPerType{
	"Item":        PerItem,
	"Applicant":   PerApplicant,
	"Leaseholder": PerLeaseholder,
	"Person":      PerPerson,
	"Period":      PerPeriod,
}

// ParseAmountPerType maps a raw value onto the closed per type set.
func ParseAmountPerType(s string) (AmountPerType, bool) {
	v, ok := amountPerTypes[s]
	return v, ok
}

// AmountPerTypes returns the allowed values in schema order.
func AmountPerTypes() []string {
	return []string{"Item", "Applicant", "Leaseholder", "Person", "Period"}
}

// PetAllowed is the yes/no flag on pet offer items.
type PetAllowed string

const (
	PetYes PetAllowed = "Yes"
	PetNo  PetAllowed = "No"
)

// ParsePetAllowed maps a raw value onto the closed allowed set.
func ParsePetAllowed(s string) (PetAllowed, bool) {
	switch s {
	case "Yes":
		return PetYes, true
	case "No":
		return PetNo, true
	}
	return "", false
}

// PetAllowedValues returns the allowed values in schema order.
func PetAllowedValues() []string {
	return []string{"Yes", "No"}
}

// ParkingAvailability is the availability flag on parking space elements.
type ParkingAvailability string

const (
	ParkingAvailable ParkingAvailability = "Available"
	ParkingNone      ParkingAvailability = "None"
)

// ParseParkingAvailability maps a raw value onto the closed availability set.
func ParseParkingAvailability(s string) (ParkingAvailability, bool) {
	switch s {
	case "Available":
		return ParkingAvailable, true
	case "None":
		return ParkingNone, true
	}
	return "", false
}

// ParkingAvailabilities returns the allowed values in schema order.
func ParkingAvailabilities() []string {
	return []string{"Available", "None"}
}

// storageUnits is the closed set of storage unit-of-measure tokens,
// lowercased for case-insensitive matching.
var storageUnits = map[string]bool{
	"sqft":        true,
	"sqm":         true,
	"cubicfeet":   true,
	"cubicmeters": true,
	"feet":        true,
	"meters":      true,
	"inches":      true,
}

// IsStorageUnit reports whether the value is a recognized storage
// unit of measure. Matching ignores case and surrounding whitespace.
func IsStorageUnit(s string) bool {
	return storageUnits[strings.ToLower(strings.TrimSpace(s))]
}

// StorageUnits returns the recognized unit tokens in a stable order.
func StorageUnits() []string {
	return []string{"sqft", "sqm", "cubicfeet", "cubicmeters", "feet", "meters", "inches"}
}
