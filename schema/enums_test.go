package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChargeRequirement(t *testing.T) {
	for _, v := range ChargeRequirements() {
		got, ok := ParseChargeRequirement(v)
		assert.True(t, ok, v)
		assert.Equal(t, v, string(got))
	}
	_, ok := ParseChargeRequirement("mandatory")
	assert.False(t, ok, "matching is case-sensitive")
	_, ok = ParseChargeRequirement("")
	assert.False(t, ok)
}

func TestParseLifecycle(t *testing.T) {
	got, ok := ParseLifecycle("During Term")
	assert.True(t, ok)
	assert.Equal(t, LifecycleDuringTerm, got)

	_, ok = ParseLifecycle("Move In")
	assert.False(t, ok, "hyphenless spelling is not in the schema")
}

func TestPaymentFrequency(t *testing.T) {
	for _, v := range PaymentFrequencies() {
		_, ok := ParsePaymentFrequency(v)
		assert.True(t, ok, v)
	}

	assert.True(t, FrequencyMonthly.IsRecurring())
	assert.True(t, FrequencyQuarterly.IsRecurring())
	assert.True(t, FrequencyAnnually.IsRecurring())
	assert.False(t, FrequencyOneTime.IsRecurring())
	assert.False(t, FrequencyHourly.IsRecurring())
	assert.False(t, FrequencyPerOccurrence.IsRecurring())

	assert.True(t, FrequencyOneTime.IsOneTime())
	assert.False(t, FrequencyMonthly.IsOneTime())
}

func TestRefundability(t *testing.T) {
	assert.True(t, Refundable.RequiresDetails())
	assert.True(t, Deposit.RequiresDetails())
	assert.False(t, NonRefundable.RequiresDetails())

	_, ok := ParseRefundability("refundable")
	assert.False(t, ok)
}

func TestParseAmountBasis(t *testing.T) {
	for _, v := range AmountBases() {
		got, ok := ParseAmountBasis(v)
		assert.True(t, ok, v)
		assert.Equal(t, v, string(got))
	}

	// 4.x feeds still label ranges the old way.
	got, ok := ParseAmountBasis("Range or Variable")
	assert.True(t, ok)
	assert.Equal(t, BasisWithinRange, got)

	_, ok = ParseAmountBasis("Fixed")
	assert.False(t, ok)

	// Pricing bases are the full set minus Included.
	assert.NotContains(t, PricingBases(), string(BasisIncluded))
	assert.Len(t, PricingBases(), len(AmountBases())-1)
}

func TestSmallEnums(t *testing.T) {
	_, ok := ParseTermBasis("Whole Lease")
	assert.True(t, ok)
	_, ok = ParseTermBasis("Partial")
	assert.False(t, ok)

	_, ok = ParseRefundMaxType("Percentage")
	assert.True(t, ok)
	_, ok = ParseRefundPerType("Per Unit")
	assert.True(t, ok)

	_, ok = ParseAmountPerType("Applicant")
	assert.True(t, ok)
	_, ok = ParseAmountPerType("Tenant")
	assert.False(t, ok)

	_, ok = ParsePetAllowed("Yes")
	assert.True(t, ok)
	_, ok = ParsePetAllowed("yes")
	assert.False(t, ok)

	_, ok = ParseParkingAvailability("Available")
	assert.True(t, ok)
	_, ok = ParseParkingAvailability("Full")
	assert.False(t, ok)
}

func TestIsStorageUnit(t *testing.T) {
	assert.True(t, IsStorageUnit("sqft"))
	assert.True(t, IsStorageUnit("SQFT"), "unit matching ignores case")
	assert.True(t, IsStorageUnit(" CubicFeet "))
	assert.False(t, IsStorageUnit("acres"))
	assert.False(t, IsStorageUnit(""))
}

func TestTagSets(t *testing.T) {
	for _, tag := range FeeParents() {
		assert.True(t, IsFeeParent(tag), tag)
	}
	assert.False(t, IsFeeParent(ElemPhysicalProperty))
	assert.False(t, IsFeeParent(ElemChargeOfferClass))

	for _, tag := range ItemTags() {
		assert.True(t, IsItemTag(tag), tag)
	}
	assert.False(t, IsItemTag(ElemChargeOfferAmount))
}
