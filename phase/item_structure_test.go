package phase

import (
	"testing"

	mv "github.com/mitsval/validator"
)

func TestItemRequiredParts(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem></ChargeOfferItem>`)
	msgs := runPhase(t, NewItemStructure(), doc)

	for _, want := range []mv.RuleID{
		mv.RuleItemHasInternalCode,
		mv.RuleItemHasName,
		mv.RuleItemHasDescription,
		mv.RuleItemHasOneCharacteristics,
		mv.RuleItemHasAmountBlocks,
		mv.RuleItemAmountBasisRequired,
	} {
		if !hasRule(msgs, want) {
			t.Errorf("missing %s in %v", want, ruleIDs(msgs))
		}
	}
}

func TestItemBlankNameIsNotMissing(t *testing.T) {
	// Present-but-blank text belongs to the data quality sweep.
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>  </Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
		<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewItemStructure(), doc)
	if hasRule(msgs, mv.RuleItemHasName) {
		t.Errorf("blank name reported as missing: %v", ruleIDs(msgs))
	}
}

func TestItemDoubleCharacteristics(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
		<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewItemStructure(), doc)
	wantOnly(t, msgs, mv.RuleItemHasOneCharacteristics)
}

func TestItemIncludedExemptions(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>Water</Name><Description>Included in rent</Description>
		<Characteristics><ChargeRequirement>Included</ChargeRequirement><Lifecycle>During Term</Lifecycle></Characteristics>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewItemStructure(), doc)
	if hasRule(msgs, mv.RuleItemHasAmountBlocks) || hasRule(msgs, mv.RuleItemAmountBasisRequired) {
		t.Errorf("included items need no amounts: %v", ruleIDs(msgs))
	}
}

func TestItemIncludedBasisDoesNotExempt(t *testing.T) {
	// A payable item cannot dodge pricing by declaring basis "Included";
	// only an Included requirement exempts it.
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Included</AmountBasis>
		<Characteristics><ChargeRequirement>Mandatory</ChargeRequirement><Lifecycle>During Term</Lifecycle></Characteristics>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewItemStructure(), doc)
	if !hasRule(msgs, mv.RuleItemHasAmountBlocks) {
		t.Errorf("unpriced mandatory item accepted: %v", ruleIDs(msgs))
	}
}

func TestItemCodeUniqueness(t *testing.T) {
	doc := itemDoc(
		`<ChargeOfferItem InternalCode="PET"><Name>a</Name><Description>d</Description>
			<AmountBasis>Explicit</AmountBasis>
			<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
			<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
		</ChargeOfferItem>` +
			`<ChargeOfferItem InternalCode="PET"><Name>b</Name><Description>d</Description>
			<AmountBasis>Explicit</AmountBasis>
			<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
			<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
		</ChargeOfferItem>`)

	msgs := runPhase(t, NewItemStructure(), doc)
	wantOnly(t, msgs, mv.RuleItemInternalCodeUnique)
}

func TestItemOccurrences(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
		want     []mv.RuleID
	}{
		{"valid range", "1", "3", nil},
		{"equal bounds", "2", "2", nil},
		{"min above max", "5", "2", []mv.RuleID{mv.RuleItemOccurrenceRangeValid}},
		{"negative min", "-1", "2", []mv.RuleID{mv.RuleItemMinOccurrenceValid}},
		{"zero max", "0", "0", []mv.RuleID{mv.RuleItemMaxOccurrenceValid}},
		{"garbage min", "two", "3", []mv.RuleID{mv.RuleItemMinOccurrenceValid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
				<AmountBasis>Explicit</AmountBasis>
				<ItemMinimumOccurrences>` + tt.min + `</ItemMinimumOccurrences>
				<ItemMaximumOccurrences>` + tt.max + `</ItemMaximumOccurrences>
				<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
				<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
			</ChargeOfferItem>`)
			msgs := runPhase(t, NewItemStructure(), doc)
			wantOnly(t, msgs, tt.want...)
		})
	}
}

func TestItemStrayPercentageCode(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
		<ChargeOfferAmount><Amounts>5</Amounts><PercentageOfCode>RENT</PercentageOfCode></ChargeOfferAmount>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewItemStructure(), doc)
	wantOnly(t, msgs, mv.RuleItemPercentageCodeWhenNeeded)
}
