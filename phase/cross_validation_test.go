package phase

import (
	"testing"

	mv "github.com/mitsval/validator"
)

// pctItem builds a percentage-of item whose amount points at target.
func pctItem(code, target string) string {
	return `<ChargeOfferItem InternalCode="` + code + `"><Name>` + code + `</Name><Description>d</Description>
		<AmountBasis>Percentage Of</AmountBasis>
		<Characteristics><ChargeRequirement>Mandatory</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
		<ChargeOfferAmount><Percentage>5</Percentage><PercentageOfCode>` + target + `</PercentageOfCode></ChargeOfferAmount>
	</ChargeOfferItem>`
}

func plainItem(code string) string {
	return `<ChargeOfferItem InternalCode="` + code + `"><Name>` + code + `</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<Characteristics><ChargeRequirement>Mandatory</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
		<ChargeOfferAmount><Amounts>100</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>`
}

func TestCrossSelfReference(t *testing.T) {
	msgs := runPhase(t, NewCrossValidation(), itemDoc(pctItem("FEE", "FEE")))
	wantOnly(t, msgs, mv.RuleReferenceNoSelf)
}

func TestCrossDanglingReference(t *testing.T) {
	doc := itemDoc(pctItem("FEE", "MISSING"))

	// Dangling targets pass unless the optional check is on.
	wantNone(t, runPhase(t, NewCrossValidation(), doc))

	opts := mv.DefaultOptions()
	opts.CheckReferenceTargets = true
	msgs := runPhaseOpts(t, NewCrossValidation(), doc, opts)
	wantOnly(t, msgs, mv.RuleReferenceCodeExists)
}

func TestCrossReferenceNotIncluded(t *testing.T) {
	doc := itemDoc(pctItem("SVC", "WATER") +
		`<ChargeOfferItem InternalCode="WATER"><Name>Water</Name><Description>d</Description>
			<AmountBasis>Included</AmountBasis>
			<Characteristics><ChargeRequirement>Included</ChargeRequirement><Lifecycle>During Term</Lifecycle></Characteristics>
		</ChargeOfferItem>`)

	msgs := runPhase(t, NewCrossValidation(), doc)
	wantOnly(t, msgs, mv.RuleReferenceNotIncluded)
}

func TestCrossPercentageCycle(t *testing.T) {
	// A -> B -> C -> A
	doc := itemDoc(pctItem("A", "B") + pctItem("B", "C") + pctItem("C", "A"))

	msgs := runPhase(t, NewCrossValidation(), doc)
	wantOnly(t, msgs, mv.RuleBasisPercentageNoCircular)
}

func TestCrossTwoItemCycle(t *testing.T) {
	doc := itemDoc(pctItem("A", "B") + pctItem("B", "A"))
	msgs := runPhase(t, NewCrossValidation(), doc)
	wantOnly(t, msgs, mv.RuleBasisPercentageNoCircular)
}

func TestCrossChainWithoutCycle(t *testing.T) {
	doc := itemDoc(pctItem("A", "B") + pctItem("B", "C") + plainItem("C"))
	wantNone(t, runPhase(t, NewCrossValidation(), doc))
}

func TestCrossConditionalCycle(t *testing.T) {
	cond := func(code, target string) string {
		return `<ChargeOfferItem InternalCode="` + code + `"><Name>` + code + `</Name><Description>d</Description>
			<AmountBasis>Explicit</AmountBasis>
			<Characteristics><ChargeRequirement>Conditional</ChargeRequirement>
				<RequirementDescription>linked</RequirementDescription>
				<ConditionalInternalCode>` + target + `</ConditionalInternalCode>
				<Lifecycle>Move-in</Lifecycle></Characteristics>
			<ChargeOfferAmount><Amounts>10</Amounts></ChargeOfferAmount>
		</ChargeOfferItem>`
	}
	doc := itemDoc(cond("A", "B") + cond("B", "A"))

	msgs := runPhase(t, NewCrossValidation(), doc)
	wantOnly(t, msgs, mv.RuleReferenceNoCircular)
}

func TestCrossClassCodeScope(t *testing.T) {
	// Same code on classes at different depths of one property.
	doc := `<PhysicalProperty><Property IDValue="p1">
		<ChargeOfferClass Code="FEES">` + plainItem("A") + `</ChargeOfferClass>
		<Building IDValue="b1">
			<ChargeOfferClass Code="FEES">` + plainItem("B") + `</ChargeOfferClass>
		</Building>
	</Property></PhysicalProperty>`

	// Different scopes (Property vs Building): no finding.
	wantNone(t, runPhase(t, NewCrossValidation(), doc))
}

func TestCrossClassCodeSameScope(t *testing.T) {
	// Same code twice within one Property scope, under different parents.
	// Sibling duplicates belong to the class structure phase instead.
	doc := `<PhysicalProperty><Property IDValue="p1">
		<ChargeOfferClass Code="FEES">` + plainItem("A") + `</ChargeOfferClass>
		<Wrapper>
			<ChargeOfferClass Code="FEES">` + plainItem("B") + `</ChargeOfferClass>
		</Wrapper>
	</Property></PhysicalProperty>`

	msgs := runPhase(t, NewCrossValidation(), doc)
	wantOnly(t, msgs, mv.RuleClassCodeUniqueInScope)
}

func TestCrossItemCodeAcrossClasses(t *testing.T) {
	doc := `<PhysicalProperty><Property IDValue="p1">
		<ChargeOfferClass Code="FEES">` + plainItem("DUP") + `</ChargeOfferClass>
		<ChargeOfferClass Code="DEPOSITS">` + plainItem("DUP") + `</ChargeOfferClass>
	</Property></PhysicalProperty>`

	msgs := runPhase(t, NewCrossValidation(), doc)
	wantOnly(t, msgs, mv.RuleItemCodeUniqueInProperty)
	if !msgs[0].IsWarning() {
		t.Error("cross-class code reuse is a warning")
	}
}

func TestCrossIncludedRecurring(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="WATER"><Name>Water</Name><Description>d</Description>
		<AmountBasis>Included</AmountBasis>
		<Characteristics><ChargeRequirement>Included</ChargeRequirement><Lifecycle>During Term</Lifecycle>
			<PaymentFrequency>Monthly</PaymentFrequency></Characteristics>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewCrossValidation(), doc)
	wantOnly(t, msgs, mv.RuleIncludedNoRecurring)
}
