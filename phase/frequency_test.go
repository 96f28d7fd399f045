package phase

import (
	"testing"

	mv "github.com/mitsval/validator"
)

func TestFrequencyPerType(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<AmountPerType>Tenant</AmountPerType>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
		<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>`)
	wantOnly(t, runPhase(t, NewFrequency(), doc), mv.RuleAmountPerTypeEnum)
}

func TestFrequencyPerApplicantNote(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<AmountPerType>Applicant</AmountPerType>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle></Characteristics>
		<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewFrequency(), doc)
	wantOnly(t, msgs, mv.RuleAmountPerApplicantNote)
	if msgs[0].Severity != mv.SeverityInfo {
		t.Error("per-applicant note must be informational")
	}
}

func TestFrequencyDuringTermNeedsCadence(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>During Term</Lifecycle></Characteristics>
		<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>`)
	wantOnly(t, runPhase(t, NewFrequency(), doc), mv.RuleDuringTermNeedsFrequency)
}

func TestFrequencyOnetimeTermBasis(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>Move-in</Lifecycle>
			<PaymentFrequency>One-time</PaymentFrequency></Characteristics>
		<ChargeOfferAmount><Amounts>5</Amounts><TermBasis>Whole Lease</TermBasis></ChargeOfferAmount>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewFrequency(), doc)
	wantOnly(t, msgs, mv.RuleOnetimeWithTermBasis)
	if msgs[0].Severity != mv.SeverityInfo {
		t.Error("one-time term basis note must be informational")
	}
}

func TestFrequencyPeriodConflict(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<AmountPerType>Period</AmountPerType>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>During Term</Lifecycle>
			<PaymentFrequency>Per-occurrence</PaymentFrequency></Characteristics>
		<ChargeOfferAmount><Amounts>5</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>`)
	wantOnly(t, runPhase(t, NewFrequency(), doc), mv.RuleFreqPeriodConflict)
}

func TestFrequencyMonthlyRange(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="X"><Name>n</Name><Description>d</Description>
		<AmountBasis>Within Range</AmountBasis>
		<Characteristics><ChargeRequirement>Optional</ChargeRequirement><Lifecycle>During Term</Lifecycle>
			<PaymentFrequency>Monthly</PaymentFrequency></Characteristics>
		<ChargeOfferAmount><Amounts>50</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewFrequency(), doc)
	wantOnly(t, msgs, mv.RuleMonthlyRangeWarning)
	if !msgs[0].IsWarning() {
		t.Error("monthly range finding must be a warning")
	}
}

func TestFrequencyRecurringOverOnetimeTarget(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="RENT"><Name>Rent</Name><Description>d</Description>
		<AmountBasis>Explicit</AmountBasis>
		<Characteristics><ChargeRequirement>Mandatory</ChargeRequirement><Lifecycle>At Application</Lifecycle>
			<PaymentFrequency>One-time</PaymentFrequency></Characteristics>
		<ChargeOfferAmount><Amounts>1200</Amounts></ChargeOfferAmount>
	</ChargeOfferItem>
	<ChargeOfferItem InternalCode="SVC"><Name>Service</Name><Description>d</Description>
		<AmountBasis>Percentage Of</AmountBasis>
		<Characteristics><ChargeRequirement>Mandatory</ChargeRequirement><Lifecycle>During Term</Lifecycle>
			<PaymentFrequency>Monthly</PaymentFrequency></Characteristics>
		<ChargeOfferAmount><Percentage>5</Percentage><PercentageOfCode>RENT</PercentageOfCode></ChargeOfferAmount>
	</ChargeOfferItem>`)

	msgs := runPhase(t, NewFrequency(), doc)
	wantOnly(t, msgs, mv.RuleFrequencyBasisCoherent)
	if msgs[0].Details["target"] != "RENT" {
		t.Errorf("details = %v", msgs[0].Details)
	}
}
