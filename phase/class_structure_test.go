package phase

import (
	"testing"

	mv "github.com/mitsval/validator"
)

func TestClassShape(t *testing.T) {
	msgs := runPhase(t, NewClassStructure(),
		`<PhysicalProperty><Property IDValue="p1"><ChargeOfferClass></ChargeOfferClass></Property></PhysicalProperty>`)
	if !hasRule(msgs, mv.RuleClassHasCode) || !hasRule(msgs, mv.RuleClassHasItems) {
		t.Errorf("empty codeless class: %v", ruleIDs(msgs))
	}
}

func TestClassSiblingCodes(t *testing.T) {
	doc := `<PhysicalProperty><Property IDValue="p1">` +
		`<ChargeOfferClass Code="FEES"><ChargeOfferItem InternalCode="A"/></ChargeOfferClass>` +
		`<ChargeOfferClass Code="FEES"><ChargeOfferItem InternalCode="B"/></ChargeOfferClass>` +
		`<ChargeOfferClass Code="DEPOSITS"><ChargeOfferItem InternalCode="C"/></ChargeOfferClass>` +
		`</Property></PhysicalProperty>`

	msgs := runPhase(t, NewClassStructure(), doc)
	if countRule(msgs, mv.RuleClassCodeUniqueInParent) != 1 {
		t.Errorf("sibling duplicate: %v", ruleIDs(msgs))
	}
}

func TestClassEmptyChildren(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="A"/><Limits>   </Limits>`)
	msgs := runPhase(t, NewClassStructure(), doc)
	if countRule(msgs, mv.RuleClassNoEmptyChildren) != 1 {
		t.Errorf("whitespace-only child: %v", ruleIDs(msgs))
	}
}

func TestClassLimitsOccurrences(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  mv.RuleID
	}{
		{"valid cap", "3", mv.RuleLimitOccurrenceCapRuntime},
		{"zero", "0", mv.RuleLimitMaxOccurrencesValid},
		{"negative", "-1", mv.RuleLimitMaxOccurrencesValid},
		{"decimal", "1.5", mv.RuleLimitMaxOccurrencesValid},
		{"word", "three", mv.RuleLimitMaxOccurrencesValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := itemDoc(`<ChargeOfferItem InternalCode="A"/>` +
				`<Limits><MaximumOccurences>` + tt.value + `</MaximumOccurences></Limits>`)
			msgs := runPhase(t, NewClassLimits(), doc)
			wantOnly(t, msgs, tt.want)
		})
	}
}

func TestClassLimitsAmount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  mv.RuleID
	}{
		{"valid cap", "500.00", mv.RuleLimitAmountCapRuntime},
		{"negative", "-5", mv.RuleLimitMaxAmountValid},
		{"currency symbol", "$500", mv.RuleLimitMaxAmountValid},
		{"word", "lots", mv.RuleLimitMaxAmountValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := itemDoc(`<ChargeOfferItem InternalCode="A"/>` +
				`<Limits><MaximumAmount>` + tt.value + `</MaximumAmount></Limits>`)
			msgs := runPhase(t, NewClassLimits(), doc)
			wantOnly(t, msgs, tt.want)
		})
	}
}

func TestClassLimitsAppliesTo(t *testing.T) {
	doc := itemDoc(`<ChargeOfferItem InternalCode="A"/>` +
		`<Limits><AppliesTo>` +
		`<InternalCode>A</InternalCode>` +
		`<InternalCode>MISSING</InternalCode>` +
		`<InternalCode>  </InternalCode>` +
		`</AppliesTo></Limits>`)

	msgs := runPhase(t, NewClassLimits(), doc)
	if countRule(msgs, mv.RuleLimitAppliesToCodesNonempty) != 1 {
		t.Errorf("empty code: %v", ruleIDs(msgs))
	}
	if countRule(msgs, mv.RuleLimitAppliesToSameClass) != 1 {
		t.Errorf("unresolvable code: %v", ruleIDs(msgs))
	}
}
