package phase

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// hundred is the percentage ceiling.
var hundred = decimal.NewFromInt(100)

// report starts a message for a rule, pre-filled with the rule's default
// severity and summary text from the rule table.
func report(id mv.RuleID, phaseID pipeline.PhaseID, path string) *mv.MessageBuilder {
	rule, _ := mv.LookupRule(id)
	return mv.NewMessage(id, rule.Severity).
		Text(rule.Summary).
		Phase(string(phaseID)).
		At(path)
}

// eachClass walks every ChargeOfferClass in the document.
func eachClass(root *document.Node, fn func(class *document.Node)) {
	if root == nil {
		return
	}
	for _, class := range root.Descendants(schema.ElemChargeOfferClass) {
		fn(class)
	}
}

// eachItem walks every offer item element in the document, regardless of
// where it sits. Misplaced items are still visited so their content rules
// can fire alongside the placement errors.
func eachItem(root *document.Node, fn func(item *document.Node)) {
	if root == nil {
		return
	}
	root.Walk(func(n *document.Node) bool {
		if schema.IsItemTag(n.Tag) {
			fn(n)
		}
		return true
	})
}

// amountBlocks returns the item's ChargeOfferAmount children.
func amountBlocks(item *document.Node) []*document.Node {
	return item.ChildrenByTag(schema.ElemChargeOfferAmount)
}

// amountValues returns the delimited values held by the block's Amounts
// children, in declaration order.
func amountValues(block *document.Node) []string {
	var values []string
	for _, amounts := range block.ChildrenByTag(schema.ElemAmounts) {
		values = append(values, schema.SplitValues(amounts.Text)...)
	}
	return values
}

// percentageText returns the trimmed Percentage value of the block.
func percentageText(block *document.Node) string {
	return block.ChildText(schema.ElemPercentage)
}

// itemBasis resolves the item's declared AmountBasis, returning the raw
// trimmed text and the parsed value when recognized.
func itemBasis(item *document.Node) (string, schema.AmountBasis, bool) {
	raw := item.ChildText(schema.ElemAmountBasis)
	if raw == "" {
		return "", "", false
	}
	basis, ok := schema.ParseAmountBasis(raw)
	return raw, basis, ok
}

// itemRequirement resolves the item's declared ChargeRequirement.
func itemRequirement(item *document.Node) (string, schema.ChargeRequirement, bool) {
	chars := item.First(schema.ElemCharacteristics)
	if chars == nil {
		return "", "", false
	}
	raw := chars.ChildText(schema.ElemChargeRequirement)
	if raw == "" {
		return "", "", false
	}
	req, ok := schema.ParseChargeRequirement(raw)
	return raw, req, ok
}

// itemFrequency resolves the item's declared PaymentFrequency.
func itemFrequency(item *document.Node) (string, schema.PaymentFrequency, bool) {
	chars := item.First(schema.ElemCharacteristics)
	if chars == nil {
		return "", "", false
	}
	raw := chars.ChildText(schema.ElemPaymentFrequency)
	if raw == "" {
		return "", "", false
	}
	freq, ok := schema.ParsePaymentFrequency(raw)
	return raw, freq, ok
}

// isIncludedItem reports whether the item is priced into the rent.
// Only the requirement decides this; a basis of "Included" on its own
// does not exempt an item from pricing rules.
func isIncludedItem(item *document.Node) bool {
	_, req, ok := itemRequirement(item)
	return ok && req == schema.RequirementIncluded
}

// parseIntField parses a whole number field, rejecting signs and decimals.
func parseIntField(s string) (int, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" || strings.HasPrefix(raw, "+") {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// quoted wraps a raw value for inclusion in message details.
func quoted(s string) string {
	return strconv.Quote(s)
}

// joinValues renders an allowed-value list for message details.
func joinValues(values []string) string {
	return strings.Join(values, ", ")
}
