package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// Placement validates where fee elements sit in the tree: classes under
// a supported parent, items under a class, amount blocks under an item.
// A placement error means later phases would walk a chain that does not
// exist, so this phase gates the pipeline.
type Placement struct{}

// NewPlacement creates the placement phase.
func NewPlacement() *Placement {
	return &Placement{}
}

// ID returns the phase identifier.
func (p *Placement) ID() pipeline.PhaseID {
	return pipeline.PhaseIDPlacement
}

// Validate checks the class/item/amount containment chain.
func (p *Placement) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	if pctx.Root == nil {
		return nil
	}

	var msgs []mv.Message

	pctx.Root.Walk(func(n *document.Node) bool {
		switch {
		case n.Tag == schema.ElemChargeOfferClass:
			parent := n.Parent()
			if parent == nil || !schema.IsFeeParent(parent.Tag) {
				found := ""
				if parent != nil {
					found = parent.Tag
				}
				msgs = append(msgs, report(mv.RuleClassInSupportedParent, p.ID(), n.Path()).
					Detail("parent", found).
					Detail("allowed", joinValues(schema.FeeParents())).
					Build())
			}
		case schema.IsItemTag(n.Tag):
			if parent := n.Parent(); parent == nil || parent.Tag != schema.ElemChargeOfferClass {
				msgs = append(msgs, report(mv.RuleClassItemAmountChain, p.ID(), n.Path()).
					Detail("element", n.Tag).
					Build())
			}
		case n.Tag == schema.ElemChargeOfferAmount:
			if parent := n.Parent(); parent == nil || !schema.IsItemTag(parent.Tag) {
				msgs = append(msgs, report(mv.RuleClassItemAmountChain, p.ID(), n.Path()).
					Detail("element", n.Tag).
					Build())
			}
		}
		return true
	})

	return msgs
}
