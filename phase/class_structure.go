package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// ClassStructure validates the shape of each ChargeOfferClass: its
// code, its items, and empty-child hygiene. Shape errors accumulate
// alongside later item and amount findings; only placement gates the
// pipeline.
type ClassStructure struct{}

// NewClassStructure creates the class structure phase.
func NewClassStructure() *ClassStructure {
	return &ClassStructure{}
}

// ID returns the phase identifier.
func (p *ClassStructure) ID() pipeline.PhaseID {
	return pipeline.PhaseIDClassStructure
}

// Validate checks class shape.
func (p *ClassStructure) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	if pctx.Root == nil {
		return nil
	}
	return p.checkClasses(pctx.Root)
}

// checkClasses verifies each class's code, items, and sibling uniqueness.
func (p *ClassStructure) checkClasses(root *document.Node) []mv.Message {
	var msgs []mv.Message

	// Sibling codes are tracked per parent node.
	siblingCodes := make(map[*document.Node]map[string]bool)

	eachClass(root, func(class *document.Node) {
		code := class.Attr(schema.AttrCode)
		if code == "" {
			msgs = append(msgs, report(mv.RuleClassHasCode, p.ID(), class.Path()).Build())
		} else if parent := class.Parent(); parent != nil {
			codes, ok := siblingCodes[parent]
			if !ok {
				codes = make(map[string]bool)
				siblingCodes[parent] = codes
			}
			if codes[code] {
				msgs = append(msgs, report(mv.RuleClassCodeUniqueInParent, p.ID(), class.Path()).
					Detail("code", code).
					Build())
			}
			codes[code] = true
		}

		items := 0
		for _, child := range class.Children {
			if schema.IsItemTag(child.Tag) {
				items++
				continue
			}
			if len(child.Children) == 0 && child.Text != "" && child.TrimText() == "" {
				msgs = append(msgs, report(mv.RuleClassNoEmptyChildren, p.ID(), child.Path()).
					Detail("element", child.Tag).
					Build())
			}
		}
		if items == 0 {
			msgs = append(msgs, report(mv.RuleClassHasItems, p.ID(), class.Path()).Build())
		}
	})

	return msgs
}
