package phase

import (
	"context"
	"strings"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// Identity validates the identifiers carried by properties, buildings,
// floorplans, and units: well-formed values and per-property uniqueness.
type Identity struct{}

// NewIdentity creates the identity phase.
func NewIdentity() *Identity {
	return &Identity{}
}

// ID returns the phase identifier.
func (p *Identity) ID() pipeline.PhaseID {
	return pipeline.PhaseIDIdentity
}

// uniqueRules maps a unit-bearing element to its uniqueness rule.
var uniqueRules = []struct {
	tag  string
	rule mv.RuleID
}{
	{schema.ElemBuilding, mv.RuleBuildingIDUnique},
	{schema.ElemFloorplan, mv.RuleFloorplanIDUnique},
	{schema.ElemUnit, mv.RuleUnitIDUnique},
}

// Validate checks identifier hygiene and uniqueness.
func (p *Identity) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	if pctx.Root == nil {
		return nil
	}

	var msgs []mv.Message

	for _, prop := range pctx.Root.Descendants(schema.ElemProperty) {
		if id, bad := malformedID(prop); bad {
			msgs = append(msgs, report(mv.RuleIDNoWhitespace, p.ID(), prop.Path()).
				Detail("id", quoted(id)).
				Build())
		}

		for _, ur := range uniqueRules {
			seen := make(map[string]bool)
			for _, node := range prop.Descendants(ur.tag) {
				id, bad := malformedID(node)
				if bad {
					msgs = append(msgs, report(mv.RuleIDNoWhitespace, p.ID(), node.Path()).
						Detail("id", quoted(id)).
						Build())
					continue
				}
				if seen[id] {
					msgs = append(msgs, report(ur.rule, p.ID(), node.Path()).
						Detail("id", id).
						Build())
					continue
				}
				seen[id] = true
			}
		}
	}

	return msgs
}

// malformedID returns the raw IDValue and whether it is empty or carries
// whitespace anywhere in the value.
func malformedID(n *document.Node) (string, bool) {
	id := n.Attr(schema.AttrIDValue)
	if strings.TrimSpace(id) == "" {
		return id, true
	}
	return id, strings.ContainsAny(id, " \t\n\r")
}
