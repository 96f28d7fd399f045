package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// Structure validates the document skeleton: the root element, the
// presence of properties, and property identifiers. Everything after
// this phase assumes the skeleton holds.
type Structure struct{}

// NewStructure creates the structure phase.
func NewStructure() *Structure {
	return &Structure{}
}

// ID returns the phase identifier.
func (s *Structure) ID() pipeline.PhaseID {
	return pipeline.PhaseIDStructure
}

// Validate checks the document skeleton.
func (s *Structure) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	root := pctx.Root
	if root == nil {
		return []mv.Message{report(mv.RuleDocParseFailed, s.ID(), "/").Build()}
	}

	if root.Tag != schema.ElemPhysicalProperty {
		// Nothing below a foreign root can be trusted; report only this.
		return []mv.Message{
			report(mv.RuleRootIsPhysicalProperty, s.ID(), "/"+root.Tag).
				Detail("found", root.Tag).
				Build(),
		}
	}

	var msgs []mv.Message

	properties := root.Descendants(schema.ElemProperty)
	if len(properties) == 0 {
		msgs = append(msgs, report(mv.RulePropertyExists, s.ID(), root.Path()).Build())
		return msgs
	}

	seen := make(map[string]bool, len(properties))
	for _, prop := range properties {
		id := prop.Attr(schema.AttrIDValue)
		if id == "" {
			msgs = append(msgs, report(mv.RulePropertyHasID, s.ID(), prop.Path()).Build())
			continue
		}
		if seen[id] {
			msgs = append(msgs, report(mv.RulePropertyIDUnique, s.ID(), prop.Path()).
				Detail("id", id).
				Build())
			continue
		}
		seen[id] = true
	}

	return msgs
}
