package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// Storage validates StorageOfferItem specifics: the unit of measure and
// the declared dimensions.
type Storage struct{}

// NewStorage creates the storage phase.
func NewStorage() *Storage {
	return &Storage{}
}

// ID returns the phase identifier.
func (p *Storage) ID() pipeline.PhaseID {
	return pipeline.PhaseIDStorage
}

// dimensionElems are the measurable children of a storage item.
var dimensionElems = []string{schema.ElemHeight, schema.ElemWidth, schema.ElemLength}

// Validate checks every StorageOfferItem in the document.
func (p *Storage) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	if pctx.Root == nil {
		return nil
	}

	var msgs []mv.Message
	for _, item := range pctx.Root.Descendants(schema.ElemStorageOfferItem) {
		msgs = append(msgs, p.checkItem(item)...)
	}
	return msgs
}

func (p *Storage) checkItem(item *document.Node) []mv.Message {
	var msgs []mv.Message

	if uom := item.ChildText(schema.ElemStorageUoM); uom != "" && !schema.IsStorageUnit(uom) {
		msgs = append(msgs, report(mv.RuleStorageUoMValid, p.ID(), item.Path()).
			Detail("value", quoted(uom)).
			Detail("allowed", joinValues(schema.StorageUnits())).
			Build())
	}

	for _, elem := range dimensionElems {
		raw := item.ChildText(elem)
		if raw == "" {
			continue
		}
		if _, err := schema.ParseDimension(raw); err != nil {
			msgs = append(msgs, report(mv.RuleStorageDimensionValid, p.ID(), item.Path()).
				Detail("element", elem).
				Detail("value", quoted(raw)).
				Build())
		}
	}

	return msgs
}
