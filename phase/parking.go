package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// Parking validates ParkingOfferItem specifics: the availability flags
// for electric, regular, and handicapped spaces.
type Parking struct{}

// NewParking creates the parking phase.
func NewParking() *Parking {
	return &Parking{}
}

// ID returns the phase identifier.
func (p *Parking) ID() pipeline.PhaseID {
	return pipeline.PhaseIDParking
}

// Validate checks every ParkingOfferItem in the document.
func (p *Parking) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	if pctx.Root == nil {
		return nil
	}

	var msgs []mv.Message
	for _, item := range pctx.Root.Descendants(schema.ElemParkingOfferItem) {
		msgs = append(msgs, p.checkItem(item)...)
	}
	return msgs
}

func (p *Parking) checkItem(item *document.Node) []mv.Message {
	var msgs []mv.Message

	msgs = append(msgs, p.checkFlag(item, schema.ElemElectric, mv.RuleParkingElectricEnum)...)
	msgs = append(msgs, p.checkFlag(item, schema.ElemRegularSpace, mv.RuleParkingSpaceEnum)...)
	msgs = append(msgs, p.checkFlag(item, schema.ElemHandicapped, mv.RuleParkingSpaceEnum)...)

	return msgs
}

func (p *Parking) checkFlag(item *document.Node, elem string, rule mv.RuleID) []mv.Message {
	raw := item.ChildText(elem)
	if raw == "" {
		return nil
	}
	if _, ok := schema.ParseParkingAvailability(raw); !ok {
		return []mv.Message{
			report(rule, p.ID(), item.Path()).
				Detail("element", elem).
				Detail("value", quoted(raw)).
				Detail("allowed", joinValues(schema.ParkingAvailabilities())).
				Build(),
		}
	}
	return nil
}
