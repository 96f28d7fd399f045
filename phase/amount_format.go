package phase

import (
	"context"
	"errors"
	"time"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// AmountFormat validates the lexical content of amount blocks: decimal
// amounts, percentages, term bases, schedule dates, and durations.
type AmountFormat struct{}

// NewAmountFormat creates the amount format phase.
func NewAmountFormat() *AmountFormat {
	return &AmountFormat{}
}

// ID returns the phase identifier.
func (p *AmountFormat) ID() pipeline.PhaseID {
	return pipeline.PhaseIDAmountFormat
}

// Validate checks every amount block in the document.
func (p *AmountFormat) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	var msgs []mv.Message

	eachItem(pctx.Root, func(item *document.Node) {
		included := isIncludedItem(item)
		for _, block := range amountBlocks(item) {
			msgs = append(msgs, p.checkBlock(block, included)...)
		}
	})

	return msgs
}

func (p *AmountFormat) checkBlock(block *document.Node, included bool) []mv.Message {
	var msgs []mv.Message

	values := amountValues(block)
	pct := percentageText(block)

	if len(values) == 0 && pct == "" && !included {
		msgs = append(msgs, report(mv.RuleAmountBlockHasValue, p.ID(), block.Path()).Build())
	}

	for _, v := range values {
		msgs = append(msgs, p.checkAmount(block, v)...)
	}
	if pct != "" {
		msgs = append(msgs, p.checkPercentage(block, pct)...)
	}

	if tb := block.ChildText(schema.ElemTermBasis); tb != "" {
		if _, ok := schema.ParseTermBasis(tb); !ok {
			msgs = append(msgs, report(mv.RuleTermBasisValid, p.ID(), block.Path()).
				Detail("value", quoted(tb)).
				Detail("allowed", joinValues(schema.TermBases())).
				Build())
		}
	}

	msgs = append(msgs, p.checkSchedule(block)...)

	return msgs
}

func (p *AmountFormat) checkAmount(block *document.Node, raw string) []mv.Message {
	d, err := schema.ParseAmount(raw)
	switch {
	case errors.Is(err, schema.ErrCurrencySymbol), errors.Is(err, schema.ErrLeadingPlus):
		// Reported by the data quality phase.
		return nil
	case err != nil:
		return []mv.Message{
			report(mv.RuleAmountDecimalValid, p.ID(), block.Path()).
				Detail("value", quoted(raw)).
				Build(),
		}
	case d.IsNegative():
		return []mv.Message{
			report(mv.RuleAmountNonnegative, p.ID(), block.Path()).
				Detail("value", raw).
				Build(),
		}
	}
	return nil
}

func (p *AmountFormat) checkPercentage(block *document.Node, raw string) []mv.Message {
	d, err := schema.ParseAmount(raw)
	switch {
	case errors.Is(err, schema.ErrCurrencySymbol), errors.Is(err, schema.ErrLeadingPlus):
		return nil
	case err != nil:
		return []mv.Message{
			report(mv.RulePercentageDecimalValid, p.ID(), block.Path()).
				Detail("value", quoted(raw)).
				Build(),
		}
	case d.IsNegative():
		return []mv.Message{
			report(mv.RulePercentageNonnegative, p.ID(), block.Path()).
				Detail("value", raw).
				Build(),
		}
	case d.GreaterThan(hundred):
		return []mv.Message{
			report(mv.RulePercentageOver100, p.ID(), block.Path()).
				Detail("value", raw).
				Build(),
		}
	}
	return nil
}

func (p *AmountFormat) checkSchedule(block *document.Node) []mv.Message {
	var msgs []mv.Message

	earliest, earliestOK := p.checkDate(block, schema.ElemStartTermEarliest, &msgs)
	latest, latestOK := p.checkDate(block, schema.ElemStartTermLatest, &msgs)

	if earliestOK && latestOK && earliest.After(latest) {
		msgs = append(msgs, report(mv.RuleStartTermOrder, p.ID(), block.Path()).
			Detail("earliest", earliest.Format("2006-01-02")).
			Detail("latest", latest.Format("2006-01-02")).
			Build())
	}

	hasEarliest := block.ChildText(schema.ElemStartTermEarliest) != ""
	hasLatest := block.ChildText(schema.ElemStartTermLatest) != ""
	hasDuration := block.ChildText(schema.ElemDuration) != ""

	if (hasLatest || hasDuration) && !hasEarliest {
		msgs = append(msgs, report(mv.RuleScheduleStartRequired, p.ID(), block.Path()).Build())
	}

	if dur := block.ChildText(schema.ElemDuration); dur != "" {
		if v, ok := parseIntField(dur); !ok || v < 0 {
			msgs = append(msgs, report(mv.RuleDurationIntegerValid, p.ID(), block.Path()).
				Detail("value", quoted(dur)).
				Build())
		}
	}

	return msgs
}

// checkDate parses the named date child, appending a message on failure.
func (p *AmountFormat) checkDate(block *document.Node, elem string, msgs *[]mv.Message) (time.Time, bool) {
	raw := block.ChildText(elem)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := schema.ParseDate(raw)
	if err != nil {
		*msgs = append(*msgs, report(mv.RuleScheduleDateParseable, p.ID(), block.Path()).
			Detail("element", elem).
			Detail("value", quoted(raw)).
			Build())
		return time.Time{}, false
	}
	return t, true
}
