package phase

import (
	"context"
	"sort"
	"strings"
	"time"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// DataQuality runs the final hygiene sweep: blank required text, currency
// formatting inside numeric fields, control characters, overlapping
// schedule windows, and duplicated item definitions.
type DataQuality struct{}

// NewDataQuality creates the data quality phase.
func NewDataQuality() *DataQuality {
	return &DataQuality{}
}

// ID returns the phase identifier.
func (p *DataQuality) ID() pipeline.PhaseID {
	return pipeline.PhaseIDDataQuality
}

// Validate runs all hygiene checks.
func (p *DataQuality) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	if pctx.Root == nil {
		return nil
	}

	var msgs []mv.Message
	msgs = append(msgs, p.checkText(pctx.Root)...)
	msgs = append(msgs, p.checkNumericFields(pctx.Root)...)
	msgs = append(msgs, p.checkControlChars(pctx.Root)...)
	msgs = append(msgs, p.checkScheduleWindows(pctx.Root)...)
	msgs = append(msgs, p.checkDuplicates(pctx.Root)...)
	return msgs
}

// checkText flags required text elements that are present but blank.
// Missing elements are reported by the item structure phase.
func (p *DataQuality) checkText(root *document.Node) []mv.Message {
	var msgs []mv.Message

	eachItem(root, func(item *document.Node) {
		for _, tag := range []string{schema.ElemName, schema.ElemDescription} {
			if n := item.First(tag); n != nil && n.TrimText() == "" {
				msgs = append(msgs, report(mv.RuleTextRequiredNonempty, p.ID(), n.Path()).
					Detail("element", tag).
					Build())
			}
		}
	})

	return msgs
}

// numericTags are element names whose text must read as a bare number.
var numericTags = map[string]bool{
	schema.ElemPercentage:    true,
	schema.ElemRefundMax:     true,
	schema.ElemMaximumAmount: true,
}

func (p *DataQuality) checkNumericFields(root *document.Node) []mv.Message {
	var msgs []mv.Message

	root.Walk(func(n *document.Node) bool {
		switch {
		case n.Tag == schema.ElemAmounts:
			for _, v := range schema.SplitValues(n.Text) {
				msgs = append(msgs, p.checkNumericText(n, v)...)
			}
		case numericTags[n.Tag]:
			if v := n.TrimText(); v != "" {
				msgs = append(msgs, p.checkNumericText(n, v)...)
			}
		}
		return true
	})

	return msgs
}

func (p *DataQuality) checkNumericText(n *document.Node, v string) []mv.Message {
	var msgs []mv.Message

	if strings.ContainsAny(v, "$€£,") {
		msgs = append(msgs, report(mv.RuleNumericNoSymbols, p.ID(), n.Path()).
			Detail("value", quoted(v)).
			Build())
	}
	if strings.HasPrefix(v, "+") {
		msgs = append(msgs, report(mv.RuleNumericNoPlus, p.ID(), n.Path()).
			Detail("value", quoted(v)).
			Build())
	}

	return msgs
}

// checkControlChars flags text carrying control characters. The XML
// decoder already rejects them in markup, so this guards trees handed
// straight to ValidateTree.
func (p *DataQuality) checkControlChars(root *document.Node) []mv.Message {
	var msgs []mv.Message

	root.Walk(func(n *document.Node) bool {
		if schema.HasControlChars(n.Text) {
			msgs = append(msgs, report(mv.RuleTextNoControlChars, p.ID(), n.Path()).
				Detail("element", n.Tag).
				Build())
		}
		return true
	})

	return msgs
}

// window is a scheduled pricing interval within an item.
type window struct {
	block *document.Node
	start time.Time
	end   time.Time
}

// checkScheduleWindows rejects amount blocks within one item whose
// scheduled intervals overlap. Intervals that merely share a boundary
// date draw a warning instead.
func (p *DataQuality) checkScheduleWindows(root *document.Node) []mv.Message {
	var msgs []mv.Message

	eachItem(root, func(item *document.Node) {
		var windows []window
		for _, block := range amountBlocks(item) {
			start, err := schema.ParseDate(block.ChildText(schema.ElemStartTermEarliest))
			if err != nil {
				continue
			}
			end := start
			if t, err := schema.ParseDate(block.ChildText(schema.ElemStartTermLatest)); err == nil {
				end = t
			}
			windows = append(windows, window{block: block, start: start, end: end})
		}

		for i := 0; i < len(windows); i++ {
			for j := i + 1; j < len(windows); j++ {
				a, b := windows[i], windows[j]
				if a.start.After(b.end) || b.start.After(a.end) {
					continue
				}
				touching := a.end.Equal(b.start) || b.end.Equal(a.start)
				rule := mv.RuleDateWindowOverlapItem
				if touching {
					rule = mv.RuleDateWindowTouching
				}
				msgs = append(msgs, report(rule, p.ID(), b.block.Path()).
					Detail("other", a.block.Path()).
					Build())
			}
		}
	})

	return msgs
}

// checkDuplicates rejects same-named items and functionally identical
// item definitions within a class. Name comparison ignores case.
func (p *DataQuality) checkDuplicates(root *document.Node) []mv.Message {
	var msgs []mv.Message

	eachClass(root, func(class *document.Node) {
		names := make(map[string]bool)
		prints := make(map[string]bool)

		for _, item := range class.Children {
			if !schema.IsItemTag(item.Tag) {
				continue
			}

			if name := item.ChildText(schema.ElemName); name != "" {
				key := strings.ToLower(name)
				if names[key] {
					msgs = append(msgs, report(mv.RuleItemNameUniqueInClass, p.ID(), item.Path()).
						Detail("name", name).
						Build())
				}
				names[key] = true
			}

			fp := itemFingerprint(item)
			if fp == "" {
				continue
			}
			if prints[fp] {
				msgs = append(msgs, report(mv.RuleItemDuplicateDefinition, p.ID(), item.Path()).Build())
			}
			prints[fp] = true
		}
	})

	return msgs
}

// itemFingerprint renders an item definition as a canonical string: its
// name, basis, and every characteristic leaf, sorted and joined.
func itemFingerprint(item *document.Node) string {
	chars := item.First(schema.ElemCharacteristics)
	if chars == nil {
		return ""
	}

	var parts []string
	chars.Walk(func(n *document.Node) bool {
		if n != chars && len(n.Children) == 0 {
			parts = append(parts, n.Tag+"="+n.TrimText())
		}
		return true
	})
	sort.Strings(parts)

	parts = append([]string{
		"name=" + strings.ToLower(item.ChildText(schema.ElemName)),
		"basis=" + item.ChildText(schema.ElemAmountBasis),
	}, parts...)

	return strings.Join(parts, "|")
}
