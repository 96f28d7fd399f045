package pipeline

import (
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/schema"
)

// ItemInfo is one offer item flattened out of the document tree,
// with the fields the cross-document phases reason about.
type ItemInfo struct {
	// Node is the item element.
	Node *document.Node

	// Path is the diagnostic path of the item.
	Path string

	// Tag is the item element name (ChargeOfferItem, PetOfferItem, ...).
	Tag string

	// PropertyID is the IDValue of the enclosing Property, if any.
	PropertyID string

	// ClassCode is the Code of the enclosing ChargeOfferClass.
	ClassCode string

	// Code is the item's InternalCode attribute.
	Code string

	// Name is the trimmed item Name text.
	Name string

	// Requirement is the raw ChargeRequirement text.
	Requirement string

	// Frequency is the raw PaymentFrequency text.
	Frequency string

	// References holds the InternalCode values this item points at,
	// both percentage bases and conditional triggers.
	References []string
}

// ItemIndex holds every offer item in the document, grouped for lookup.
type ItemIndex struct {
	// Items lists all offer items in document order.
	Items []*ItemInfo

	// ByProperty maps Property IDValue to InternalCode to the items
	// declared under that property with that code.
	ByProperty map[string]map[string][]*ItemInfo
}

// BuildItemIndex walks the tree and flattens every offer item.
// A nil root yields an empty index.
func BuildItemIndex(root *document.Node) *ItemIndex {
	idx := &ItemIndex{
		ByProperty: make(map[string]map[string][]*ItemInfo),
	}
	if root == nil {
		return idx
	}

	for _, prop := range root.Descendants(schema.ElemProperty) {
		propID := prop.Attr(schema.AttrIDValue)
		for _, class := range prop.Descendants(schema.ElemChargeOfferClass) {
			classCode := class.Attr(schema.AttrCode)
			for _, child := range class.Children {
				if !schema.IsItemTag(child.Tag) {
					continue
				}
				info := newItemInfo(child, propID, classCode)
				idx.Items = append(idx.Items, info)

				byCode, ok := idx.ByProperty[propID]
				if !ok {
					byCode = make(map[string][]*ItemInfo)
					idx.ByProperty[propID] = byCode
				}
				if info.Code != "" {
					byCode[info.Code] = append(byCode[info.Code], info)
				}
			}
		}
	}

	return idx
}

func newItemInfo(item *document.Node, propID, classCode string) *ItemInfo {
	info := &ItemInfo{
		Node:       item,
		Path:       item.Path(),
		Tag:        item.Tag,
		PropertyID: propID,
		ClassCode:  classCode,
		Code:       item.Attr(schema.AttrInternalCode),
	}

	if name := item.First(schema.ElemName); name != nil {
		info.Name = name.TrimText()
	}
	if chars := item.First(schema.ElemCharacteristics); chars != nil {
		info.Requirement = chars.ChildText(schema.ElemChargeRequirement)
		info.Frequency = chars.ChildText(schema.ElemPaymentFrequency)
	}

	info.References = append(info.References, PercentageCodes(item)...)
	info.References = append(info.References, ConditionalCodes(item)...)
	return info
}

// Lookup returns the items declared under the given property with the
// given internal code.
func (x *ItemIndex) Lookup(propertyID, code string) []*ItemInfo {
	byCode, ok := x.ByProperty[propertyID]
	if !ok {
		return nil
	}
	return byCode[code]
}

// PercentageCodes collects the PercentageOfCode values from every
// amount block of the item, trimmed, skipping empties.
func PercentageCodes(item *document.Node) []string {
	var codes []string
	for _, amount := range item.ChildrenByTag(schema.ElemChargeOfferAmount) {
		if c := amount.ChildText(schema.ElemPercentageOfCode); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

// ConditionalCodes collects the trigger codes from the item's
// Characteristics block. Both shapes are accepted: a single
// ConditionalInternalCode element with delimited values, and a
// ConditionalScope wrapper holding InternalCode children.
func ConditionalCodes(item *document.Node) []string {
	chars := item.First(schema.ElemCharacteristics)
	if chars == nil {
		return nil
	}

	var codes []string
	for _, cond := range chars.ChildrenByTag(schema.ElemConditionalInternal) {
		codes = append(codes, schema.SplitValues(cond.Text)...)
	}
	for _, scope := range chars.ChildrenByTag(schema.ElemConditionalScope) {
		for _, code := range scope.ChildrenByTag(schema.ElemInternalCode) {
			if v := code.TrimText(); v != "" {
				codes = append(codes, v)
			}
		}
	}
	return codes
}
