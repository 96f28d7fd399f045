package document

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	root, err := Parse([]byte(`<PhysicalProperty>
		<Property IDValue="p1">
			<ChargeOfferClass Code="FEES"></ChargeOfferClass>
		</Property>
	</PhysicalProperty>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if root.Tag != "PhysicalProperty" {
		t.Errorf("root tag = %q", root.Tag)
	}
	prop := root.First("Property")
	if prop == nil {
		t.Fatal("Property child not found")
	}
	if prop.Attr("IDValue") != "p1" {
		t.Errorf("IDValue = %q", prop.Attr("IDValue"))
	}
	if prop.Parent() != root {
		t.Error("parent link not set")
	}
}

func TestParseText(t *testing.T) {
	root, err := Parse([]byte(`<Item><Name>  Pet Fee  </Name><Amount>50.00</Amount></Item>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := root.ChildText("Name"); got != "Pet Fee" {
		t.Errorf("ChildText(Name) = %q", got)
	}
	if got := root.First("Name").Text; got != "  Pet Fee  " {
		t.Errorf("raw text = %q, whitespace must survive parsing", got)
	}
}

func TestParseByteOrderMark(t *testing.T) {
	root, err := Parse([]byte("\ufeff<PhysicalProperty><Property IDValue=\"p1\"/></PhysicalProperty>"))
	if err != nil {
		t.Fatalf("Parse with leading byte order mark: %v", err)
	}
	if root.Tag != "PhysicalProperty" {
		t.Errorf("root tag = %q", root.Tag)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrEmptyDocument},
		{"whitespace only", "   \n\t ", ErrEmptyDocument},
		{"doctype", `<!DOCTYPE foo [<!ENTITY x "y">]><root/>`, ErrForbiddenDirective},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed root", "<root><child/>"},
		{"mismatched tags", "<a><b></a></b>"},
		{"trailing element", "<a/><b/>"},
		{"text outside root", "<a/>junk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 70; i++ {
		b.WriteString("<d>")
	}
	for i := 0; i < 70; i++ {
		b.WriteString("</d>")
	}
	_, err := ParseReader(strings.NewReader(b.String()), 64)
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("err = %v, want ErrTooDeep", err)
	}

	if _, err := ParseReader(strings.NewReader(b.String()), 128); err != nil {
		t.Errorf("128-deep limit should accept 70 levels: %v", err)
	}
}

func TestParseDropsNamespaceDecls(t *testing.T) {
	root, err := Parse([]byte(`<PhysicalProperty xmlns="http://example.com/mits" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><Property IDValue="p1"/></PhysicalProperty>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Attrs) != 0 {
		t.Errorf("namespace declarations kept: %+v", root.Attrs)
	}
	if root.First("Property").Attr("IDValue") != "p1" {
		t.Error("real attributes must survive")
	}
}
