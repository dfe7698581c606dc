// Package svg is a small element tree for building SVG documents.
// Values are escaped only when the tree is serialized.
package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

const (
	Namespace      = "http://www.w3.org/2000/svg"
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
	indentUnit     = "  "
)

// Node is anything that can be placed inside an Element.
type Node interface {
	writeTo(b *bytes.Buffer, depth int)
}

type Attr struct {
	Name  string
	Value string
}

// A builds an attribute; ints and floats are formatted without exponents.
func A(name string, value interface{}) Attr {
	return Attr{Name: name, Value: formatValue(value)}
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// Text is a character-data node.
type Text string

func (t Text) writeTo(b *bytes.Buffer, _ int) {
	escape(b, string(t))
}

type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func El(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// Append adds children and returns e for chaining.
func (e *Element) Append(children ...Node) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// Text appends a character-data child.
func (e *Element) Text(s string) *Element {
	return e.Append(Text(s))
}

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first descendant (or e itself) whose id attribute equals id.
func (e *Element) Find(id string) *Element {
	if v, ok := e.Attr("id"); ok && v == id {
		return e
	}
	for _, c := range e.Children {
		if child, ok := c.(*Element); ok {
			if found := child.Find(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// ChildElements returns direct element children named name.
func (e *Element) ChildElements(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if child, ok := c.(*Element); ok && child.Name == name {
			out = append(out, child)
		}
	}
	return out
}

func (e *Element) writeTo(b *bytes.Buffer, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		escape(b, a.Value)
		b.WriteByte('"')
	}

	if len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')

	if e.inlineText() {
		e.Children[0].writeTo(b, 0)
	} else {
		for _, c := range e.Children {
			b.WriteByte('\n')
			if t, ok := c.(Text); ok {
				b.WriteString(strings.Repeat(indentUnit, depth+1))
				t.writeTo(b, 0)
				continue
			}
			c.writeTo(b, depth+1)
		}
		b.WriteByte('\n')
		b.WriteString(indent)
	}

	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteByte('>')
}

// inlineText reports whether e holds exactly one text node, written on the same line.
func (e *Element) inlineText() bool {
	if len(e.Children) != 1 {
		return false
	}
	_, ok := e.Children[0].(Text)
	return ok
}

func escape(b *bytes.Buffer, s string) {
	// xml.EscapeText only fails when the writer does; bytes.Buffer never does.
	_ = xml.EscapeText(b, []byte(s))
}

// Document is a standalone SVG file rooted at Root.
type Document struct {
	Root *Element
}

// NewDocument creates an <svg> root sized width x height with a matching viewBox.
func NewDocument(width, height int) *Document {
	root := El("svg",
		A("xmlns", Namespace),
		A("width", width),
		A("height", height),
		A("viewBox", "0 0 "+strconv.Itoa(width)+" "+strconv.Itoa(height)),
	)
	return &Document{Root: root}
}

func (d *Document) Bytes() []byte {
	var b bytes.Buffer
	b.WriteString(xmlDeclaration)
	b.WriteByte('\n')
	d.Root.writeTo(&b, 0)
	b.WriteByte('\n')
	return b.Bytes()
}

func (d *Document) String() string {
	return string(d.Bytes())
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}
