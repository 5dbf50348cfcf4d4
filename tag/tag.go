// Package tag renders HTML elements from a name, an attribute map and optional content.  Element and Void are the
// simplest way to render a fragment as a string; Tag, built with New and a system of functional options, is the
// same thing as markup.Content that can be nested.
package tag

import (
	"github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/attr"
)

// Element renders an element with a closing tag, like <a href="#nerds">Nerds!</a>.  If body is not nil, it is called
// exactly once before the element is assembled and its result is used as raw content.  The name is not checked
// against any list of known elements.
func Element(name string, attrs attr.Map, body func() string) string {
	var content string
	if body != nil {
		content = body()
	}
	buf := make([]byte, 0, 2*len(name)+len(content)+16)
	buf = appendOpen(buf, name, attrs)
	buf = append(buf, content...)
	buf = appendClose(buf, name)
	return string(buf)
}

// Void renders a void element, like <br> or <input required>, which has neither content nor a closing tag.
func Void(name string, attrs attr.Map) string {
	return string(appendOpen(make([]byte, 0, len(name)+16), name, attrs))
}

// Tag is an element as markup.Content.
type Tag struct {
	Name    string
	Attrs   attr.Map
	Content []markup.Content

	// Body, if not nil, is called once each time the tag is rendered; its result follows Content as raw markup.
	Body func() string

	// Void tags render only their opening tag, ignoring Content and Body.
	Void bool
}

// AppendHTML implements markup.Content.
func (t Tag) AppendHTML(buf []byte) []byte {
	buf = appendOpen(buf, t.Name, t.Attrs)
	if t.Void {
		return buf
	}
	buf = markup.Append(buf, t.Content...)
	if t.Body != nil {
		buf = append(buf, t.Body()...)
	}
	return appendClose(buf, t.Name)
}

// String renders the tag.
func (t Tag) String() string { return string(t.AppendHTML(nil)) }

func appendOpen(buf []byte, name string, attrs attr.Map) []byte {
	buf = append(buf, '<')
	buf = append(buf, name...)
	buf = attr.AppendAttrs(buf, attrs)
	return append(buf, '>')
}

func appendClose(buf []byte, name string) []byte {
	buf = append(buf, '<', '/')
	buf = append(buf, name...)
	return append(buf, '>')
}
