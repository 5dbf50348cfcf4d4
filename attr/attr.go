// Package attr serializes ordered, possibly nested, attribute maps into HTML attribute strings.
//
// An attribute value is one of three things: a Bool, which renders as a bare name when true and not at all when
// false; a Str, which renders as name="value" with the value escaped; or a nested Map, whose entries render with
// their names joined to the parent name by a hyphen.  This makes attribute families like data-* and aria-* easy to
// express:
//
//	attr.Serialize(attr.Of(`data`, attr.Of(`foo`, `bar`, `toggle`, true)))
//	// data-foo="bar" data-toggle
//
// Attribute names are never escaped, values always are.
package attr

import (
	"strings"

	"github.com/swdunlop/markup-go"
)

// A Value is an attribute value.  It is implemented only by Bool, Str and Map; use ValueOf to convert anything else.
type Value interface {
	appendAttr(buf []byte, name string) []byte
}

// Bool is a presence-only attribute value, like required or disabled.
type Bool bool

func (v Bool) appendAttr(buf []byte, name string) []byte {
	if !v {
		return buf
	}
	buf = append(buf, ' ')
	return append(buf, name...)
}

// Str is a scalar attribute value that is escaped and double quoted.
type Str string

func (v Str) appendAttr(buf []byte, name string) []byte {
	buf = append(buf, ' ')
	buf = append(buf, name...)
	buf = append(buf, '=', '"')
	buf = markup.AppendEscaped(buf, string(v))
	return append(buf, '"')
}

// A Pair is one entry of a Map.
type Pair struct {
	Name  string
	Value Value
}

// A Map is an ordered list of attributes; attributes are rendered in the order they appear.  When used as a Value,
// each entry name is joined to the parent name with a hyphen, or, if the entry name is empty, the entry applies to
// the parent name directly.
type Map []Pair

func (m Map) appendAttr(buf []byte, name string) []byte {
	for _, pair := range m {
		sub := name
		if pair.Name != `` {
			sub = name + `-` + pair.Name
		}
		buf = AppendAttr(buf, sub, pair.Value)
	}
	return buf
}

// Get returns the value of the named attribute, if present.
func (m Map) Get(name string) (Value, bool) {
	for _, pair := range m {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return nil, false
}

// Set returns m with the named attribute set to ValueOf(value).  An existing attribute keeps its position in a copy
// of m, so m itself is never changed; otherwise the attribute is appended like the builtin append.
func (m Map) Set(name string, value any) Map {
	v := ValueOf(value)
	for i := range m {
		if m[i].Name == name {
			next := append(make(Map, 0, len(m)), m...)
			next[i].Value = v
			return next
		}
	}
	return append(m, Pair{name, v})
}

// Nest returns m with sub set inside the nested map named parent, so Nest(`data`, `id`, 7) yields data-id="7".  If
// parent holds something other than a Map, it is moved under the empty name so it still renders as parent.  The
// nested map is copied before it is changed.
func (m Map) Nest(parent, sub string, value any) Map {
	var nested Map
	if v, ok := m.Get(parent); ok {
		switch v := v.(type) {
		case Map:
			nested = append(Map(nil), v...)
		default:
			nested = Map{{``, v}}
		}
	}
	return m.Set(parent, nested.Set(sub, value))
}

// AppendAttr appends one attribute to buf and returns it for chaining.  Every attribute written is preceded by a single
// space, so the result can directly follow a tag name, and nothing at all is written for false attributes.
func AppendAttr(buf []byte, name string, value Value) []byte {
	if value == nil {
		value = Str(``)
	}
	return value.appendAttr(buf, name)
}

// AppendAttrs appends every attribute in m to buf, as AppendAttr does.
func AppendAttrs(buf []byte, m Map) []byte {
	for _, pair := range m {
		buf = AppendAttr(buf, pair.Name, pair.Value)
	}
	return buf
}

// Serialize renders m as a space separated attribute string with no leading or trailing space.  An empty map yields
// an empty string.
func Serialize(m Map) string {
	return trim(AppendAttrs(nil, m))
}

// SerializeAttr renders a single attribute, converting value with ValueOf.  A false value yields an empty string.
func SerializeAttr(name string, value any) string {
	return trim(AppendAttr(nil, name, ValueOf(value)))
}

func trim(buf []byte) string {
	return strings.TrimPrefix(string(buf), ` `)
}
