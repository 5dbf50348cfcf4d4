// Package markup implements an extremely simple model of HTML content that can be used to quickly build HTML
// fragments programmatically.  Attribute handling lives in the attr package, elements in the tag package and the
// per-tag helpers in the el package.
package markup

import "regexp"

// Static converts the provided content into static content, speeding up subsequent addition as HTML.
func Static(content ...Content) Content {
	return static(Append(make([]byte, 0, 1024), content...))
}

type static []byte

func (c static) AppendHTML(buf []byte) []byte { return append(buf, c...) }

// Append appends the HTML from each of its content to the provided buffer.
func Append(buf []byte, content ...Content) []byte {
	for _, item := range content {
		if item == nil {
			continue
		}
		buf = item.AppendHTML(buf)
	}
	return buf
}

// String renders the provided content as a string.
func String(content ...Content) string {
	return string(Append(nil, content...))
}

// Content is something that can be appended to HTML.
type Content interface {
	AppendHTML(buf []byte) []byte
}

// Text is character data found outside of an HTML tag.  It is escaped when appended.
type Text string

// AppendHTML implements Content by appending the text, escaping any characters that could be misunderstood as markup
// by a parser.
func (c Text) AppendHTML(buf []byte) []byte {
	return AppendEscaped(buf, string(c))
}

// HTML is literal markup that is appended without escaping.
type HTML string

func (c HTML) AppendHTML(buf []byte) []byte { return append(buf, c...) }

// Group is a sequence of content appended in order.
type Group []Content

func (g Group) AppendHTML(buf []byte) []byte { return Append(buf, g...) }

// AppendEscaped appends str to buf, replacing &, <, >, " and ' with their HTML entities.  The result is safe both as
// text and inside a double or single quoted attribute value.
func AppendEscaped(buf []byte, str string) []byte {
	for i := 0; i < len(str); i++ {
		switch b := str[i]; b {
		case '&':
			buf = append(buf, `&amp;`...)
		case '<':
			buf = append(buf, `&lt;`...)
		case '>':
			buf = append(buf, `&gt;`...)
		case '"':
			buf = append(buf, `&quot;`...)
		case '\'':
			buf = append(buf, `&#39;`...)
		default:
			buf = append(buf, b)
		}
	}
	return buf
}

// Escape returns str with &, <, >, " and ' replaced by their HTML entities.
func Escape(str string) string {
	return string(AppendEscaped(make([]byte, 0, len(str)), str))
}

// Sanitize removes anything that looks like a tag from text.  It does not unescape entities or touch anything else,
// so sanitizing sanitized text changes nothing.
func Sanitize(text string) string {
	return rxTag.ReplaceAllLiteralString(text, ``)
}

// SanitizeValue applies Sanitize to strings and string pointers.  A nil pointer is returned as is, and any other
// value passes through unchanged.
func SanitizeValue(v any) any {
	switch v := v.(type) {
	case string:
		return Sanitize(v)
	case *string:
		if v == nil {
			return v
		}
		s := Sanitize(*v)
		return &s
	default:
		return v
	}
}

var rxTag = regexp.MustCompile(`<[^>]+>`)
