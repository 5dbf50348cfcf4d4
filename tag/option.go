package tag

import (
	"strings"

	"github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/attr"
)

// New constructs a new HTML tag and applies the provided options.
func New(name string, options ...Option) Tag {
	tag := Tag{Name: name}
	for _, option := range options {
		option(&tag)
	}
	return tag
}

// NewVoid constructs a new void HTML tag, like New.
func NewVoid(name string, options ...Option) Tag {
	tag := New(name, options...)
	tag.Void = true
	return tag
}

// Factory constructs an html tag factory using functional options.  This is generally used to stamp out basic
// HTML element functions, applying some basic options as a template.
func Factory(name string, options ...Option) func(...Option) Tag {
	base := New(name, options...)
	return func(options ...Option) Tag {
		tag := base
		tag.Attrs = append(attr.Map(nil), base.Attrs...)
		tag.Content = append([]markup.Content(nil), base.Content...)
		for _, option := range options {
			option(&tag)
		}
		return tag
	}
}

// An Option affects an HTML tag.
type Option func(*Tag)

// Static appends static content inside the tag.
func Static(contents ...markup.Content) Option {
	static := markup.Static(contents...)
	return Content(static)
}

// Text appends escaped text content inside the tag.
func Text(text string) Option {
	return Content(markup.Text(text))
}

// Raw appends literal markup inside the tag.
func Raw(html string) Option {
	return Content(markup.HTML(html))
}

// Content appends content inside the tag.
func Content(contents ...markup.Content) Option {
	return func(tag *Tag) {
		tag.Content = append(tag.Content, contents...)
	}
}

// Body sets a function that produces the raw content of the tag when it is rendered.
func Body(fn func() string) Option {
	return func(tag *Tag) { tag.Body = fn }
}

// ID sets the id attribute on the tag.
func ID(id string) Option {
	return Attr(`id`, id)
}

// Class sets the class attribute on the tag.
func Class(classes ...string) Option {
	return Attr(`class`, strings.Join(classes, ` `))
}

// Attr sets an attribute on the tag, converting the value with attr.ValueOf.  Setting an attribute that is already
// present replaces it.
func Attr(name string, value any) Option {
	return func(tag *Tag) {
		tag.Attrs = tag.Attrs.Set(name, value)
	}
}

// Bool sets a boolean attribute on the tag, like required or disabled.
func Bool(name string, present bool) Option {
	return Attr(name, attr.Bool(present))
}

// Attrs sets each attribute in the map on the tag, in order.
func Attrs(m attr.Map) Option {
	return func(tag *Tag) {
		for _, pair := range m {
			tag.Attrs = tag.Attrs.Set(pair.Name, pair.Value)
		}
	}
}

// Data sets a data-* attribute on the tag.
func Data(name string, value any) Option {
	return nest(`data`, name, value)
}

// Aria sets an aria-* attribute on the tag.
func Aria(name string, value any) Option {
	return nest(`aria`, name, value)
}

func nest(parent, name string, value any) Option {
	return func(tag *Tag) {
		tag.Attrs = tag.Attrs.Nest(parent, name, value)
	}
}

// Apply applies a series of options as an option.
func Apply(options ...Option) Option {
	return func(tag *Tag) {
		for _, option := range options {
			option(tag)
		}
	}
}
