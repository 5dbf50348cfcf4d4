// Package dataview provides a way to view Go values as nested HTML if the values can be represented as JSON.  Every
// rendered value carries data-path and data-type attributes so it can be styled or scripted.
package dataview

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/attr"
	"github.com/swdunlop/markup-go/tag"
)

// Stylesheet will return the structural CSS needed to render the dataview.
func Stylesheet() string {
	return stylesheet
}

const stylesheet = `
.object, .array { display: grid; width: fit-content; }
.object { grid-template-columns: minmax(min-content, max-content) 1fr; }
`

// From converts a Go value into HTML, converting it into JSON first and parsing it with GJSON.
func From(data any, options ...Option) (markup.Content, error) {
	js, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf(`cannot view %T: %w`, data, err)
	}
	return FromJSON(js, options...)
}

// FromJSON converts a JSON document into HTML, parsing it with GJSON.
func FromJSON(js []byte, options ...Option) (markup.Content, error) {
	if !gjson.ValidBytes(js) {
		return nil, fmt.Errorf(`cannot view invalid JSON`)
	}
	return FromGJSON(gjson.ParseBytes(js), options...), nil
}

// FromGJSON converts a GJSON result into HTML.  This is the most efficient way to use dataview if you already
// have a GJSON result.
func FromGJSON(data gjson.Result, options ...Option) markup.Content {
	cfg := &config{}
	for _, option := range options {
		option(cfg)
	}
	return cfg.asContent(data, ``)
}

// Hook registers a function that replaces how a value is rendered if the path to the value matches the provided
// pattern.
//
// Patterns are regex patterns that match paths like .persons.0.name or .persons.0.address.city.
// If a hook returns nil, the default rendering is used.
func Hook(rx *regexp.Regexp, hookFn func(path string, data gjson.Result) markup.Content) Option {
	return func(cfg *config) {
		cfg.hooks = append(cfg.hooks, hook{rx, hookFn})
	}
}

// Class adds a class to every value container, in addition to object, array or value.
func Class(class string) Option {
	return func(cfg *config) { cfg.class = class }
}

// An Option affects how values are rendered.
type Option func(*config)

type config struct {
	hooks []hook
	class string
}

type hook struct {
	rx   *regexp.Regexp
	hook func(path string, data gjson.Result) markup.Content
}

func (cfg *config) asContent(data gjson.Result, path string) markup.Content {
	for _, hook := range cfg.hooks {
		if hook.rx.MatchString(path) {
			content := hook.hook(path, data)
			if content != nil {
				return content
			}
		}
	}
	switch {
	case data.IsArray():
		return cfg.arrayAsContent(data, path)
	case data.IsObject():
		return cfg.objectAsContent(data, path)
	default:
		return cfg.valueAsContent(data, path)
	}
}

// attrs describes a container: its classes and its data-path / data-type attributes.
func (cfg *config) attrs(class, kind, path string) attr.Map {
	classes := []string{class}
	if cfg.class != `` {
		classes = append(classes, cfg.class)
	}
	if path == `` {
		path = `.`
	}
	return attr.Of(`class`, classes, `data`, attr.Of(`path`, path, `type`, kind))
}

func (cfg *config) valueAsContent(data gjson.Result, path string) markup.Content {
	var text markup.Content
	switch data.Type {
	case gjson.Number:
		text = markup.Text(data.Raw)
	case gjson.String:
		text = markup.Text(data.Str)
	case gjson.True, gjson.False:
		text = markup.Text(data.Raw)
	default:
		text = markup.Text(`null`)
	}
	return tag.New(`span`, tag.Attrs(cfg.attrs(`value`, typeName(data), path)), tag.Content(text))
}

func (cfg *config) arrayAsContent(data gjson.Result, path string) markup.Content {
	seq := data.Array()
	items := make(markup.Group, 0, len(seq))
	for ix, value := range seq {
		items = append(items, tag.New(`div`,
			tag.Attr(`class`, `item`),
			tag.Content(cfg.asContent(value, path+`.`+strconv.Itoa(ix))),
		))
	}
	class := `array`
	if len(seq) == 0 {
		class = `array empty`
	}
	return tag.New(`div`, tag.Attrs(cfg.attrs(class, `array`, path)), tag.Content(items...))
}

func (cfg *config) objectAsContent(data gjson.Result, path string) markup.Content {
	items := make(markup.Group, 0, 16)
	data.ForEach(func(key, value gjson.Result) bool {
		items = append(items,
			tag.New(`div`, tag.Attr(`class`, `key`), tag.Text(key.Str)),
			tag.New(`div`, tag.Attr(`class`, `item`), tag.Content(cfg.asContent(value, path+`.`+key.Str))),
		)
		return true
	})
	return tag.New(`div`, tag.Attrs(cfg.attrs(`object`, `object`, path)), tag.Content(items...))
}

func typeName(data gjson.Result) string {
	switch data.Type {
	case gjson.Number:
		return `number`
	case gjson.String:
		return `string`
	case gjson.True, gjson.False:
		return `bool`
	default:
		return `null`
	}
}
