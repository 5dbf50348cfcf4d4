// Package el provides one rendering function per standard and void HTML element, registered from two fixed tables.
//
//	el.A(attr.Of(`href`, `#nerds`), func() string { return `Nerds!` }) // <a href="#nerds">Nerds!</a>
//	el.Input(attr.Of(`required`, true))                                  // <input required>
//
// Elements outside the tables can still be rendered with tag.Element and tag.Void.
package el

import (
	"fmt"

	"github.com/swdunlop/markup-go/attr"
	"github.com/swdunlop/markup-go/tag"
)

// An ElementFunc renders one element with a closing tag.  Only the first body, if any, is used.
type ElementFunc func(attrs attr.Map, body ...func() string) string

// A VoidFunc renders one void element.
type VoidFunc func(attrs attr.Map) string

// Standard lists the elements that have content and a closing tag, in alphabetical order.
var Standard = []string{
	`a`, `abbr`, `address`, `article`, `aside`, `audio`, `b`, `bdi`, `bdo`, `blockquote`, `body`, `button`,
	`canvas`, `caption`, `cite`, `code`, `colgroup`, `data`, `datalist`, `dd`, `del`, `details`, `dfn`, `dialog`,
	`div`, `dl`, `dt`, `em`, `fieldset`, `figcaption`, `figure`, `footer`, `form`, `h1`, `h2`, `h3`, `h4`, `h5`,
	`h6`, `head`, `header`, `hgroup`, `html`, `i`, `iframe`, `ins`, `kbd`, `label`, `legend`, `li`, `main`, `map`,
	`mark`, `menu`, `meter`, `nav`, `noscript`, `object`, `ol`, `optgroup`, `option`, `output`, `p`, `picture`,
	`pre`, `progress`, `q`, `rp`, `rt`, `ruby`, `s`, `samp`, `script`, `section`, `select`, `slot`, `small`,
	`span`, `strong`, `style`, `sub`, `summary`, `sup`, `table`, `tbody`, `td`, `template`, `textarea`, `tfoot`,
	`th`, `thead`, `time`, `title`, `tr`, `u`, `ul`, `var`, `video`,
}

// Voids lists the elements that have neither content nor a closing tag.
var Voids = []string{
	`area`, `base`, `br`, `col`, `embed`, `hr`, `img`, `input`, `link`, `menuitem`, `meta`, `param`, `source`,
	`track`, `wbr`,
}

var elements, voids = register()

func register() (map[string]ElementFunc, map[string]VoidFunc) {
	elements := make(map[string]ElementFunc, len(Standard))
	for _, name := range Standard {
		elements[name] = element(name)
	}
	voids := make(map[string]VoidFunc, len(Voids))
	for _, name := range Voids {
		voids[name] = void(name)
	}
	return elements, voids
}

// Must returns the registered function for a standard element, panicking if name is not in Standard.
func Must(name string) ElementFunc {
	fn, ok := elements[name]
	if !ok {
		panic(fmt.Errorf(`%q is not a standard element`, name))
	}
	return fn
}

// MustVoid returns the registered function for a void element, panicking if name is not in Voids.
func MustVoid(name string) VoidFunc {
	fn, ok := voids[name]
	if !ok {
		panic(fmt.Errorf(`%q is not a void element`, name))
	}
	return fn
}

// Lookup returns the function for a standard element.
func Lookup(name string) (ElementFunc, bool) {
	fn, ok := elements[name]
	return fn, ok
}

// LookupVoid returns the function for a void element.
func LookupVoid(name string) (VoidFunc, bool) {
	fn, ok := voids[name]
	return fn, ok
}

// IsStandard is true if name is in Standard.
func IsStandard(name string) bool {
	_, ok := elements[name]
	return ok
}

// IsVoid is true if name is in Voids.
func IsVoid(name string) bool {
	_, ok := voids[name]
	return ok
}

func element(name string) ElementFunc {
	return func(attrs attr.Map, body ...func() string) string {
		var fn func() string
		if len(body) > 0 {
			fn = body[0]
		}
		return tag.Element(name, attrs, fn)
	}
}

func void(name string) VoidFunc {
	return func(attrs attr.Map) string {
		return tag.Void(name, attrs)
	}
}
