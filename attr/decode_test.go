package attr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseJSON(t *testing.T) {
	m, err := ParseJSON([]byte(`{
		"href": "#",
		"data": {"foo": "bar", "toggle": true},
		"hidden": false,
		"n": 1.50,
		"class": ["a", null, "b"],
		"v": null
	}`))
	require.NoError(t, err)
	assert.Equal(t, `href="#" data-foo="bar" data-toggle n="1.50" class="a b" v=""`, Serialize(m))

	m, err = ParseJSON([]byte(`{"data": {"": "x", "id": 1}}`))
	require.NoError(t, err)
	assert.Equal(t, `data="x" data-id="1"`, Serialize(m))

	m, err = ParseJSON([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestParseJSONErrors(t *testing.T) {
	for _, js := range []string{`[1, 2]`, `"href"`, `nope`, `{"a":`, ``} {
		_, err := ParseJSON([]byte(js))
		assert.Error(t, err, js)
	}
}

func TestFromGJSON(t *testing.T) {
	data := gjson.Parse(`{"outer": {"attrs": {"z": 1, "a": 2}}}`)
	assert.Equal(t, `z="1" a="2"`, Serialize(FromGJSON(data.Get(`outer.attrs`))))
	assert.Empty(t, FromGJSON(gjson.Parse(`42`)))
}

func TestParseYAML(t *testing.T) {
	m, err := ParseYAML([]byte(`
href: "#"
data:
  foo: bar
  toggle: true
hidden: false
tabindex: 3
class: [btn, primary]
aria:
  ~: x
  label: close
`))
	require.NoError(t, err)
	assert.Equal(t,
		`href="#" data-foo="bar" data-toggle tabindex="3" class="btn primary" aria="x" aria-label="close"`,
		Serialize(m),
	)

	m, err = ParseYAML([]byte("size: &s large\nclass: &c [btn, wide]\nbutton:\n  size: *s\n  class: *c\n"))
	require.NoError(t, err)
	assert.Equal(t, `size="large" class="btn wide" button-size="large" button-class="btn wide"`, Serialize(m))

	m, err = ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestParseYAMLErrors(t *testing.T) {
	for _, doc := range []string{"- a\n- b\n", "plain", "a: [b: c]\n", "a: {"} {
		_, err := ParseYAML([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestParseYAMLAliases(t *testing.T) {
	for _, doc := range []string{
		"data: &d\n  self: *d\n",
		"base: &b\n  id: x\ncopy: *b\n",
		"class: &c [a, *c]\n",
	} {
		_, err := ParseYAML([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestParseYAMLLimits(t *testing.T) {
	var doc strings.Builder
	doc.WriteString("list: &l [")
	for i := 0; i < 1000; i++ {
		if i > 0 {
			doc.WriteString(", ")
		}
		doc.WriteString("x")
	}
	doc.WriteString("]\n")
	for i := 0; i < 70; i++ {
		doc.WriteString("k")
		doc.WriteString(strings.Repeat("k", i))
		doc.WriteString(": *l\n")
	}
	_, err := ParseYAML([]byte(doc.String()))
	assert.ErrorContains(t, err, `more than`)

	deep := strings.Repeat("{a: ", 70) + "x" + strings.Repeat("}", 70)
	_, err = ParseYAML([]byte("a: " + deep + "\n"))
	assert.ErrorContains(t, err, `nested`)
}
