package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/attr"
)

func Test(t *testing.T) {
	test(t, `Div`, `<div></div>`, func() markup.Content {
		return New(`div`)
	})
	test(t, `Br`, `<br>`, func() markup.Content {
		return NewVoid(`br`)
	})
	test(t, `VoidIgnoresContent`, `<hr class="x">`, func() markup.Content {
		return NewVoid(`hr`, Class(`x`), Text(`ignored`), Body(func() string { return `ignored` }))
	})
	test(t, `DivId`, `<div id="one"></div>`, func() markup.Content {
		return New(`div`, ID(`one`))
	})
	test(t, `DivOverrideId`, `<div id="one"></div>`, func() markup.Content {
		return New(`div`, ID(`zero`), Attr(`id`, `one`))
	})
	test(t, `DivClasses`, `<div class="one two three"></div>`, func() markup.Content {
		return New(`div`, Class(`one`, `two`, `three`))
	})
	test(t, `AHref`, `<a href="http://example.com">example</a>`, func() markup.Content {
		return New(`a`, Attr(`href`, `http://example.com`), Text(`example`))
	})
	test(t, `EscapedText`, `<p>1 &lt; 2</p>`, func() markup.Content {
		return New(`p`, Text(`1 < 2`))
	})
	test(t, `Raw`, `<p><b>x</b></p>`, func() markup.Content {
		return New(`p`, Raw(`<b>x</b>`))
	})
	test(t, `Nested`, `<ul><li>a</li><li>b</li></ul>`, func() markup.Content {
		return New(`ul`, Content(New(`li`, Text(`a`)), New(`li`, Text(`b`))))
	})
	test(t, `Data`, `<tr data-id="7" data-kind="row"></tr>`, func() markup.Content {
		return New(`tr`, Data(`id`, 7), Data(`kind`, `row`))
	})
	test(t, `Aria`, `<button aria-label="Close" aria-pressed="false">x</button>`, func() markup.Content {
		return New(`button`, Aria(`label`, `Close`), Aria(`pressed`, `false`), Text(`x`))
	})
	test(t, `Bool`, `<input required>`, func() markup.Content {
		return NewVoid(`input`, Bool(`required`, true), Bool(`disabled`, false))
	})
	test(t, `Attrs`, `<a href="#" data-foo="bar" data-toggle>x</a>`, func() markup.Content {
		return New(`a`, Attrs(attr.Of(`href`, `#`, `data`, attr.Of(`foo`, `bar`, `toggle`, true))), Text(`x`))
	})
	test(t, `Body`, `<p>before after</p>`, func() markup.Content {
		return New(`p`, Text(`before `), Body(func() string { return `after` }))
	})
	test(t, `Apply`, `<div id="a" class="b"></div>`, func() markup.Content {
		return New(`div`, Apply(ID(`a`), Class(`b`)))
	})
	test(t, `Static`, `<div><i>x</i></div>`, func() markup.Content {
		return New(`div`, Static(New(`i`, Text(`x`))))
	})
}

func test(t *testing.T, name string, expect string, do func() markup.Content) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		got := string(do().AppendHTML(nil))
		t.Log(`generated:`, got)
		if got != expect {
			t.Error(` expected:`, expect)
		}
	})
}

func TestElement(t *testing.T) {
	got := Element(`a`, attr.Of(`href`, `#nerds`), func() string { return `Nerds!` })
	assert.Equal(t, `<a href="#nerds">Nerds!</a>`, got)
	assert.Equal(t, `<div></div>`, Element(`div`, attr.Map{}, nil))
	assert.Equal(t, `<div></div>`, Element(`div`, nil, nil))
	assert.Equal(t, `<div></div>`, Element(`div`, attr.Of(`hidden`, false), nil))
	assert.Equal(t, `<blink>raw <b></b></blink>`, Element(`blink`, nil, func() string { return `raw <b></b>` }))
}

func TestElementCallsBodyOnce(t *testing.T) {
	calls := 0
	Element(`p`, nil, func() string {
		calls++
		return `x`
	})
	assert.Equal(t, 1, calls)
}

func TestVoid(t *testing.T) {
	assert.Equal(t, `<br>`, Void(`br`, nil))
	assert.Equal(t, `<input required>`, Void(`input`, attr.Of(`required`, true)))
	assert.Equal(t, `<img src="a.png" alt="&quot;A&quot;">`, Void(`img`, attr.Of(`src`, `a.png`, `alt`, `"A"`)))
	assert.Equal(t, `<div>`, Void(`div`, nil))
}

func TestFactory(t *testing.T) {
	button := Factory(`button`, Class(`btn`), Attr(`type`, `button`))
	save := button(Text(`Save`), Attr(`type`, `submit`))
	cancel := button(Text(`Cancel`))
	assert.Equal(t, `<button class="btn" type="submit">Save</button>`, save.String())
	assert.Equal(t, `<button class="btn" type="button">Cancel</button>`, cancel.String())
}
