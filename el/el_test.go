package el

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swdunlop/markup-go/attr"
)

func TestWrappers(t *testing.T) {
	assert.Equal(t, `<a href="#nerds">Nerds!</a>`, A(attr.Of(`href`, `#nerds`), func() string { return `Nerds!` }))
	assert.Equal(t, `<div></div>`, Div(nil))
	assert.Equal(t, `<p>one</p>`, P(nil, func() string { return `one` }, func() string { return `two` }))
	assert.Equal(t, `<br>`, Br(nil))
	assert.Equal(t, `<input required>`, Input(attr.Of(`required`, true)))
	assert.Equal(t, `<select name="n"><option selected>x</option></select>`, Select(attr.Of(`name`, `n`), func() string {
		return Option(attr.Of(`selected`, true), func() string { return `x` })
	}))
}

func TestTables(t *testing.T) {
	assert.Len(t, Standard, len(standardWrappers))
	assert.Len(t, Voids, len(voidWrappers))
	for _, name := range Standard {
		require.True(t, IsStandard(name), name)
		assert.False(t, IsVoid(name), name)
		fn, ok := Lookup(name)
		require.True(t, ok, name)
		wrapper, ok := standardWrappers[name]
		require.True(t, ok, `missing wrapper for %q`, name)
		expect := `<` + name + ` id="x">y</` + name + `>`
		assert.Equal(t, expect, fn(attr.Of(`id`, `x`), func() string { return `y` }))
		assert.Equal(t, expect, wrapper(attr.Of(`id`, `x`), func() string { return `y` }))
	}
	for _, name := range Voids {
		require.True(t, IsVoid(name), name)
		assert.False(t, IsStandard(name), name)
		fn, ok := LookupVoid(name)
		require.True(t, ok, name)
		wrapper, ok := voidWrappers[name]
		require.True(t, ok, `missing wrapper for %q`, name)
		expect := `<` + name + ` hidden>`
		assert.Equal(t, expect, fn(attr.Of(`hidden`, true)))
		assert.Equal(t, expect, wrapper(attr.Of(`hidden`, true)))
	}
	_, ok := Lookup(`blink`)
	assert.False(t, ok)
	_, ok = LookupVoid(`div`)
	assert.False(t, ok)
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { Must(`br`) })
	assert.Panics(t, func() { MustVoid(`div`) })
	assert.NotPanics(t, func() { Must(`div`) })
}

var standardWrappers = map[string]ElementFunc{
	`a`:           A,
	`abbr`:        Abbr,
	`address`:     Address,
	`article`:     Article,
	`aside`:       Aside,
	`audio`:       Audio,
	`b`:           B,
	`bdi`:         Bdi,
	`bdo`:         Bdo,
	`blockquote`:  BlockQuote,
	`body`:        Body,
	`button`:      Button,
	`canvas`:      Canvas,
	`caption`:     Caption,
	`cite`:        Cite,
	`code`:        Code,
	`colgroup`:    ColGroup,
	`data`:        Data,
	`datalist`:    DataList,
	`dd`:          Dd,
	`del`:         Del,
	`details`:     Details,
	`dfn`:         Dfn,
	`dialog`:      Dialog,
	`div`:         Div,
	`dl`:          Dl,
	`dt`:          Dt,
	`em`:          Em,
	`fieldset`:    FieldSet,
	`figcaption`:  FigCaption,
	`figure`:      Figure,
	`footer`:      Footer,
	`form`:        Form,
	`h1`:          H1,
	`h2`:          H2,
	`h3`:          H3,
	`h4`:          H4,
	`h5`:          H5,
	`h6`:          H6,
	`head`:        Head,
	`header`:      Header,
	`hgroup`:      HGroup,
	`html`:        Html,
	`i`:           I,
	`iframe`:      IFrame,
	`ins`:         Ins,
	`kbd`:         Kbd,
	`label`:       Label,
	`legend`:      Legend,
	`li`:          Li,
	`main`:        Main,
	`map`:         Map,
	`mark`:        Mark,
	`menu`:        Menu,
	`meter`:       Meter,
	`nav`:         Nav,
	`noscript`:    NoScript,
	`object`:      Object,
	`ol`:          Ol,
	`optgroup`:    OptGroup,
	`option`:      Option,
	`output`:      Output,
	`p`:           P,
	`picture`:     Picture,
	`pre`:         Pre,
	`progress`:    Progress,
	`q`:           Q,
	`rp`:          Rp,
	`rt`:          Rt,
	`ruby`:        Ruby,
	`s`:           S,
	`samp`:        Samp,
	`script`:      Script,
	`section`:     Section,
	`select`:      Select,
	`slot`:        Slot,
	`small`:       Small,
	`span`:        Span,
	`strong`:      Strong,
	`style`:       Style,
	`sub`:         Sub,
	`summary`:     Summary,
	`sup`:         Sup,
	`table`:       Table,
	`tbody`:       TBody,
	`td`:          Td,
	`template`:    Template,
	`textarea`:    TextArea,
	`tfoot`:       TFoot,
	`th`:          Th,
	`thead`:       THead,
	`time`:        Time,
	`title`:       Title,
	`tr`:          Tr,
	`u`:           U,
	`ul`:          Ul,
	`var`:         Var,
	`video`:       Video,
}

var voidWrappers = map[string]VoidFunc{
	`area`:      Area,
	`base`:      Base,
	`br`:        Br,
	`col`:       Col,
	`embed`:     Embed,
	`hr`:        Hr,
	`img`:       Img,
	`input`:     Input,
	`link`:      Link,
	`menuitem`:  MenuItem,
	`meta`:      Meta,
	`param`:     Param,
	`source`:    Source,
	`track`:     Track,
	`wbr`:       Wbr,
}
