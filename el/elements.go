// One wrapper per entry in Standard and Voids, kept in step with the tables by el_test.go.

package el

// Standard elements.
var (
	A          = Must(`a`)
	Abbr       = Must(`abbr`)
	Address    = Must(`address`)
	Article    = Must(`article`)
	Aside      = Must(`aside`)
	Audio      = Must(`audio`)
	B          = Must(`b`)
	Bdi        = Must(`bdi`)
	Bdo        = Must(`bdo`)
	BlockQuote = Must(`blockquote`)
	Body       = Must(`body`)
	Button     = Must(`button`)
	Canvas     = Must(`canvas`)
	Caption    = Must(`caption`)
	Cite       = Must(`cite`)
	Code       = Must(`code`)
	ColGroup   = Must(`colgroup`)
	Data       = Must(`data`)
	DataList   = Must(`datalist`)
	Dd         = Must(`dd`)
	Del        = Must(`del`)
	Details    = Must(`details`)
	Dfn        = Must(`dfn`)
	Dialog     = Must(`dialog`)
	Div        = Must(`div`)
	Dl         = Must(`dl`)
	Dt         = Must(`dt`)
	Em         = Must(`em`)
	FieldSet   = Must(`fieldset`)
	FigCaption = Must(`figcaption`)
	Figure     = Must(`figure`)
	Footer     = Must(`footer`)
	Form       = Must(`form`)
	H1         = Must(`h1`)
	H2         = Must(`h2`)
	H3         = Must(`h3`)
	H4         = Must(`h4`)
	H5         = Must(`h5`)
	H6         = Must(`h6`)
	Head       = Must(`head`)
	Header     = Must(`header`)
	HGroup     = Must(`hgroup`)
	Html       = Must(`html`)
	I          = Must(`i`)
	IFrame     = Must(`iframe`)
	Ins        = Must(`ins`)
	Kbd        = Must(`kbd`)
	Label      = Must(`label`)
	Legend     = Must(`legend`)
	Li         = Must(`li`)
	Main       = Must(`main`)
	Map        = Must(`map`)
	Mark       = Must(`mark`)
	Menu       = Must(`menu`)
	Meter      = Must(`meter`)
	Nav        = Must(`nav`)
	NoScript   = Must(`noscript`)
	Object     = Must(`object`)
	Ol         = Must(`ol`)
	OptGroup   = Must(`optgroup`)
	Option     = Must(`option`)
	Output     = Must(`output`)
	P          = Must(`p`)
	Picture    = Must(`picture`)
	Pre        = Must(`pre`)
	Progress   = Must(`progress`)
	Q          = Must(`q`)
	Rp         = Must(`rp`)
	Rt         = Must(`rt`)
	Ruby       = Must(`ruby`)
	S          = Must(`s`)
	Samp       = Must(`samp`)
	Script     = Must(`script`)
	Section    = Must(`section`)
	Select     = Must(`select`)
	Slot       = Must(`slot`)
	Small      = Must(`small`)
	Span       = Must(`span`)
	Strong     = Must(`strong`)
	Style      = Must(`style`)
	Sub        = Must(`sub`)
	Summary    = Must(`summary`)
	Sup        = Must(`sup`)
	Table      = Must(`table`)
	TBody      = Must(`tbody`)
	Td         = Must(`td`)
	Template   = Must(`template`)
	TextArea   = Must(`textarea`)
	TFoot      = Must(`tfoot`)
	Th         = Must(`th`)
	THead      = Must(`thead`)
	Time       = Must(`time`)
	Title      = Must(`title`)
	Tr         = Must(`tr`)
	U          = Must(`u`)
	Ul         = Must(`ul`)
	Var        = Must(`var`)
	Video      = Must(`video`)
)

// Void elements.
var (
	Area     = MustVoid(`area`)
	Base     = MustVoid(`base`)
	Br       = MustVoid(`br`)
	Col      = MustVoid(`col`)
	Embed    = MustVoid(`embed`)
	Hr       = MustVoid(`hr`)
	Img      = MustVoid(`img`)
	Input    = MustVoid(`input`)
	Link     = MustVoid(`link`)
	MenuItem = MustVoid(`menuitem`)
	Meta     = MustVoid(`meta`)
	Param    = MustVoid(`param`)
	Source   = MustVoid(`source`)
	Track    = MustVoid(`track`)
	Wbr      = MustVoid(`wbr`)
)
