package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLooseAmpersands(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"loose", "a & b", "a &amp; b"},
		{"already escaped", "a &amp; b", "a &amp; b"},
		{"mixed", "This is the &lt; test & for the <title>Sanford &amp; Son</title>",
			"This is the &lt; test &amp; for the <title>Sanford &amp; Son</title>"},
		{"numeric four digits", "&#8212 dash", "&#8212 dash"},
		{"numeric three digits", "&#169;", "&#169;"},
		{"numeric too short", "&#12", "&amp;#12"},
		{"no ampersand", "plain", "plain"},
		{"trailing", "rock &", "rock &amp;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeLooseAmpersands(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, EscapeLooseAmpersands(got), "must be idempotent")
		})
	}
}

// TestWrapParagraphs verifies blank-line splitting and the revert path.
func TestWrapParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		reverted bool
	}{
		{"two blocks", "line1\n\nline2", "<p>line1</p><p>line2</p>", false},
		{"tab break", "a\n\tb", "<p>a</p><p>b</p>", false},
		{"single block trimmed", "  single & line\n", "<p>single &amp; line</p>", false},
		{"blank blocks dropped", "one\n\n   \n\ntwo", "<p>one</p><p>two</p>", false},
		{"already paragraph", "<p>already</p>", "<p>already</p>", false},
		{"paragraph with attrs", `<p id="x">a</p>`, `<p id="x">a</p>`, false},
		{"blank", "   ", "   ", false},
		{"malformed reverts", "x <emph>unclosed", "x <emph>unclosed", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reverted := WrapParagraphs(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.reverted, reverted)
		})
	}
}

func TestSanitize(t *testing.T) {
	r := Sanitize("“hi” it’s <p>here</p><p/>", false)
	assert.Equal(t, `"hi" it's here`, r.Content)
	assert.False(t, r.Reverted)

	r = Sanitize("a<br>b</br>", false)
	assert.Equal(t, "a<br/>b", r.Content)

	r = Sanitize("first\n\nsecond", true)
	assert.Equal(t, "<p>first</p><p>second</p>", r.Content)
}

func TestHasMarkup(t *testing.T) {
	assert.False(t, HasMarkup("plain & text"))
	assert.False(t, HasMarkup("a < b"))
	assert.True(t, HasMarkup("<emph>x</emph>"))
	assert.True(t, HasMarkup("line<br/>break"))
	assert.True(t, HasMarkup("x <!-- note -->"))
	assert.True(t, HasMarkup("closing only</p>"))
}

func TestWellFormed(t *testing.T) {
	require.NoError(t, WellFormed(`<emph render="bold">x</emph> tail`))
	require.NoError(t, WellFormed(`<xlink:foo>undeclared prefix</xlink:foo>`))
	require.NoError(t, WellFormed(""))

	assert.Error(t, WellFormed("<emph>x"))
	assert.Error(t, WellFormed("<a><b></a></b>"))
	assert.Error(t, WellFormed("a & b"))
	assert.Error(t, WellFormed("</wrap><wrap>"))

	require.NoError(t, WellFormed(`<emph render="bold">x</emph><?php echo?>`))
	require.NoError(t, WellFormed(`<extref xlink:href="a" href="b">x</extref>`))
	assert.Error(t, WellFormed(`<emph render="bold" render="italic">x</emph>`))
	assert.Error(t, WellFormed(`<extref xlink:href="a" xlink:href="b"/>`))
	assert.Error(t, WellFormed(`<emph>x</emph><?xml version="1.0"?>`))
	assert.Error(t, WellFormed(`<emph>x</emph><!DOCTYPE foo>`))
	assert.Error(t, WellFormed(`<!ENTITY e "x">text`))
}

func TestUnescapeEntities(t *testing.T) {
	assert.Equal(t, "a & b <c> & &", UnescapeEntities("a &amp; b &lt;c&gt; &#38; &#x26;"))
	assert.Equal(t, "AT&T", UnescapeEntities("AT&T"))
	assert.Equal(t, "x\u00a0y", UnescapeEntities("x&nbsp;y"))
}

func TestStripInvalidChars(t *testing.T) {
	assert.True(t, HasInvalidChars("bad\x01char"))
	assert.True(t, HasInvalidChars("broken \xff utf8"))
	assert.False(t, HasInvalidChars("tab\tnew\nline é"))
	assert.Equal(t, "badchar", StripInvalidChars("bad\x01char"))
	assert.Equal(t, "broken  utf8", StripInvalidChars("broken \xff utf8"))
}

// TestPrepare covers the three emission paths and their fallbacks.
func TestPrepare(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		allowP    bool
		mode      Mode
		content   string
		fallbacks []Fallback
	}{
		{"plain text", "a & b", false, ModeText, "a & b", nil},
		{"pre-escaped text", "a &amp; b", false, ModeText, "a & b", nil},
		{"markup", `Fish <emph render="italic">and</emph> chips`, false, ModeMarkup,
			`Fish <emph render="italic">and</emph> chips`, nil},
		{"markup with loose ampersand", "<emph>a & b</emph>", false, ModeMarkup,
			"<emph>a &amp; b</emph>", []Fallback{FallbackAmpersands}},
		{"malformed markup", "<emph>broken", false, ModeCDATA, "<emph>broken",
			[]Fallback{FallbackMalformed}},
		{"invalid characters", "bad\x01char", false, ModeCDATA, "badchar",
			[]Fallback{FallbackInvalidChars}},
		{"paragraphs", "line1\n\nline2", true, ModeMarkup, "<p>line1</p><p>line2</p>", nil},
		{"unwrappable entity", "Fish &nbsp; chips", true, ModeText, "Fish \u00a0 chips",
			[]Fallback{FallbackUnwrapped}},
		{"invalid char reference in text", "x&#1;y", false, ModeText, "xy",
			[]Fallback{FallbackInvalidChars}},
		{"repeated attribute", `<emph render="bold" render="italic">x</emph>`, false, ModeCDATA,
			`<emph render="bold" render="italic">x</emph>`, []Fallback{FallbackMalformed}},
		{"declaration in content", `<emph>x</emph><?xml version="1.0"?>`, false, ModeCDATA,
			`<emph>x</emph><?xml version="1.0"?>`, []Fallback{FallbackMalformed}},
		{"doctype in content", `<emph>x</emph><!DOCTYPE foo>`, false, ModeCDATA,
			`<emph>x</emph><!DOCTYPE foo>`, []Fallback{FallbackMalformed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Prepare(tt.in, tt.allowP)
			assert.Equal(t, tt.mode, p.Mode, "mode %s", p.Mode)
			assert.Equal(t, tt.content, p.Content)
			assert.Equal(t, tt.fallbacks, p.Fallbacks)
		})
	}
}
