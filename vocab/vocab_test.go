package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteEncodingAnalog(t *testing.T) {
	tests := map[string]string{
		"bioghist":          "545",
		"relatedmaterial":   "545",
		"abstract":          "520$a",
		"bibliography":      "581",
		"physloc":           "300",
		"separatedmaterial": "544",
	}
	for noteType, want := range tests {
		got, ok := NoteEncodingAnalog(noteType)
		assert.True(t, ok, noteType)
		assert.Equal(t, want, got, noteType)
	}

	_, ok := NoteEncodingAnalog("phystech")
	assert.False(t, ok, "unmapped note types carry no analog")
}

func TestDateEncodingAnalog(t *testing.T) {
	assert.Equal(t, "245$f", DateEncodingAnalog("inclusive"))
	assert.Equal(t, "245$g", DateEncodingAnalog("bulk"))
	assert.Equal(t, "245", DateEncodingAnalog("single"))
	assert.Equal(t, "245", DateEncodingAnalog(""))
}

// TestExtentLabel verifies singular forms apply only at exactly one.
func TestExtentLabel(t *testing.T) {
	assert.Equal(t, "box", ExtentLabel(1, "boxes"))
	assert.Equal(t, "boxes", ExtentLabel(2, "boxes"))
	assert.Equal(t, "boxes", ExtentLabel(1.5, "boxes"))
	assert.Equal(t, "linear foot", ExtentLabel(1.0, "linear_feet"))
	assert.Equal(t, "linear feet", ExtentLabel(3, "linear_feet"))
	assert.Equal(t, "cubic feet", ExtentLabel(1, "Cubic_Feet"))
	assert.Equal(t, "reels", SingularExtent("reels"))
}

func TestFormatRole(t *testing.T) {
	assert.Equal(t, "Creator", FormatRole("creator"))
	assert.Equal(t, "Source", FormatRole("Source"))
	assert.Equal(t, "", FormatRole(""))
	assert.Equal(t, "1st", FormatRole("1st"))
	assert.Equal(t, "émetteur", FormatRole("émetteur"))
}

func TestNames(t *testing.T) {
	n, ok := AgentNodeName("agent_corporate_entity")
	assert.True(t, ok)
	assert.Equal(t, "corpname", n)
	assert.Equal(t, "110", OriginationEncodingAnalog(n))
	assert.Equal(t, "100", OriginationEncodingAnalog("persname"))

	_, ok = AgentNodeName("agent_software")
	assert.False(t, ok)
}

func TestBuckets(t *testing.T) {
	names := make([]string, 0, len(Buckets))
	for _, b := range Buckets {
		names = append(names, b.NodeName)
	}
	assert.Equal(t, []string{"persname", "famname", "corpname", "subject", "geogname", "genreform"}, names)

	i, ok := BucketFor("geogname")
	assert.True(t, ok)
	assert.Equal(t, "Places", Buckets[i].Heading)
	assert.Equal(t, "651", Buckets[i].EncodingAnalog)

	_, ok = BucketFor("occupation")
	assert.False(t, ok)
}

func TestNoteRouting(t *testing.T) {
	did := make(map[string]bool)
	for _, nt := range DidNoteTypes {
		did[nt] = true
	}
	for _, nt := range ArchdescNoteTypes {
		assert.False(t, did[nt], "%s routed to both did and archdesc", nt)
	}

	assert.True(t, IncludeParagraphs("scopecontent"))
	assert.False(t, IncludeParagraphs("abstract"))
	assert.True(t, HeadlessNote("abstract", "x"))
	assert.True(t, HeadlessNote("bioghist", "  <head>Life</head>text"))
	assert.False(t, HeadlessNote("bioghist", "text"))
}

func TestEnglishTranslator(t *testing.T) {
	assert.Equal(t, "English", English.Translate(LanguageKey("eng"), "eng"))
	assert.Equal(t, "Spanish", English.Translate(LanguageKey("spa"), "spa"))
	assert.Equal(t, "und", English.Translate(LanguageKey("und"), "und"))
	assert.Equal(t, "Scope and Contents", English.Translate(NoteTypeKey("scopecontent"), "scopecontent"))
	assert.Equal(t, "Mixed Materials", English.Translate(InstanceTypeKey("mixed_materials"), "mixed_materials"))
	assert.Equal(t, "custom", English.Translate(NoteTypeKey("custom"), "custom"))
	assert.Equal(t, "fallback", English.Translate("unknown.key", "fallback"))
	assert.Equal(t, "x", Identity.Translate(NoteTypeKey("odd"), "x"))
}
