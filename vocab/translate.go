package vocab

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Translation key prefixes for enumeration values.
const (
	LanguageKeyPrefix     = "enumerations.language_iso639_2."
	NoteTypeKeyPrefix     = "enumerations._note_types."
	InstanceTypeKeyPrefix = "enumerations.instance_instance_type."
)

// Translator resolves an enumeration key to display text, returning fallback
// when it has nothing better.
type Translator interface {
	Translate(key, fallback string) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(key, fallback string) string

// Translate calls f.
func (f TranslatorFunc) Translate(key, fallback string) string { return f(key, fallback) }

// Identity always returns the fallback.
var Identity Translator = TranslatorFunc(func(_, fallback string) string { return fallback })

// LanguageKey is the key for an ISO 639-2 language code.
func LanguageKey(code string) string { return LanguageKeyPrefix + code }

// NoteTypeKey is the key for a note type label.
func NoteTypeKey(noteType string) string { return NoteTypeKeyPrefix + noteType }

// InstanceTypeKey is the key for an instance type label.
func InstanceTypeKey(instanceType string) string { return InstanceTypeKeyPrefix + instanceType }

var englishNoteTypes = map[string]string{
	"abstract":          "Abstract",
	"accessrestrict":    "Conditions Governing Access",
	"accruals":          "Accruals",
	"acqinfo":           "Immediate Source of Acquisition",
	"altformavail":      "Existence and Location of Copies",
	"appraisal":         "Appraisal",
	"arrangement":       "Arrangement",
	"bibliography":      "Bibliography",
	"bioghist":          "Biographical / Historical",
	"custodhist":        "Custodial History",
	"dimensions":        "Dimensions",
	"fileplan":          "File Plan",
	"index":             "Index",
	"langmaterial":      "Language of Materials",
	"legalstatus":       "Legal Status",
	"materialspec":      "Materials Specific Details",
	"odd":               "General",
	"originalsloc":      "Existence and Location of Originals",
	"otherfindaid":      "Other Finding Aids",
	"physdesc":          "General Physical Description",
	"physfacet":         "Physical Facet",
	"physloc":           "Physical Location",
	"phystech":          "Physical Characteristics and Technical Requirements",
	"prefercite":        "Preferred Citation",
	"processinfo":       "Processing Information",
	"relatedmaterial":   "Related Materials",
	"scopecontent":      "Scope and Contents",
	"separatedmaterial": "Separated Materials",
	"userestrict":       "Conditions Governing Use",
}

var englishInstanceTypes = map[string]string{
	"accession":         "Accession",
	"audio":             "Audio",
	"books":             "Books",
	"computer_disks":    "Computer Disks",
	"digital_object":    "Digital Object",
	"graphic_materials": "Graphic Materials",
	"maps":              "Maps",
	"microform":         "Microform",
	"mixed_materials":   "Mixed Materials",
	"moving_images":     "Moving Images",
	"realia":            "Realia",
	"text":              "Text",
}

// English is the built-in translator: language names come from CLDR data,
// note and instance types from a fixed table.
var English Translator = english{namer: display.Languages(language.English)}

type english struct {
	namer display.Namer
}

func (e english) Translate(key, fallback string) string {
	switch {
	case strings.HasPrefix(key, LanguageKeyPrefix):
		if name := e.languageName(strings.TrimPrefix(key, LanguageKeyPrefix)); name != "" {
			return name
		}
	case strings.HasPrefix(key, NoteTypeKeyPrefix):
		if s, ok := englishNoteTypes[strings.TrimPrefix(key, NoteTypeKeyPrefix)]; ok {
			return s
		}
	case strings.HasPrefix(key, InstanceTypeKeyPrefix):
		if s, ok := englishInstanceTypes[strings.TrimPrefix(key, InstanceTypeKeyPrefix)]; ok {
			return s
		}
	}
	return fallback
}

func (e english) languageName(code string) string {
	if code == "" || code == "und" || code == "mul" || code == "zxx" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return e.namer.Name(tag)
}
