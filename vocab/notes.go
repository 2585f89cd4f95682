package vocab

import "strings"

// noteAnalogs maps note types to MARC fields. relatedmaterial shares 545
// with bioghist.
var noteAnalogs = map[string]string{
	"bioghist":          "545",
	"scopecontent":      "520",
	"abstract":          "520$a",
	"accessrestrict":    "506",
	"prefercite":        "524",
	"arrangement":       "351",
	"altformavail":      "530",
	"userestrict":       "540",
	"acqinfo":           "541",
	"relatedmaterial":   "545",
	"langmaterial":      "546",
	"custodhist":        "561",
	"bibliography":      "581",
	"processinfo":       "583",
	"accruals":          "584",
	"legalstatus":       "355",
	"odd":               "500",
	"note":              "500",
	"materialspec":      "254",
	"physdesc":          "300",
	"physfacet":         "300",
	"physloc":           "300",
	"appraisal":         "583",
	"separatedmaterial": "544",
}

// NoteEncodingAnalog returns the MARC field for a note type.
func NoteEncodingAnalog(noteType string) (string, bool) {
	a, ok := noteAnalogs[noteType]
	return a, ok
}

// DateEncodingAnalog returns the MARC field for a date type.
func DateEncodingAnalog(dateType string) string {
	switch dateType {
	case "inclusive":
		return "245$f"
	case "bulk":
		return "245$g"
	}
	return "245"
}

// DidNoteTypes are the note types rendered inside did.
var DidNoteTypes = []string{
	"abstract",
	"dimensions",
	"physdesc",
	"langmaterial",
	"physloc",
	"materialspec",
	"physfacet",
}

// ArchdescNoteTypes are the note types rendered after did.
var ArchdescNoteTypes = []string{
	"accruals",
	"appraisal",
	"arrangement",
	"bioghist",
	"accessrestrict",
	"userestrict",
	"custodhist",
	"altformavail",
	"originalsloc",
	"fileplan",
	"odd",
	"acqinfo",
	"legalstatus",
	"otherfindaid",
	"phystech",
	"prefercite",
	"processinfo",
	"relatedmaterial",
	"scopecontent",
	"separatedmaterial",
}

var paragraphNotes = set(
	"accessrestrict", "accruals", "acqinfo", "altformavail", "appraisal",
	"arrangement", "bibliography", "bioghist", "custodhist", "fileplan",
	"index", "odd", "originalsloc", "otherfindaid", "phystech", "prefercite",
	"processinfo", "relatedmaterial", "scopecontent", "separatedmaterial",
	"userestrict",
)

var headlessNotes = set("abstract", "langmaterial", "materialspec", "physloc")

// IncludeParagraphs reports whether content of this note type is block
// content that may hold paragraphs.
func IncludeParagraphs(noteType string) bool {
	_, ok := paragraphNotes[noteType]
	return ok
}

// HeadlessNote reports whether a note is rendered without a generated head:
// either its type never carries one or its content brings its own.
func HeadlessNote(noteType, content string) bool {
	if strings.HasPrefix(strings.TrimSpace(content), "<head") {
		return true
	}
	_, ok := headlessNotes[noteType]
	return ok
}

// DefaultIndexItemTypes maps index item types to the element naming them.
var DefaultIndexItemTypes = map[string]string{
	"corporate_entity": "corpname",
	"genre_form":       "genreform",
	"name":             "name",
	"person":           "persname",
	"subject":          "subject",
	"family":           "famname",
	"function":         "function",
	"geographic_name":  "geogname",
	"occupation":       "occupation",
	"title":            "title",
}

func set(keys ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}
