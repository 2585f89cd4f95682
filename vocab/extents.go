package vocab

import "strings"

var singularExtents = map[string]string{
	"linear_feet":        "linear foot",
	"oversize folders":   "oversize folder",
	"oversize volumes":   "oversize volume",
	"volumes":            "volume",
	"folders":            "folder",
	"videotapes":         "videotape",
	"audiotapes":         "audiotape",
	"boxes":              "box",
	"phonograph records": "phonograph record",
}

// SingularExtent returns the singular form of an extent type, or key itself.
func SingularExtent(key string) string {
	if s, ok := singularExtents[key]; ok {
		return s
	}
	return key
}

// Prettify turns an enumeration code into readable text.
func Prettify(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", " ")
}

// ExtentLabel is the label printed after an extent quantity. Only a quantity
// of exactly one is singular.
func ExtentLabel(quantity float64, key string) string {
	if quantity == 1.0 {
		key = SingularExtent(key)
	}
	return Prettify(key)
}
