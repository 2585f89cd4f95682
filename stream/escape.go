package stream

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// EscapeText escapes character data.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// EscapeAttr escapes a double-quoted attribute value.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }

// SplitCDATA makes s safe to place between "<![CDATA[" and "]]>".
func SplitCDATA(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}
