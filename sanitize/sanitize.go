package sanitize

import (
	"regexp"
	"strings"
)

var (
	quoteReplacer = strings.NewReplacer(
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)
	breakReplacer = strings.NewReplacer(
		"<br>", "<br/>",
		"</br>", "",
	)
	paragraphStripper = strings.NewReplacer(
		"<p>", "",
		"</p>", "",
		"<p/>", "",
	)

	leadingParagraph = regexp.MustCompile(`^<p(\s|/|>)`)
	entityRef        = regexp.MustCompile(`&\w+;|&#\d{4}|&#\d{3}`)
)

// entity references are marked with this while loose ampersands are escaped
const sentinel = "\x00"

// Result is the outcome of Sanitize.
type Result struct {
	Content string
	// Reverted is set when paragraph wrapping produced malformed markup and
	// the unwrapped content was kept.
	Reverted bool
}

// Sanitize normalizes quotes and line breaks, then wraps paragraphs when
// allowParagraphs is set or strips them otherwise.
func Sanitize(content string, allowParagraphs bool) Result {
	content = NormalizeQuotes(content)
	content = NormalizeBreaks(content)
	if !allowParagraphs {
		return Result{Content: StripParagraphs(content)}
	}
	wrapped, reverted := WrapParagraphs(content)
	return Result{Content: wrapped, Reverted: reverted}
}

// NormalizeQuotes turns typographic quotes into ASCII ones.
func NormalizeQuotes(s string) string { return quoteReplacer.Replace(s) }

// NormalizeBreaks makes every <br> self closing and drops </br>.
func NormalizeBreaks(s string) string { return breakReplacer.Replace(s) }

// StripParagraphs removes paragraph tags for inline contexts.
func StripParagraphs(s string) string { return paragraphStripper.Replace(s) }

// WrapParagraphs splits content on blank lines and wraps each block in <p>.
// Content already starting with a paragraph, and blank content, is returned
// as is. When the wrapped result is not well formed the input is returned and
// reverted is true.
func WrapParagraphs(content string) (wrapped string, reverted bool) {
	content = strings.ReplaceAll(content, "\n\t", "\n\n")
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || leadingParagraph.MatchString(trimmed) {
		return content, false
	}

	var blocks []string
	for _, b := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(b) != "" {
			blocks = append(blocks, b)
		}
	}

	var sb strings.Builder
	if len(blocks) > 1 {
		for _, b := range blocks {
			sb.WriteString("<p>")
			sb.WriteString(EscapeLooseAmpersands(chomp(b)))
			sb.WriteString("</p>")
		}
	} else {
		sb.WriteString("<p>")
		sb.WriteString(EscapeLooseAmpersands(trimmed))
		sb.WriteString("</p>")
	}

	out := sb.String()
	if WellFormed(out) != nil {
		return content, true
	}
	return out, false
}

// EscapeLooseAmpersands escapes every '&' that does not start an entity
// reference. Applying it twice changes nothing.
func EscapeLooseAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	s = strings.ReplaceAll(s, sentinel, "")
	s = entityRef.ReplaceAllStringFunc(s, func(ref string) string {
		return sentinel + ref[1:]
	})
	s = strings.ReplaceAll(s, "&", "&amp;")
	return strings.ReplaceAll(s, sentinel, "&")
}

// chomp drops one trailing line terminator.
func chomp(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}
