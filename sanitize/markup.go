package sanitize

import (
	"encoding/xml"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
)

var textEntity = regexp.MustCompile(`&(#[0-9]+|#[xX][0-9a-fA-F]+|[A-Za-z][A-Za-z0-9]*);`)

// HasMarkup reports whether s contains a tag or a comment.
func HasMarkup(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken, html.CommentToken:
			return true
		}
	}
}

// WellFormed parses s as the body of a wrapper element with a strict XML
// decoder. Undeclared namespace prefixes are accepted.
func WellFormed(s string) error {
	d := xml.NewDecoder(strings.NewReader("<wrap>" + s + "</wrap>"))
	d.Strict = true
	depth := 0
	closed := false
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "fragment is not well formed")
		}
		if closed {
			return errors.New("fragment is not well formed: content after the wrapper element")
		}
		if err := CheckToken(tok); err != nil {
			return errors.Wrap(err, "fragment is not well formed")
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
			closed = depth == 0
		}
	}
}

// CheckToken rejects tokens encoding/xml accepts but XML 1.0 forbids inside
// an element: directives, an XML declaration and repeated attributes.
func CheckToken(tok xml.Token) error {
	switch t := tok.(type) {
	case xml.Directive:
		return errors.Newf("markup declaration %q", directiveName(t))
	case xml.ProcInst:
		if strings.EqualFold(t.Target, "xml") {
			return errors.New("XML declaration inside content")
		}
	case xml.StartElement:
		if len(t.Attr) < 2 {
			return nil
		}
		seen := make(map[xml.Name]struct{}, len(t.Attr))
		for _, a := range t.Attr {
			if _, dup := seen[a.Name]; dup {
				return errors.Newf("attribute %q repeated on <%s>", qualified(a.Name), t.Name.Local)
			}
			seen[a.Name] = struct{}{}
		}
	}
	return nil
}

func directiveName(d xml.Directive) string {
	name, _, _ := strings.Cut(strings.TrimSpace(string(d)), " ")
	return "<!" + name
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// UnescapeEntities decodes entity references in plain text so the writer
// can escape the text exactly once.
func UnescapeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return textEntity.ReplaceAllStringFunc(s, html.UnescapeString)
}

// validXMLRune reports whether r may appear in an XML 1.0 document.
func validXMLRune(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

// HasInvalidChars reports control characters or broken UTF-8 in s.
func HasInvalidChars(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || !validXMLRune(r) {
			return true
		}
		i += size
	}
	return false
}

// StripInvalidChars removes everything HasInvalidChars would report.
func StripInvalidChars(s string) string {
	if !HasInvalidChars(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !(r == utf8.RuneError && size == 1) && validXMLRune(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
