package sanitize

// Mode is how a prepared value must be emitted.
type Mode uint8

const (
	// ModeText is plain character data, to be escaped by the writer.
	ModeText Mode = iota
	// ModeMarkup is a well-formed fragment, to be copied verbatim.
	ModeMarkup
	// ModeCDATA is a literal block.
	ModeCDATA
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeMarkup:
		return "markup"
	case ModeCDATA:
		return "cdata"
	}
	return "unknown"
}

// Fallback names the recovery applied while preparing a value.
type Fallback string

const (
	FallbackNone         Fallback = ""
	FallbackUnwrapped    Fallback = "paragraph_wrap_reverted"
	FallbackAmpersands   Fallback = "loose_ampersands_escaped"
	FallbackMalformed    Fallback = "malformed_markup_cdata"
	FallbackInvalidChars Fallback = "invalid_characters_cdata"
)

// Piece is a value ready for the writer.
type Piece struct {
	Mode      Mode
	Content   string
	Fallbacks []Fallback
}

// Prepare sanitizes content and picks how to emit it. It never fails: the
// last resort is a CDATA block.
func Prepare(content string, allowParagraphs bool) Piece {
	var p Piece
	r := Sanitize(content, allowParagraphs)
	if r.Reverted {
		p.Fallbacks = append(p.Fallbacks, FallbackUnwrapped)
	}
	c := r.Content

	if HasInvalidChars(c) {
		p.Mode = ModeCDATA
		p.Content = StripInvalidChars(c)
		p.Fallbacks = append(p.Fallbacks, FallbackInvalidChars)
		return p
	}

	if !HasMarkup(c) {
		p.Mode = ModeText
		p.Content = UnescapeEntities(c)
		if HasInvalidChars(p.Content) {
			p.Content = StripInvalidChars(p.Content)
			p.Fallbacks = append(p.Fallbacks, FallbackInvalidChars)
		}
		return p
	}

	if WellFormed(c) == nil {
		p.Mode = ModeMarkup
		p.Content = c
		return p
	}
	if escaped := EscapeLooseAmpersands(c); escaped != c && WellFormed(escaped) == nil {
		p.Mode = ModeMarkup
		p.Content = escaped
		p.Fallbacks = append(p.Fallbacks, FallbackAmpersands)
		return p
	}

	p.Mode = ModeCDATA
	p.Content = c
	p.Fallbacks = append(p.Fallbacks, FallbackMalformed)
	return p
}
