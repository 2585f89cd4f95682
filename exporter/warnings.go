package exporter

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Warning type constants
const (
	// content
	WarningParagraphsReverted = "paragraphs_reverted"
	WarningAmpersandsEscaped  = "ampersands_escaped"
	WarningMalformedMarkup    = "malformed_markup"
	WarningInvalidCharacters  = "invalid_characters"

	// vocabulary
	WarningUnknownAgentType = "unknown_agent_type"
	WarningUnknownNoteType  = "unknown_note_type"
	WarningUnknownTerm      = "unknown_term_element"
	WarningUnknownIndexType = "unknown_index_item_type"

	// structure
	WarningIncompleteContainer = "incomplete_container"
	WarningNodeFailed          = "node_failed"
)

const maxExamples = 3

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during an export and logs one summary
// line per warning type.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example node id
func (w *WarningAggregator) Add(warningType, exampleID string) {
	info := w.warnings[warningType]
	if info == nil {
		info = &warningInfo{examples: make([]string, 0, maxExamples)}
		w.warnings[warningType] = info
	}
	info.count++
	if len(info.examples) < maxExamples && exampleID != "" {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the occurrences of warningType.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Total is the number of warnings of every type.
func (w *WarningAggregator) Total() int {
	n := 0
	for _, info := range w.warnings {
		n += info.count
	}
	return n
}

// LogAll writes the collected warnings, one entry per type, sorted by type.
func (w *WarningAggregator) LogAll(log *zap.Logger, resourceID string) {
	if len(w.warnings) == 0 {
		return
	}

	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		info := w.warnings[t]
		description, action := describeWarning(t)
		log.Warn(description,
			zap.String("resource", resourceID),
			zap.String("warning", t),
			zap.Int("occurrences", info.count),
			zap.String("action", action),
			zap.String("examples", strings.Join(info.examples, ", ")),
		)
	}
}

func describeWarning(warningType string) (description, action string) {
	switch warningType {
	case WarningParagraphsReverted:
		return "paragraph wrapping produced malformed markup", "Emitting the content without paragraphs"
	case WarningAmpersandsEscaped:
		return "markup with unescaped ampersands", "Escaping loose ampersands"
	case WarningMalformedMarkup:
		return "markup that is not well formed", "Emitting the content as CDATA"
	case WarningInvalidCharacters:
		return "characters not allowed in XML", "Removing the characters"
	case WarningUnknownAgentType:
		return "agents with an unknown agent type", "Skipping the origination"
	case WarningUnknownNoteType:
		return "notes with a type that is not an EAD element", "Skipping the note"
	case WarningUnknownTerm:
		return "controlaccess terms outside the index term headings", "Skipping the term"
	case WarningUnknownIndexType:
		return "index items with an unmapped type", "Skipping the index entry"
	case WarningIncompleteContainer:
		return "container levels without type or indicator", "Skipping the container level"
	case WarningNodeFailed:
		return "nodes that failed to export", "Writing an export error block in place"
	}
	return "unknown issue", "Continuing with fallback behavior"
}
