package record

import (
	"strconv"
	"strings"
)

// Node is one level of description: the resource itself or an archival object.
type Node interface {
	Description() *Description
	ChildCount() int
	Child(i int) (Node, error)
}

// Resource is the root of an export.
type Resource interface {
	Node
	Header() *Header
}

// Description carries the fields of one node.
type Description struct {
	Level          string         `yaml:"level,omitempty"`
	OtherLevel     string         `yaml:"other_level,omitempty"`
	Title          string         `yaml:"title,omitempty"`
	Publish        Flag           `yaml:"publish,omitempty"`
	Suppressed     bool           `yaml:"suppressed,omitempty"`
	RefID          string         `yaml:"ref_id,omitempty"`
	ComponentID    string         `yaml:"component_id,omitempty"`
	Identifiers    []string       `yaml:"identifiers,omitempty" validate:"max=4"`
	ExternalIDs    []ExternalID   `yaml:"external_ids,omitempty" validate:"dive"`
	Notes          []Note         `yaml:"notes,omitempty" validate:"dive"`
	Extents        []Extent       `yaml:"extents,omitempty" validate:"dive"`
	Dates          []Date         `yaml:"dates,omitempty"`
	Originations   []Origination  `yaml:"originations,omitempty" validate:"dive"`
	Instances      []Instance     `yaml:"instances,omitempty" validate:"dive"`
	Bibliographies []Bibliography `yaml:"bibliographies,omitempty"`
	Indexes        []Index        `yaml:"indexes,omitempty"`
	Terms          []Term         `yaml:"terms,omitempty" validate:"dive"`
}

// Unpublished reports whether the node is explicitly unpublished.
func (d *Description) Unpublished() bool { return Unpublished(d.Publish) }

// UnitID joins the non-empty identifier parts with ".".
func (d *Description) UnitID() string {
	parts := make([]string, 0, 4)
	for i, id := range d.Identifiers {
		if i == 4 {
			break
		}
		if id != "" {
			parts = append(parts, id)
		}
	}
	return strings.Join(parts, ".")
}

// ExternalID is an identifier assigned by another system.
type ExternalID struct {
	Source     string `yaml:"source"`
	ExternalID string `yaml:"external_id" validate:"required"`
}

// NoteKind is the structural kind of a note.
type NoteKind string

const (
	NoteSinglepart  NoteKind = "singlepart"
	NoteMultipart   NoteKind = "multipart"
	NoteText        NoteKind = "text"
	NoteChronology  NoteKind = "chronology"
	NoteOrderedList NoteKind = "orderedlist"
	NoteDefinedList NoteKind = "definedlist"
)

// Note is a descriptive note or a subnote.
type Note struct {
	Kind        NoteKind    `yaml:"kind" validate:"omitempty,oneof=singlepart multipart text chronology orderedlist definedlist"`
	Type        string      `yaml:"type,omitempty"`
	Label       string      `yaml:"label,omitempty"`
	Content     []string    `yaml:"content,omitempty"`
	Publish     Flag        `yaml:"publish,omitempty"`
	Internal    bool        `yaml:"internal,omitempty"`
	Title       string      `yaml:"title,omitempty"`
	Enumeration string      `yaml:"enumeration,omitempty"`
	Items       []string    `yaml:"items,omitempty"`
	DefItems    []DefItem   `yaml:"defined_items,omitempty"`
	ChronItems  []ChronItem `yaml:"chron_items,omitempty"`
	Subnotes    []Note      `yaml:"subnotes,omitempty" validate:"dive"`
}

// DefItem is one label/value pair of a defined list.
type DefItem struct {
	Label string `yaml:"label,omitempty"`
	Value string `yaml:"value,omitempty"`
}

// ChronItem is one dated entry of a chronology.
type ChronItem struct {
	EventDate string   `yaml:"event_date,omitempty"`
	Events    []string `yaml:"events,omitempty"`
}

// Body joins the note's own content blocks.
func (n *Note) Body() string {
	return strings.Join(n.Content, "\n\n")
}

// Text is the note's own content followed by the content of its text
// subnotes, skipping unpublished subnotes unless includeUnpublished is set.
func (n *Note) Text(includeUnpublished bool) string {
	blocks := make([]string, 0, len(n.Content)+len(n.Subnotes))
	blocks = append(blocks, n.Content...)
	for i := range n.Subnotes {
		sn := &n.Subnotes[i]
		if sn.Kind != NoteText {
			continue
		}
		if Unpublished(sn.Publish) && !includeUnpublished {
			continue
		}
		blocks = append(blocks, sn.Content...)
	}
	return strings.Join(blocks, "\n\n")
}

// Extent is one extent statement.
type Extent struct {
	Number           string `yaml:"number" validate:"omitempty,numeric"`
	ExtentType       string `yaml:"extent_type"`
	ContainerSummary string `yaml:"container_summary,omitempty"`
	PhysicalDetails  string `yaml:"physical_details,omitempty"`
	Dimensions       string `yaml:"dimensions,omitempty"`
	Portion          string `yaml:"portion,omitempty"`
	Publish          Flag   `yaml:"publish,omitempty"`
}

// Quantity parses Number. Unparseable numbers count as zero.
func (e *Extent) Quantity() float64 {
	q, err := strconv.ParseFloat(strings.TrimSpace(e.Number), 64)
	if err != nil {
		return 0
	}
	return q
}

// Date is a date statement with its display content already resolved.
type Date struct {
	Content    string `yaml:"content,omitempty"`
	Expression string `yaml:"expression,omitempty"`
	Begin      string `yaml:"begin,omitempty"`
	End        string `yaml:"end,omitempty"`
	Type       string `yaml:"type,omitempty"`
	Normal     string `yaml:"normal,omitempty"`
	Era        string `yaml:"era,omitempty"`
	Calendar   string `yaml:"calendar,omitempty"`
	DateChar   string `yaml:"datechar,omitempty"`
	Publish    Flag   `yaml:"publish,omitempty"`
}

// Display returns Content, else the expression, else begin[-end].
func (d *Date) Display() string {
	switch {
	case d.Content != "":
		return d.Content
	case d.Expression != "":
		return d.Expression
	case d.Begin != "" && d.End != "" && d.End != d.Begin:
		return d.Begin + "-" + d.End
	}
	return d.Begin
}

// Origination links a creator or source agent.
type Origination struct {
	Role    string `yaml:"role"`
	Relator string `yaml:"relator,omitempty"`
	Agent   Agent  `yaml:"agent"`
}

// Agent is a person, family or corporate body.
type Agent struct {
	AgentType   string      `yaml:"agent_type" validate:"required"`
	DisplayName DisplayName `yaml:"display_name"`
}

// DisplayName is an agent's authorized name.
type DisplayName struct {
	SortName    string `yaml:"sort_name"`
	Rules       string `yaml:"rules,omitempty"`
	Source      string `yaml:"source,omitempty"`
	AuthorityID string `yaml:"authority_id,omitempty"`
}

// Instance places a node in a container or links a digital object.
type Instance struct {
	InstanceType  string         `yaml:"instance_type"`
	SubContainer  *SubContainer  `yaml:"sub_container,omitempty"`
	DigitalObject *DigitalObject `yaml:"digital_object,omitempty"`
}

// SubContainer is the position inside a top container.
type SubContainer struct {
	TopContainer TopContainer `yaml:"top_container"`
	Type2        string       `yaml:"type_2,omitempty"`
	Indicator2   string       `yaml:"indicator_2,omitempty"`
	Type3        string       `yaml:"type_3,omitempty"`
	Indicator3   string       `yaml:"indicator_3,omitempty"`
}

// TopContainer is a box, folder or other physical container.
type TopContainer struct {
	Type      string            `yaml:"type"`
	Indicator string            `yaml:"indicator"`
	Barcode   string            `yaml:"barcode,omitempty"`
	Profile   *ContainerProfile `yaml:"container_profile,omitempty"`
}

// ContainerProfile describes a container's dimensions.
type ContainerProfile struct {
	Name string `yaml:"name,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

// DigitalObject is a linked digital surrogate.
type DigitalObject struct {
	Title           string        `yaml:"title,omitempty"`
	DigitalObjectID string        `yaml:"digital_object_id"`
	Dates           []Date        `yaml:"dates,omitempty"`
	Publish         Flag          `yaml:"publish,omitempty"`
	Suppressed      bool          `yaml:"suppressed,omitempty"`
	FileVersions    []FileVersion `yaml:"file_versions,omitempty"`
}

// FileVersion is one file of a digital object.
type FileVersion struct {
	FileURI      string `yaml:"file_uri"`
	UseStatement string `yaml:"use_statement,omitempty"`
	Caption      string `yaml:"caption,omitempty"`
	XlinkActuate string `yaml:"xlink_actuate_attribute,omitempty"`
	XlinkShow    string `yaml:"xlink_show_attribute,omitempty"`
	Publish      Flag   `yaml:"publish,omitempty"`
}

// Term is a controlaccess heading. Attrs keep their order.
type Term struct {
	NodeName string `yaml:"node_name" validate:"required"`
	Attrs    []Attr `yaml:"attrs,omitempty"`
	Content  string `yaml:"content"`
}

// Attr is a name/value pair.
type Attr struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Bibliography is a bibliography note.
type Bibliography struct {
	Type    string   `yaml:"type,omitempty"`
	Label   string   `yaml:"label,omitempty"`
	Content []string `yaml:"content,omitempty"`
	Items   []string `yaml:"items,omitempty"`
	Publish Flag     `yaml:"publish,omitempty"`
}

// Index is an index note.
type Index struct {
	Type    string      `yaml:"type,omitempty"`
	Label   string      `yaml:"label,omitempty"`
	Content []string    `yaml:"content,omitempty"`
	Items   []IndexItem `yaml:"items,omitempty"`
	Publish Flag        `yaml:"publish,omitempty"`
}

// IndexItem is one entry of an index.
type IndexItem struct {
	Type          string `yaml:"type"`
	Value         string `yaml:"value,omitempty"`
	Reference     string `yaml:"reference,omitempty"`
	ReferenceText string `yaml:"reference_text,omitempty"`
}
