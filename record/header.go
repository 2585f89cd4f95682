package record

// Header carries resource-level metadata used by eadheader and the root did.
type Header struct {
	Language           string            `yaml:"language,omitempty"`
	Repository         Repository        `yaml:"repository"`
	FindingAid         FindingAid        `yaml:"finding_aid"`
	EADID              string            `yaml:"ead_id,omitempty"`
	EADLocation        string            `yaml:"ead_location,omitempty" validate:"omitempty,url"`
	RevisionStatements []Revision        `yaml:"revision_statements,omitempty"`
	DidNoteTypes       []string          `yaml:"did_note_types,omitempty"`
	ArchdescNoteTypes  []string          `yaml:"archdesc_note_types,omitempty"`
	IndexItemTypes     map[string]string `yaml:"index_item_types,omitempty"`
}

// Repository is the holding institution.
type Repository struct {
	Name         string   `yaml:"name"`
	Country      string   `yaml:"country,omitempty"`
	Code         string   `yaml:"code,omitempty"`
	URL          string   `yaml:"url,omitempty" validate:"omitempty,url"`
	ImageURL     string   `yaml:"image_url,omitempty" validate:"omitempty,url"`
	AddressLines []string `yaml:"address_lines,omitempty"`
}

// FindingAid holds the finding aid's own bibliographic data.
type FindingAid struct {
	Title            string `yaml:"title,omitempty"`
	FilingTitle      string `yaml:"filing_title,omitempty"`
	Subtitle         string `yaml:"subtitle,omitempty"`
	Author           string `yaml:"author,omitempty"`
	Sponsor          string `yaml:"sponsor,omitempty"`
	EditionStatement string `yaml:"edition_statement,omitempty"`
	Date             string `yaml:"date,omitempty"`
	SeriesStatement  string `yaml:"series_statement,omitempty"`
	Note             string `yaml:"note,omitempty"`
	Language         string `yaml:"language,omitempty"`
	DescRules        string `yaml:"descrules,omitempty"`
	Status           string `yaml:"status,omitempty"`
}

// Revision is one revision statement.
type Revision struct {
	Date        string `yaml:"date,omitempty"`
	Description string `yaml:"description,omitempty"`
}
