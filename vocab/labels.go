package vocab

// Display labels and analogs on fixed did fields.
const (
	RepositoryLabel  = "Repository:"
	RepositoryAnalog = "852$a"

	TitleLabel  = "Title:"
	TitleAnalog = "245"

	IdentifierLabel  = "Identification:"
	IdentifierAnalog = "099"

	ExtentLabelText = "Extent:"
	ExtentAnalog    = "300"

	EADIDAnalog = "852$a"
)

// Encodings declared on eadheader.
const (
	RepositoryEncoding = "iso15511"
	CountryEncoding    = "iso3166-1"
	DateEncoding       = "iso8601"
	LangEncoding       = "iso639-2b"
)
