package vocab

// IndexTermsHeading heads the outer controlaccess block.
const IndexTermsHeading = "Index Terms"

// Bucket is one headed group inside controlaccess.
type Bucket struct {
	NodeName       string
	Heading        string
	EncodingAnalog string
}

// Buckets lists the controlaccess groups in output order.
var Buckets = []Bucket{
	{NodeName: "persname", Heading: "Personal Names", EncodingAnalog: "600"},
	{NodeName: "famname", Heading: "Family Names", EncodingAnalog: "600"},
	{NodeName: "corpname", Heading: "Corporate Names", EncodingAnalog: "610"},
	{NodeName: "subject", Heading: "Subjects", EncodingAnalog: "650"},
	{NodeName: "geogname", Heading: "Places", EncodingAnalog: "651"},
	{NodeName: "genreform", Heading: "Document Types", EncodingAnalog: "655"},
}

// BucketFor returns the index into Buckets for a term's element name.
func BucketFor(nodeName string) (int, bool) {
	for i, b := range Buckets {
		if b.NodeName == nodeName {
			return i, true
		}
	}
	return -1, false
}
