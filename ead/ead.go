package ead

// Namespaces and schema location for EAD 2002.
const (
	Namespace      = "urn:isbn:1-931666-22-9"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	XLinkNamespace = "http://www.w3.org/1999/xlink"
	SchemaLocation = Namespace + " http://www.loc.gov/ead/ead.xsd"
)

// Audience values for the audience attribute.
const (
	AudienceInternal = "internal"
	AudienceExternal = "external"
)

// MaxNumberedDepth is the deepest numbered component element (c12).
const MaxNumberedDepth = 12
