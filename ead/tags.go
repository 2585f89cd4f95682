package ead

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Tag is an EAD element name. The zero value is not a valid tag.
type Tag uint8

// Element names, grouped roughly by where they appear in a finding aid.
const (
	tagInvalid Tag = iota

	// document frame
	EAD
	EADHeader
	ArchDesc
	DSC

	// eadheader
	EADID
	FileDesc
	TitleStmt
	TitleProper
	Subtitle
	Author
	Sponsor
	EditionStmt
	PublicationStmt
	Publisher
	SeriesStmt
	NoteStmt
	ProfileDesc
	Creation
	LangUsage
	DescRules
	RevisionDesc
	Change
	Address
	AddressLine
	ExtRef
	ExtPtr

	// did
	DID
	LangMaterial
	Language
	Repository
	UnitTitle
	UnitID
	UnitDate
	Origination
	PhysDesc
	Extent
	Dimensions
	PhysFacet
	PhysLoc
	MaterialSpec
	Abstract
	Container
	DAO
	DAODesc
	DAOGrp
	DAOLoc

	// names and access terms
	CorpName
	PersName
	FamName
	Name
	Subject
	GeogName
	GenreForm
	Function
	Occupation
	Title
	ControlAccess

	// descriptive notes
	AccessRestrict
	Accruals
	AcqInfo
	AltFormAvail
	Appraisal
	Arrangement
	BiogHist
	CustodHist
	FilePlan
	LegalStatus
	ODD
	OriginalsLoc
	OtherFindAid
	PhysTech
	PreferCite
	ProcessInfo
	RelatedMaterial
	ScopeContent
	SeparatedMaterial
	UseRestrict
	Note
	Bibliography
	BibRef
	Index
	IndexEntry
	Ref

	// block and list content
	Head
	P
	Date
	Item
	Label
	List
	DefItem
	ChronList
	ChronItem
	EventGrp
	Event

	// components
	C
	C01
	C02
	C03
	C04
	C05
	C06
	C07
	C08
	C09
	C10
	C11
	C12

	tagCount
)

var tagNames = [tagCount]string{
	EAD:               "ead",
	EADHeader:         "eadheader",
	ArchDesc:          "archdesc",
	DSC:               "dsc",
	EADID:             "eadid",
	FileDesc:          "filedesc",
	TitleStmt:         "titlestmt",
	TitleProper:       "titleproper",
	Subtitle:          "subtitle",
	Author:            "author",
	Sponsor:           "sponsor",
	EditionStmt:       "editionstmt",
	PublicationStmt:   "publicationstmt",
	Publisher:         "publisher",
	SeriesStmt:        "seriesstmt",
	NoteStmt:          "notestmt",
	ProfileDesc:       "profiledesc",
	Creation:          "creation",
	LangUsage:         "langusage",
	DescRules:         "descrules",
	RevisionDesc:      "revisiondesc",
	Change:            "change",
	Address:           "address",
	AddressLine:       "addressline",
	ExtRef:            "extref",
	ExtPtr:            "extptr",
	DID:               "did",
	LangMaterial:      "langmaterial",
	Language:          "language",
	Repository:        "repository",
	UnitTitle:         "unittitle",
	UnitID:            "unitid",
	UnitDate:          "unitdate",
	Origination:       "origination",
	PhysDesc:          "physdesc",
	Extent:            "extent",
	Dimensions:        "dimensions",
	PhysFacet:         "physfacet",
	PhysLoc:           "physloc",
	MaterialSpec:      "materialspec",
	Abstract:          "abstract",
	Container:         "container",
	DAO:               "dao",
	DAODesc:           "daodesc",
	DAOGrp:            "daogrp",
	DAOLoc:            "daoloc",
	CorpName:          "corpname",
	PersName:          "persname",
	FamName:           "famname",
	Name:              "name",
	Subject:           "subject",
	GeogName:          "geogname",
	GenreForm:         "genreform",
	Function:          "function",
	Occupation:        "occupation",
	Title:             "title",
	ControlAccess:     "controlaccess",
	AccessRestrict:    "accessrestrict",
	Accruals:          "accruals",
	AcqInfo:           "acqinfo",
	AltFormAvail:      "altformavail",
	Appraisal:         "appraisal",
	Arrangement:       "arrangement",
	BiogHist:          "bioghist",
	CustodHist:        "custodhist",
	FilePlan:          "fileplan",
	LegalStatus:       "legalstatus",
	ODD:               "odd",
	OriginalsLoc:      "originalsloc",
	OtherFindAid:      "otherfindaid",
	PhysTech:          "phystech",
	PreferCite:        "prefercite",
	ProcessInfo:       "processinfo",
	RelatedMaterial:   "relatedmaterial",
	ScopeContent:      "scopecontent",
	SeparatedMaterial: "separatedmaterial",
	UseRestrict:       "userestrict",
	Note:              "note",
	Bibliography:      "bibliography",
	BibRef:            "bibref",
	Index:             "index",
	IndexEntry:        "indexentry",
	Ref:               "ref",
	Head:              "head",
	P:                 "p",
	Date:              "date",
	Item:              "item",
	Label:             "label",
	List:              "list",
	DefItem:           "defitem",
	ChronList:         "chronlist",
	ChronItem:         "chronitem",
	EventGrp:          "eventgrp",
	Event:             "event",
	C:                 "c",
	C01:               "c01",
	C02:               "c02",
	C03:               "c03",
	C04:               "c04",
	C05:               "c05",
	C06:               "c06",
	C07:               "c07",
	C08:               "c08",
	C09:               "c09",
	C10:               "c10",
	C11:               "c11",
	C12:               "c12",
}

var tagsByName = func() map[string]Tag {
	m := make(map[string]Tag, len(tagNames))
	for t := tagInvalid + 1; t < tagCount; t++ {
		m[tagNames[t]] = t
	}
	return m
}()

var (
	// ErrUnknownTag is returned by Lookup for names outside the enumeration.
	ErrUnknownTag = errors.New("unknown EAD element")
	// ErrComponentDepth is returned by ComponentTag past c12 in numbered mode.
	ErrComponentDepth = errors.New("component depth out of range")
)

// String returns the element name.
func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
	return tagNames[t]
}

// Valid reports whether t is one of the enumerated tags.
func (t Tag) Valid() bool {
	return t > tagInvalid && t < tagCount
}

// Lookup resolves an element name received at runtime.
func Lookup(name string) (Tag, error) {
	if t, ok := tagsByName[name]; ok {
		return t, nil
	}
	return tagInvalid, errors.Wrapf(ErrUnknownTag, "%q", name)
}

// ComponentTag returns the component element for a nesting depth starting at 1.
// In flat mode every depth uses c.
func ComponentTag(depth int, numbered bool) (Tag, error) {
	if !numbered {
		return C, nil
	}
	if depth < 1 || depth > MaxNumberedDepth {
		return tagInvalid, errors.Wrapf(ErrComponentDepth, "depth %d", depth)
	}
	return C01 + Tag(depth-1), nil
}
