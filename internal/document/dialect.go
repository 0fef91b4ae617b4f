package document

// Dialect identifies the shape of a feed document
type Dialect int

const (
	DialectUnknown Dialect = iota

	// DialectErrataList is a flat list of advisories under an <opt> root,
	// each listing package file names as <packages> text.
	DialectErrataList

	// DialectUpdateInfo is a repository updateinfo.xml with an <updates>
	// root and packages split into attributes.
	DialectUpdateInfo
)

const (
	rootErrataList = "opt"
	rootUpdateInfo = "updates"
)

// String returns the string representation of Dialect
func (d Dialect) String() string {
	switch d {
	case DialectErrataList:
		return "errata-list"
	case DialectUpdateInfo:
		return "updateinfo"
	default:
		return "unknown"
	}
}

// DetectDialect inspects the root tag of a document
func DetectDialect(root *Node) Dialect {
	if root == nil {
		return DialectUnknown
	}
	switch root.Tag {
	case rootErrataList:
		return DialectErrataList
	case rootUpdateInfo:
		return DialectUpdateInfo
	default:
		return DialectUnknown
	}
}
