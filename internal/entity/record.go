package entity

// Record is a single DATA-section entry: "#id=TYPE(args);" or, for a
// complex instance, "#id=(T1(...)T2(...)...);" in which case Complex
// is true, Type is empty, and Args has a single element: a List holding
// each constructor as a Typed Value in order.
type Record struct {
	ID      ID
	Type    string // empty for a complex instance
	Args    []Value
	Complex bool
}

// FileMetadata carries the caller-supplied FILE_NAME fields that
// Merger.Finalize writes into the header.
type FileMetadata struct {
	Name                string
	Timestamp           string
	Author              []string
	Organization        []string
	PreprocessorVersion string
	OriginatingSystem   string
	Authorization       string
}
