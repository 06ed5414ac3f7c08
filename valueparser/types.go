package valueparser

const (
	DefaultEntrySeparator = ","
	DefaultKVSeparator    = ":"
)

// ParsableType is any type ParseValue knows how to produce from a string.
type ParsableType interface {
	ParsableComparableType | ~[]byte
}

// ParsableComparableType is the comparable subset of ParsableType, usable as a map key.
type ParsableComparableType interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool
}

// Unmarshalable is implemented by enum-like types that parse themselves from
// a plain string, e.g. yalogger.Level.
type Unmarshalable interface {
	Unmarshal(text string) error
}
