package mitsvalidator

// SchemaVersion identifies the MITS fee schema revision being validated.
type SchemaVersion string

// Supported schema revisions.
const (
	// MITS50 is MITS 5.0 (Rental Options & Fees)
	MITS50 SchemaVersion = "5.0"
)

// String returns the version string.
func (v SchemaVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a supported schema revision.
func (v SchemaVersion) IsValid() bool {
	return v == MITS50
}

// EngineVersion is the validator release version.
const EngineVersion = "0.4.0"
