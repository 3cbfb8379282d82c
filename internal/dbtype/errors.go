package dbtype

import "errors"

var (
	// ErrCorruptMetadata is returned when database metadata violates an invariant,
	// such as an entry mapped to a folder that does not exist.
	ErrCorruptMetadata = errors.New("szdb: corrupt metadata")

	// ErrIndexOutOfRange is returned when an entry or folder index is outside
	// the database.
	ErrIndexOutOfRange = errors.New("szdb: index out of range")
)

// ErrInvalidIndex is returned when an encoded database cannot be decoded.
var ErrInvalidIndex = errors.New("szdb: invalid index")
