package szdb

import (
	"errors"

	"github.com/meigma/szdb/internal/dbtype"
)

// Sentinel errors re-exported from internal/dbtype.
var (
	// ErrCorruptMetadata is returned when database metadata violates an
	// invariant, such as an entry mapped to a folder that does not exist.
	ErrCorruptMetadata = dbtype.ErrCorruptMetadata

	// ErrIndexOutOfRange is returned when an entry index is outside the archive.
	ErrIndexOutOfRange = dbtype.ErrIndexOutOfRange

	// ErrInvalidIndex is returned when an encoded database cannot be decoded.
	ErrInvalidIndex = dbtype.ErrInvalidIndex
)

// Sentinel errors specific to the szdb package.
var (
	// ErrClosed is returned when an Archive is used after Close.
	ErrClosed = errors.New("szdb: archive closed")

	// ErrInvalidArgument is returned for unusable arguments, such as a nil
	// database or an unknown session property.
	ErrInvalidArgument = errors.New("szdb: invalid argument")

	// ErrDigestMismatch is returned when content does not match its expected digest.
	ErrDigestMismatch = errors.New("szdb: digest mismatch")
)
