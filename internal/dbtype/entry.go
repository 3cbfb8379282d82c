package dbtype

import "time"

// Entry is one file or directory record in the archive.
//
// Optional attributes carry a companion Defined flag; an attribute whose flag
// is false is absent and its value must be ignored.
type Entry struct {
	// Name is the full slash-separated path inside the archive.
	Name string

	// Size is the uncompressed size in bytes.
	Size uint64

	// CRC is the CRC32 of the uncompressed content.
	CRC uint32

	// Attrib holds the stored file attributes.
	Attrib uint32

	// CTime, ATime and MTime are FILETIME values (100ns ticks since 1601-01-01 UTC).
	CTime uint64
	ATime uint64
	MTime uint64

	// StartPos is the entry's offset inside its folder's unpacked stream.
	StartPos uint64

	IsDir bool

	// HasStream is false for directories and empty files. Only entries with a
	// stream consume one of their folder's unpack streams.
	HasStream bool

	// IsAnti marks a deletion marker used by update archives.
	IsAnti bool

	CRCDefined      bool
	AttribDefined   bool
	CTimeDefined    bool
	ATimeDefined    bool
	MTimeDefined    bool
	StartPosDefined bool
}

// fileTimeEpochDelta is the number of 100ns ticks between 1601-01-01 and 1970-01-01.
const fileTimeEpochDelta = 116444736000000000

// FileTimeToTime converts a FILETIME value to a UTC time.Time.
func FileTimeToTime(ft uint64) time.Time {
	ticks := int64(ft) - fileTimeEpochDelta //nolint:gosec // FILETIME values in use fit in int64
	return time.Unix(ticks/10_000_000, (ticks%10_000_000)*100).UTC()
}

// TimeToFileTime converts t to a FILETIME value.
func TimeToFileTime(t time.Time) uint64 {
	return uint64(t.Unix()*10_000_000 + int64(t.Nanosecond()/100) + fileTimeEpochDelta) //nolint:gosec // FILETIME is unsigned by definition
}
