// Package method renders coder method ids and their raw parameter bytes as
// display strings such as "LZMA:24" or "BCJ LZMA2:4m".
package method

import "github.com/meigma/szdb/internal/dbtype"

// Method ids with decodable parameters.
const (
	IDCopy  uint64 = 0x00
	IDDelta uint64 = 0x03
	IDLZMA2 uint64 = 0x21
	IDLZMA  uint64 = 0x030101
	IDPPMD  uint64 = 0x030401
	IDAES          = dbtype.MethodAES
)

// Table resolves method ids to codec names.
type Table interface {
	// Lookup returns the codec name for id and whether the codec is known.
	Lookup(id uint64) (name string, ok bool)
}

// MapTable is a Table backed by a map.
type MapTable map[uint64]string

// Lookup implements Table.
func (t MapTable) Lookup(id uint64) (string, bool) {
	name, ok := t[id]
	return name, ok
}

// DefaultTable lists the codecs shipped with common 7z builds.
var DefaultTable = MapTable{
	IDCopy:     "Copy",
	IDDelta:    "Delta",
	IDLZMA2:    "LZMA2",
	IDLZMA:     "LZMA",
	IDPPMD:     "PPMD",
	IDAES:      "7zAES",
	0x020302:   "Swap2",
	0x020304:   "Swap4",
	0x03030103: "BCJ",
	0x0303011B: "BCJ2",
	0x03030205: "PPC",
	0x03030401: "IA64",
	0x03030501: "ARM",
	0x03030701: "ARMT",
	0x03030805: "SPARC",
	0x040108:   "Deflate",
	0x040109:   "Deflate64",
	0x040202:   "BZip2",
}
