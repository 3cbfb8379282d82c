// Package prop resolves entry and archive properties of a filled database
// into typed values.
package prop

// ID identifies a property.
type ID uint8

// Entry properties.
const (
	Path ID = iota + 1
	IsDir
	Size
	PackSize
	Position
	CTime
	ATime
	MTime
	Attrib
	CRC
	Encrypted
	IsAnti
	Method
	Block
	PackedSize0
	PackedSize1
	PackedSize2
	PackedSize3
	PackedSize4
)

// Archive properties.
const (
	Solid ID = iota + 32
	NumBlocks
	PhySize
	HeadersSize
	Offset
)

// EntryIDs lists the entry properties in display order.
var EntryIDs = []ID{
	Path, IsDir, Size, PackSize, Position,
	CTime, ATime, MTime, Attrib, CRC,
	Encrypted, IsAnti, Method, Block,
	PackedSize0, PackedSize1, PackedSize2, PackedSize3, PackedSize4,
}

// ArchiveIDs lists the archive properties in display order. Method doubles
// as the archive-wide method set.
var ArchiveIDs = []ID{Method, Solid, NumBlocks, PhySize, HeadersSize, Offset}

var names = map[ID]string{
	Path:        "path",
	IsDir:       "dir",
	Size:        "size",
	PackSize:    "packed",
	Position:    "position",
	CTime:       "ctime",
	ATime:       "atime",
	MTime:       "mtime",
	Attrib:      "attrib",
	CRC:         "crc",
	Encrypted:   "encrypted",
	IsAnti:      "anti",
	Method:      "method",
	Block:       "block",
	PackedSize0: "packed0",
	PackedSize1: "packed1",
	PackedSize2: "packed2",
	PackedSize3: "packed3",
	PackedSize4: "packed4",
	Solid:       "solid",
	NumBlocks:   "blocks",
	PhySize:     "physize",
	HeadersSize: "headers",
	Offset:      "offset",
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return "unknown"
}
