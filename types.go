package szdb

import (
	"github.com/meigma/szdb/internal/dbtype"
	"github.com/meigma/szdb/internal/method"
	"github.com/meigma/szdb/internal/prop"
)

// Re-export types from internal packages for the public API.
type (
	// Database is the parsed metadata of one archive.
	Database = dbtype.Database

	// Entry is one file or directory record.
	Entry = dbtype.Entry

	// Folder is one independently decodable block.
	Folder = dbtype.Folder

	// Coder is one stage of a folder's decode pipeline.
	Coder = dbtype.Coder

	// MethodTable resolves coder method ids to codec names.
	MethodTable = method.Table

	// MethodMap is a MethodTable backed by a map.
	MethodMap = method.MapTable

	// PropID identifies an entry or archive property.
	PropID = prop.ID

	// Value is the typed result of a property query.
	Value = prop.Value

	// Kind is the type held by a Value.
	Kind = prop.Kind
)

// NoIndex marks an entry that is not backed by any folder.
const NoIndex = dbtype.NoIndex

// MethodAES is the method id of the 7zAES coder.
const MethodAES = dbtype.MethodAES

// DefaultMethods lists the codecs shipped with common 7z builds.
var DefaultMethods MethodTable = method.DefaultTable

// Property ids.
const (
	PropPath        = prop.Path
	PropIsDir       = prop.IsDir
	PropSize        = prop.Size
	PropPackSize    = prop.PackSize
	PropPosition    = prop.Position
	PropCTime       = prop.CTime
	PropATime       = prop.ATime
	PropMTime       = prop.MTime
	PropAttrib      = prop.Attrib
	PropCRC         = prop.CRC
	PropEncrypted   = prop.Encrypted
	PropIsAnti      = prop.IsAnti
	PropMethod      = prop.Method
	PropBlock       = prop.Block
	PropPackedSize0 = prop.PackedSize0
	PropPackedSize1 = prop.PackedSize1
	PropPackedSize2 = prop.PackedSize2
	PropPackedSize3 = prop.PackedSize3
	PropPackedSize4 = prop.PackedSize4
	PropSolid       = prop.Solid
	PropNumBlocks   = prop.NumBlocks
	PropPhySize     = prop.PhySize
	PropHeadersSize = prop.HeadersSize
	PropOffset      = prop.Offset
)

// Value kinds.
const (
	KindAbsent = prop.KindAbsent
	KindBool   = prop.KindBool
	KindUint32 = prop.KindUint32
	KindUint64 = prop.KindUint64
	KindString = prop.KindString
	KindTime   = prop.KindTime
)

// EntryProps returns the entry property ids in display order.
func EntryProps() []PropID { return append([]PropID(nil), prop.EntryIDs...) }

// ArchiveProps returns the archive property ids in display order.
func ArchiveProps() []PropID { return append([]PropID(nil), prop.ArchiveIDs...) }
