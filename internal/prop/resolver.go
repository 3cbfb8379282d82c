package prop

import (
	"path/filepath"

	"github.com/meigma/szdb/internal/dbtype"
	"github.com/meigma/szdb/internal/method"
)

// Resolver answers property queries against one filled database.
// It never modifies the database.
type Resolver struct {
	db      *dbtype.Database
	methods method.Table
}

// New returns a Resolver for db. A nil table selects method.DefaultTable.
func New(db *dbtype.Database, methods method.Table) *Resolver {
	if methods == nil {
		methods = method.DefaultTable
	}
	return &Resolver{db: db, methods: methods}
}

// Count returns the number of entries.
func (r *Resolver) Count() int {
	return len(r.db.Files)
}

// Entry returns property id of entry index.
//
// It fails with dbtype.ErrIndexOutOfRange for a bad index and with
// dbtype.ErrCorruptMetadata if the entry maps to a folder that does not
// exist. Unknown ids report Absent.
func (r *Resolver) Entry(index int, id ID) (Value, error) {
	folder, err := r.db.FolderIndex(index)
	if err != nil {
		return Absent(), err
	}
	e := &r.db.Files[index]

	switch id {
	case Path:
		if e.Name == "" {
			return Absent(), nil
		}
		return StringValue(filepath.FromSlash(e.Name)), nil
	case IsDir:
		return BoolValue(e.IsDir), nil
	case Size:
		return Uint64Value(e.Size), nil
	case PackSize:
		if !r.isFirstInFolder(index, folder) {
			return Uint64Value(0), nil
		}
		return Uint64Value(r.db.FolderFullPackSize(int(folder))), nil
	case Position:
		if !e.StartPosDefined {
			return Absent(), nil
		}
		return Uint64Value(e.StartPos), nil
	case CTime:
		return timeValue(e.CTime, e.CTimeDefined), nil
	case ATime:
		return timeValue(e.ATime, e.ATimeDefined), nil
	case MTime:
		return timeValue(e.MTime, e.MTimeDefined), nil
	case Attrib:
		if !e.AttribDefined {
			return Absent(), nil
		}
		return Uint32Value(e.Attrib), nil
	case CRC:
		if !e.CRCDefined {
			return Absent(), nil
		}
		return Uint32Value(e.CRC), nil
	case Encrypted:
		return BoolValue(folder != dbtype.NoIndex && r.db.Folders[folder].IsEncrypted()), nil
	case IsAnti:
		return BoolValue(r.db.IsItemAnti(index)), nil
	case Method:
		if folder == dbtype.NoIndex {
			return Absent(), nil
		}
		return StringValue(method.FolderString(r.methods, &r.db.Folders[folder])), nil
	case Block:
		if folder == dbtype.NoIndex {
			return Absent(), nil
		}
		return Uint32Value(folder), nil
	case PackedSize0, PackedSize1, PackedSize2, PackedSize3, PackedSize4:
		n := int(id - PackedSize0)
		if !r.isFirstInFolder(index, folder) || int(r.db.Folders[folder].NumPackStreams) <= n {
			return Uint64Value(0), nil
		}
		return Uint64Value(r.db.FolderPackStreamSize(int(folder), n)), nil
	default:
		return Absent(), nil
	}
}

// Archive returns archive-wide property id. Unknown ids report Absent.
func (r *Resolver) Archive(id ID) Value {
	switch id {
	case Method:
		return StringValue(method.ArchiveString(r.methods, r.db.Folders))
	case Solid:
		return BoolValue(r.db.IsSolid())
	case NumBlocks:
		return Uint32Value(uint32(len(r.db.Folders))) //nolint:gosec // Fill bounds folder counts below NoIndex
	case PhySize:
		return Uint64Value(r.db.PhySize)
	case HeadersSize:
		return Uint64Value(r.db.HeadersSize)
	case Offset:
		if r.db.StartPosition == 0 {
			return Absent()
		}
		return Uint64Value(r.db.StartPosition)
	default:
		return Absent()
	}
}

// isFirstInFolder reports whether entry index is the first entry of folder.
func (r *Resolver) isFirstInFolder(index int, folder uint32) bool {
	return folder != dbtype.NoIndex && int(r.db.FolderStartFileIndex[folder]) == index
}

func timeValue(ft uint64, defined bool) Value {
	if !defined {
		return Absent()
	}
	return TimeValue(ft)
}
