// Package index encodes archive databases as FlatBuffers and decodes them
// back into filled databases.
package index

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/meigma/szdb/internal/dbtype"
	"github.com/meigma/szdb/internal/fb"
)

// Version is the encoding version written by Encode.
const Version = 1

// Index provides read access to an encoded database.
//
// Index is backed by FlatBuffers; accessors read the buffer in place. Use
// Database to materialize a filled dbtype.Database.
type Index struct {
	data []byte
	root *fb.Database
}

// Load parses a FlatBuffers-encoded database.
//
// The provided data is retained by the index; callers must not modify it
// after calling Load.
func Load(data []byte) (idx *Index, err error) {
	defer func() {
		if r := recover(); r != nil {
			idx = nil
			err = fmt.Errorf("%w: %v", dbtype.ErrInvalidIndex, r)
		}
	}()
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", dbtype.ErrInvalidIndex)
	}

	root := fb.GetRootAsDatabase(data, 0)
	if v := root.Version(); v != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", dbtype.ErrInvalidIndex, v)
	}
	return &Index{
		data: data,
		root: root,
	}, nil
}

// Version returns the encoding version of the index.
func (idx *Index) Version() uint32 {
	return idx.root.Version()
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return idx.root.FilesLength()
}

// NumFolders returns the number of folders in the index.
func (idx *Index) NumFolders() int {
	return idx.root.FoldersLength()
}

// Database decodes the index into a new database and fills its derived
// tables. The result does not alias the index buffer.
//
// It fails with dbtype.ErrInvalidIndex if the buffer is malformed and with
// dbtype.ErrCorruptMetadata if the decoded metadata is inconsistent.
func (idx *Index) Database() (db *dbtype.Database, err error) {
	defer func() {
		if r := recover(); r != nil {
			db = nil
			err = fmt.Errorf("%w: %v", dbtype.ErrInvalidIndex, r)
		}
	}()
	root := idx.root
	for _, n := range []int{root.FilesLength(), root.FoldersLength(), root.PackSizesLength(), root.PackCrcsLength()} {
		if n > len(idx.data) {
			return nil, fmt.Errorf("%w: vector length %d exceeds buffer", dbtype.ErrInvalidIndex, n)
		}
	}

	db = &dbtype.Database{
		Files:             make([]dbtype.Entry, root.FilesLength()),
		Folders:           make([]dbtype.Folder, root.FoldersLength()),
		PackSizes:         make([]uint64, root.PackSizesLength()),
		DataStartPosition: root.DataStartPosition(),
		StartPosition:     root.StartPosition(),
		PhySize:           root.PhySize(),
		HeadersSize:       root.HeadersSize(),
	}

	var fe fb.Entry
	for i := range db.Files {
		root.Files(&fe, i)
		db.Files[i] = decodeEntry(&fe)
	}
	var ff fb.Folder
	for i := range db.Folders {
		root.Folders(&ff, i)
		db.Folders[i] = decodeFolder(&ff)
	}
	for i := range db.PackSizes {
		db.PackSizes[i] = root.PackSizes(i)
	}
	if n := root.PackCrcsLength(); n > 0 {
		if root.PackCrcsDefinedLength() != n {
			return nil, fmt.Errorf("%w: %d pack CRCs with %d defined flags", dbtype.ErrInvalidIndex, n, root.PackCrcsDefinedLength())
		}
		db.PackCRCs = make([]uint32, n)
		db.PackCRCsDefined = make([]bool, n)
		for i := range n {
			db.PackCRCs[i] = root.PackCrcs(i)
			db.PackCRCsDefined[i] = root.PackCrcsDefined(i)
		}
	}

	if err := db.Fill(); err != nil {
		return nil, err
	}
	return db, nil
}

// Decode loads data and decodes it into a filled database.
func Decode(data []byte) (*dbtype.Database, error) {
	idx, err := Load(data)
	if err != nil {
		return nil, err
	}
	return idx.Database()
}

func decodeEntry(fe *fb.Entry) dbtype.Entry {
	flags := fe.Flags()
	return dbtype.Entry{
		Name:            string(fe.Name()),
		Size:            fe.Size(),
		CRC:             fe.Crc(),
		Attrib:          fe.Attrib(),
		CTime:           fe.Ctime(),
		ATime:           fe.Atime(),
		MTime:           fe.Mtime(),
		StartPos:        fe.StartPos(),
		IsDir:           flags&fb.EntryFlagIsDir != 0,
		HasStream:       flags&fb.EntryFlagHasStream != 0,
		IsAnti:          flags&fb.EntryFlagIsAnti != 0,
		CRCDefined:      flags&fb.EntryFlagCrcDefined != 0,
		AttribDefined:   flags&fb.EntryFlagAttribDefined != 0,
		CTimeDefined:    flags&fb.EntryFlagCtimeDefined != 0,
		ATimeDefined:    flags&fb.EntryFlagAtimeDefined != 0,
		MTimeDefined:    flags&fb.EntryFlagMtimeDefined != 0,
		StartPosDefined: flags&fb.EntryFlagStartPosDefined != 0,
	}
}

func decodeFolder(ff *fb.Folder) dbtype.Folder {
	f := dbtype.Folder{
		Coders:           make([]dbtype.Coder, ff.CodersLength()),
		NumPackStreams:   ff.NumPackStreams(),
		NumUnpackStreams: ff.NumUnpackStreams(),
		UnpackCRC:        ff.UnpackCrc(),
		UnpackCRCDefined: ff.UnpackCrcDefined(),
	}
	var fc fb.Coder
	for i := range f.Coders {
		ff.Coders(&fc, i)
		f.Coders[i] = dbtype.Coder{MethodID: fc.MethodId()}
		if props := fc.PropsBytes(); len(props) > 0 {
			f.Coders[i].Props = append([]byte(nil), props...)
		}
	}
	return f
}

// Encode serializes the parsed fields of db. Derived tables are not stored.
func Encode(db *dbtype.Database) []byte {
	builder := flatbuffers.NewBuilder(1024)

	// Build children in reverse order (FlatBuffers requirement)
	fileOffsets := make([]flatbuffers.UOffsetT, len(db.Files))
	for i := len(db.Files) - 1; i >= 0; i-- {
		fileOffsets[i] = encodeEntry(builder, &db.Files[i])
	}
	folderOffsets := make([]flatbuffers.UOffsetT, len(db.Folders))
	for i := len(db.Folders) - 1; i >= 0; i-- {
		folderOffsets[i] = encodeFolder(builder, &db.Folders[i])
	}

	fb.DatabaseStartFilesVector(builder, len(fileOffsets))
	for i := len(fileOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(fileOffsets[i])
	}
	filesOffset := builder.EndVector(len(fileOffsets))

	fb.DatabaseStartFoldersVector(builder, len(folderOffsets))
	for i := len(folderOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(folderOffsets[i])
	}
	foldersOffset := builder.EndVector(len(folderOffsets))

	fb.DatabaseStartPackSizesVector(builder, len(db.PackSizes))
	for i := len(db.PackSizes) - 1; i >= 0; i-- {
		builder.PrependUint64(db.PackSizes[i])
	}
	packSizesOffset := builder.EndVector(len(db.PackSizes))

	var packCRCsOffset, packCRCsDefinedOffset flatbuffers.UOffsetT
	if len(db.PackCRCs) > 0 {
		fb.DatabaseStartPackCrcsVector(builder, len(db.PackCRCs))
		for i := len(db.PackCRCs) - 1; i >= 0; i-- {
			builder.PrependUint32(db.PackCRCs[i])
		}
		packCRCsOffset = builder.EndVector(len(db.PackCRCs))

		fb.DatabaseStartPackCrcsDefinedVector(builder, len(db.PackCRCsDefined))
		for i := len(db.PackCRCsDefined) - 1; i >= 0; i-- {
			builder.PrependBool(db.PackCRCsDefined[i])
		}
		packCRCsDefinedOffset = builder.EndVector(len(db.PackCRCsDefined))
	}

	fb.DatabaseStart(builder)
	fb.DatabaseAddVersion(builder, Version)
	fb.DatabaseAddFiles(builder, filesOffset)
	fb.DatabaseAddFolders(builder, foldersOffset)
	fb.DatabaseAddPackSizes(builder, packSizesOffset)
	if packCRCsOffset != 0 {
		fb.DatabaseAddPackCrcs(builder, packCRCsOffset)
		fb.DatabaseAddPackCrcsDefined(builder, packCRCsDefinedOffset)
	}
	fb.DatabaseAddDataStartPosition(builder, db.DataStartPosition)
	fb.DatabaseAddStartPosition(builder, db.StartPosition)
	fb.DatabaseAddPhySize(builder, db.PhySize)
	fb.DatabaseAddHeadersSize(builder, db.HeadersSize)
	root := fb.DatabaseEnd(builder)

	builder.Finish(root)
	return builder.FinishedBytes()
}

func encodeEntry(builder *flatbuffers.Builder, e *dbtype.Entry) flatbuffers.UOffsetT {
	nameOffset := builder.CreateString(e.Name)

	flags := entryFlag(e.IsDir, fb.EntryFlagIsDir) |
		entryFlag(e.HasStream, fb.EntryFlagHasStream) |
		entryFlag(e.IsAnti, fb.EntryFlagIsAnti) |
		entryFlag(e.CRCDefined, fb.EntryFlagCrcDefined) |
		entryFlag(e.AttribDefined, fb.EntryFlagAttribDefined) |
		entryFlag(e.CTimeDefined, fb.EntryFlagCtimeDefined) |
		entryFlag(e.ATimeDefined, fb.EntryFlagAtimeDefined) |
		entryFlag(e.MTimeDefined, fb.EntryFlagMtimeDefined) |
		entryFlag(e.StartPosDefined, fb.EntryFlagStartPosDefined)

	fb.EntryStart(builder)
	fb.EntryAddName(builder, nameOffset)
	fb.EntryAddSize(builder, e.Size)
	fb.EntryAddCrc(builder, e.CRC)
	fb.EntryAddAttrib(builder, e.Attrib)
	fb.EntryAddCtime(builder, e.CTime)
	fb.EntryAddAtime(builder, e.ATime)
	fb.EntryAddMtime(builder, e.MTime)
	fb.EntryAddStartPos(builder, e.StartPos)
	fb.EntryAddFlags(builder, flags)
	return fb.EntryEnd(builder)
}

func entryFlag(set bool, flag fb.EntryFlag) fb.EntryFlag {
	if set {
		return flag
	}
	return 0
}

func encodeFolder(builder *flatbuffers.Builder, f *dbtype.Folder) flatbuffers.UOffsetT {
	coderOffsets := make([]flatbuffers.UOffsetT, len(f.Coders))
	for i := len(f.Coders) - 1; i >= 0; i-- {
		c := f.Coders[i]
		var propsOffset flatbuffers.UOffsetT
		if len(c.Props) > 0 {
			propsOffset = builder.CreateByteVector(c.Props)
		}
		fb.CoderStart(builder)
		fb.CoderAddMethodId(builder, c.MethodID)
		if propsOffset != 0 {
			fb.CoderAddProps(builder, propsOffset)
		}
		coderOffsets[i] = fb.CoderEnd(builder)
	}

	fb.FolderStartCodersVector(builder, len(coderOffsets))
	for i := len(coderOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(coderOffsets[i])
	}
	codersOffset := builder.EndVector(len(coderOffsets))

	fb.FolderStart(builder)
	fb.FolderAddCoders(builder, codersOffset)
	fb.FolderAddNumPackStreams(builder, f.NumPackStreams)
	fb.FolderAddNumUnpackStreams(builder, f.NumUnpackStreams)
	fb.FolderAddUnpackCrc(builder, f.UnpackCRC)
	fb.FolderAddUnpackCrcDefined(builder, f.UnpackCRCDefined)
	return fb.FolderEnd(builder)
}
