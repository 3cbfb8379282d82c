package dbtype

import (
	"fmt"
	"math"
	"slices"

	"github.com/meigma/szdb/internal/sizing"
)

// NoIndex marks an entry that is not backed by any folder.
const NoIndex = math.MaxUint32

// Database is the parsed metadata of one archive.
//
// The fields up to HeadersSize are supplied by the header parser. The derived
// tables below them are computed by Fill and must not be edited by hand.
type Database struct {
	Files   []Entry
	Folders []Folder

	// PackSizes lists every pack stream in archive order. Folder i consumes
	// Folders[i].NumPackStreams consecutive values.
	PackSizes []uint64

	// PackCRCs is either empty or parallel to PackSizes.
	PackCRCs        []uint32
	PackCRCsDefined []bool

	// DataStartPosition is the absolute offset of the first pack stream.
	DataStartPosition uint64

	// StartPosition is the offset of the archive inside its container.
	StartPosition uint64

	PhySize     uint64
	HeadersSize uint64

	FolderStartPackStreamIndex []uint32
	PackStreamStartPositions   []uint64
	FolderStartFileIndex       []uint32
	FileIndexToFolderIndexMap  []uint32
}

// Fill computes the derived tables from the parsed metadata.
//
// Streamed entries are assigned to folders in order, each folder taking
// NumUnpackStreams of them. Entries without a stream that appear between two
// streamed entries of the same folder are mapped to that folder; all other
// stream-less entries map to NoIndex. Folders that unpack nothing get a
// FolderStartFileIndex of NoIndex.
//
// Fill returns ErrCorruptMetadata if the counts do not add up. On error the
// derived tables are left cleared.
func (db *Database) Fill() error {
	if err := db.fill(); err != nil {
		db.clearDerived()
		return err
	}
	return nil
}

func (db *Database) fill() error {
	if len(db.PackCRCs) != len(db.PackCRCsDefined) {
		return fmt.Errorf("%w: %d pack CRCs with %d defined flags", ErrCorruptMetadata, len(db.PackCRCs), len(db.PackCRCsDefined))
	}
	if len(db.PackCRCs) != 0 && len(db.PackCRCs) != len(db.PackSizes) {
		return fmt.Errorf("%w: %d pack CRCs for %d pack streams", ErrCorruptMetadata, len(db.PackCRCs), len(db.PackSizes))
	}
	if uint64(len(db.Folders)) >= NoIndex || uint64(len(db.Files)) >= NoIndex {
		return fmt.Errorf("%w: too many entries", ErrCorruptMetadata)
	}

	db.FolderStartPackStreamIndex = make([]uint32, len(db.Folders))
	var packIndex uint64
	for i := range db.Folders {
		db.FolderStartPackStreamIndex[i] = uint32(packIndex) //nolint:gosec // bounded by len(PackSizes) below
		packIndex += uint64(db.Folders[i].NumPackStreams)
		if packIndex > uint64(len(db.PackSizes)) {
			return fmt.Errorf("%w: folder %d needs pack stream %d of %d", ErrCorruptMetadata, i, packIndex-1, len(db.PackSizes))
		}
	}

	db.PackStreamStartPositions = make([]uint64, len(db.PackSizes))
	var pos uint64
	for i, size := range db.PackSizes {
		db.PackStreamStartPositions[i] = pos
		next, ok := sizing.AddUint64(pos, size)
		if !ok {
			return fmt.Errorf("%w: pack stream %d overflows", ErrCorruptMetadata, i)
		}
		pos = next
	}
	dataEnd, ok := sizing.AddUint64(db.DataStartPosition, pos)
	if !ok {
		return fmt.Errorf("%w: data region overflows", ErrCorruptMetadata)
	}
	if db.PhySize != 0 && dataEnd > db.PhySize {
		return fmt.Errorf("%w: packed data ends at %d beyond physical size %d", ErrCorruptMetadata, dataEnd, db.PhySize)
	}

	db.FolderStartFileIndex = slices.Repeat([]uint32{NoIndex}, len(db.Folders))
	db.FileIndexToFolderIndexMap = make([]uint32, len(db.Files))
	folderIndex := 0
	var indexInFolder uint32
	for i := range db.Files {
		hasStream := db.Files[i].HasStream
		if !hasStream && indexInFolder == 0 {
			db.FileIndexToFolderIndexMap[i] = NoIndex
			continue
		}
		if indexInFolder == 0 {
			for folderIndex < len(db.Folders) && db.Folders[folderIndex].NumUnpackStreams == 0 {
				folderIndex++
			}
			if folderIndex >= len(db.Folders) {
				return fmt.Errorf("%w: entry %d (%s) has no folder", ErrCorruptMetadata, i, db.Files[i].Name)
			}
			db.FolderStartFileIndex[folderIndex] = uint32(i) //nolint:gosec // checked against NoIndex above
		}
		db.FileIndexToFolderIndexMap[i] = uint32(folderIndex) //nolint:gosec // checked against NoIndex above
		if !hasStream {
			continue
		}
		indexInFolder++
		if indexInFolder >= db.Folders[folderIndex].NumUnpackStreams {
			folderIndex++
			indexInFolder = 0
		}
	}
	if indexInFolder != 0 {
		return fmt.Errorf("%w: folder %d unpacks %d of %d streams", ErrCorruptMetadata,
			folderIndex, indexInFolder, db.Folders[folderIndex].NumUnpackStreams)
	}
	for ; folderIndex < len(db.Folders); folderIndex++ {
		if n := db.Folders[folderIndex].NumUnpackStreams; n != 0 {
			return fmt.Errorf("%w: folder %d expects %d entries but none remain", ErrCorruptMetadata, folderIndex, n)
		}
	}
	return nil
}

func (db *Database) clearDerived() {
	db.FolderStartPackStreamIndex = nil
	db.PackStreamStartPositions = nil
	db.FolderStartFileIndex = nil
	db.FileIndexToFolderIndexMap = nil
}

// CheckDerived verifies that the derived tables are present and consistent
// with the parsed metadata. It does not recompute them.
func (db *Database) CheckDerived() error {
	if len(db.FileIndexToFolderIndexMap) != len(db.Files) {
		return fmt.Errorf("%w: folder map covers %d of %d entries", ErrCorruptMetadata, len(db.FileIndexToFolderIndexMap), len(db.Files))
	}
	if len(db.FolderStartFileIndex) != len(db.Folders) || len(db.FolderStartPackStreamIndex) != len(db.Folders) {
		return fmt.Errorf("%w: folder tables do not cover %d folders", ErrCorruptMetadata, len(db.Folders))
	}
	if len(db.PackStreamStartPositions) != len(db.PackSizes) {
		return fmt.Errorf("%w: pack positions cover %d of %d pack streams", ErrCorruptMetadata, len(db.PackStreamStartPositions), len(db.PackSizes))
	}
	if len(db.PackCRCs) != len(db.PackCRCsDefined) || (len(db.PackCRCs) != 0 && len(db.PackCRCs) != len(db.PackSizes)) {
		return fmt.Errorf("%w: %d pack CRCs for %d pack streams", ErrCorruptMetadata, len(db.PackCRCs), len(db.PackSizes))
	}
	// Entries of one folder form a single run starting at FolderStartFileIndex.
	seen := make([]bool, len(db.Folders))
	current := uint32(NoIndex)
	for i, f := range db.FileIndexToFolderIndexMap {
		if f != NoIndex && int(f) >= len(db.Folders) {
			return fmt.Errorf("%w: entry %d mapped to folder %d of %d", ErrCorruptMetadata, i, f, len(db.Folders))
		}
		if f == current || f == NoIndex {
			current = f
			continue
		}
		if seen[f] {
			return fmt.Errorf("%w: entries of folder %d are not contiguous at entry %d", ErrCorruptMetadata, f, i)
		}
		if start := db.FolderStartFileIndex[f]; start != uint32(i) { //nolint:gosec // bounded by Fill
			return fmt.Errorf("%w: folder %d starts at entry %d, first mapped entry is %d", ErrCorruptMetadata, f, start, i)
		}
		seen[f] = true
		current = f
	}
	for f, ok := range seen {
		if !ok && db.FolderStartFileIndex[f] != NoIndex {
			return fmt.Errorf("%w: folder %d starts at entry %d but has no entries", ErrCorruptMetadata, f, db.FolderStartFileIndex[f])
		}
	}
	for i := range db.Folders {
		end := uint64(db.FolderStartPackStreamIndex[i]) + uint64(db.Folders[i].NumPackStreams)
		if end > uint64(len(db.PackSizes)) {
			return fmt.Errorf("%w: folder %d pack streams end at %d of %d", ErrCorruptMetadata, i, end, len(db.PackSizes))
		}
	}
	return nil
}

// FolderIndex returns the folder backing entry i, or NoIndex.
func (db *Database) FolderIndex(i int) (uint32, error) {
	if i < 0 || i >= len(db.Files) {
		return NoIndex, fmt.Errorf("%w: entry %d of %d", ErrIndexOutOfRange, i, len(db.Files))
	}
	if i >= len(db.FileIndexToFolderIndexMap) {
		return NoIndex, fmt.Errorf("%w: entry %d has no folder mapping", ErrCorruptMetadata, i)
	}
	f := db.FileIndexToFolderIndexMap[i]
	if f != NoIndex && int(f) >= len(db.Folders) {
		return NoIndex, fmt.Errorf("%w: entry %d mapped to folder %d of %d", ErrCorruptMetadata, i, f, len(db.Folders))
	}
	return f, nil
}

// FolderPackStreamSize returns the size of pack stream s of folder f.
// The indices must be valid for a filled database.
func (db *Database) FolderPackStreamSize(f, s int) uint64 {
	return db.PackSizes[int(db.FolderStartPackStreamIndex[f])+s]
}

// FolderFullPackSize returns the sum of all pack stream sizes of folder f.
func (db *Database) FolderFullPackSize(f int) uint64 {
	start := int(db.FolderStartPackStreamIndex[f])
	var size uint64
	for _, n := range db.PackSizes[start : start+int(db.Folders[f].NumPackStreams)] {
		size += n
	}
	return size
}

// FolderStreamPos returns the absolute position of pack stream s of folder f.
func (db *Database) FolderStreamPos(f, s int) uint64 {
	return db.DataStartPosition + db.PackStreamStartPositions[int(db.FolderStartPackStreamIndex[f])+s]
}

// IsSolid reports whether any folder unpacks more than one entry.
func (db *Database) IsSolid() bool {
	for i := range db.Folders {
		if db.Folders[i].NumUnpackStreams > 1 {
			return true
		}
	}
	return false
}

// IsItemAnti reports whether entry i is an anti-item.
func (db *Database) IsItemAnti(i int) bool {
	return db.Files[i].IsAnti
}

// Clone returns a deep copy of the database, including derived tables.
func (db *Database) Clone() *Database {
	out := *db
	out.Files = slices.Clone(db.Files)
	out.Folders = slices.Clone(db.Folders)
	for i := range db.Folders {
		out.Folders[i] = db.Folders[i].Clone()
	}
	out.PackSizes = slices.Clone(db.PackSizes)
	out.PackCRCs = slices.Clone(db.PackCRCs)
	out.PackCRCsDefined = slices.Clone(db.PackCRCsDefined)
	out.FolderStartPackStreamIndex = slices.Clone(db.FolderStartPackStreamIndex)
	out.PackStreamStartPositions = slices.Clone(db.PackStreamStartPositions)
	out.FolderStartFileIndex = slices.Clone(db.FolderStartFileIndex)
	out.FileIndexToFolderIndexMap = slices.Clone(db.FileIndexToFolderIndexMap)
	return &out
}
