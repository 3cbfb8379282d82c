// Package testutil provides database builders shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meigma/szdb/internal/dbtype"
)

// Common method ids used by tests.
const (
	MethodCopy  uint64 = 0x00
	MethodLZMA  uint64 = 0x030101
	MethodLZMA2 uint64 = 0x21
	MethodBCJ   uint64 = 0x03030103
)

// DatabaseBuilder assembles a Database the way a header parser would.
//
// Files must be added in folder order: all files of folder 0, then folder 1,
// and so on. Directories and empty files may appear anywhere.
type DatabaseBuilder struct {
	db dbtype.Database
}

// NewDatabase returns an empty builder.
func NewDatabase() *DatabaseBuilder {
	return &DatabaseBuilder{}
}

// Folder appends a folder fed by the given pack streams and returns its index.
// With no coders the folder uses a single LZMA2 coder.
func (b *DatabaseBuilder) Folder(packSizes []uint64, coders ...dbtype.Coder) int {
	if len(coders) == 0 {
		coders = []dbtype.Coder{{MethodID: MethodLZMA2, Props: []byte{0x10}}}
	}
	b.db.Folders = append(b.db.Folders, dbtype.Folder{
		Coders:         coders,
		NumPackStreams: uint32(len(packSizes)), //nolint:gosec // test data
	})
	b.db.PackSizes = append(b.db.PackSizes, packSizes...)
	return len(b.db.Folders) - 1
}

// File appends a streamed file stored in folder and returns its entry index.
func (b *DatabaseBuilder) File(name string, size uint64, folder int) int {
	b.db.Folders[folder].NumUnpackStreams++
	return b.add(dbtype.Entry{Name: name, Size: size, HasStream: true})
}

// Entry appends a fully specified entry. If the entry has a stream it is
// counted against folder.
func (b *DatabaseBuilder) Entry(e dbtype.Entry, folder int) int {
	if e.HasStream {
		b.db.Folders[folder].NumUnpackStreams++
	}
	return b.add(e)
}

// Dir appends a directory entry.
func (b *DatabaseBuilder) Dir(name string) int {
	return b.add(dbtype.Entry{Name: name, IsDir: true})
}

// EmptyFile appends a file without a stream.
func (b *DatabaseBuilder) EmptyFile(name string) int {
	return b.add(dbtype.Entry{Name: name})
}

// DataStart sets the absolute offset of the first pack stream.
func (b *DatabaseBuilder) DataStart(pos uint64) *DatabaseBuilder {
	b.db.DataStartPosition = pos
	return b
}

// Sizes sets the archive-level physical and header sizes and start offset.
func (b *DatabaseBuilder) Sizes(phySize, headersSize, startPosition uint64) *DatabaseBuilder {
	b.db.PhySize = phySize
	b.db.HeadersSize = headersSize
	b.db.StartPosition = startPosition
	return b
}

func (b *DatabaseBuilder) add(e dbtype.Entry) int {
	b.db.Files = append(b.db.Files, e)
	return len(b.db.Files) - 1
}

// Build fills the database and fails the test if it is inconsistent.
func (b *DatabaseBuilder) Build(tb testing.TB) *dbtype.Database {
	tb.Helper()
	db := b.db.Clone()
	require.NoError(tb, db.Fill())
	return db
}

// Unfilled returns a copy of the database without computing derived tables.
func (b *DatabaseBuilder) Unfilled() *dbtype.Database {
	return b.db.Clone()
}

// ScenarioDatabase returns the two-folder archive used across package tests:
// dir/x.txt and dir/y.txt in folder 0 (100 packed bytes) and dir2/z.txt in
// folder 1 (50 packed bytes), with the data region starting at 0.
func ScenarioDatabase(tb testing.TB) *dbtype.Database {
	tb.Helper()
	b := NewDatabase()
	f0 := b.Folder([]uint64{100})
	f1 := b.Folder([]uint64{50})
	b.File("dir/x.txt", 10, f0)
	b.File("dir/y.txt", 20, f0)
	b.File("dir2/z.txt", 5, f1)
	return b.Build(tb)
}
