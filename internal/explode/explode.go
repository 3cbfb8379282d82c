// Package explode splits a multi-folder archive database into independent
// single-folder databases without touching the packed data.
package explode

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring"

	"github.com/meigma/szdb/internal/dbtype"
	"github.com/meigma/szdb/internal/sizing"
	"github.com/meigma/szdb/internal/tree"
)

// treeRoot is the key of the directory tree's root node.
const treeRoot = "/"

// Result holds one database per source folder. All slices are indexed by the
// source folder index.
type Result struct {
	// Databases[i] describes folder i alone, with its entries mapped to folder 0.
	Databases []*dbtype.Database

	// PackSizes[i] is the total packed size of folder i.
	PackSizes []uint64

	// Positions[i] is the absolute offset of folder i's first pack stream.
	Positions []uint64
}

// Option configures Explode.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report the directory structure.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Explode partitions db into one database per folder.
//
// Output i holds a copy of folder i (coders, unpack stream count and CRC), the
// sizes and CRCs of its pack streams, and a copy of every entry that db maps
// to folder i, in entry order. Entries not backed by any folder appear in no
// output. The outputs share no memory with db or with each other.
//
// db must be filled. Explode fails with dbtype.ErrCorruptMetadata if the
// derived tables are inconsistent; it never returns a partial result and
// never modifies db.
func Explode(db *dbtype.Database, opts ...Option) (*Result, error) {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger

	if err := db.CheckDerived(); err != nil {
		return nil, err
	}

	log.Debug("exploding archive", "blocks", len(db.Folders), "entries", len(db.Files))

	// The tree associates folders with directory levels. It is reported but
	// does not change the one-output-per-folder mapping.
	structure, err := tree.Build(db, treeRoot)
	if err != nil {
		return nil, err
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("archive structure", "tree", structure.Format())
	}

	groups := groupByFolder(db)

	res := &Result{
		Databases: make([]*dbtype.Database, 0, len(db.Folders)),
		PackSizes: make([]uint64, 0, len(db.Folders)),
		Positions: make([]uint64, 0, len(db.Folders)),
	}
	for i := range db.Folders {
		out, err := explodeFolder(db, i, groups[i])
		if err != nil {
			return nil, fmt.Errorf("explode block %d: %w", i, err)
		}
		packSize, ok := sizing.SumUint64(out.PackSizes...)
		if !ok {
			return nil, fmt.Errorf("explode block %d: %w: packed size overflows", i, dbtype.ErrCorruptMetadata)
		}
		res.Databases = append(res.Databases, out)
		res.PackSizes = append(res.PackSizes, packSize)
		res.Positions = append(res.Positions, folderPosition(db, i))
	}
	return res, nil
}

// groupByFolder returns the entry indices of each folder in one pass over the
// entries. Stream-less entries outside any folder are left out.
func groupByFolder(db *dbtype.Database) []*roaring.Bitmap {
	groups := make([]*roaring.Bitmap, len(db.Folders))
	for i := range groups {
		groups[i] = roaring.New()
	}
	for i, f := range db.FileIndexToFolderIndexMap {
		if f != dbtype.NoIndex {
			groups[f].Add(uint32(i)) //nolint:gosec // Fill bounds entry counts below NoIndex
		}
	}
	return groups
}

// folderPosition returns where folder i's packed data starts. Folders without
// pack streams start where the previous folder's data ends.
func folderPosition(db *dbtype.Database, i int) uint64 {
	start := int(db.FolderStartPackStreamIndex[i])
	if start < len(db.PackStreamStartPositions) {
		return db.DataStartPosition + db.PackStreamStartPositions[start]
	}
	if len(db.PackSizes) == 0 {
		return db.DataStartPosition
	}
	last := len(db.PackSizes) - 1
	return db.DataStartPosition + db.PackStreamStartPositions[last] + db.PackSizes[last]
}

func explodeFolder(db *dbtype.Database, i int, entries *roaring.Bitmap) (*dbtype.Database, error) {
	folder := &db.Folders[i]
	out := &dbtype.Database{
		Folders:   []dbtype.Folder{folder.Clone()},
		PackSizes: make([]uint64, 0, folder.NumPackStreams),
		Files:     make([]dbtype.Entry, 0, entries.GetCardinality()),
	}
	for s := range int(folder.NumPackStreams) {
		out.PackSizes = append(out.PackSizes, db.FolderPackStreamSize(i, s))
	}
	if len(db.PackCRCs) != 0 {
		start := int(db.FolderStartPackStreamIndex[i])
		end := start + int(folder.NumPackStreams)
		out.PackCRCs = append([]uint32(nil), db.PackCRCs[start:end]...)
		out.PackCRCsDefined = append([]bool(nil), db.PackCRCsDefined[start:end]...)
	}
	it := entries.Iterator()
	for it.HasNext() {
		out.Files = append(out.Files, db.Files[it.Next()])
	}
	if err := out.Fill(); err != nil {
		return nil, err
	}
	return out, nil
}
