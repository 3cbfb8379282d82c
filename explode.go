package szdb

import (
	"context"
	_ "crypto/sha256" // hash implementation for go-digest
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/szdb/internal/batch"
	"github.com/meigma/szdb/internal/explode"
	"github.com/meigma/szdb/internal/index"
)

// ExplodeResult holds one single-folder database per source folder. All
// slices are indexed by the source folder index.
type ExplodeResult struct {
	// Databases[i] describes folder i alone, with its entries mapped to folder 0.
	Databases []*Database

	// PackSizes[i] is the total packed size of folder i.
	PackSizes []uint64

	// Positions[i] is the absolute offset of folder i's first pack stream.
	Positions []uint64

	threads int
}

// Partition is one encoded output of an explode.
type Partition struct {
	// Block is the source folder index.
	Block int

	// Data is the FlatBuffers encoding of the partition's database.
	Data []byte

	// Digest is the sha256 digest of Data.
	Digest digest.Digest

	// PackSize and Position locate the folder's packed data in the source.
	PackSize uint64
	Position uint64
}

// Explode partitions the archive into one database per folder.
//
// Each output holds a copy of its folder, the sizes and CRCs of the folder's
// pack streams, and copies of the entries stored in it, in entry order.
// Entries not stored in any folder, such as directories, appear in no
// output. The outputs share no memory with the archive or with each other.
//
// Explode returns ErrCorruptMetadata if the database is inconsistent; it
// never returns a partial result and never modifies the archive.
func (a *Archive) Explode() (*ExplodeResult, error) {
	if a.closed {
		return nil, ErrClosed
	}
	res, err := explode.Explode(a.db, explode.WithLogger(a.log()))
	if err != nil {
		return nil, fmt.Errorf("szdb: explode: %w", err)
	}
	a.log().Debug("archive exploded", "blocks", len(res.Databases))
	return &ExplodeResult{
		Databases: res.Databases,
		PackSizes: res.PackSizes,
		Positions: res.Positions,
		threads:   a.threads,
	}, nil
}

// Len returns the number of partitions.
func (r *ExplodeResult) Len() int {
	return len(r.Databases)
}

// Encode encodes every partition and digests the encoding.
//
// Partitions are encoded in parallel using the thread count of the session
// that produced r. The result is ordered by block. Encode stops at the first
// error or when ctx is done.
func (r *ExplodeResult) Encode(ctx context.Context) ([]Partition, error) {
	parts := make([]Partition, len(r.Databases))
	p := batch.NewProcessor(batch.WithWorkers(threadsOf(r.threads)))
	err := p.Process(ctx, len(r.Databases), func(_ context.Context, i int) error {
		data := index.Encode(r.Databases[i])
		parts[i] = Partition{
			Block:    i,
			Data:     data,
			Digest:   digest.FromBytes(data),
			PackSize: r.PackSizes[i],
			Position: r.Positions[i],
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parts, nil
}
