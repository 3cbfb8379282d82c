//go:generate flatc --go --go-namespace fb -o internal schema/database.fbs

// Package szdb models the metadata of solid archives: entries, folders
// (independently decodable compressed blocks), their coders and pack streams.
//
// An [Archive] is a session over one parsed [Database]. It answers entry and
// archive property queries with typed [Value] results and can explode the
// archive into one self-contained database per folder, so that folders can be
// handed to independent workers without touching the packed data.
//
// # Quick Start
//
// Open a database and read properties:
//
//	db, err := szdb.DecodeDatabase(data)
//	if err != nil {
//	    return err
//	}
//	a, err := szdb.Open(db, szdb.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//	v, err := a.Property(0, szdb.PropMethod) // e.g. "BCJ LZMA2:24"
//
// # Exploding
//
// Explode returns one database per folder together with each folder's packed
// size and absolute start position:
//
//	res, err := a.Explode()
//	parts, err := res.Encode(ctx)
//	for _, p := range parts {
//	    fmt.Println(p.Digest, p.PackSize, p.Position)
//	}
//
// Databases are encoded with FlatBuffers; see schema/database.fbs.
package szdb
