package szdb

import (
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/szdb/internal/index"
)

// EncodeDatabase serializes the parsed fields of db as FlatBuffers.
// Derived tables are recomputed on decode and are not stored.
func EncodeDatabase(db *Database) []byte {
	return index.Encode(db)
}

// DecodeDatabase decodes data produced by EncodeDatabase into a filled
// database that does not alias data.
//
// It returns ErrInvalidIndex for malformed input and ErrCorruptMetadata when
// the decoded metadata is inconsistent.
func DecodeDatabase(data []byte) (*Database, error) {
	return index.Decode(data)
}

// DecodeVerified checks data against want before decoding it, as for a
// Partition read back from storage. It returns ErrDigestMismatch if the
// content does not match and ErrInvalidArgument if want is malformed.
func DecodeVerified(data []byte, want digest.Digest) (*Database, error) {
	if err := want.Validate(); err != nil {
		return nil, fmt.Errorf("%w: digest %q: %v", ErrInvalidArgument, want, err)
	}
	verifier := want.Verifier()
	if _, err := verifier.Write(data); err != nil {
		return nil, fmt.Errorf("szdb: verify: %w", err)
	}
	if !verifier.Verified() {
		return nil, fmt.Errorf("%w: expected %s", ErrDigestMismatch, want)
	}
	return index.Decode(data)
}
