package dbtype

import "slices"

// MethodAES is the method id of the 7z AES-256 + SHA-256 coder.
const MethodAES uint64 = 0x06F10701

// Coder is one stage of a folder's decode pipeline.
type Coder struct {
	// MethodID identifies the codec. Values are opaque to this package.
	MethodID uint64

	// Props holds the codec's raw parameter bytes.
	Props []byte
}

// Folder is one independently decodable compressed block.
//
// Coders are kept in storage order; display order is last to first.
type Folder struct {
	Coders []Coder

	// NumPackStreams is the number of consecutive Database.PackSizes entries
	// feeding this folder.
	NumPackStreams uint32

	// NumUnpackStreams is the number of streamed entries this folder unpacks.
	NumUnpackStreams uint32

	UnpackCRC        uint32
	UnpackCRCDefined bool
}

// IsEncrypted reports whether any coder of the folder is an encryption coder.
func (f *Folder) IsEncrypted() bool {
	for i := len(f.Coders) - 1; i >= 0; i-- {
		if f.Coders[i].MethodID == MethodAES {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the folder. The copy shares no memory with f.
func (f *Folder) Clone() Folder {
	out := *f
	out.Coders = slices.Clone(f.Coders)
	for i := range out.Coders {
		out.Coders[i].Props = slices.Clone(f.Coders[i].Props)
	}
	return out
}
