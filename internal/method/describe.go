package method

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/roaring64"

	"github.com/meigma/szdb/internal/dbtype"
)

// maxHexProps is the number of parameter bytes shown before eliding the rest.
const maxHexProps = 6

const hexDigits = "0123456789ABCDEF"

// IDString renders a method id as its big-endian bytes in uppercase hex,
// using as few bytes as needed (0x21 -> "21", 0x030101 -> "030101").
func IDString(id uint64) string {
	var buf [16]byte
	n := len(buf)
	for {
		b := byte(id)
		buf[n-1] = hexDigits[b&0xF]
		buf[n-2] = hexDigits[b>>4]
		n -= 2
		id >>= 8
		if id == 0 {
			break
		}
	}
	return string(buf[n:])
}

// SizeString renders a dictionary or memory size. Exact powers of two render
// as their exponent; otherwise whole mebibytes get an "m" suffix, whole
// kibibytes a "k" suffix, and anything else a "b" suffix.
func SizeString(v uint32) string {
	for i := 31; i >= 0; i-- {
		if uint32(1)<<i == v {
			return strconv.Itoa(i)
		}
	}
	switch {
	case v%(1<<20) == 0:
		return strconv.FormatUint(uint64(v>>20), 10) + "m"
	case v%(1<<10) == 0:
		return strconv.FormatUint(uint64(v>>10), 10) + "k"
	default:
		return strconv.FormatUint(uint64(v), 10) + "b"
	}
}

// LZMA2DictSize decodes the one-byte LZMA2 dictionary property.
func LZMA2DictSize(p byte) uint32 {
	return (2 | uint32(p&1)) << (p/2 + 11)
}

// PropsString decodes the parameters of a known method. It returns "" when
// the method has no decoder or props has an unexpected length.
func PropsString(id uint64, props []byte) string {
	switch {
	case id == IDDelta && len(props) == 1:
		return strconv.FormatUint(uint64(props[0])+1, 10)
	case id == IDLZMA && len(props) == 5:
		return SizeString(binary.LittleEndian.Uint32(props[1:]))
	case id == IDLZMA2 && len(props) == 1:
		return SizeString(LZMA2DictSize(props[0]))
	case id == IDPPMD && len(props) == 5:
		return "o" + strconv.FormatUint(uint64(props[0]), 10) + ":mem" + SizeString(binary.LittleEndian.Uint32(props[1:]))
	case id == IDAES && len(props) >= 1:
		// The high bits of the first byte and the second byte encode salt
		// and IV sizes, which are not displayed.
		return strconv.FormatUint(uint64(props[0]&0x3F), 10)
	}
	return ""
}

// HexProps renders parameter bytes as "[0A1B...]". At most six bytes are
// shown; longer inputs end with "..".
func HexProps(props []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range props {
		if i == maxHexProps {
			sb.WriteString("..")
			break
		}
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0xF])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Describe renders one coder as "<name>[:<params>]".
//
// Unknown methods use IDString as their name. Parameters that cannot be
// decoded are shown with HexProps; coders without parameters show the name
// alone.
func Describe(t Table, c dbtype.Coder) string {
	name, known := t.Lookup(c.MethodID)
	var params string
	if known {
		params = PropsString(c.MethodID, c.Props)
	} else {
		name = IDString(c.MethodID)
	}
	switch {
	case params != "":
		return name + ":" + params
	case len(c.Props) > 0:
		return name + ":" + HexProps(c.Props)
	default:
		return name
	}
}

// FolderString renders the coders of f from last to first, space separated.
func FolderString(t Table, f *dbtype.Folder) string {
	parts := make([]string, 0, len(f.Coders))
	for i := len(f.Coders) - 1; i >= 0; i-- {
		parts = append(parts, Describe(t, f.Coders[i]))
	}
	return strings.Join(parts, " ")
}

// ArchiveString renders the distinct method ids used by any folder in
// ascending id order. Parameters are ignored.
func ArchiveString(t Table, folders []dbtype.Folder) string {
	ids := roaring64.New()
	for i := range folders {
		for j := len(folders[i].Coders) - 1; j >= 0; j-- {
			ids.Add(folders[i].Coders[j].MethodID)
		}
	}
	parts := make([]string, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		id := it.Next()
		name, _ := t.Lookup(id)
		if name == "" {
			name = IDString(id)
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}
