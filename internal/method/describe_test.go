package method

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meigma/szdb/internal/dbtype"
)

func TestSizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value uint32
		want  string
	}{
		{1, "0"},
		{2048, "11"},
		{1 << 24, "24"},
		{1 << 31, "31"},
		{3 << 20, "3m"},
		{6144, "6k"},
		{1536 << 10, "1536k"},
		{1000, "1000b"},
		{0, "0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SizeString(tt.value), "value %d", tt.value)
	}
}

func TestLZMA2DictSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(4096), LZMA2DictSize(0))
	assert.Equal(t, uint32(6144), LZMA2DictSize(1))
	assert.Equal(t, uint32(3<<20), LZMA2DictSize(19))
	assert.Equal(t, uint32(1<<22), LZMA2DictSize(20))
}

func TestIDString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00", IDString(0))
	assert.Equal(t, "21", IDString(0x21))
	assert.Equal(t, "030101", IDString(0x030101))
	assert.Equal(t, "06F10701", IDString(0x06F10701))
	assert.Equal(t, "0100", IDString(0x100))
	assert.Equal(t, "FFFFFFFFFFFFFFFF", IDString(^uint64(0)))
}

func TestPropsString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    uint64
		props []byte
		want  string
	}{
		{"delta", IDDelta, []byte{3}, "4"},
		{"delta wrong length", IDDelta, []byte{3, 4}, ""},
		{"lzma 16m", IDLZMA, []byte{0x5D, 0x00, 0x00, 0x00, 0x01}, "24"},
		{"lzma 3m", IDLZMA, []byte{0x5D, 0x00, 0x00, 0x30, 0x00}, "3m"},
		{"lzma short", IDLZMA, []byte{0x5D}, ""},
		{"lzma2 byte 19", IDLZMA2, []byte{19}, "3m"},
		{"lzma2 byte 0", IDLZMA2, []byte{0}, "12"},
		{"lzma2 byte 1", IDLZMA2, []byte{1}, "6k"},
		{"ppmd", IDPPMD, []byte{6, 0x00, 0x00, 0x00, 0x01}, "o6:mem24"},
		{"ppmd 192m", IDPPMD, []byte{32, 0x00, 0x00, 0x00, 0x0C}, "o32:mem192m"},
		{"aes", IDAES, []byte{0xD3, 0x07}, "19"},
		{"aes single byte", IDAES, []byte{0x13}, "19"},
		{"aes empty", IDAES, nil, ""},
		{"copy", IDCopy, []byte{1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PropsString(tt.id, tt.props))
		})
	}
}

func TestHexProps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", HexProps(nil))
	assert.Equal(t, "[0A]", HexProps([]byte{0x0A}))
	assert.Equal(t, "[010203040506]", HexProps([]byte{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, "[010203040506..]", HexProps([]byte{1, 2, 3, 4, 5, 6, 7}))
	assert.Equal(t, "[DEADBEEF0102..]", HexProps([]byte{0xDE, 0xAD, 0xBE, 0xEF, 1, 2, 3, 4}))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		coder dbtype.Coder
		want  string
	}{
		{"known with params", dbtype.Coder{MethodID: IDLZMA2, Props: []byte{19}}, "LZMA2:3m"},
		{"known without params", dbtype.Coder{MethodID: 0x03030103}, "BCJ"},
		{"known length mismatch", dbtype.Coder{MethodID: IDLZMA, Props: []byte{1, 2}}, "LZMA:[0102]"},
		{"unknown without params", dbtype.Coder{MethodID: 0x7F0001}, "7F0001"},
		{"unknown with params", dbtype.Coder{MethodID: 0x7F0001, Props: []byte{0xAB}}, "7F0001:[AB]"},
		{
			"unknown with long params",
			dbtype.Coder{MethodID: 0x7F0001, Props: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
			"7F0001:[010203040506..]",
		},
		{"copy", dbtype.Coder{MethodID: IDCopy}, "Copy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Describe(DefaultTable, tt.coder))
		})
	}
}

func TestDescribe_CustomTable(t *testing.T) {
	t.Parallel()

	table := MapTable{0x7F0001: "Custom"}
	assert.Equal(t, "Custom:[AB]", Describe(table, dbtype.Coder{MethodID: 0x7F0001, Props: []byte{0xAB}}))
	assert.Equal(t, "030101", Describe(table, dbtype.Coder{MethodID: IDLZMA}))
}

func TestFolderString_ReverseOrder(t *testing.T) {
	t.Parallel()

	f := dbtype.Folder{Coders: []dbtype.Coder{
		{MethodID: IDLZMA, Props: []byte{0x5D, 0, 0, 0x80, 0}},
		{MethodID: 0x03030103},
	}}
	assert.Equal(t, "BCJ LZMA:23", FolderString(DefaultTable, &f))
	assert.Empty(t, FolderString(DefaultTable, &dbtype.Folder{}))
}

func TestArchiveString_UniqueByID(t *testing.T) {
	t.Parallel()

	folders := []dbtype.Folder{
		{Coders: []dbtype.Coder{{MethodID: IDLZMA, Props: []byte{0x5D, 0, 0, 0, 1}}, {MethodID: 0x03030103}}},
		{Coders: []dbtype.Coder{{MethodID: IDLZMA, Props: []byte{0x5D, 0, 0, 0x10, 0}}}},
		{Coders: []dbtype.Coder{{MethodID: 0x7F0001}, {MethodID: IDLZMA2, Props: []byte{20}}}},
	}
	assert.Equal(t, "LZMA2 LZMA 7F0001 BCJ", ArchiveString(DefaultTable, folders))
	assert.Empty(t, ArchiveString(DefaultTable, nil))
}
