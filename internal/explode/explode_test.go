package explode

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/szdb/internal/dbtype"
	"github.com/meigma/szdb/internal/testutil"
)

func TestExplode_Scenario(t *testing.T) {
	t.Parallel()

	db := testutil.ScenarioDatabase(t)
	res, err := Explode(db)
	require.NoError(t, err)

	require.Len(t, res.Databases, 2)
	assert.Equal(t, []uint64{100, 50}, res.PackSizes)
	assert.Equal(t, []uint64{0, 100}, res.Positions)

	first := res.Databases[0]
	require.Len(t, first.Files, 2)
	assert.Equal(t, "dir/x.txt", first.Files[0].Name)
	assert.Equal(t, uint64(10), first.Files[0].Size)
	assert.Equal(t, "dir/y.txt", first.Files[1].Name)
	assert.Equal(t, uint64(20), first.Files[1].Size)
	assert.Equal(t, []uint32{0, 0}, first.FileIndexToFolderIndexMap)
	require.Len(t, first.Folders, 1)
	assert.Equal(t, []uint64{100}, first.PackSizes)

	second := res.Databases[1]
	require.Len(t, second.Files, 1)
	assert.Equal(t, "dir2/z.txt", second.Files[0].Name)
	assert.Equal(t, []uint32{0}, second.FileIndexToFolderIndexMap)
	assert.Equal(t, []uint64{50}, second.PackSizes)
}

func TestExplode_PositionsFollowPackedSizes(t *testing.T) {
	t.Parallel()

	b := testutil.NewDatabase().DataStart(32)
	f0 := b.Folder([]uint64{100, 7})
	f1 := b.Folder(nil)
	f2 := b.Folder([]uint64{50})
	f3 := b.Folder([]uint64{1, 2, 3})
	b.File("a/0", 1, f0)
	b.File("a/1", 1, f1)
	b.File("b/2", 1, f2)
	b.File("b/3", 1, f3)
	db := b.Build(t)

	res, err := Explode(db)
	require.NoError(t, err)

	assert.Equal(t, []uint64{107, 0, 50, 6}, res.PackSizes)
	assert.Equal(t, uint64(32), res.Positions[0])
	for i := 0; i+1 < len(res.Positions); i++ {
		assert.Equal(t, res.PackSizes[i], res.Positions[i+1]-res.Positions[i], "block %d", i)
		assert.GreaterOrEqual(t, res.Positions[i+1], res.Positions[i])
	}
	for i, out := range res.Databases {
		assert.Equal(t, db.FolderFullPackSize(i), out.FolderFullPackSize(0))
	}
}

func TestExplode_PreservesEveryFileEntry(t *testing.T) {
	t.Parallel()

	b := testutil.NewDatabase()
	f0 := b.Folder([]uint64{10})
	f1 := b.Folder([]uint64{20})
	f2 := b.Folder([]uint64{30})
	b.Dir("src")
	b.File("src/a.go", 1, f0)
	b.File("src/b.go", 2, f0)
	b.File("src/c.go", 3, f0)
	b.EmptyFile("src/empty.go")
	b.File("docs/readme", 4, f1)
	b.File("bin/tool", 5, f2)
	b.File("bin/tool2", 6, f2)
	db := b.Build(t)

	res, err := Explode(db)
	require.NoError(t, err)
	require.Len(t, res.Databases, len(db.Folders))

	var got []dbtype.Entry
	for _, out := range res.Databases {
		require.Len(t, out.Folders, 1)
		for i := range out.Files {
			assert.Equal(t, uint32(0), out.FileIndexToFolderIndexMap[i])
		}
		got = append(got, out.Files...)
	}

	var want []dbtype.Entry
	for i, e := range db.Files {
		if db.FileIndexToFolderIndexMap[i] != dbtype.NoIndex {
			want = append(want, e)
		}
	}
	assert.Equal(t, want, got)
}

func TestExplode_CopiesFolderAttributes(t *testing.T) {
	t.Parallel()

	b := testutil.NewDatabase()
	f0 := b.Folder([]uint64{10, 4},
		dbtype.Coder{MethodID: testutil.MethodLZMA, Props: []byte{0x5D, 0, 0, 0, 1}},
		dbtype.Coder{MethodID: testutil.MethodBCJ},
	)
	b.Entry(dbtype.Entry{
		Name: "a", Size: 9, HasStream: true,
		CRC: 0xCAFEBABE, CRCDefined: true,
		MTime: 133000000000000000, MTimeDefined: true,
		Attrib: 0x20, AttribDefined: true,
	}, f0)
	src := b.Unfilled()
	src.Folders[f0].UnpackCRC = 0x1234
	src.Folders[f0].UnpackCRCDefined = true
	src.PackCRCs = []uint32{11, 22}
	src.PackCRCsDefined = []bool{true, false}
	require.NoError(t, src.Fill())

	res, err := Explode(src)
	require.NoError(t, err)
	out := res.Databases[0]

	assert.Equal(t, src.Folders[0], out.Folders[0])
	assert.Equal(t, []uint64{10, 4}, out.PackSizes)
	assert.Equal(t, []uint32{11, 22}, out.PackCRCs)
	assert.Equal(t, []bool{true, false}, out.PackCRCsDefined)
	assert.Equal(t, src.Files[0], out.Files[0])

	out.Folders[0].Coders[0].Props[0] = 0
	out.PackSizes[0] = 0
	assert.Equal(t, byte(0x5D), src.Folders[0].Coders[0].Props[0])
	assert.Equal(t, uint64(10), src.PackSizes[0])
}

func TestExplode_SourceUntouched(t *testing.T) {
	t.Parallel()

	db := testutil.ScenarioDatabase(t)
	before := db.Clone()

	_, err := Explode(db)
	require.NoError(t, err)
	assert.Equal(t, before, db)
}

func TestExplode_RejectsCorruptMapping(t *testing.T) {
	t.Parallel()

	db := testutil.ScenarioDatabase(t)
	db.FileIndexToFolderIndexMap[2] = 9

	res, err := Explode(db)
	require.ErrorIs(t, err, dbtype.ErrCorruptMetadata)
	assert.Nil(t, res)
}

func TestExplode_RejectsSplitFolder(t *testing.T) {
	t.Parallel()

	db := testutil.ScenarioDatabase(t)
	db.FileIndexToFolderIndexMap = []uint32{0, 1, 0}

	res, err := Explode(db)
	require.ErrorIs(t, err, dbtype.ErrCorruptMetadata)
	assert.Nil(t, res)
}

func TestExplode_RejectsUnfilledDatabase(t *testing.T) {
	t.Parallel()

	b := testutil.NewDatabase()
	f0 := b.Folder([]uint64{1})
	b.File("a", 1, f0)

	_, err := Explode(b.Unfilled())
	require.ErrorIs(t, err, dbtype.ErrCorruptMetadata)
}

func TestExplode_EmptyDatabase(t *testing.T) {
	t.Parallel()

	db := testutil.NewDatabase().Build(t)
	res, err := Explode(db)
	require.NoError(t, err)
	assert.Empty(t, res.Databases)
	assert.Empty(t, res.PackSizes)
	assert.Empty(t, res.Positions)
}

func TestExplode_LogsStructure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Explode(testutil.ScenarioDatabase(t), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "blocks=2")
	assert.Contains(t, buf.String(), "dir2 [1 blocks]")
}
