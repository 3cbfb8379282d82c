package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/szdb/internal/testutil"
)

func TestEnsurePath_ReusesNodes(t *testing.T) {
	t.Parallel()

	tr := New("/")
	a := tr.EnsurePath("a/b")
	b := tr.EnsurePath("a/b")
	assert.Same(t, a, b)

	c := tr.EnsurePath("a/c")
	assert.NotSame(t, a, c)

	root := tr.Root()
	require.Len(t, root.Children(), 1)
	assert.Equal(t, "a", root.Children()[0].Key())
	children := root.Children()[0].Children()
	require.Len(t, children, 2)
	assert.Equal(t, "b", children[0].Key())
	assert.Equal(t, "c", children[1].Key())
}

func TestEnsurePath_AppendOrderNotSorted(t *testing.T) {
	t.Parallel()

	tr := New("/")
	tr.EnsurePath("zeta")
	tr.EnsurePath("alpha")
	tr.EnsurePath("Zeta")

	var keys []string
	for _, c := range tr.Root().Children() {
		keys = append(keys, c.Key())
	}
	assert.Equal(t, []string{"zeta", "alpha", "Zeta"}, keys)
}

func TestEnsurePath_EmptyRootTakesFirstSegment(t *testing.T) {
	t.Parallel()

	tr := New("")
	leaf := tr.EnsurePath("top/sub")
	assert.Equal(t, "top", tr.Root().Key())
	require.Len(t, tr.Root().Children(), 1)
	assert.Same(t, tr.Root().Children()[0], leaf)

	other := tr.EnsurePath("other")
	assert.Equal(t, "top", tr.Root().Key())
	assert.Equal(t, "other", other.Key())
	assert.Len(t, tr.Root().Children(), 2)
}

func TestEnsurePath_RootForEmptyPath(t *testing.T) {
	t.Parallel()

	tr := New("/")
	assert.Same(t, tr.Root(), tr.EnsurePath(""))
	assert.Same(t, tr.Root(), tr.EnsurePath("/"))
}

func TestFindRelative(t *testing.T) {
	t.Parallel()

	tr := New("/")
	want := tr.EnsurePath("a/b/c")

	got, ok := tr.FindRelative("a/b/c")
	require.True(t, ok)
	assert.Same(t, want, got)

	_, ok = tr.FindRelative("a/x")
	assert.False(t, ok)

	_, ok = tr.FindRelative("A/b/c")
	assert.False(t, ok, "lookup is case-sensitive")

	root, ok := tr.FindRelative("")
	require.True(t, ok)
	assert.Same(t, tr.Root(), root)
}

func TestAttachBlock_Idempotent(t *testing.T) {
	t.Parallel()

	tr := New("/")
	n := tr.EnsurePath("a")
	tr.AttachBlock(n, 3)
	tr.AttachBlock(n, 1)
	tr.AttachBlock(n, 3)

	assert.Equal(t, 2, n.NumBlocks())
	assert.Equal(t, []uint32{1, 3}, n.Blocks())
	assert.True(t, n.HasBlock(1))
	assert.False(t, n.HasBlock(2))
}

func TestBuild_AttachesBlocksToDirectory(t *testing.T) {
	t.Parallel()

	b := testutil.NewDatabase()
	f0 := b.Folder([]uint64{10})
	f1 := b.Folder([]uint64{20})
	b.File("/a/b/file1", 1, f0)
	b.File("/a/b/file2", 2, f1)
	db := b.Build(t)

	tr, err := Build(db, "/")
	require.NoError(t, err)

	node := tr.EnsurePath("/a/b")
	assert.Equal(t, []uint32{0, 1}, node.Blocks())

	a, ok := tr.FindRelative("a")
	require.True(t, ok)
	assert.Zero(t, a.NumBlocks())
}

func TestBuild_DirectoriesAndRootFiles(t *testing.T) {
	t.Parallel()

	b := testutil.NewDatabase()
	f0 := b.Folder([]uint64{10})
	b.Dir("docs")
	b.Dir("docs/empty")
	b.File("readme.txt", 5, f0)
	b.File("docs/guide.txt", 5, f0)
	b.EmptyFile("docs/blank.txt")
	db := b.Build(t)

	tr, err := Build(db, "/")
	require.NoError(t, err)

	assert.Equal(t, []uint32{0}, tr.Root().Blocks())
	docs, ok := tr.FindRelative("docs")
	require.True(t, ok)
	assert.Equal(t, []uint32{0}, docs.Blocks())
	empty, ok := tr.FindRelative("docs/empty")
	require.True(t, ok)
	assert.Zero(t, empty.NumBlocks())
}

func TestBuild_RejectsUnfilledDatabase(t *testing.T) {
	t.Parallel()

	b := testutil.NewDatabase()
	f0 := b.Folder([]uint64{10})
	b.File("a", 1, f0)

	_, err := Build(b.Unfilled(), "/")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tr, err := Build(testutil.ScenarioDatabase(t), "/")
	require.NoError(t, err)

	assert.Equal(t, "/ [0 blocks]\n dir [1 blocks]\n dir2 [1 blocks]\n", tr.Format())
}

func TestWalk_StopsEarly(t *testing.T) {
	t.Parallel()

	tr := New("/")
	tr.EnsurePath("a/b")
	tr.EnsurePath("c")

	var visited []string
	tr.Walk(func(n *Node, depth int) bool {
		visited = append(visited, n.Key())
		return n.Key() != "a"
	})
	assert.Equal(t, []string{"/", "a"}, visited)
}
