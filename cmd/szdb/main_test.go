package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/szdb"
	"github.com/meigma/szdb/internal/testutil"
)

func writeDatabase(t *testing.T) string {
	t.Helper()
	return writeDatabaseOf(t, testutil.ScenarioDatabase(t))
}

func writeDatabaseOf(t *testing.T, db *szdb.Database) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.szdb")
	require.NoError(t, os.WriteFile(path, szdb.EncodeDatabase(db), 0o600))
	return path
}

func readManifest(t *testing.T, dir string) []manifestEntry {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, manifestName))
	require.NoError(t, err)
	var manifest []manifestEntry
	require.NoError(t, json.Unmarshal(raw, &manifest))
	return manifest
}

func requireManifestMatchesFiles(t *testing.T, dir string, manifest []manifestEntry) {
	t.Helper()
	for _, m := range manifest {
		data, err := os.ReadFile(filepath.Join(dir, m.File))
		require.NoError(t, err)
		assert.Len(t, data, m.Size, m.File)
		_, err = szdb.DecodeVerified(data, digest.Digest(m.Digest))
		require.NoError(t, err, m.File)
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    config
		wantErr bool
	}{
		{name: "info", args: []string{"info", "db"}, want: config{action: "info", input: "db"}},
		{name: "list with threads", args: []string{"-mt", "off", "list", "db"}, want: config{action: "list", input: "db", threads: "off"}},
		{name: "explode", args: []string{"-out", "dir", "-overwrite", "explode", "db"}, want: config{action: "explode", input: "db", outDir: "dir", overwrite: true}},
		{name: "explode without out", args: []string{"explode", "db"}, wantErr: true},
		{name: "unknown action", args: []string{"pack", "db"}, wantErr: true},
		{name: "missing input", args: []string{"info"}, wantErr: true},
		{name: "unknown flag", args: []string{"-zz", "info", "db"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				require.ErrorIs(t, err, errUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Info(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(context.Background(), config{action: "info", input: writeDatabase(t)}, &out, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "entries")
	assert.Contains(t, out.String(), "LZMA2")
	assert.Contains(t, out.String(), "blocks")
	assert.NotContains(t, out.String(), "offset")
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(context.Background(), config{action: "list", input: writeDatabase(t)}, &out, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[0]), "size")
	assert.Contains(t, string(lines[1]), filepath.FromSlash("dir/x.txt"))
	assert.Contains(t, string(lines[3]), filepath.FromSlash("dir2/z.txt"))
}

func TestRun_Explode(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	var out bytes.Buffer
	cfg := config{action: "explode", input: writeDatabase(t), outDir: outDir, threads: "2"}
	require.NoError(t, run(context.Background(), cfg, &out, slog.New(slog.DiscardHandler)))
	assert.Contains(t, out.String(), "wrote 2 partitions")

	manifest := readManifest(t, outDir)
	require.Len(t, manifest, 2)
	assert.Equal(t, uint64(100), manifest[0].PackSize)
	assert.Equal(t, uint64(100), manifest[1].Position)
	requireManifestMatchesFiles(t, outDir, manifest)

	data, err := os.ReadFile(filepath.Join(outDir, manifest[1].File))
	require.NoError(t, err)
	db, err := szdb.DecodeDatabase(data)
	require.NoError(t, err)
	require.Len(t, db.Files, 1)
	assert.Equal(t, "dir2/z.txt", db.Files[0].Name)
}

func TestRun_ExplodeIntoExistingDir(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	outDir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), config{action: "explode", input: writeDatabase(t), outDir: outDir}, &out, logger))
	first := readManifest(t, outDir)
	require.Len(t, first, 2)

	b := testutil.NewDatabase()
	f0 := b.Folder([]uint64{7})
	b.File("other/file.bin", 3, f0)
	other := writeDatabaseOf(t, b.Build(t))

	out.Reset()
	err := run(context.Background(), config{action: "explode", input: other, outDir: outDir}, &out, logger)
	require.ErrorIs(t, err, errPartitionExists)
	assert.Empty(t, out.String())
	assert.Equal(t, first, readManifest(t, outDir))
	requireManifestMatchesFiles(t, outDir, first)

	out.Reset()
	err = run(context.Background(), config{action: "explode", input: other, outDir: outDir, overwrite: true}, &out, logger)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "wrote 1 partitions")
	second := readManifest(t, outDir)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].Digest, second[0].Digest)
	requireManifestMatchesFiles(t, outDir, second)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	var out bytes.Buffer

	err := run(context.Background(), config{action: "info", input: filepath.Join(t.TempDir(), "missing")}, &out, logger)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.szdb")
	require.NoError(t, os.WriteFile(bad, []byte("garbage!"), 0o600))
	err = run(context.Background(), config{action: "info", input: bad}, &out, logger)
	require.ErrorIs(t, err, szdb.ErrInvalidIndex)

	err = run(context.Background(), config{action: "info", input: writeDatabase(t), threads: "lots"}, &out, logger)
	require.ErrorIs(t, err, szdb.ErrInvalidArgument)
}
