package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/meigma/szdb"
	"github.com/meigma/szdb/internal/batch"
)

// manifestName is the file explode writes next to the partitions.
const manifestName = "manifest.json"

// errPartitionExists is returned by explode when a partition file is already
// present and -overwrite is not set. Nothing is written in that case.
var errPartitionExists = errors.New("partition file exists (use -overwrite)")

// manifestEntry describes one partition written by explode.
type manifestEntry struct {
	Block    int    `json:"block"`
	File     string `json:"file"`
	Digest   string `json:"digest"`
	Size     int    `json:"size"`
	PackSize uint64 `json:"packSize"`
	Position uint64 `json:"position"`
}

//nolint:gocritic // hugeParam acceptable for config struct in CLI tool
func run(ctx context.Context, cfg config, stdout io.Writer, logger *slog.Logger) error {
	data, err := os.ReadFile(cfg.input)
	if err != nil {
		return err
	}
	db, err := szdb.DecodeDatabase(data)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.input, err)
	}
	a, err := szdb.Open(db, szdb.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if cfg.threads != "" {
		if err := a.SetProperties(map[string]string{"mt": cfg.threads}); err != nil {
			return err
		}
	}

	switch cfg.action {
	case "info":
		return info(a, stdout)
	case "list":
		return list(a, stdout)
	default:
		return explode(ctx, a, cfg.outDir, cfg.overwrite, stdout, logger)
	}
}

func info(a *szdb.Archive, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "entries\t%d\n", a.Len())
	for _, id := range szdb.ArchiveProps() {
		v, err := a.ArchiveProperty(id)
		if err != nil {
			return err
		}
		if v.IsAbsent() {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", id, v)
	}
	return tw.Flush()
}

// listProps are the entry columns printed by list.
var listProps = []szdb.PropID{
	szdb.PropSize, szdb.PropPackSize, szdb.PropBlock, szdb.PropMTime, szdb.PropCRC, szdb.PropMethod, szdb.PropPath,
}

func list(a *szdb.Archive, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, id := range listProps {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, id)
	}
	fmt.Fprintln(tw)

	for i := range a.Len() {
		for j, id := range listProps {
			v, err := a.Property(i, id)
			if err != nil {
				return err
			}
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			if id == szdb.PropCRC {
				if crc, ok := v.Uint32(); ok {
					fmt.Fprintf(tw, "%08X", crc)
					continue
				}
			}
			fmt.Fprint(tw, v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func explode(ctx context.Context, a *szdb.Archive, outDir string, overwrite bool, w io.Writer, logger *slog.Logger) error {
	res, err := a.Explode()
	if err != nil {
		return err
	}
	parts, err := res.Encode(ctx)
	if err != nil {
		return err
	}

	sink := batch.NewFileSink(outDir, batch.WithOverwrite(overwrite))
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = fmt.Sprintf("block-%04d.szdb", p.Block)
		if !sink.ShouldProcess(names[i]) {
			return fmt.Errorf("%w: %s", errPartitionExists, filepath.Join(outDir, names[i]))
		}
	}

	manifest := make([]manifestEntry, 0, len(parts))
	for i, p := range parts {
		if err := batch.Put(sink, names[i], p.Data); err != nil {
			return err
		}
		logger.Debug("wrote partition", "block", p.Block, "file", names[i], "digest", p.Digest)
		manifest = append(manifest, manifestEntry{
			Block:    p.Block,
			File:     names[i],
			Digest:   p.Digest.String(),
			Size:     len(p.Data),
			PackSize: p.PackSize,
			Position: p.Position,
		})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := batch.Put(batch.NewFileSink(outDir, batch.WithOverwrite(true)), manifestName, append(data, '\n')); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %d partitions to %s\n", len(manifest), outDir)
	return nil
}
