package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// MoveRow is the columnar form of a MoveRecord. Branch values are in game.Branches order.
type MoveRow struct {
	Game        int32   `parquet:"game"`
	Agent       int32   `parquet:"agent"`
	Tick        int32   `parquet:"tick"`
	Strategy    string  `parquet:"strategy,dict"`
	Depth       int32   `parquet:"depth"`
	Action      string  `parquet:"action,dict"`
	DurationNs  int64   `parquet:"duration_ns"`
	Nodes       int32   `parquet:"nodes"`
	Clones      int32   `parquet:"clones"`
	Evaluations int32   `parquet:"evaluations"`
	TimedOut    bool    `parquet:"timed_out"`
	Score       int32   `parquet:"score"`
	Lives       int32   `parquet:"lives"`
	Branches    []int64 `parquet:"branches"`
}

func NewMoveRow(record MoveRecord) MoveRow {
	return MoveRow{
		Game:        int32(record.Game),
		Agent:       int32(record.Agent),
		Tick:        int32(record.Tick),
		Strategy:    record.Strategy,
		Depth:       int32(record.Depth),
		Action:      record.Action.String(),
		DurationNs:  record.Duration.Nanoseconds(),
		Nodes:       int32(record.Nodes),
		Clones:      int32(record.Clones),
		Evaluations: int32(record.Evaluations),
		TimedOut:    record.TimedOut,
		Score:       int32(record.Score),
		Lives:       int32(record.Lives),
		Branches:    append([]int64(nil), record.Branches[:]...),
	}
}

// WriteMoveParquet writes move records as zstd compressed parquet next to the CSV files.
func (w *Writer) WriteMoveParquet(records []MoveRecord) error {
	rows := make([]MoveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, NewMoveRow(record))
	}
	if err := WriteMoveRows(filepath.Join(w.baseDir, "move_records.parquet"), rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func WriteMoveRows(outPath string, rows []MoveRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

func ReadMoveRows(path string) ([]MoveRow, error) {
	rows, err := parquet.ReadFile[MoveRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
