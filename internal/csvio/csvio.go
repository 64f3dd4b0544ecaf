package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/fx"

	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

// Handler performs delimited-file reads and writes for the report files.
type Handler struct{}

// Module provides the CSV handler to Fx.
var Module = fx.Provide(NewHandler)

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Read returns the data rows of a delimited file, skipping the header row.
// Rows may have varying field counts; callers validate per-record.
func (h *Handler) Read(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

// Write persists a header row plus data rows to path. The file is written
// wholesale: content goes to a temp file in the target directory and is
// renamed into place, so a failed write never leaves a partial file. Zero
// rows still produce a valid header-only file.
func (h *Handler) Write(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errorbank.WriteFailure("create output directory", errorbank.WithCause(err), errorbank.WithDetail("path", path))
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return errorbank.WriteFailure("create temp file", errorbank.WithCause(err), errorbank.WithDetail("path", path))
	}
	tmpName := tmp.Name()

	if err := writeAll(tmp, header, rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errorbank.WriteFailure("write rows", errorbank.WithCause(err), errorbank.WithDetail("path", path))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errorbank.WriteFailure("close temp file", errorbank.WithCause(err), errorbank.WithDetail("path", path))
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errorbank.WriteFailure("replace output file", errorbank.WithCause(err), errorbank.WithDetail("path", path))
	}
	return nil
}

func writeAll(f *os.File, header []string, rows [][]string) error {
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Exists reports whether a file is present at path.
func (h *Handler) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
