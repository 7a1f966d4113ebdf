// Package table reads and appends the comma-separated data files that back
// the food and exercise catalogs. The first line of every file is a header.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	apperrors "haverfit/internal/platform/errors"
)

// Separator joins fields on write. Readers also accept a bare comma.
const Separator = ", "

// Read returns every record after the header. Blank lines are skipped and
// surrounding spaces are trimmed from each field.
func Read(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", apperrors.ErrCatalogUnavailable, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	var out [][]string
	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if header {
			header = false
			continue
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		out = append(out, record)
	}
	return out, nil
}

// Append writes one record at the end of path without rewriting existing
// content. A missing trailing newline on the last line is completed first.
func Append(path string, fields []string) error {
	for _, field := range fields {
		if strings.ContainsAny(field, ",\n\r\"") {
			return fmt.Errorf("%w: field %q contains a reserved character", apperrors.ErrInvalidInput, field)
		}
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist", apperrors.ErrCatalogUnavailable, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	line := strings.Join(fields, Separator)
	if info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if last[0] != '\n' {
			line = "\n" + line
		}
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}
