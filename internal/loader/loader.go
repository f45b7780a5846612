package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"os-simulator/internal/core"
)

var ErrInvalidRow = errors.New("invalid process row")

// LoadProcesses reads "id,burst[,priority]" rows into a new registry, in
// file order. Blank lines and lines starting with # are skipped.
func LoadProcesses(r io.Reader) (*core.Registry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	registry := core.NewRegistry()
	for i, row := range rows {
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrInvalidRow, i+1, len(row))
		}
		burstTime, err := strToInt(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d burst: %v", ErrInvalidRow, i+1, err)
		}
		var priority int
		if len(row) == 3 {
			if priority, err = strToInt(row[2]); err != nil {
				return nil, fmt.Errorf("%w: line %d priority: %v", ErrInvalidRow, i+1, err)
			}
		}
		if err := registry.Register(strings.TrimSpace(row[0]), burstTime, priority); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return registry, nil
}

func strToInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
