package fileutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oarkflow/json"

	"github.com/oarkflow/edi/pkg/utils"
)

// ProcessFile streams the records of a previously written CSV or JSON
// artifact. With a callback each record is handed over as it is read and the
// returned slice stays empty; without one the whole file is collected.
func ProcessFile(filename string, callbacks ...func(utils.Record)) ([]utils.Record, error) {
	var collected []utils.Record
	emit := func(rec utils.Record) {
		collected = append(collected, rec)
	}
	if len(callbacks) > 0 && callbacks[0] != nil {
		emit = callbacks[0]
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		if err := streamJSONArray(filename, emit); err != nil {
			return nil, err
		}
	case ".csv":
		if err := streamCSVRows(filename, emit); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
	return collected, nil
}

// streamJSONArray decodes a JSON array element by element so large exports
// never load fully into memory.
func streamJSONArray(filename string, emit func(utils.Record)) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("read array open: %w", err)
	}
	for decoder.More() {
		var rec utils.Record
		if err := decoder.Decode(&rec); err != nil {
			return err
		}
		emit(rec)
	}
	return nil
}

// streamCSVRows reads a header row and emits each following row keyed by it.
// Short rows pad missing columns with nil.
func streamCSVRows(filename string, emit func(utils.Record)) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		rec := make(utils.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = nil
			}
		}
		emit(rec)
	}
}
