// Package loader reads tabular datasets from CSV and JSON files into the
// in-memory record form, and supplies the table schema either from a schema
// file or by inference. All parsing happens here, upstream of the core.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datascope/datascope/schema"
)

// Load reads a dataset file into records, dispatching on the file extension.
// CSV cells arrive as strings with empty cells mapped to nil; JSON values
// keep their decoded types.
func Load(path string) ([]schema.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json", ".jsonl", ".ndjson":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (expected .csv or .json)", filepath.Ext(path))
	}
}

// LoadCSV reads a header-first CSV file into records.
func LoadCSV(path string) ([]schema.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", path)
	}

	header := rows[0]
	records := make([]schema.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(schema.Record, len(header))
		for i, name := range header {
			if i >= len(row) || row[i] == "" {
				record[name] = nil
				continue
			}
			record[name] = row[i]
		}
		records = append(records, record)
	}
	return records, nil
}

// LoadJSON reads either a top-level JSON array of objects or line-delimited
// JSON objects into records.
func LoadJSON(path string) ([]schema.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var records []schema.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse json array: %w", err)
		}
		return records, nil
	}

	var records []schema.Record
	for i, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var record schema.Record
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("parse json line %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// LoadSchemaFile reads a JSON table schema declaration.
func LoadSchemaFile(path string) (schema.TableSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.TableSchema{}, fmt.Errorf("open schema file: %w", err)
	}

	var ts schema.TableSchema
	if err := json.Unmarshal(data, &ts); err != nil {
		return schema.TableSchema{}, fmt.Errorf("parse schema file: %w", err)
	}
	if len(ts.Columns) == 0 {
		return schema.TableSchema{}, fmt.Errorf("schema file %s declares no columns", path)
	}
	return ts, nil
}

// Resolve returns the table schema for a dataset: the declared schema file
// when one is given, otherwise a schema inferred from the records.
func Resolve(records []schema.Record, schemaFile string) (schema.TableSchema, error) {
	if schemaFile != "" {
		return LoadSchemaFile(schemaFile)
	}
	ts, err := InferSchema(records)
	if err != nil {
		return schema.TableSchema{}, fmt.Errorf("infer schema: %w", err)
	}
	return ts, nil
}
