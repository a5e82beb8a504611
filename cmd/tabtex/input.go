package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for reading input.
var (
	ErrReadInput          = errors.New("failed to read input")
	ErrParseInput         = errors.New("failed to parse input")
	ErrUnknownInputFormat = errors.New("unknown input format")
)

// Input formats.
const (
	inputCSV  = "csv"
	inputTSV  = "tsv"
	inputJSON = "json"
	inputYAML = "yaml"
)

// resolveInputFormat picks the input format: the flag wins, then the file
// extension, then the config.
func resolveInputFormat(flagValue, path string, cfg *Config) (string, error) {
	name := flagValue
	if name == "" {
		name = inputFormatForExt(filepath.Ext(path))
	}
	if name == "" {
		name = cfg.InputFormat
	}
	switch name {
	case inputCSV, inputTSV, inputJSON, inputYAML:
		return name, nil
	case "yml":
		return inputYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInputFormat, name)
	}
}

func inputFormatForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".csv":
		return inputCSV
	case ".tsv", ".tab":
		return inputTSV
	case ".json":
		return inputJSON
	case ".yaml", ".yml":
		return inputYAML
	default:
		return ""
	}
}

// readGrid decodes data as a grid of cells. CSV and TSV cells are strings;
// JSON and YAML cells keep their scalar types. Rows may differ in length.
func readGrid(data []byte, format string) ([][]any, error) {
	var grid [][]any
	switch format {
	case inputCSV, inputTSV:
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		if format == inputTSV {
			r.Comma = '\t'
			r.LazyQuotes = true
		}
		records, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParseInput, format, err)
		}
		grid = make([][]any, len(records))
		for i, rec := range records {
			row := make([]any, len(rec))
			for j, cell := range rec {
				row[j] = cell
			}
			grid[i] = row
		}
	case inputJSON:
		if err := json.Unmarshal(data, &grid); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParseInput, format, err)
		}
	case inputYAML:
		if err := yaml.Unmarshal(data, &grid); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParseInput, format, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInputFormat, format)
	}
	return grid, nil
}
