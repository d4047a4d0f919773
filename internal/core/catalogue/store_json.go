// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// datasetEntry is the value shape of the JSON dataset, keyed by occupation code:
//
//	{"1110": {"ime": "Legislator", "description": "...", "rod": "...", "skupina": "..."}}
type datasetEntry struct {
	Name        string `json:"ime"`
	Description string `json:"description"`
	Rod         string `json:"rod"`
	Skupina     string `json:"skupina"`
}

// JSONSource implements [Source] over a JSON file on disk.
type JSONSource struct {
	path string
}

// NewJSONSource returns a source reading the dataset at path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

/*
Load reads and decodes the dataset file.

Description: The object is decoded into an ordered map so that records keep
the order in which they appear in the file; occupations under a skupina are
listed in that order.

Parameters:
  - context: context.Context

Returns:
  - []Occupation: Records in file order
  - error: Open or decode failures
*/
func (source *JSONSource) Load(context context.Context) ([]Occupation, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(source.path)
	if err != nil {
		return nil, fmt.Errorf("catalogue: open dataset: %w", err)
	}
	defer file.Close()

	return DecodeDataset(file)
}

// DecodeDataset decodes a JSON dataset object, preserving key order.
func DecodeDataset(reader io.Reader) ([]Occupation, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("catalogue: read dataset: %w", err)
	}

	entries := orderedmap.New[string, datasetEntry]()
	if err := json.Unmarshal(data, entries); err != nil {
		return nil, fmt.Errorf("catalogue: decode dataset: %w", err)
	}

	records := make([]Occupation, 0, entries.Len())
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		records = append(records, Occupation{
			Code:        pair.Key,
			Name:        pair.Value.Name,
			Description: pair.Value.Description,
			Rod:         pair.Value.Rod,
			Skupina:     pair.Value.Skupina,
		})
	}

	return records, nil
}
