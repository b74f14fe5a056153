package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"

	"github.com/hasbyte1/go-shaping-utils/plan"
)

var (
	errInvalidJSON = errors.New("input is not valid JSON")
	errPathMissing = errors.New("path not found in input")
	errNotArray    = errors.New("input is not an array of objects")
)

// readInput reads path, or stdin when path is "-" or empty.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// decodeRecords selects the record array at the gjson path (the whole
// document when path is empty) and decodes it.
func decodeRecords(data []byte, path string) ([]plan.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}

	raw := gjson.ParseBytes(data)
	if path != "" {
		raw = gjson.GetBytes(data, path)
		if !raw.Exists() {
			return nil, fmt.Errorf("%w: %q", errPathMissing, path)
		}
	}
	if !raw.IsArray() {
		return nil, errNotArray
	}

	records := make([]plan.Record, 0, len(raw.Array()))
	for _, item := range raw.Array() {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: found %s", errNotArray, item.Type)
		}
		var rec plan.Record
		if err := json.Unmarshal([]byte(item.Raw), &rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
