package state

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MaxJSONLineBytes is the longest JSONL line accepted by ReadJSONL.
const MaxJSONLineBytes = 1024 * 1024

// ReadJSONL reads one JSON value per line from the file at path.
func ReadJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ReadJSONLFromReader[T](f)
}

// ReadJSONLFromReader reads one JSON value per line. Blank lines are skipped
// and parse errors name the 1-based line number.
func ReadJSONLFromReader[T any](reader io.Reader) ([]T, error) {
	items := []T{}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxJSONLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("parse line %d: %w", lineNum, err)
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan line %d: %w", lineNum+1, err)
	}

	return items, nil
}

// WriteJSONL writes items to w, one JSON value per line.
func WriteJSONL[T any](w io.Writer, items []T) error {
	encoder := json.NewEncoder(w)
	for i, item := range items {
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("encode item %d: %w", i, err)
		}
	}
	return nil
}

// WriteJSONLFile writes items to path, replacing any existing content.
func WriteJSONLFile[T any](path string, items []T) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if err := WriteJSONL(f, items); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
