package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Persisted form of a lookup table.
//
// The payload is JSON keyed character -> character -> ratio, so the
// production consumer can load it with nothing but a JSON decoder; the
// file artifact written by Encode wraps the same payload in a zstd frame.
// Ratios survive the round trip bit-exactly: Go prints the shortest
// decimal that parses back to the same float64.

// formatVersion guards against loading artifacts written by an
// incompatible future layout.
const formatVersion = 1

// ErrBadFormat is returned when decoding an artifact with an unknown
// version or a payload that is not a lookup table.
var ErrBadFormat = errors.New("table: unrecognized artifact format")

type tableJSON struct {
	Version  int                           `json:"version"`
	Style    string                        `json:"style"`
	Overlaps map[string]map[string]float64 `json:"overlaps"`
}

// Marshal serializes the table to its JSON payload.
func (t *Table) Marshal() ([]byte, error) {
	overlaps := make(map[string]map[string]float64, len(t.entries))
	for first, row := range t.entries {
		m := make(map[string]float64, len(row))
		for second, ratio := range row {
			m[string(second)] = ratio
		}
		overlaps[string(first)] = m
	}
	return json.Marshal(tableJSON{
		Version:  formatVersion,
		Style:    t.style,
		Overlaps: overlaps,
	})
}

// Unmarshal reconstructs a table from its JSON payload. Every key present
// in the payload is present in the result with an identical ratio.
func Unmarshal(data []byte) (*Table, error) {
	var tj tableJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	if tj.Version != formatVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadFormat, tj.Version)
	}
	entries := make(map[rune]map[rune]float64, len(tj.Overlaps))
	for first, row := range tj.Overlaps {
		fr, ok := singleRune(first)
		if !ok {
			return nil, fmt.Errorf("%w: key %q", ErrBadFormat, first)
		}
		m := make(map[rune]float64, len(row))
		for second, ratio := range row {
			sr, ok := singleRune(second)
			if !ok {
				return nil, fmt.Errorf("%w: key %q", ErrBadFormat, second)
			}
			m[sr] = ratio
		}
		entries[fr] = m
	}
	return newTable(tj.Style, entries), nil
}

func singleRune(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}

// Encode writes the table as a zstd-compressed artifact.
func (t *Table) Encode(w io.Writer) error {
	payload, err := t.Marshal()
	if err != nil {
		return err
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		zw.Close()
		return fmt.Errorf("table: %w", err)
	}
	return zw.Close()
}

// Decode reads a zstd-compressed artifact written by Encode.
func Decode(r io.Reader) (*Table, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer zr.Close()
	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	return Unmarshal(payload)
}
