package verify

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GoldenEntry is one recorded tensor hash: a name, the element count the
// hash was taken over, and the additive checksum.
type GoldenEntry struct {
	Name     string
	Elements int
	Hash     uint32
}

// WriteGolden writes entries in the golden file format: one entry per line,
// name, element count and hex hash separated by spaces.
func WriteGolden(w io.Writer, entries []GoldenEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %d 0x%08X\n", e.Name, e.Elements, e.Hash); err != nil {
			return err
		}
	}
	return nil
}

// ParseGolden reads a golden file. Blank lines and lines starting with #
// are skipped.
func ParseGolden(r io.Reader) ([]GoldenEntry, error) {
	var entries []GoldenEntry

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields, got %d", line, len(fields))
		}

		elements, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad element count %q: %w", line, fields[1], err)
		}
		hash, err := strconv.ParseUint(fields[2], 0, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad hash %q: %w", line, fields[2], err)
		}

		entries = append(entries, GoldenEntry{
			Name:     fields[0],
			Elements: elements,
			Hash:     uint32(hash),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
