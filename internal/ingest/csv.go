package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/roastcurve/schema"
)

// readCSV parses a delimited text log. Semicolon and tab separated exports
// are detected from the first line.
func (r *Reader) readCSV(path string) (schema.Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return schema.Recording{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	rows, err := readDelimited(file)
	if err != nil {
		return schema.Recording{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return r.parseTable(rows, schema.ParseClock), nil
}

func readDelimited(src io.Reader) ([][]string, error) {
	br := bufio.NewReader(src)
	peek, _ := br.Peek(4096)

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(firstDataLine(peek))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	return reader.ReadAll()
}

func sniffDelimiter(line []byte) rune {
	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// firstDataLine returns the first line that is neither blank nor a comment.
func firstDataLine(buf []byte) []byte {
	for _, line := range bytes.Split(buf, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) > 0 && line[0] != '#' {
			return line
		}
	}
	return nil
}
