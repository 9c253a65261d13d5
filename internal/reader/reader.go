package reader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/transform"

	"csvpeek/internal/config"
	"csvpeek/internal/dialect"
)

// Source is a forward-only row source over a delimited text file. The first
// record is consumed as the header before any data records are handed out,
// and every data record is padded or truncated to the header's field count.
type Source struct {
	file    *os.File
	csv     *csv.Reader
	header  []string
	dialect dialect.Dialect
	rowNum  int
}

// Open opens the file, sniffs its dialect from a bounded sample, wraps the
// bytes in the configured text decoder and reads the header record.
func Open(filename string, cfg *config.Config) (*Source, error) {
	dl, err := sniffFile(filename, cfg.SampleSize)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	dec, err := cfg.NewDecoder()
	if err != nil {
		file.Close()
		return nil, err
	}

	csvReader := csv.NewReader(bufio.NewReader(transform.NewReader(file, dec)))
	csvReader.Comma = dl.Comma
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	header, err := csvReader.Read()
	if err == io.EOF {
		file.Close()
		return nil, fmt.Errorf("file has no records")
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read header record: %w", err)
	}

	return &Source{
		file:    file,
		csv:     csvReader,
		header:  header,
		dialect: dl,
	}, nil
}

// sniffFile reads up to sampleSize bytes and infers the dialect.
func sniffFile(filename string, sampleSize int) (dialect.Dialect, error) {
	file, err := os.Open(filename)
	if err != nil {
		return dialect.Dialect{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	sample := make([]byte, sampleSize)
	n, err := io.ReadFull(file, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return dialect.Dialect{}, fmt.Errorf("failed to sample file: %w", err)
	}
	return dialect.Sniff(sample[:n]), nil
}

// Header returns the header record, read once at open time.
func (s *Source) Header() []string {
	return s.header
}

// FieldCount returns the pinned field count, taken from the header.
func (s *Source) FieldCount() int {
	return len(s.header)
}

// Dialect returns the sniffed dialect.
func (s *Source) Dialect() dialect.Dialect {
	return s.dialect
}

// Next returns the next data record, normalized to the pinned field count.
// It returns io.EOF when the source is drained.
func (s *Source) Next() ([]string, error) {
	record, err := s.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %d: %w", s.rowNum+1, err)
	}
	s.rowNum++
	return normalize(record, len(s.header)), nil
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}

// normalize pads short records with empty fields and truncates long ones so
// downstream consumers always see a fixed-width record.
func normalize(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	if len(record) > width {
		return record[:width]
	}
	out := make([]string, width)
	copy(out, record)
	return out
}
