// Package emaillist extracts recipient addresses from uploaded bulk files.
package emaillist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"padelcoach/internal/domain"
)

type csvParser struct{}

// NewCSVParser returns an EmailListParser that reads one address per cell
// from CSV input. Plain newline-separated lists parse as single-column CSV.
// Cells without an "@" (e.g. a header row) are skipped; duplicates are
// collapsed, first occurrence wins.
func NewCSVParser() domain.EmailListParser {
	return &csvParser{}
}

func (p *csvParser) Parse(data []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse email list: %w", err)
	}

	seen := make(map[string]struct{})
	var emails []string
	for _, record := range records {
		for _, cell := range record {
			addr := strings.TrimSpace(strings.ToLower(cell))
			if addr == "" || !strings.Contains(addr, "@") {
				continue
			}
			if _, ok := seen[addr]; ok {
				continue
			}
			seen[addr] = struct{}{}
			emails = append(emails, addr)
		}
	}
	return emails, nil
}
