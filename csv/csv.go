// Package csv normalizes vendor CSV exports into menu row sets.
package csv

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/ysaito/uracheck"
)

// Expected header names in the vendor export.
const (
	headerID      = "メニューID"
	headerMenu    = "メニュー名"
	headerCaption = "キャプション"
	headerPrice   = "金額(税込)"
)

// FromCSV parses a vendor CSV export into a RowSet. The first record is the
// header; columns are matched by name and may appear in any order. Missing
// columns default to ""/0 and unknown columns are ignored. Row order and
// duplicates are preserved.
func FromCSV(text string) (uracheck.RowSet, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, uracheck.Errorf(uracheck.EINVALID, "failed to parse CSV header: %v", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var rows uracheck.RowSet
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, uracheck.Errorf(uracheck.EINVALID, "failed to parse CSV record: %v", err)
		}
		rows = append(rows, uracheck.Row{
			Menu:    field(record, cols, headerMenu),
			Caption: field(record, cols, headerCaption),
			Price:   uracheck.ParsePrice(field(record, cols, headerPrice)),
			ID:      field(record, cols, headerID),
		})
	}

	return rows, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
