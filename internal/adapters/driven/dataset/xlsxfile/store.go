package xlsxfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.InputReader = (*Store)(nil)

// maxHeaderRows is how many leading rows are scanned for the first
// numeric leading cell marking the start of data.
const maxHeaderRows = 3

// Store reads input records from Excel workbooks. Only the first sheet
// is read.
type Store struct{}

// New creates an XLSX input reader.
func New() *Store {
	return &Store{}
}

// ReadRecords loads the input rows to enrich from the workbook's first
// sheet, detecting the header row beneath any banner rows.
func (s *Store) ReadRecords(path string) ([]domain.InputRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", domain.ErrInvalidInput, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	headerIdx, err := headerRow(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	nameIdx := nameColumn(rows[headerIdx])
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrMissingNameColumn, path)
	}

	var records []domain.InputRecord
	for _, row := range rows[headerIdx+1:] {
		if nameIdx >= len(row) {
			continue
		}
		records = append(records, domain.InputRecord{Name: strings.TrimSpace(row[nameIdx])})
	}
	return records, nil
}

// headerRow locates the header row. Register extracts carry between
// zero and a few banner rows above the header, and users trim them
// inconsistently. The first scanned row whose leading cell is numeric
// starts the data, so the row above it is the header; when nothing
// numeric shows up, the last scanned row is taken as the header.
func headerRow(rows [][]string) (int, error) {
	if len(rows) < 2 {
		return 0, fmt.Errorf("%w: too few rows to determine header", domain.ErrInvalidInput)
	}

	limit := maxHeaderRows
	if len(rows) < limit {
		limit = len(rows)
	}

	for i := 0; i < limit; i++ {
		if !leadingCellNumeric(rows[i]) {
			continue
		}
		if i == 0 {
			return 0, fmt.Errorf("%w: data begins on the first row", domain.ErrMissingNameColumn)
		}
		return i - 1, nil
	}
	return limit - 1, nil
}

// leadingCellNumeric reports whether a row opens with a number, which
// marks it as data rather than banner or header text. Empty cells do
// not count.
func leadingCellNumeric(row []string) bool {
	if len(row) == 0 {
		return false
	}
	cell := strings.TrimSpace(row[0])
	if cell == "" {
		return false
	}
	_, err := strconv.ParseFloat(cell, 64)
	return err == nil
}

// nameColumn locates the trading name column, tolerating case
// differences and the bare "Name" header variant. Returns -1 when the
// header has no name column.
func nameColumn(header []string) int {
	for i, cell := range header {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "trading name", "name":
			return i
		}
	}
	return -1
}
