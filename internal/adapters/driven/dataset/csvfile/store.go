package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// Ensure Store implements the interfaces.
var (
	_ driven.InputReader     = (*Store)(nil)
	_ driven.DatasetReader   = (*Store)(nil)
	_ driven.DatasetWriter   = (*Store)(nil)
	_ driven.ChangeLogWriter = (*Store)(nil)
)

// Change log columns. The first four match the historical change log
// layout; the value columns were added alongside per-field diffing.
var changeLogColumns = []string{
	domain.FieldTradingName,
	domain.FieldRegistrationNumber,
	"change_type",
	"field_changed",
	"old_value",
	"new_value",
}

// Store reads and writes datasets as CSV files.
type Store struct {
	names driven.NameNormaliser
}

// New creates a CSV dataset store. The normaliser derives the lookup
// key for each row read from a prior dataset.
func New(names driven.NameNormaliser) *Store {
	return &Store{names: names}
}

// ReadRecords loads the input rows to enrich. The file must carry a
// trading name column; every other column is ignored.
func (s *Store) ReadRecords(path string) ([]domain.InputRecord, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrInvalidInput, path)
	}

	nameIdx := nameColumn(rows[0])
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrMissingNameColumn, path)
	}

	var records []domain.InputRecord
	for _, row := range rows[1:] {
		if nameIdx >= len(row) {
			continue
		}
		records = append(records, domain.InputRecord{Name: strings.TrimSpace(row[nameIdx])})
	}
	return records, nil
}

// ReadDataset loads a previously written dataset. Files from before
// match statuses were recorded have no Match Status column; their rows
// load as MATCHED.
func (s *Store) ReadDataset(path string) (*domain.Dataset, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrInvalidInput, path)
	}

	header := rows[0]
	nameIdx := nameColumn(header)
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrMissingNameColumn, path)
	}
	columns := columnIndex(header)

	cell := func(row []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	ds := domain.NewDataset()
	for i, row := range rows[1:] {
		if nameIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])

		status, err := domain.ParseMatchStatus(cell(row, domain.FieldMatchStatus))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}

		rec := domain.EnrichedRecord{
			Name:               name,
			RegistrationNumber: cell(row, domain.FieldRegistrationNumber),
			Phone:              cell(row, domain.FieldPhone),
			Address:            cell(row, domain.FieldAddress),
			Website:            cell(row, domain.FieldWebsite),
			Superintendent:     cell(row, domain.FieldSuperintendent),
			Supervising:        cell(row, domain.FieldSupervising),
			Status:             status,
		}

		key := s.names.Key(name)
		if key == "" {
			logger.Warn("Skipping unnamed row %d in %s", i+2, path)
			continue
		}
		ds.Put(key, rec)
	}
	return ds, nil
}

// WriteDataset writes the dataset with its records in insertion order.
func (s *Store) WriteDataset(path string, ds *domain.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(domain.DatasetColumns())
	for _, rec := range ds.Records() {
		if writeErr != nil {
			break
		}
		row := make([]string, 0, len(domain.DatasetColumns()))
		for _, column := range domain.DatasetColumns() {
			row = append(row, rec.Value(column))
		}
		writeErr = w.Write(row)
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	if writeErr != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, writeErr)
	}
	return f.Close()
}

// WriteChanges writes the change log for a run.
func (s *Store) WriteChanges(path string, changes []domain.Change) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(changeLogColumns)
	for _, change := range changes {
		if writeErr != nil {
			break
		}
		writeErr = w.Write([]string{
			change.Name,
			change.RegistrationNumber,
			string(change.Type),
			change.Field,
			change.OldValue,
			change.NewValue,
		})
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	if writeErr != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, writeErr)
	}
	return f.Close()
}

// readAll reads a CSV file without enforcing a fixed field count;
// hand-edited files often carry ragged rows.
func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
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

// columnIndex maps known dataset columns to their position in header.
func columnIndex(header []string) map[string]int {
	known := make(map[string]string, len(domain.DatasetColumns()))
	for _, column := range domain.DatasetColumns() {
		known[strings.ToLower(column)] = column
	}

	index := make(map[string]int)
	for i, cell := range header {
		if column, ok := known[strings.ToLower(strings.TrimSpace(cell))]; ok {
			index[column] = i
		}
	}
	return index
}
