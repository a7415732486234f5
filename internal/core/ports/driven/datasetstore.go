package driven

import "github.com/RachelGal/pharmacy-scraper/internal/core/domain"

// InputReader loads the user-supplied list of pharmacy names.
// Implementations exist for csv and xlsx files.
type InputReader interface {
	// ReadRecords parses the input file and returns one record per row,
	// names trimmed but otherwise as written. Rows with a blank name are
	// kept; the orchestrator degrades them rather than silently shrinking
	// the run. A file without a name column is an error.
	ReadRecords(path string) ([]domain.InputRecord, error)
}

// DatasetReader loads a previously written dataset for merging.
type DatasetReader interface {
	// ReadDataset parses a dataset file in the output schema.
	ReadDataset(path string) (*domain.Dataset, error)
}

// DatasetWriter persists the enriched dataset.
type DatasetWriter interface {
	// WriteDataset writes the dataset to path in record order,
	// replacing any existing file.
	WriteDataset(path string, ds *domain.Dataset) error
}

// ChangeLogWriter persists the differences between two dataset
// generations.
type ChangeLogWriter interface {
	// WriteChanges writes the change rows to path, replacing any
	// existing file. An empty change list still writes the header.
	WriteChanges(path string, changes []domain.Change) error
}
