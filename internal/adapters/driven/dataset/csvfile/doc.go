// Package csvfile provides CSV-backed implementations of the dataset
// ports. It reads input name lists and prior datasets, and writes
// enriched datasets and change logs.
//
// Adapters:
//   - Store: InputReader, DatasetReader, DatasetWriter, ChangeLogWriter
//
// Datasets are written with the schema in [domain.DatasetColumns].
// Prior datasets from before match statuses were recorded load with
// every row as MATCHED.
package csvfile
