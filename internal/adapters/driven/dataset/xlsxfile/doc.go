// Package xlsxfile provides an Excel-backed implementation of the
// input reader port. Register extracts arrive as .xlsx workbooks with
// an unpredictable number of banner rows above the real header, so the
// reader locates the header by scanning for the first numeric leading
// cell. Output always goes through the csvfile adapter; this package
// only reads.
package xlsxfile
