// Package progress provides terminal implementations of the
// ProgressReporter driven port.
//
// Two reporters exist. BarReporter renders an animated progress bar
// with Bubbletea, suitable for interactive runs where a long scrape
// would otherwise look stuck. LogReporter writes plain lines through
// the logger instead, which is what a verbose run or a redirected
// shell pipeline wants. New picks between them by checking whether
// stdout is a terminal.
//
// Reporting is advisory: a run is never aborted because its reporter
// failed, and the reporters never call back into the run.
package progress
