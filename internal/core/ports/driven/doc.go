// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - RegisterClient: Searches the public pharmacy register
//   - PhoneNormaliser: Canonicalises raw phone numbers
//   - NameNormaliser: Builds match keys from pharmacy names
//   - InputReader: Loads the user's input file (csv/xlsx)
//   - DatasetReader/DatasetWriter: Dataset persistence
//   - ChangeLogWriter: Change log persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ResultCache: Register search caching. Without it, every name is
//     searched live on every run.
//   - ProgressReporter: Run progress display. Without it, runs are silent
//     apart from the log file.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
