// Package services implements the driving port interfaces.
// Services contain the core business logic of enrichment: name
// matching, merge semantics, change detection and the run
// orchestrator that ties the driven ports together.
//
// Services are pure Go with no external dependencies.
package services
