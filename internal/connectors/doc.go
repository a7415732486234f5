// Package connectors provides implementations of the RegisterClient
// interface. Each connector knows how to drive one public register;
// psi covers the Pharmaceutical Society of Ireland's online search.
package connectors
