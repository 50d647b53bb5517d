// Package normalisers provides implementations of the Normaliser interface
// for the contract formats the workspace can load. Each normaliser turns
// the raw bytes of one file type into contract text; Analyse attaches the
// key dates and clause issues every ingested contract carries.
//
// Normalisers are handed to the ingest service at startup.
package normalisers
