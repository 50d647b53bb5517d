// Package connectors holds the sources contracts arrive from.
// Each connector turns an outside source into file paths the ingest
// service can load.
package connectors
