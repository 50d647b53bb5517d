// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Session state lives in a single Session shared by the services.
// Every operation except the delayed conversation reply completes
// synchronously before returning.
package services
