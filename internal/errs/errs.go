// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (FieldError for payload validation, HTTPError for API responses)
// so the client receives consistent, actionable error bodies.
package errs
