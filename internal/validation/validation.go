// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or length limits) defined in struct tags
// and turns failures into 422 errors listing every offending
// field together with its location (path or body).
package validation
