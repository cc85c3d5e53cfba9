// Package records recognizes record and closure member forms: by-value
// captures of the enclosing instance and default member initializers on
// union members.
package records
