// Package operators recognizes operator declaration forms gated on C++23:
// static call operators and multi-argument subscript operators.
package operators
