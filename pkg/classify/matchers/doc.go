// Package matchers provides the feature recognizers for the built-in
// catalog.
//
// Matchers are organized by the syntactic area they inspect:
//   - consteval: constant-evaluation constructs (CV01-CV04)
//   - deduction: type deduction and conversion gates (DD01-DD04)
//   - operators: operator declaration forms (OP01-OP02)
//   - records: record and closure member forms (RC01-RC02)
//
// To register all matchers with the global classify registry, import this
// package with a blank identifier:
//
//	import _ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers"
//
// Individual areas can also be imported:
//
//	import _ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers/operators"
package matchers
