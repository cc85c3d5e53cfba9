// Package deduction recognizes type-deduction and conversion gates:
// conditional explicit specifiers, auto decay copies, deduced parameter
// placeholders, and class template argument deduction through explicit
// constructors.
package deduction
