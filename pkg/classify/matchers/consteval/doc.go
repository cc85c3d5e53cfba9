// Package consteval recognizes constant-evaluation constructs gated on
// C++23: if consteval branches, size queries on incomplete types in
// constant contexts, try blocks in constexpr functions, and bare
// static_assert(false).
package consteval
