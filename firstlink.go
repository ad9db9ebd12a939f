// Package firstlink plays the "getting to Philosophy" game: starting from an
// encyclopedia article it keeps following the first qualifying link in the
// article body until it reaches a stop page or a dead end.
//
// This package contains domain types, interfaces and the pure link-selection
// rules. Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, slog/).
package firstlink
