// Package ops provides dense matrix factorizations used by the debug
// verification path.
package ops
