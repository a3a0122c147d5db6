// Package snpattern builds the compressed row pattern of the supernodal
// Cholesky factor: for each supernode, the sorted list of original row
// indices its frontal matrix touches.
//
// Construction sweeps every original matrix row once and, for each nonzero
// it finds, walks the supernodal elimination tree upward from the owning
// supernode, recording the row in every supernode's pattern until a
// supernode already marked for this row is reached. A per-supernode "mark"
// array, holding the last row recorded in each supernode, keeps the walks
// started from the different nonzeros of one row from repeating work.
package snpattern
