// Package treecrdt implements the move operation for replicated trees
// described by Kleppmann et al., "A highly-available move operation for
// replicated trees."
//
// Multiple independent replicas can each apply move/create/rename
// operations to their own copy of a shared hierarchical tree (think: a
// filesystem) without coordinating with one another. Once every replica
// has observed the same set of operations — in any order — their trees
// are guaranteed to converge to the same state.
//
// The package is organized around six pieces, leaves first:
//
//   - Clock: a Lamport timestamp paired with an actor id, totally ordered.
//   - TreeNode: the (parent, metadata) pair stored per child id.
//   - Tree: the in-memory forest itself.
//   - OpMove: a single move operation.
//   - LogOpMove: an applied OpMove plus the child's prior location.
//   - State: a replica's tree and op log, with the apply/undo/redo
//     algorithm that makes convergence possible.
//
// A Replica wraps a State with a local Clock and the bookkeeping needed to
// know when it is safe to truncate the log.
//
// This package does not transport operations between replicas, does not
// persist anything to disk, and does not mint identifiers — callers supply
// their own Actor and NodeID values and are responsible for getting
// OpMove values from one replica to another by whatever means they like.
package treecrdt
