// Package live holds the mutable document tree the engine renders into,
// and the Patcher that applies patch logs against it.
//
// The Patcher is the only writer: it materializes virtual subtrees into
// live nodes, maintains the identity index mapping virtual-node refs to
// live nodes, and consumes patch logs strictly in emission order. A patch
// addressing an unresolvable target fails the whole apply with a coded
// error and flags the tree corrupt — recovery is a fresh render, which
// replaces the root subtree wholesale.
package live
