// Package pipeline streams FASTA records through a Folder on a worker pool
// and hands the products to a visit callback in input order.
//
// The only contract to implement is Folder (FoldRecord).
// This keeps the pipeline swappable and testable.
package pipeline
