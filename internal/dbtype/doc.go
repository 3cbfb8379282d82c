// Package dbtype defines the in-memory archive database shared by the
// property resolver, the directory tree, and the partitioner.
//
// A Database is produced once by an external header parser and is treated as
// immutable afterwards. Fill derives the lookup tables (entry-to-folder map,
// pack stream positions, first-file indices) and rejects metadata that breaks
// the model's invariants.
package dbtype
