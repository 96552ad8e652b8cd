// Package keyset implements the set algebra over parsed env mappings:
// missing, extra, and changed key computations plus the left-to-right merge
// primitive the sync strategies are composed from.
//
// All functions are pure: they never mutate their inputs, never perform I/O,
// and never fail for malformed data (mappings are already the output of the
// lenient parser).
//
// # Sync strategies
//
// The three strategies are compositions of Merge:
//
//	merge:     Merge(target, source)  source wins, target extras survive
//	overwrite: source as-is           target extras are dropped
//	preserve:  Merge(source, target)  target wins, source adds new keys only
//
// Note that merge is not a naive union: a key present in both files takes
// the source's value, but keys only in the target are kept.
package keyset
