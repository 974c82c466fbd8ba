// Package testutil provides testing utilities for ndvec.
//
// This package is intended for use in tests only. It provides a seeded RNG
// for filling containers and generating random swap sequences, and helpers
// for snapshotting axis contents so orderings can be compared.
//
// # Random Containers
//
//	rng := testutil.NewRNG(seed)
//	rng.Fill(v)                       // every slot gets a uniform [0, 1) value
//	swaps := rng.Swaps(32, v.Dim())   // 32 valid (a, b) pairs
//
// # Comparing Orderings
//
//	before := testutil.Snapshot(v)
//	// ... swap and revert ...
//	assert.Equal(t, before, testutil.Snapshot(v))
package testutil
