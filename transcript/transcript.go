// Package transcript implements the Fiat-Shamir index sampler of spec.md
// §4.4: a deterministic derivation of distinct query indices from a
// committed Merkle root, turning the protocol non-interactive.
package transcript

import (
	"fmt"
	"sort"

	"mimcstark/field"
	"mimcstark/mimc"
)

// maxIterations bounds the sampler's search for n distinct indices. Given n
// is fixed at 5 and domain is Rounds (64), starvation is astronomically
// unlikely; this cap exists purely so a pathological caller fails loudly
// (TranscriptStuck) instead of looping forever.
const maxIterations = 1 << 20

// ErrStuck is returned when the sampler exceeds maxIterations without
// finding n distinct indices, spec.md's TranscriptStuck error kind.
var ErrStuck = fmt.Errorf("transcript: sampler exceeded iteration cap")

// SampleIndices derives n distinct indices in [0, domain) deterministically
// from the decimal-encoded root. It seeds from the entire canonical-decimal
// root (not a truncated hex prefix, per spec.md §9(d)) and draws successive
// candidates via mimc.Hash(seed, key=counter), incrementing counter each
// time whether or not the candidate was accepted.
func SampleIndices(root string, n, domain int) ([]int, error) {
	seed, err := field.Parse(root)
	if err != nil {
		return nil, fmt.Errorf("transcript: root is not a canonical decimal: %w", err)
	}
	if domain <= 0 {
		return nil, fmt.Errorf("transcript: domain must be positive")
	}

	seen := make(map[int]bool, n)
	indices := make([]int, 0, n)

	counter := uint64(0)
	for iterations := 0; len(indices) < n; iterations++ {
		if iterations >= maxIterations {
			return nil, ErrStuck
		}

		r := mimc.Hash(seed, field.FromUint64(counter))
		counter++

		idx := int(r.Uint64() % uint64(domain))
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}

	sort.Ints(indices)
	return indices, nil
}

// SampleNonZeroIndices behaves like SampleIndices but additionally rejects 0,
// resampling from the transcript until every returned index is non-zero.
// This is the mechanism spec.md §4.5 requires for knowledge-of-preimage
// proofs: index 0 must never be revealed (it would leak the witness).
func SampleNonZeroIndices(root string, n, domain int) ([]int, error) {
	seed, err := field.Parse(root)
	if err != nil {
		return nil, fmt.Errorf("transcript: root is not a canonical decimal: %w", err)
	}
	if domain <= 1 {
		return nil, fmt.Errorf("transcript: domain must exceed 1 to exclude index 0")
	}

	seen := make(map[int]bool, n)
	indices := make([]int, 0, n)

	counter := uint64(0)
	for iterations := 0; len(indices) < n; iterations++ {
		if iterations >= maxIterations {
			return nil, ErrStuck
		}

		r := mimc.Hash(seed, field.FromUint64(counter))
		counter++

		idx := int(r.Uint64() % uint64(domain))
		if idx == 0 || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}

	sort.Ints(indices)
	return indices, nil
}
