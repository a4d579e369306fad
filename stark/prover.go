package stark

import (
	"encoding/hex"
	"fmt"

	"mimcstark/field"
	"mimcstark/kdf"
	"mimcstark/merkle"
	"mimcstark/mimc"
	"mimcstark/transcript"
)

// ProveHashIntegrity builds a Hash-Integrity proof per spec.md §4.5: the
// prover ran a password through the KDF named by algorithm (or, in
// native-mimc mode, skips the KDF entirely) and binds the MiMC permutation's
// key to the resulting artifact.
//
// params is forwarded to the resolved kdf.Provider verbatim; it is ignored
// for algorithm == kdf.AlgorithmNativeMimc.
func ProveHashIntegrity(password []byte, algorithm string, params kdf.Params) (*Proof, error) {
	var artifact []byte
	var mimcKey field.Value

	if algorithm == kdf.AlgorithmNativeMimc {
		mimcKey = field.Zero
	} else {
		provider, err := kdf.Factory(algorithm)
		if err != nil {
			return nil, err
		}
		artifact, err = provider.Derive(password, params)
		if err != nil {
			return nil, fmt.Errorf("stark: KDF failed: %w", err)
		}
		mimcKey = field.FromBytes(artifact)
	}

	t0 := field.FromBytes(password)
	trace := mimc.Trace(t0, mimcKey)

	tree, err := merkle.Build(trace)
	if err != nil {
		return nil, err
	}
	root := tree.Root()

	indices, err := transcript.SampleIndices(string(root), NumQueries, mimc.Rounds)
	if err != nil {
		return nil, err
	}

	queries, err := buildQueries(tree, trace, indices)
	if err != nil {
		return nil, err
	}

	mimcOutput := trace[mimc.Rounds]

	var outputArtifact string
	if algorithm == kdf.AlgorithmNativeMimc {
		outputArtifact = mimcOutput.String()
	} else {
		outputArtifact = hex.EncodeToString(artifact)
	}

	return &Proof{
		ProofType: ProofTypeHashIntegrity,
		PublicInputs: PublicInputs{
			Algorithm:      algorithm,
			OutputArtifact: outputArtifact,
			MimcOutput:     mimcOutput.String(),
			TraceRoot:      string(root),
		},
		TraceQueries: queries,
	}, nil
}

// ProveKnowledgeOfPreimage builds a Knowledge-of-Preimage proof per
// spec.md §4.5: the prover knows a secret H such that a MiMC permutation
// keyed by the public nonce maps H to the public output K, without
// revealing H. Index 0 is never sampled (spec.md invariant 5): the sampler
// resamples until every spot check index is non-zero.
func ProveKnowledgeOfPreimage(secret, nonce []byte) (*Proof, error) {
	nonceVal := field.FromBytes(nonce)
	t0 := field.FromBytes(secret)
	trace := mimc.Trace(t0, nonceVal)

	tree, err := merkle.Build(trace)
	if err != nil {
		return nil, err
	}
	root := tree.Root()

	indices, err := transcript.SampleNonZeroIndices(string(root), NumQueries, mimc.Rounds)
	if err != nil {
		return nil, err
	}

	queries, err := buildQueries(tree, trace, indices)
	if err != nil {
		return nil, err
	}

	return &Proof{
		ProofType: ProofTypeKnowledgeOfPreimage,
		PublicInputs: PublicInputs{
			Nonce:        hex.EncodeToString(nonce),
			PublicOutput: trace[mimc.Rounds].String(),
			TraceRoot:    string(root),
		},
		TraceQueries: queries,
	}, nil
}

// buildQueries extracts a TraceQuery for each sampled index plus the
// mandatory boundary query at index R, in ascending order with the boundary
// query last (spec.md §5's ordering guarantee).
func buildQueries(tree *merkle.Tree, trace []field.Value, indices []int) ([]TraceQuery, error) {
	queries := make([]TraceQuery, 0, len(indices)+1)

	for _, i := range indices {
		path, err := tree.GetPath(i)
		if err != nil {
			return nil, err
		}
		nextPath, err := tree.GetPath(i + 1)
		if err != nil {
			return nil, err
		}
		nextValue := trace[i+1].String()

		queries = append(queries, TraceQuery{
			Index:     i,
			Value:     trace[i].String(),
			Path:      encodePath(path),
			NextValue: &nextValue,
			NextPath:  encodePath(nextPath),
		})
	}

	boundaryPath, err := tree.GetPath(mimc.Rounds)
	if err != nil {
		return nil, err
	}
	queries = append(queries, TraceQuery{
		Index: mimc.Rounds,
		Value: trace[mimc.Rounds].String(),
		Path:  encodePath(boundaryPath),
	})

	return queries, nil
}

func encodePath(path merkle.Path) []string {
	out := make([]string, len(path))
	for i, n := range path {
		out[i] = string(n)
	}
	return out
}
