package stark

import (
	"encoding/hex"

	"mimcstark/field"
	"mimcstark/kdf"
	"mimcstark/merkle"
	"mimcstark/mimc"
)

// Verify implements the verifier state machine of spec.md §4.5:
// Start -> Structural -> KeyDerived -> (QueryCheck)* -> Accept. Any check
// failure returns immediately with the matching *VerifyError; there are no
// retries and no partial acceptance.
func Verify(proof *Proof) error {
	if err := checkStructure(proof); err != nil {
		return err
	}

	mimcKey, declaredOutput, err := deriveKey(proof)
	if err != nil {
		return err
	}

	root := merkle.Node(proof.PublicInputs.TraceRoot)

	for _, q := range proof.TraceQueries {
		if err := checkQuery(root, mimcKey, declaredOutput, q); err != nil {
			return err
		}
	}

	if proof.ProofType == ProofTypeKnowledgeOfPreimage {
		for _, q := range proof.TraceQueries {
			if q.Index == 0 {
				return newError(ErrWitnessLeak, "knowledge-of-preimage proof revealed index 0")
			}
		}
	}

	return nil
}

// checkStructure validates proof_type, presence of the required public
// inputs, and query shape: exactly one query at index R with missing
// next-fields, every other query in [0, R) with present next-fields.
func checkStructure(proof *Proof) error {
	switch proof.ProofType {
	case ProofTypeHashIntegrity:
		if proof.PublicInputs.Algorithm == "" || proof.PublicInputs.MimcOutput == "" {
			return newError(ErrInvalidProofShape, "hash-integrity proof missing algorithm or mimc_output")
		}
	case ProofTypeKnowledgeOfPreimage:
		if proof.PublicInputs.Nonce == "" || proof.PublicInputs.PublicOutput == "" {
			return newError(ErrInvalidProofShape, "knowledge-of-preimage proof missing nonce or public_output")
		}
	default:
		return newError(ErrUnknownProofType, proof.ProofType)
	}

	if proof.PublicInputs.TraceRoot == "" {
		return newError(ErrInvalidProofShape, "proof missing trace_root")
	}
	if _, err := field.Parse(proof.PublicInputs.TraceRoot); err != nil {
		return newError(ErrEncodingMismatch, "trace_root is not a canonical decimal")
	}

	if len(proof.TraceQueries) == 0 {
		return newError(ErrInvalidProofShape, "proof has no trace queries")
	}

	boundaryCount := 0
	for _, q := range proof.TraceQueries {
		if q.Index == mimc.Rounds {
			boundaryCount++
			if q.NextValue != nil || q.NextPath != nil {
				return newError(ErrInvalidProofShape, "boundary query must not carry next-fields")
			}
		} else {
			if q.Index < 0 || q.Index >= mimc.Rounds {
				return newError(ErrInvalidProofShape, "query index out of range")
			}
			if q.NextValue == nil || q.NextPath == nil {
				return newError(ErrInvalidProofShape, "non-boundary query missing next-fields")
			}
		}
	}
	if boundaryCount != 1 {
		return newError(ErrInvalidProofShape, "proof must carry exactly one boundary query")
	}

	return nil
}

// deriveKey implements spec.md §4.5 step 2, returning the derived mimc_key
// and the declared output the boundary query must match.
func deriveKey(proof *Proof) (field.Value, field.Value, error) {
	switch proof.ProofType {
	case ProofTypeHashIntegrity:
		mimcOutput, err := field.Parse(proof.PublicInputs.MimcOutput)
		if err != nil {
			return field.Zero, field.Zero, newError(ErrEncodingMismatch, "mimc_output is not a canonical decimal")
		}

		if proof.PublicInputs.Algorithm == kdf.AlgorithmNativeMimc {
			if proof.PublicInputs.OutputArtifact != proof.PublicInputs.MimcOutput {
				return field.Zero, field.Zero, newError(ErrBoundaryMismatch, "native-mimc output_artifact must equal mimc_output")
			}
			return field.Zero, mimcOutput, nil
		}

		artifactBytes, err := hex.DecodeString(proof.PublicInputs.OutputArtifact)
		if err != nil {
			return field.Zero, field.Zero, newError(ErrEncodingMismatch, "output_artifact is not valid hex")
		}
		return field.FromBytes(artifactBytes), mimcOutput, nil

	case ProofTypeKnowledgeOfPreimage:
		publicOutput, err := field.Parse(proof.PublicInputs.PublicOutput)
		if err != nil {
			return field.Zero, field.Zero, newError(ErrEncodingMismatch, "public_output is not a canonical decimal")
		}

		nonceBytes, err := hex.DecodeString(proof.PublicInputs.Nonce)
		if err != nil {
			return field.Zero, field.Zero, newError(ErrEncodingMismatch, "nonce is not valid hex")
		}
		return field.FromBytes(nonceBytes), publicOutput, nil

	default:
		return field.Zero, field.Zero, newError(ErrUnknownProofType, proof.ProofType)
	}
}

// checkQuery implements spec.md §4.5 step 3: authentication, then either
// the boundary check or the transition check depending on the query index.
func checkQuery(root merkle.Node, mimcKey, declaredOutput field.Value, q TraceQuery) error {
	value, err := field.Parse(q.Value)
	if err != nil {
		return newIndexedError(ErrEncodingMismatch, q.Index, "query value is not a canonical decimal")
	}

	path := decodePath(q.Path)
	ok, err := merkle.VerifyPath(root, q.Index, value, path)
	if err != nil {
		return newIndexedError(ErrEncodingMismatch, q.Index, "path entry is not canonical")
	}
	if !ok {
		return newIndexedError(ErrMerkleMismatch, q.Index, "authentication path does not fold to trace_root")
	}

	if q.Index == mimc.Rounds {
		if !value.Equal(declaredOutput) {
			return newIndexedError(ErrBoundaryMismatch, q.Index, "trace end does not equal declared output")
		}
		return nil
	}

	nextValue, err := field.Parse(*q.NextValue)
	if err != nil {
		return newIndexedError(ErrEncodingMismatch, q.Index, "next_value is not a canonical decimal")
	}

	expected := mimc.Transition(value, mimcKey, q.Index)
	if !expected.Equal(nextValue) {
		return newIndexedError(ErrTransitionMismatch, q.Index, "cube relation does not hold")
	}

	nextPath := decodePath(q.NextPath)
	ok, err = merkle.VerifyPath(root, q.Index+1, nextValue, nextPath)
	if err != nil {
		return newIndexedError(ErrEncodingMismatch, q.Index+1, "next_path entry is not canonical")
	}
	if !ok {
		return newIndexedError(ErrMerkleMismatch, q.Index+1, "next_path does not authenticate next_value")
	}

	return nil
}

func decodePath(path []string) merkle.Path {
	out := make(merkle.Path, len(path))
	for i, p := range path {
		out[i] = merkle.Node(p)
	}
	return out
}
