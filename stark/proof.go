// Package stark implements the prover and verifier state machine of
// spec.md §4.5 (C5): it builds or checks an execution-trace proof for
// either the Hash-Integrity or Knowledge-of-Preimage claim, on top of
// field, mimc, merkle, and transcript.
//
// Every FieldValue and path entry on the wire is a canonical decimal
// string — the encoding discipline spec.md §9 calls out as the single most
// common source of silent failure in this design.
package stark

// Proof types, the closed set from spec.md §3.
const (
	ProofTypeHashIntegrity       = "hash-integrity"
	ProofTypeKnowledgeOfPreimage = "knowledge-of-preimage"
)

// NumQueries is the fixed number of spot-check queries, n = 5 in spec.md §4.4.
const NumQueries = 5

// PublicInputs carries the union of fields either proof type declares. Only
// the subset relevant to PublicInputs.Algorithm/Nonce being set is populated
// by a given Prove call; Verify validates exactly the subset its proof type
// requires.
type PublicInputs struct {
	// Hash-integrity fields.
	Algorithm      string `json:"algorithm,omitempty"`
	OutputArtifact string `json:"output_artifact,omitempty"`
	MimcOutput     string `json:"mimc_output,omitempty"`

	// Knowledge-of-preimage fields.
	Nonce        string `json:"nonce,omitempty"`
	PublicOutput string `json:"public_output,omitempty"`

	// Shared.
	TraceRoot string `json:"trace_root"`
}

// TraceQuery is a single spot check: (index, value, path, next_value,
// next_path), where next_value/next_path are present iff index < R. At
// index == R (the boundary position) they are nil and Value is constrained
// to equal the declared output.
type TraceQuery struct {
	Index     int      `json:"index"`
	Value     string   `json:"value"`
	Path      []string `json:"path"`
	NextValue *string  `json:"next_value,omitempty"`
	NextPath  []string `json:"next_path,omitempty"`
}

// Proof is the tagged record a prover emits and a verifier consumes.
type Proof struct {
	ProofType    string       `json:"proof_type"`
	PublicInputs PublicInputs `json:"public_inputs"`
	TraceQueries []TraceQuery `json:"trace_queries"`
}
