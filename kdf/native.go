package kdf

// NativeMimcProvider implements the native-mimc carve-out of spec.md §4.5:
// no KDF runs at all. The prover special-cases this algorithm tag to set
// mimc_key = 0 and output_artifact = mimc_output directly, so Derive here is
// never actually called on the hot path — it exists only so native-mimc
// participates in the same closed Provider registry as the real KDFs.
type NativeMimcProvider struct{}

// Algorithm implements Provider.
func (p *NativeMimcProvider) Algorithm() string {
	return AlgorithmNativeMimc
}

// Derive returns password unmodified: in native mode the artifact tracks
// mimc_output exactly, which the prover computes directly from the trace
// rather than through this method.
func (p *NativeMimcProvider) Derive(password []byte, params Params) ([]byte, error) {
	return password, nil
}
