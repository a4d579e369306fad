// Package kdf wraps the external password-hashing collaborators spec.md §6
// names as "opaque producers of an artifact string": Argon2id and bcrypt.
// Their own soundness is explicitly out of scope for this module (spec.md
// §1) — the core only requires that an artifact can be turned into a field
// element via field.FromBytes (string_to_field). This package mirrors the
// closed-registry provider pattern the teacher uses for its ZKSnarkCircuitProvider
// / ZKSnarkProverProvider interfaces (zkp/providers/api.go).
package kdf

import "fmt"

// Algorithm tags, the closed set named in spec.md §6.
const (
	AlgorithmArgon2id   = "argon2id"
	AlgorithmBcrypt     = "bcrypt"
	AlgorithmNativeMimc = "native-mimc"
)

// Params carries the union of parameters the KDF collaborators accept.
// Unused fields for a given algorithm are simply ignored by that Provider.
type Params struct {
	Salt      []byte
	TimeCost  uint32 // argon2id iterations
	MemoryKiB uint32 // argon2id memory cost in KiB
	Threads   uint8  // argon2id parallelism
	HashLen   uint32 // argon2id output length in bytes
	Cost      int    // bcrypt cost factor
}

// Provider is the common interface for a password-hashing KDF collaborator.
type Provider interface {
	// Algorithm returns this provider's closed-set algorithm tag.
	Algorithm() string
	// Derive runs the KDF over password and returns the opaque artifact
	// bytes the core will reduce via field.FromBytes to obtain mimc_key.
	Derive(password []byte, params Params) ([]byte, error)
}

// ErrUnknownAlgorithm is returned by Factory for a tag outside the closed set.
var ErrUnknownAlgorithm = fmt.Errorf("kdf: unknown algorithm")

// Factory resolves a Provider by its closed-set algorithm tag, mirroring the
// teacher's GnarkCircuitProvider.CircuitFactory lookup-by-identifier pattern.
func Factory(algorithm string) (Provider, error) {
	switch algorithm {
	case AlgorithmArgon2id:
		return &Argon2idProvider{}, nil
	case AlgorithmBcrypt:
		return &BcryptProvider{}, nil
	case AlgorithmNativeMimc:
		return &NativeMimcProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}
}
