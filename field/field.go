// Package field implements arithmetic modulo the fixed 32-bit prime
// p = 3*2^30 + 1 = 3221225473 used throughout the rest of this module.
//
// Every product of two canonical elements fits in 64 bits, so the package
// works entirely with native uint64 arithmetic; no big.Int is required.
package field

import "fmt"

// Modulus is the fixed field prime p = 3*2^30 + 1.
const Modulus uint64 = 3221225473

// Value is an element of F_p, always kept in canonical form: the unique
// integer representative in [0, Modulus).
type Value struct {
	v uint64
}

// Zero is the additive identity.
var Zero = Value{0}

// One is the multiplicative identity.
var One = Value{1}

// New reduces any signed integer into a canonical Value.
func New(x int64) Value {
	m := int64(Modulus)
	r := x % m
	if r < 0 {
		r += m
	}
	return Value{uint64(r)}
}

// FromUint64 reduces an unsigned integer into a canonical Value.
func FromUint64(x uint64) Value {
	return Value{x % Modulus}
}

// Uint64 returns the canonical integer representative of v.
func (v Value) Uint64() uint64 {
	return v.v
}

// Equal reports whether v and w are the same field element.
func (v Value) Equal(w Value) bool {
	return v.v == w.v
}

// Add returns v + w mod p.
func (v Value) Add(w Value) Value {
	return Value{(v.v + w.v) % Modulus}
}

// Sub returns v - w mod p.
func (v Value) Sub(w Value) Value {
	return Value{(v.v + Modulus - w.v) % Modulus}
}

// Mul returns v * w mod p. The product of two canonical uint64 values below
// 2^32 never exceeds 2^64, so this never overflows.
func (v Value) Mul(w Value) Value {
	return Value{(v.v * w.v) % Modulus}
}

// Pow returns v^exp mod p via square-and-multiply.
func (v Value) Pow(exp uint64) Value {
	result := One
	base := v
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Cube returns v^3 mod p, the MiMC S-box.
func (v Value) Cube() Value {
	return v.Mul(v).Mul(v)
}

// ErrInvalidField is returned when an operation hits an arithmetic domain
// error, per spec.md's InvalidField error kind (e.g. inverting zero).
var ErrInvalidField = fmt.Errorf("field: invalid operation")

// Inv returns the multiplicative inverse of v via Fermat's little theorem:
// v^(p-2) mod p. Fails for v == 0.
func (v Value) Inv() (Value, error) {
	if v.v == 0 {
		return Zero, ErrInvalidField
	}
	return v.Pow(Modulus - 2), nil
}

// Div returns v / w mod p. Fails if w == 0.
func (v Value) Div(w Value) (Value, error) {
	inv, err := w.Inv()
	if err != nil {
		return Zero, err
	}
	return v.Mul(inv), nil
}

// String renders v in canonical decimal form, the single encoding used
// throughout this module for leaves, Merkle nodes, and proof fields.
func (v Value) String() string {
	return fmt.Sprintf("%d", v.v)
}

// Parse parses a canonical decimal string into a Value. It rejects anything
// that is not a base-10 digit string, including hex and signs, as well as
// leading zeros and values not below Modulus, so that a
// mixed-encoding tree is caught as an EncodingMismatch by the caller rather
// than silently misparsed.
func Parse(s string) (Value, error) {
	if s == "" {
		return Zero, fmt.Errorf("field: empty string is not a canonical decimal")
	}
	if len(s) > 1 && s[0] == '0' {
		return Zero, fmt.Errorf("field: %q has a leading zero and is not a canonical decimal", s)
	}
	var x uint64
	for _, r := range s {
		if r < '0' || r > '9' {
			return Zero, fmt.Errorf("field: %q is not a canonical decimal", s)
		}
		d := uint64(r - '0')
		// guard against overflow on pathological inputs; canonical values are < p < 2^32
		if x > (1<<63)/10 {
			return Zero, fmt.Errorf("field: %q overflows canonical decimal parsing", s)
		}
		x = x*10 + d
	}
	if x >= Modulus {
		return Zero, fmt.Errorf("field: %q is not below the modulus and is not a canonical decimal", s)
	}
	return FromUint64(x), nil
}

// FromBytes interprets buf as a big-endian base-256 integer and reduces it
// modulo p. This is the string_to_field primitive of spec.md §4.5 / §9(a):
// many-to-one for inputs longer than the field, and not collision-resistant.
func FromBytes(buf []byte) Value {
	acc := Zero
	base := FromUint64(256)
	for _, b := range buf {
		acc = acc.Mul(base).Add(FromUint64(uint64(b)))
	}
	return acc
}
