package schnorr

import (
	"errors"
	"math/big"
)

// ErrSigRange is returned when a deserialized signature scalar is zero or
// not strictly less than the curve order.
var ErrSigRange = errors.New("signature scalar out of range")

// Signature is a pair of scalars (r, s): the challenge and the response.
// Both lie in [1, n-1] after deserialization. The zero value is
// uninitialized and rejected by every operation.
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature constructs a signature from copies of the given scalars
// without range validation; Verify re-checks ranges on every call, so an
// out-of-range pair simply never verifies. Deserialization is the
// validating path.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{
		r: new(big.Int).Set(r),
		s: new(big.Int).Set(s),
	}
}

// NewSignatureFromBytes constructs a signature from its 64-byte wire form
// (r followed by s, each 32 bytes big-endian) at offset in src.
func NewSignatureFromBytes(src []byte, offset uint) (*Signature, error) {
	sig := &Signature{}
	if err := sig.Deserialize(src, offset); err != nil {
		return nil, err
	}
	return sig, nil
}

// NewSignatureFromString constructs a signature from a hex string of
// exactly 128 nibbles (no 0x prefix).
func NewSignatureFromString(s string) (*Signature, error) {
	b, err := decodeHexExact(s, SignatureSize)
	if err != nil {
		return nil, err
	}
	return NewSignatureFromBytes(b, 0)
}

func (sig *Signature) initialized() bool {
	return sig != nil && sig.r != nil && sig.s != nil
}

// R returns a copy of the challenge scalar, or nil if uninitialized.
func (sig *Signature) R() *big.Int {
	if !sig.initialized() {
		return nil
	}
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the response scalar, or nil if uninitialized.
func (sig *Signature) S() *big.Int {
	if !sig.initialized() {
		return nil
	}
	return new(big.Int).Set(sig.s)
}

// Clone returns an independent deep copy of the signature. Cloning an
// uninitialized signature yields another uninitialized signature.
func (sig *Signature) Clone() *Signature {
	if !sig.initialized() {
		return &Signature{}
	}
	return NewSignature(sig.r, sig.s)
}

// Equal reports whether both signatures hold the same (r, s) pair. Two
// uninitialized signatures compare equal.
func (sig *Signature) Equal(other *Signature) bool {
	if !sig.initialized() || !other.initialized() {
		return !sig.initialized() && !other.initialized()
	}
	return sig.r.Cmp(other.r) == 0 && sig.s.Cmp(other.s) == 0
}

// Serialize writes r and s, each as a 32-byte big-endian scalar, into dst
// at offset.
func (sig *Signature) Serialize(dst []byte, offset uint) error {
	if !sig.initialized() {
		return ErrUninitialized
	}
	if err := PutScalar(dst, offset, ScalarSize, sig.r); err != nil {
		return err
	}
	return PutScalar(dst, offset+ScalarSize, ScalarSize, sig.s)
}

// Deserialize reads r and s from src at offset, enforcing that both lie in
// [1, n-1]. On failure the receiver is left unchanged.
func (sig *Signature) Deserialize(src []byte, offset uint) error {
	r, err := GetScalar(src, offset, ScalarSize)
	if err != nil {
		return err
	}
	s, err := GetScalar(src, offset+ScalarSize, ScalarSize)
	if err != nil {
		return err
	}
	order := theCurve().order
	if r.Sign() == 0 || r.Cmp(order) >= 0 || s.Sign() == 0 || s.Cmp(order) >= 0 {
		return ErrSigRange
	}
	sig.r = r
	sig.s = s
	return nil
}

// String returns the 64-byte encoding as lowercase hex, or an empty string
// for an uninitialized signature.
func (sig *Signature) String() string {
	if !sig.initialized() {
		return ""
	}
	var buf [SignatureSize]byte
	if err := sig.Serialize(buf[:], 0); err != nil {
		return ""
	}
	return hexString(buf[:])
}
