package schnorr

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrPrivKeyRange is returned when a private key scalar is zero or not
// strictly less than the curve order.
var ErrPrivKeyRange = errors.New("private key scalar out of range")

// PrivateKey is a scalar d with 1 <= d <= n-1. The zero value is
// uninitialized and rejected by every operation.
//
// A PrivateKey exclusively owns its scalar; Clone produces an independent
// deep copy. Call Zero when the key is no longer needed.
type PrivateKey struct {
	d *big.Int
}

// GeneratePrivateKey samples a fresh private key from the system CSPRNG.
func GeneratePrivateKey() (*PrivateKey, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return fromSecpPrivKey(priv), nil
}

// GeneratePrivateKeyFromRand samples a private key from the given entropy
// source. Useful for deterministic fixtures; use GeneratePrivateKey for
// production keys.
func GeneratePrivateKeyFromRand(rand io.Reader) (*PrivateKey, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(rand)
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return fromSecpPrivKey(priv), nil
}

func fromSecpPrivKey(priv *secp256k1.PrivateKey) *PrivateKey {
	b := priv.Serialize()
	d := new(big.Int).SetBytes(b)
	zeroSlice(b)
	priv.Zero()
	return &PrivateKey{d: d}
}

// NewPrivateKey constructs a private key from its 32-byte big-endian wire
// form at offset in src.
func NewPrivateKey(src []byte, offset uint) (*PrivateKey, error) {
	k := &PrivateKey{}
	if err := k.Deserialize(src, offset); err != nil {
		return nil, err
	}
	return k, nil
}

// NewPrivateKeyFromString constructs a private key from a hex string of
// exactly 64 nibbles (no 0x prefix).
func NewPrivateKeyFromString(s string) (*PrivateKey, error) {
	b, err := decodeHexExact(s, ScalarSize)
	if err != nil {
		return nil, err
	}
	k, err := NewPrivateKey(b, 0)
	zeroSlice(b)
	return k, err
}

func (k *PrivateKey) initialized() bool {
	return k != nil && k.d != nil
}

// Clone returns an independent deep copy of the key. Cloning an
// uninitialized key yields another uninitialized key.
func (k *PrivateKey) Clone() *PrivateKey {
	if !k.initialized() {
		return &PrivateKey{}
	}
	return &PrivateKey{d: new(big.Int).Set(k.d)}
}

// Equal reports whether both keys hold the same scalar. Two uninitialized
// keys compare equal.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if !k.initialized() || !other.initialized() {
		return !k.initialized() && !other.initialized()
	}
	return k.d.Cmp(other.d) == 0
}

// Serialize writes the 32-byte big-endian scalar into dst at offset.
func (k *PrivateKey) Serialize(dst []byte, offset uint) error {
	if !k.initialized() {
		return ErrUninitialized
	}
	return PutScalar(dst, offset, ScalarSize, k.d)
}

// Deserialize reads a 32-byte big-endian scalar from src at offset,
// enforcing 1 <= d <= n-1. On failure the receiver is left unchanged.
func (k *PrivateKey) Deserialize(src []byte, offset uint) error {
	d, err := GetScalar(src, offset, ScalarSize)
	if err != nil {
		return err
	}
	if d.Sign() == 0 || d.Cmp(theCurve().order) >= 0 {
		zeroBigInt(d)
		return ErrPrivKeyRange
	}
	if k.d != nil {
		zeroBigInt(k.d)
	}
	k.d = d
	return nil
}

// Zero scrubs the scalar storage. The key is uninitialized afterwards.
func (k *PrivateKey) Zero() {
	if k == nil || k.d == nil {
		return
	}
	zeroBigInt(k.d)
	k.d = nil
}

// scalarBytes returns the 32-byte big-endian form of d for use as nonce
// derivation key material. The caller must zero the array after use.
func (k *PrivateKey) scalarBytes() [ScalarSize]byte {
	var buf [ScalarSize]byte
	k.d.FillBytes(buf[:])
	return buf
}
