package schnorr

import (
	"bytes"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/spaolacci/murmur3"
)

// PublicKey is a non-identity point P = dG on the curve. The zero value is
// uninitialized and rejected by every operation.
//
// Public keys order totally by the lexicographic order of their 33-byte
// compressed encoding, which gives deterministic address tables across
// nodes.
type PublicKey struct {
	p *secp256k1.PublicKey
}

// NewPublicKeyFromPrivKey derives the public key P = dG for the given
// private key.
func NewPublicKeyFromPrivKey(priv *PrivateKey) (*PublicKey, error) {
	if !priv.initialized() {
		return nil, ErrUninitialized
	}
	buf := priv.scalarBytes()
	secpPriv := secp256k1.PrivKeyFromBytes(buf[:])
	pub := secpPriv.PubKey()
	secpPriv.Zero()
	zeroArray(&buf)
	return &PublicKey{p: pub}, nil
}

// NewPublicKey constructs a public key from its 33-byte SEC1 compressed
// wire form at offset in src.
func NewPublicKey(src []byte, offset uint) (*PublicKey, error) {
	p := &PublicKey{}
	if err := p.Deserialize(src, offset); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPublicKeyFromString constructs a public key from a hex string of
// exactly 66 nibbles (no 0x prefix).
func NewPublicKeyFromString(s string) (*PublicKey, error) {
	b, err := decodeHexExact(s, PubKeySize)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(b, 0)
}

func (p *PublicKey) initialized() bool {
	return p != nil && p.p != nil
}

// Clone returns an independent deep copy of the key. Cloning an
// uninitialized key yields another uninitialized key.
func (p *PublicKey) Clone() *PublicKey {
	if !p.initialized() {
		return &PublicKey{}
	}
	pub, err := secp256k1.ParsePubKey(p.p.SerializeCompressed())
	if err != nil {
		return &PublicKey{}
	}
	return &PublicKey{p: pub}
}

// Equal reports point equality. Two uninitialized keys compare equal.
func (p *PublicKey) Equal(other *PublicKey) bool {
	if !p.initialized() || !other.initialized() {
		return !p.initialized() && !other.initialized()
	}
	return p.p.IsEqual(other.p)
}

// Cmp compares two public keys by the lexicographic order of their
// compressed encodings. It returns -1, 0, or +1, and orders any
// uninitialized key before every initialized one.
func (p *PublicKey) Cmp(other *PublicKey) int {
	pi, oi := p.initialized(), other.initialized()
	switch {
	case !pi && !oi:
		return 0
	case !pi:
		return -1
	case !oi:
		return 1
	}
	return bytes.Compare(p.p.SerializeCompressed(), other.p.SerializeCompressed())
}

// Hash returns a 64-bit hash of the compressed encoding, for use as an
// unordered-map key. Equal keys hash equal.
func (p *PublicKey) Hash() uint64 {
	if !p.initialized() {
		return 0
	}
	return murmur3.Sum64(p.p.SerializeCompressed())
}

// Serialize writes the 33-byte compressed point into dst at offset.
func (p *PublicKey) Serialize(dst []byte, offset uint) error {
	if !p.initialized() {
		return ErrUninitialized
	}
	return putPoint(dst, offset, p.p)
}

// Deserialize reads a 33-byte compressed point from src at offset. Bytes
// that do not decode to a point on the curve fail, and the receiver is
// left unchanged.
func (p *PublicKey) Deserialize(src []byte, offset uint) error {
	pub, err := getPoint(src, offset)
	if err != nil {
		return err
	}
	p.p = pub
	return nil
}

// String returns the compressed encoding as lowercase hex, or an empty
// string for an uninitialized key.
func (p *PublicKey) String() string {
	if !p.initialized() {
		return ""
	}
	var buf [PubKeySize]byte
	if err := putPoint(buf[:], 0, p.p); err != nil {
		return ""
	}
	return hexString(buf[:])
}
