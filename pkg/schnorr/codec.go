package schnorr

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// ErrShortBuffer is returned when a destination or source buffer is
	// too small for the requested offset and size.
	ErrShortBuffer = errors.New("buffer too short for offset and size")

	// ErrScalarTooLarge is returned when a scalar does not fit in the
	// requested fixed width.
	ErrScalarTooLarge = errors.New("scalar exceeds the fixed encoding width")

	// ErrInvalidPoint is returned when bytes do not decode to a point on
	// the curve, or when the point at infinity is encoded or decoded.
	ErrInvalidPoint = errors.New("bytes do not represent a valid curve point")
)

// PutScalar writes v into dst[offset:offset+size] as a fixed-width
// big-endian unsigned integer, left-padded with zero bytes. There is no
// length prefix and no sign byte.
func PutScalar(dst []byte, offset uint, size uint, v *big.Int) error {
	if v == nil || v.Sign() < 0 {
		return ErrScalarTooLarge
	}
	if offset+size < offset || uint(len(dst)) < offset+size {
		return ErrShortBuffer
	}
	if uint(v.BitLen()+7)/8 > size {
		return ErrScalarTooLarge
	}
	v.FillBytes(dst[offset : offset+size])
	return nil
}

// GetScalar interprets src[offset:offset+size] as a fixed-width big-endian
// unsigned integer. The caller owns the returned value.
func GetScalar(src []byte, offset uint, size uint) (*big.Int, error) {
	if offset+size < offset || uint(len(src)) < offset+size {
		return nil, ErrShortBuffer
	}
	return new(big.Int).SetBytes(src[offset : offset+size]), nil
}

// putPoint writes pub into dst[offset:offset+PubKeySize] in SEC1 compressed
// form. The 33 compressed bytes are routed through the scalar codec as a
// single big-endian integer, so the point and scalar wire formats share one
// code path. The point at infinity has no compressed form and is rejected
// by construction: a PublicKey never holds it.
func putPoint(dst []byte, offset uint, pub *secp256k1.PublicKey) error {
	if pub == nil {
		return ErrInvalidPoint
	}
	bn := new(big.Int).SetBytes(pub.SerializeCompressed())
	if err := PutScalar(dst, offset, PubKeySize, bn); err != nil {
		return err
	}
	zeroBigInt(bn)
	return nil
}

// getPoint reads a SEC1 compressed point from src[offset:offset+PubKeySize]
// and reconstructs it on the curve. Bytes that do not name a curve point,
// or that would name the point at infinity, fail.
func getPoint(src []byte, offset uint) (*secp256k1.PublicKey, error) {
	bn, err := GetScalar(src, offset, PubKeySize)
	if err != nil {
		return nil, err
	}
	var buf [PubKeySize]byte
	bn.FillBytes(buf[:])
	pub, err := secp256k1.ParsePubKey(buf[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return pub, nil
}

// decodeHexExact decodes a hex string of exactly 2*size nibbles. A 0x
// prefix, whitespace, and odd lengths are all rejected.
func decodeHexExact(s string, size int) ([]byte, error) {
	if len(s) != 2*size {
		return nil, fmt.Errorf("hex string must be %d characters, got %d", 2*size, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return b, nil
}

// hexString renders b as lowercase hex with no prefix.
func hexString(b []byte) string {
	return hex.EncodeToString(b)
}
