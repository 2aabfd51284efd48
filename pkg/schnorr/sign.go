package schnorr

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// ErrEmptyMessage is returned when the message to be signed or the
	// selected range is empty.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrMessageBounds is returned when offset+size exceeds the message
	// buffer.
	ErrMessageBounds = errors.New("offset and size exceed message bounds")
)

// GenerateKeyPair generates a fresh (PrivateKey, PublicKey) pair.
func GenerateKeyPair() (*PrivateKey, *PublicKey, error) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		return nil, nil, err
	}
	pub, err := NewPublicKeyFromPrivKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// GenerateKeyPairFromRand generates a key pair from the given entropy
// source. Useful for deterministic fixtures.
func GenerateKeyPairFromRand(rand io.Reader) (*PrivateKey, *PublicKey, error) {
	priv, err := GeneratePrivateKeyFromRand(rand)
	if err != nil {
		return nil, nil, err
	}
	pub, err := NewPublicKeyFromPrivKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// Sign produces a signature over the whole message with the given key
// pair.
func Sign(message []byte, priv *PrivateKey, pub *PublicKey) (*Signature, error) {
	return SignRange(message, 0, uint(len(message)), priv, pub)
}

// SignRange produces a signature over message[offset:offset+size] with the
// given key pair.
//
// The algorithm follows BSI TR-03111 section 4.2.3:
//
//  1. Derive a nonce k in [1, n-1] from the private key and the message.
//  2. Compute the commitment Q = kG.
//  3. Compute the challenge r = H(compressed(Q) || compressed(P) || m) mod n.
//  4. If r = 0, redraw k and restart.
//  5. Compute the response s = k - r*d mod n.
//  6. If s = 0, redraw k and restart.
//
// The nonce is deterministic (RFC 6979 style, keyed by d over the message
// digest), so Sign is a pure function of (d, message): identical inputs
// always produce identical signatures.
func SignRange(message []byte, offset, size uint, priv *PrivateKey, pub *PublicKey) (*Signature, error) {
	if len(message) == 0 || size == 0 {
		return nil, ErrEmptyMessage
	}
	if offset+size < offset || uint(len(message)) < offset+size {
		return nil, ErrMessageBounds
	}
	if !priv.initialized() || !pub.initialized() {
		return nil, ErrUninitialized
	}

	msg := message[offset : offset+size]
	msgDigest := sha256.Sum256(msg)
	dBytes := priv.scalarBytes()
	defer zeroArray(&dBytes)
	pubBuf := pub.p.SerializeCompressed()
	order := theCurve().order

	// One iteration succeeds unless r or s reduces to zero, which happens
	// with probability about 2^-256 per scalar.
	for iteration := uint32(0); ; iteration++ {
		k := secp256k1.NonceRFC6979(dBytes[:], msgDigest[:], nil, nil, iteration)
		if k.IsZero() {
			continue
		}

		var qj secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(k, &qj)
		qj.ToAffine()
		commit := secp256k1.NewPublicKey(&qj.X, &qj.Y).SerializeCompressed()

		h := sha256.New()
		h.Write(commit)
		h.Write(pubBuf)
		h.Write(msg)
		digest := h.Sum(nil)

		r := new(big.Int).SetBytes(digest)
		r.Mod(r, order)

		kBytes := k.Bytes()
		bigK := new(big.Int).SetBytes(kBytes[:])
		s := new(big.Int).Mul(r, priv.d)
		s.Sub(bigK, s)
		s.Mod(s, order)

		k.Zero()
		zeroArray(&kBytes)
		zeroBigInt(bigK)
		zeroSlice(commit)

		if r.Sign() == 0 || s.Sign() == 0 {
			zeroBigInt(s)
			continue
		}
		return &Signature{r: r, s: s}, nil
	}
}
