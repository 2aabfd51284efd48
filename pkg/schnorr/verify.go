package schnorr

import (
	"crypto/sha256"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// infinityPoint is the Jacobian representation of the point at infinity.
var infinityPoint secp256k1.JacobianPoint

// Verify checks the signature over the whole message against the public
// key. It returns false for every reject path without distinguishing the
// cause.
func Verify(message []byte, sig *Signature, pub *PublicKey) bool {
	return VerifyRange(message, 0, uint(len(message)), sig, pub)
}

// VerifyRange checks the signature over message[offset:offset+size]
// against the public key.
//
// The algorithm follows BSI TR-03111 section 4.2.3:
//
//  1. Reject unless both r and s lie in [1, n-1].
//  2. Compute Q' = sG + rP.
//  3. Reject if Q' is the point at infinity.
//  4. Recompute r' = H(compressed(Q') || compressed(P) || m) mod n.
//  5. Accept iff r' = r.
//
// The digest is reduced mod n before the comparison, matching the signer;
// comparing the unreduced digest would fail on the signatures whose raw
// digest is >= n.
func VerifyRange(message []byte, offset, size uint, sig *Signature, pub *PublicKey) bool {
	if len(message) == 0 || size == 0 {
		return false
	}
	if offset+size < offset || uint(len(message)) < offset+size {
		return false
	}
	if !sig.initialized() || !pub.initialized() {
		return false
	}

	order := theCurve().order
	if sig.r.Sign() <= 0 || sig.r.Cmp(order) >= 0 {
		return false
	}
	if sig.s.Sign() <= 0 || sig.s.Cmp(order) >= 0 {
		return false
	}

	var rBuf, sBuf [ScalarSize]byte
	sig.r.FillBytes(rBuf[:])
	sig.s.FillBytes(sBuf[:])
	var rScalar, sScalar secp256k1.ModNScalar
	rScalar.SetBytes(&rBuf)
	sScalar.SetBytes(&sBuf)

	// Q' = sG + rP
	var pj, sG, rP, q secp256k1.JacobianPoint
	pub.p.AsJacobian(&pj)
	secp256k1.ScalarBaseMultNonConst(&sScalar, &sG)
	secp256k1.ScalarMultNonConst(&rScalar, &pj, &rP)
	secp256k1.AddNonConst(&sG, &rP, &q)

	if q == infinityPoint {
		return false
	}
	q.ToAffine()
	commit := secp256k1.NewPublicKey(&q.X, &q.Y).SerializeCompressed()

	h := sha256.New()
	h.Write(commit)
	h.Write(pub.p.SerializeCompressed())
	h.Write(message[offset : offset+size])
	digest := h.Sum(nil)

	challenge := new(big.Int).SetBytes(digest)
	challenge.Mod(challenge, order)
	return challenge.Cmp(sig.r) == 0
}
