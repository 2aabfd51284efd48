package schnorr

import (
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// ScalarSize is the size of a serialized scalar in bytes.
	ScalarSize = 32

	// PubKeySize is the size of a serialized public key in bytes
	// (SEC1 compressed form).
	PubKeySize = 33

	// SignatureSize is the size of a serialized signature in bytes.
	SignatureSize = 2 * ScalarSize
)

// curveCtx holds the secp256k1 parameters shared by every operation in the
// package. It is initialized once and never mutated afterwards, so
// concurrent readers need no synchronization.
type curveCtx struct {
	// order is the prime order n of the base-point group.
	order *big.Int
}

var (
	curveOnce sync.Once
	curve     *curveCtx
)

func theCurve() *curveCtx {
	curveOnce.Do(func() {
		curve = &curveCtx{
			order: new(big.Int).Set(secp256k1.S256().N),
		}
	})
	return curve
}

// CurveOrder returns a copy of the prime order n of the secp256k1
// base-point group. The caller owns the returned value.
func CurveOrder() *big.Int {
	return new(big.Int).Set(theCurve().order)
}

// CurveGroup returns the secp256k1 curve implementation used by this
// package.
func CurveGroup() *secp256k1.KoblitzCurve {
	return secp256k1.S256()
}
