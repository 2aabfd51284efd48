package schnorr

import "math/big"

// zeroArray zeroes the memory of a scalar array.
func zeroArray(a *[ScalarSize]byte) {
	for i := range a {
		a[i] = 0x00
	}
}

// zeroSlice zeroes the memory of a byte slice.
func zeroSlice(s []byte) {
	for i := range s {
		s[i] = 0x00
	}
}

// zeroBigInt zeroes the underlying memory used by the passed big integer.
// The value must not be used after calling this as it changes the internal
// state out from under it.
func zeroBigInt(v *big.Int) {
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
	v.SetInt64(0)
}
