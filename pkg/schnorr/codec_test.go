package schnorr

import (
	"bytes"
	"math/big"
	"testing"
)

func TestPutScalar_PadsToFixedWidth(t *testing.T) {
	dst := make([]byte, ScalarSize)
	if err := PutScalar(dst, 0, ScalarSize, big.NewInt(1)); err != nil {
		t.Fatalf("PutScalar failed: %v", err)
	}

	want := make([]byte, ScalarSize)
	want[ScalarSize-1] = 0x01
	if !bytes.Equal(dst, want) {
		t.Errorf("expected left-padded encoding, got %x", dst)
	}
}

func TestPutScalar_RespectsOffset(t *testing.T) {
	dst := make([]byte, 4+ScalarSize)
	dst[0] = 0xaa
	if err := PutScalar(dst, 4, ScalarSize, big.NewInt(0x0102)); err != nil {
		t.Fatalf("PutScalar failed: %v", err)
	}

	if dst[0] != 0xaa {
		t.Error("bytes before offset were clobbered")
	}
	if dst[4+ScalarSize-2] != 0x01 || dst[4+ScalarSize-1] != 0x02 {
		t.Errorf("unexpected encoding at offset: %x", dst)
	}
}

func TestPutScalar_RejectsOversizedValue(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 8*ScalarSize) // 2^256
	dst := make([]byte, ScalarSize)
	if err := PutScalar(dst, 0, ScalarSize, v); err != ErrScalarTooLarge {
		t.Errorf("expected ErrScalarTooLarge, got %v", err)
	}
}

func TestPutScalar_RejectsShortBuffer(t *testing.T) {
	dst := make([]byte, ScalarSize-1)
	if err := PutScalar(dst, 0, ScalarSize, big.NewInt(1)); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}

	dst = make([]byte, ScalarSize)
	if err := PutScalar(dst, 1, ScalarSize, big.NewInt(1)); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer with offset, got %v", err)
	}
}

func TestGetScalar_RoundTrip(t *testing.T) {
	v, ok := new(big.Int).SetString("deadbeef00112233445566778899aabbccddeeff", 16)
	if !ok {
		t.Fatal("failed to build test value")
	}

	dst := make([]byte, 8+ScalarSize)
	if err := PutScalar(dst, 8, ScalarSize, v); err != nil {
		t.Fatalf("PutScalar failed: %v", err)
	}

	got, err := GetScalar(dst, 8, ScalarSize)
	if err != nil {
		t.Fatalf("GetScalar failed: %v", err)
	}
	if got.Cmp(v) != 0 {
		t.Errorf("round trip mismatch: got %x, want %x", got, v)
	}
}

func TestGetScalar_RejectsShortBuffer(t *testing.T) {
	src := make([]byte, ScalarSize)
	if _, err := GetScalar(src, 1, ScalarSize); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestPointCodec_RoundTrip(t *testing.T) {
	_, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	buf := make([]byte, 2+PubKeySize)
	if err := putPoint(buf, 2, pub.p); err != nil {
		t.Fatalf("putPoint failed: %v", err)
	}

	got, err := getPoint(buf, 2)
	if err != nil {
		t.Fatalf("getPoint failed: %v", err)
	}
	if !got.IsEqual(pub.p) {
		t.Error("point round trip mismatch")
	}
}

func TestPointCodec_PrefixByte(t *testing.T) {
	_, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	buf := make([]byte, PubKeySize)
	if err := putPoint(buf, 0, pub.p); err != nil {
		t.Fatalf("putPoint failed: %v", err)
	}
	if buf[0] != 0x02 && buf[0] != 0x03 {
		t.Errorf("expected SEC1 parity prefix, got 0x%02x", buf[0])
	}
}

func TestGetPoint_RejectsNonCurveBytes(t *testing.T) {
	buf := make([]byte, PubKeySize)
	buf[0] = 0x02
	for i := 1; i < PubKeySize; i++ {
		buf[i] = 0xff
	}
	if _, err := getPoint(buf, 0); err == nil {
		t.Error("expected failure for bytes off the curve")
	}
}

func TestDecodeHexExact(t *testing.T) {
	if _, err := decodeHexExact("abcd", 2); err != nil {
		t.Errorf("valid hex rejected: %v", err)
	}
	if _, err := decodeHexExact("abcd", 3); err == nil {
		t.Error("wrong-length hex accepted")
	}
	if _, err := decodeHexExact("0xcd", 2); err == nil {
		t.Error("0x prefix accepted")
	}
	if _, err := decodeHexExact("zzzz", 2); err == nil {
		t.Error("non-hex characters accepted")
	}
}
