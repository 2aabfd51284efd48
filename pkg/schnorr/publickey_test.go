package schnorr

import (
	"bytes"
	"testing"
)

// fixedEntropy returns a reader over a deterministic byte pattern, enough
// for one private key draw.
func fixedEntropy() *bytes.Reader {
	seed := make([]byte, 2*ScalarSize)
	for i := range seed {
		seed[i] = byte(i*7 + 13)
	}
	return bytes.NewReader(seed)
}

func TestKeyPairStability(t *testing.T) {
	priv, pub, err := GenerateKeyPairFromRand(fixedEntropy())
	if err != nil {
		t.Fatalf("GenerateKeyPairFromRand failed: %v", err)
	}

	rederived, err := NewPublicKeyFromPrivKey(priv)
	if err != nil {
		t.Fatalf("NewPublicKeyFromPrivKey failed: %v", err)
	}

	a := make([]byte, PubKeySize)
	b := make([]byte, PubKeySize)
	if err := pub.Serialize(a, 0); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := rederived.Serialize(b, 0); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("re-derived public key differs: %x vs %x", a, b)
	}
}

func TestPublicKey_DerivationMatchesDeserializedKey(t *testing.T) {
	priv, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	privBuf := make([]byte, ScalarSize)
	if err := priv.Serialize(privBuf, 0); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	restored, err := NewPrivateKey(privBuf, 0)
	if err != nil {
		t.Fatalf("NewPrivateKey failed: %v", err)
	}
	pubFromRestored, err := NewPublicKeyFromPrivKey(restored)
	if err != nil {
		t.Fatalf("NewPublicKeyFromPrivKey failed: %v", err)
	}

	if !pub.Equal(pubFromRestored) {
		t.Error("public key derived from deserialized private key differs")
	}
}

func TestPublicKey_SerializeRoundTrip(t *testing.T) {
	_, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	buf := make([]byte, 5+PubKeySize)
	if err := pub.Serialize(buf, 5); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	restored, err := NewPublicKey(buf, 5)
	if err != nil {
		t.Fatalf("NewPublicKey failed: %v", err)
	}
	if !pub.Equal(restored) {
		t.Error("round trip produced a different key")
	}
}

func TestPublicKey_SerializedSize(t *testing.T) {
	_, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}
	buf := make([]byte, PubKeySize)
	if err := pub.Serialize(buf, 0); err != nil {
		t.Fatalf("Serialize into exactly %d bytes failed: %v", PubKeySize, err)
	}
	if buf[0] != 0x02 && buf[0] != 0x03 {
		t.Errorf("expected parity prefix, got 0x%02x", buf[0])
	}
}

func TestPublicKey_DeserializeRejectsGarbage(t *testing.T) {
	buf := make([]byte, PubKeySize)
	buf[0] = 0x05
	if _, err := NewPublicKey(buf, 0); err == nil {
		t.Error("invalid prefix byte accepted")
	}

	if _, err := NewPublicKey(buf[:PubKeySize-1], 0); err == nil {
		t.Error("short buffer accepted")
	}
}

func TestPublicKey_FromString(t *testing.T) {
	_, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	restored, err := NewPublicKeyFromString(pub.String())
	if err != nil {
		t.Fatalf("NewPublicKeyFromString failed: %v", err)
	}
	if !pub.Equal(restored) {
		t.Error("hex round trip produced a different key")
	}

	if _, err := NewPublicKeyFromString("02"); err == nil {
		t.Error("short hex accepted")
	}
}

func TestPublicKey_OrderingTotality(t *testing.T) {
	_, p1, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}
	_, p2, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	c12 := p1.Cmp(p2)
	c21 := p2.Cmp(p1)
	if c12 != -c21 {
		t.Errorf("Cmp is not antisymmetric: %d vs %d", c12, c21)
	}
	if (c12 == 0) != p1.Equal(p2) {
		t.Error("Cmp zero disagrees with Equal")
	}
	if p1.Cmp(p1) != 0 {
		t.Error("key does not compare equal to itself")
	}

	// Ordering must agree with lex order of the compressed bytes.
	a := make([]byte, PubKeySize)
	b := make([]byte, PubKeySize)
	if err := p1.Serialize(a, 0); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := p2.Serialize(b, 0); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if c12 != bytes.Compare(a, b) {
		t.Error("Cmp disagrees with compressed-byte lex order")
	}
}

func TestPublicKey_HashConsistency(t *testing.T) {
	_, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	clone := pub.Clone()
	if !pub.Equal(clone) {
		t.Fatal("clone differs from original")
	}
	if pub.Hash() != clone.Hash() {
		t.Error("equal keys produced different hashes")
	}
}

func TestPublicKey_UninitializedRejected(t *testing.T) {
	var p PublicKey
	buf := make([]byte, PubKeySize)
	if err := p.Serialize(buf, 0); err != ErrUninitialized {
		t.Errorf("expected ErrUninitialized, got %v", err)
	}
	if p.String() != "" {
		t.Error("uninitialized key has a string form")
	}
	if !p.Clone().Equal(&PublicKey{}) {
		t.Error("clone of uninitialized key is not uninitialized")
	}
}
