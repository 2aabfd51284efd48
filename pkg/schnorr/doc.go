// Package schnorr implements the EC-Schnorr signature scheme over the
// secp256k1 curve, following the variant defined in BSI TR-03111 section
// 4.2.3.
//
// Signatures are deterministic: the per-message nonce is derived from the
// private key and the message with an RFC 6979 style HMAC-DRBG, so signing
// the same message with the same key always yields the same (r, s) pair.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/ec-schnorr/pkg/schnorr"
//
//	priv, pub, err := schnorr.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := schnorr.Sign(message, priv, pub)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !schnorr.Verify(message, sig, pub) {
//	    log.Fatal("signature did not verify")
//	}
//
// # Wire Format
//
// All three entities serialize to fixed-size byte strings with no framing:
//
//	PrivateKey  32 bytes  big-endian scalar
//	PublicKey   33 bytes  SEC1 compressed point (0x02/0x03 prefix + x)
//	Signature   64 bytes  r (32 bytes) followed by s (32 bytes)
//
// Serializers write into a caller-owned buffer at a given offset, and
// deserializers read from one, so entities can be packed into larger
// protocol messages without copying.
//
// # Range Variants
//
// Sign and Verify operate on a whole message. SignRange and VerifyRange
// accept an (offset, size) window into a larger buffer, which lets callers
// sign a payload embedded in a frame without slicing it out first:
//
//	sig, err := schnorr.SignRange(frame, headerLen, payloadLen, priv, pub)
package schnorr
